package iterators_test

//go:generate mockgen -destination mock_handle_test.go -source handle_test.go -package iterators_test

import (
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/adamluzsi/lazykit/iterators"
)

// IntPullHandle is the int instance of iterators.PullHandle, for mockgen.
type IntPullHandle interface {
	Next() (int, bool)
}

// expectPulls makes a mock handle that expects to be pulled exactly once per value,
// and once more if exhausted is true.
func expectPulls(tb testing.TB, exhausted bool, values ...int) *MockIntPullHandle {
	ctrl := gomock.NewController(tb)
	h := NewMockIntPullHandle(ctrl)
	var calls []*gomock.Call
	for _, v := range values {
		calls = append(calls, h.EXPECT().Next().Return(v, true))
	}
	if exhausted {
		calls = append(calls, h.EXPECT().Next().Return(0, false))
	}
	gomock.InOrder(calls...)
	return h
}

// ClosableHandle is a PullHandle over a slice that records Close calls.
type ClosableHandle struct {
	Values []int
	Pulls  int
	Closed int
	Err    error
}

func (h *ClosableHandle) Next() (int, bool) {
	h.Pulls++
	if len(h.Values) == 0 {
		return 0, false
	}
	v := h.Values[0]
	h.Values = h.Values[1:]
	return v, true
}

func (h *ClosableHandle) Close() error {
	h.Closed++
	return h.Err
}

// Iterable is a Sequenceable that makes a new handle on every call.
type Iterable struct {
	Values []int
	Calls  int
}

func (i *Iterable) Iterator() iterators.PullHandle[int] {
	i.Calls++
	return &ClosableHandle{Values: append([]int(nil), i.Values...)}
}
