package iterators

// Slice returns a Cursor over the elements of the slice.
func Slice[T any](slice []T) *Cursor[T] {
	return FromPull[T](&sliceHandle[T]{Slice: slice})
}

// Empty returns an already exhausted Cursor.
// It can help achieve Null Object Pattern when no value is logically expected and a Cursor should be returned.
func Empty[T any]() *Cursor[T] {
	return &Cursor[T]{src: PullFunc[T](func() (T, bool) {
		var zero T
		return zero, false
	}), done: true}
}

type sliceHandle[T any] struct {
	Slice []T
	index int
}

func (h *sliceHandle[T]) Next() (T, bool) {
	if len(h.Slice) <= h.index {
		var zero T
		return zero, false
	}
	v := h.Slice[h.index]
	h.index++
	return v, true
}
