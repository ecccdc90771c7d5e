package iterators

import (
	"io"
	"iter"
)

// PullHandle is the pull protocol every Cursor is built on.
// Next returns the next value and true,
// or the zero value and false when there are no more values.
type PullHandle[T any] interface {
	Next() (value T, ok bool)
}

// Sequenceable can manufacture a fresh PullHandle on demand.
type Sequenceable[T any] interface {
	Iterator() PullHandle[T]
}

// PullFunc lets you use a plain function as a PullHandle.
type PullFunc[T any] func() (T, bool)

func (fn PullFunc[T]) Next() (T, bool) { return fn() }

// New wraps a source into a Cursor.
//
// The source is checked in the following order:
// Sequenceable, PullHandle (or a func() (T, bool)), iter.Seq and slice.
// When the source has none of these capabilities, New returns ErrInvalidSource,
// and the source is not touched.
func New[T any](source any) (*Cursor[T], error) {
	switch src := source.(type) {
	case Sequenceable[T]:
		return FromIterable(src), nil
	case PullHandle[T]:
		return FromPull(src), nil
	case func() (T, bool):
		return FromPull[T](PullFunc[T](src)), nil
	case iter.Seq[T]:
		return FromSeq(src), nil
	case func(func(T) bool):
		return FromSeq(src), nil
	case []T:
		return Slice(src), nil
	default:
		return nil, ErrInvalidSource.F("%T", source)
	}
}

// FromIterable makes a Cursor from the PullHandle the Sequenceable manufactures.
func FromIterable[T any](src Sequenceable[T]) *Cursor[T] {
	return FromPull(src.Iterator())
}

// FromPull makes a Cursor that delegates to the given PullHandle.
// When the handle implements io.Closer, Cursor.Close will close it.
func FromPull[T any](handle PullHandle[T]) *Cursor[T] {
	return &Cursor[T]{src: handle}
}

// FromSeq makes a Cursor from an iter.Seq.
// The sequence is driven with iter.Pull, and Cursor.Close stops it.
func FromSeq[T any](seq iter.Seq[T]) *Cursor[T] {
	next, stop := iter.Pull(seq)
	return FromPull[T](&seqHandle[T]{next: next, stop: stop})
}

// Cursor is a lazy, single use iterator.
//
// Its position lives in the source it wraps, and every pull advances it.
// Once Next reported false, the Cursor is exhausted for good.
//
// A Cursor is not safe for concurrent use.
type Cursor[T any] struct {
	src    PullHandle[T]
	done   bool
	closed bool
}

// Next pulls the next value from the source.
func (c *Cursor[T]) Next() (T, bool) {
	if c.done {
		var zero T
		return zero, false
	}
	v, ok := c.src.Next()
	if !ok {
		c.done = true
		var zero T
		return zero, false
	}
	return v, true
}

// Iterator makes the Cursor a Sequenceable by returning itself,
// so wrapping a Cursor again continues from the same position.
func (c *Cursor[T]) Iterator() PullHandle[T] { return c }

// All returns the Cursor as an iter.Seq, for use with the range keyword.
// Ranging over it advances the Cursor, and breaking out of the loop
// leaves the remaining elements in the Cursor.
func (c *Cursor[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := c.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Close exhausts the Cursor and releases the resources held by its source.
func (c *Cursor[T]) Close() error {
	c.done = true
	if c.closed {
		return nil
	}
	c.closed = true
	if closer, ok := c.src.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

type seqHandle[T any] struct {
	next func() (T, bool)
	stop func()
}

func (h *seqHandle[T]) Next() (T, bool) { return h.next() }

func (h *seqHandle[T]) Close() error {
	h.stop()
	return nil
}
