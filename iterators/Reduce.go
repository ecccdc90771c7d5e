package iterators

// Seed is the optional initial value of a Reduce.
// The zero Seed holds no value.
type Seed[T any] struct {
	value T
	ok    bool
}

// Initial returns a Seed that holds v, even when v is a zero value.
func Initial[T any](v T) Seed[T] { return Seed[T]{value: v, ok: true} }

// NoInitial returns an empty Seed.
func NoInitial[T any]() Seed[T] { return Seed[T]{} }

// Get returns the seed value and whether it was set.
func (s Seed[T]) Get() (T, bool) { return s.value, s.ok }

// Reduce folds the remaining elements from left to right.
//
// When the Seed is empty, the first element becomes the accumulator,
// and if the Cursor has no element left, Reduce returns ErrEmptyReduce.
func (c *Cursor[T]) Reduce(reducer func(acc, v T) T, initial Seed[T]) (T, error) {
	acc, ok := initial.Get()
	if !ok {
		first, ok := c.Next()
		if !ok {
			return acc, ErrEmptyReduce
		}
		acc = first
	}
	for v, ok := c.Next(); ok; v, ok = c.Next() {
		acc = reducer(acc, v)
	}
	return acc, nil
}

// Reduce folds the Cursor into a value of a different type, starting from initial.
func Reduce[R, T any](c *Cursor[T], initial R, fn func(R, T) R) R {
	var v = initial
	for e, ok := c.Next(); ok; e, ok = c.Next() {
		v = fn(v, e)
	}
	return v
}

// ReduceErr is like Reduce, but the reducer may fail.
// The first error stops the fold, and it is returned together with the accumulator so far.
func ReduceErr[R, T any](c *Cursor[T], initial R, fn func(R, T) (R, error)) (R, error) {
	var v = initial
	for e, ok := c.Next(); ok; e, ok = c.Next() {
		next, err := fn(v, e)
		if err != nil {
			return v, err
		}
		v = next
	}
	return v, nil
}
