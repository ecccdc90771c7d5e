package iterators

// Find returns the first element that satisfies the predicate.
// When the Cursor runs out before a match, it returns the zero value and false.
func (c *Cursor[T]) Find(predicate func(T) bool) (T, bool) {
	for v, ok := c.Next(); ok; v, ok = c.Next() {
		if predicate(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Includes reports whether the Cursor yields an element equal to the given one.
// Equality is the == operator, so pointers match by identity.
func Includes[T comparable](c *Cursor[T], element T) bool {
	return c.Some(func(v T) bool { return v == element })
}
