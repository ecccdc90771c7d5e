package iterators

// Each reports whether every remaining element satisfies the predicate.
// It stops at the first element that fails, leaving the rest in the Cursor.
func (c *Cursor[T]) Each(predicate func(T) bool) bool {
	for v, ok := c.Next(); ok; v, ok = c.Next() {
		if !predicate(v) {
			return false
		}
	}
	return true
}

// Some reports whether any remaining element satisfies the predicate.
// It stops at the first match, leaving the rest in the Cursor.
func (c *Cursor[T]) Some(predicate func(T) bool) bool {
	for v, ok := c.Next(); ok; v, ok = c.Next() {
		if predicate(v) {
			return true
		}
	}
	return false
}
