package iterators

// ForEach pulls the Cursor until it is exhausted and calls fn with every element.
func (c *Cursor[T]) ForEach(fn func(T)) {
	for v, ok := c.Next(); ok; v, ok = c.Next() {
		fn(v)
	}
}

// ForEachErr pulls the Cursor and calls fn with every element,
// until fn returns an error or the Cursor is exhausted.
// The error from fn is returned as is, except Break,
// which stops the iteration without an error.
func (c *Cursor[T]) ForEachErr(fn func(T) error) error {
	for v, ok := c.Next(); ok; v, ok = c.Next() {
		if err := fn(v); err != nil {
			if err == Break {
				return nil
			}
			return err
		}
	}
	return nil
}
