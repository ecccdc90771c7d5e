package iterators

// CollectTo pulls the Cursor until it is exhausted,
// and passes every element in pull order to the container builder.
//
//	set := iterators.CollectTo(cursor, NewSet[string])
func CollectTo[C any, T any](c *Cursor[T], build func(...T) C) C {
	var vs []T
	for v, ok := c.Next(); ok; v, ok = c.Next() {
		vs = append(vs, v)
	}
	return build(vs...)
}

// Collect pulls the Cursor until it is exhausted and returns the elements as a slice.
func (c *Cursor[T]) Collect() []T {
	return CollectTo(c, func(vs ...T) []T { return vs })
}

// Count will iterate over and count the total iterations number
//
// Good when all you want is count all the elements in a Cursor but don't want to do anything else.
func (c *Cursor[T]) Count() int {
	var total int
	for _, ok := c.Next(); ok; _, ok = c.Next() {
		total++
	}
	return total
}
