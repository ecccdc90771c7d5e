package iterators

// Map allows you to do additional transformation on the values.
// This is useful in cases, where you have to alter the input value,
// or change the type all together.
// Like when you read lines from an input stream,
// and then you map the line content to a certain data structure,
// in order to not expose what steps needed in order to unserialize the input stream,
// thus protect the business rules from this information.
//
// Map is lazy: the upstream Cursor is only pulled when the returned Cursor is pulled,
// exactly once per pull.
func Map[To any, From any](upstream *Cursor[From], transform func(From) To) *Cursor[To] {
	return FromPull[To](&mapStage[From, To]{upstream: upstream, transform: transform})
}

// Map returns a Cursor with the transform applied to every element.
// Use the package level Map to change the element type.
func (c *Cursor[T]) Map(transform func(T) T) *Cursor[T] {
	return Map(c, transform)
}

type mapStage[From, To any] struct {
	upstream  *Cursor[From]
	transform func(From) To
}

func (s *mapStage[From, To]) Next() (To, bool) {
	v, ok := s.upstream.Next()
	if !ok {
		var zero To
		return zero, false
	}
	return s.transform(v), true
}

func (s *mapStage[From, To]) Close() error {
	return s.upstream.Close()
}
