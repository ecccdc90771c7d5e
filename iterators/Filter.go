package iterators

// Filter returns a Cursor that only yields the elements the predicate accepts.
//
// Filter is lazy: pulling the returned Cursor pulls the upstream until
// it finds a matching element or the upstream is exhausted.
func Filter[T any](upstream *Cursor[T], predicate func(T) bool) *Cursor[T] {
	return FromPull[T](&filterStage[T]{upstream: upstream, match: predicate})
}

// Filter returns a Cursor that only yields the elements the predicate accepts.
func (c *Cursor[T]) Filter(predicate func(T) bool) *Cursor[T] {
	return Filter(c, predicate)
}

type filterStage[T any] struct {
	upstream *Cursor[T]
	match    func(T) bool
}

func (s *filterStage[T]) Next() (T, bool) {
	for {
		v, ok := s.upstream.Next()
		if !ok {
			var zero T
			return zero, false
		}
		if s.match(v) {
			return v, true
		}
	}
}

func (s *filterStage[T]) Close() error {
	return s.upstream.Close()
}
