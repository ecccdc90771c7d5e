package iterators

import "github.com/adamluzsi/lazykit/pkg/errorkit"

const (
	// ErrInvalidSource is returned by New when the source is neither a Sequenceable nor a PullHandle.
	ErrInvalidSource errorkit.Error = "base is neither an iterator nor an iterable"
	// ErrEmptyReduce is returned by Reduce when no initial value was given and the cursor has no elements.
	ErrEmptyReduce errorkit.Error = "reduce of consumed iterator with no initial value"
	// Break can be returned from a ForEachErr callback to stop the iteration without an error.
	Break errorkit.Error = "iterators:break"
)
