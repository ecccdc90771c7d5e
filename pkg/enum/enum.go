// Package enum implements closed sets of values with a stable key for each value.
//
// An Enum is either built from a list of values, where the key is the position of the value,
// or from explicit key/value pairs.
package enum

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/adamluzsi/lazykit/iterators"
	"github.com/adamluzsi/lazykit/pkg/errorkit"
)

const ErrNoSuchValue errorkit.Error = "ErrNoSuchValue"

type Pair[K, V comparable] struct {
	Key   K
	Value V
}

// Member is the canonical element of an Enum for a given value.
type Member[K, V comparable] struct {
	Key   K
	Value V
}

// String renders the key of the member.
func (m Member[K, V]) String() string {
	return fmt.Sprint(m.Key)
}

// Int returns the key as a number, when the key is numeric.
func (m Member[K, V]) Int() (int, bool) {
	switch k := any(m.Key).(type) {
	case int:
		return k, true
	case string:
		n, err := strconv.Atoi(k)
		return n, err == nil
	default:
		return 0, false
	}
}

// Enum is immutable after construction.
type Enum[K, V comparable] struct {
	pairs   []Pair[K, V]
	keyOf   map[V]K
	valueOf map[K]V
	members map[V]Member[K, V]
}

// Array makes an Enum where the key of each value is its position.
func Array[V comparable](values ...V) *Enum[int, V] {
	pairs := make([]Pair[int, V], 0, len(values))
	for i, v := range values {
		pairs = append(pairs, Pair[int, V]{Key: i, Value: v})
	}
	return Collection(pairs...)
}

// Strings is the Array form for string values.
func Strings(values ...string) *Enum[int, string] {
	return Array(values...)
}

// Collection makes an Enum from explicit key/value pairs. Their order is kept.
// When a value is listed more than once, the last key wins.
func Collection[K, V comparable](pairs ...Pair[K, V]) *Enum[K, V] {
	e := &Enum[K, V]{
		pairs:   append([]Pair[K, V](nil), pairs...),
		keyOf:   make(map[V]K, len(pairs)),
		valueOf: make(map[K]V, len(pairs)),
		members: make(map[V]Member[K, V], len(pairs)),
	}
	for _, p := range pairs {
		e.keyOf[p.Value] = p.Key
		e.valueOf[p.Key] = p.Value
	}
	for v, k := range e.keyOf {
		e.members[v] = Member[K, V]{Key: k, Value: v}
	}
	return e
}

func (e *Enum[K, V]) Len() int { return len(e.pairs) }

// Values returns the values in definition order.
func (e *Enum[K, V]) Values() []V {
	vs := make([]V, 0, len(e.pairs))
	for _, p := range e.pairs {
		vs = append(vs, p.Value)
	}
	return vs
}

// Keys returns the keys in definition order.
func (e *Enum[K, V]) Keys() []K {
	ks := make([]K, 0, len(e.pairs))
	for _, p := range e.pairs {
		ks = append(ks, p.Key)
	}
	return ks
}

func (e *Enum[K, V]) Has(v V) bool {
	_, ok := e.keyOf[v]
	return ok
}

// Key looks up the key of a value.
func (e *Enum[K, V]) Key(v V) (K, bool) {
	k, ok := e.keyOf[v]
	return k, ok
}

// Value looks up the value of a key.
func (e *Enum[K, V]) Value(k K) (V, bool) {
	v, ok := e.valueOf[k]
	return v, ok
}

// New returns the member for the value, or ErrNoSuchValue when the value is not part of the Enum.
func (e *Enum[K, V]) New(v V) (Member[K, V], error) {
	return e.From(v)
}

// From returns the canonical member for the value.
// Every call with the same value returns an equal Member.
func (e *Enum[K, V]) From(v V) (Member[K, V], error) {
	m, ok := e.members[v]
	if !ok {
		return Member[K, V]{}, ErrNoSuchValue.F("No such enum value %v, valid values: %s", v, e.valid())
	}
	return m, nil
}

func (e *Enum[K, V]) MustFrom(v V) Member[K, V] {
	m, err := e.From(v)
	if err != nil {
		panic(err)
	}
	return m
}

// Members walks the members lazily in definition order.
func (e *Enum[K, V]) Members() *iterators.Cursor[Member[K, V]] {
	return iterators.Map(iterators.Slice(e.pairs), func(p Pair[K, V]) Member[K, V] {
		return e.members[p.Value]
	})
}

func (e *Enum[K, V]) valid() string {
	vs := iterators.Map(iterators.Slice(e.pairs), func(p Pair[K, V]) string {
		return fmt.Sprint(p.Value)
	}).Collect()
	return strings.Join(vs, ",")
}
