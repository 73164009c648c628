package lazy

import (
	"slices"

	"github.com/npillmayer/fpcoll"
	"github.com/npillmayer/fpcoll/maybe"
	"github.com/npillmayer/fpcoll/ops"
)

// ToSlice materializes v and returns a copy of its elements.
func (v View[T]) ToSlice() ([]T, error) {
	xs, err := v.materialize()
	if err != nil {
		return nil, err
	}
	return slices.Clone(xs), nil
}

// Len materializes v and returns the number of its elements.
func (v View[T]) Len() (int, error) {
	xs, err := v.materialize()
	return len(xs), err
}

// At returns the element at index i. Unless v is materialized, the pipeline is run
// just far enough to produce element i.
func (v View[T]) At(i int) (T, error) {
	var zero T
	if i < 0 {
		if v.err != nil {
			return zero, v.err
		}
		return zero, fpcoll.IndexOutOfRange("at", i, 0)
	}
	xs, err := v.prefix(i + 1)
	if err != nil {
		return zero, err
	}
	if i >= len(xs) {
		return zero, fpcoll.IndexOutOfRange("at", i, len(xs))
	}
	return xs[i], nil
}

// First returns the first element of v, pulling a single element at most.
// For an empty view, First returns fpcoll.ErrEmptyCollection.
func (v View[T]) First() (T, error) {
	var zero T
	xs, err := v.prefix(1)
	if err != nil {
		return zero, err
	}
	if len(xs) == 0 {
		return zero, fpcoll.EmptyCollection("first")
	}
	return xs[0], nil
}

// FirstOption is like First, but returns Nothing for an empty or failing view.
func (v View[T]) FirstOption() maybe.Maybe[T] {
	x, err := v.First()
	if err != nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(x)
}

// ForEach materializes v and calls f for every element.
func (v View[T]) ForEach(f func(T)) error {
	xs, err := v.materialize()
	if err != nil {
		return err
	}
	for _, x := range xs {
		f(x)
	}
	return nil
}

// Fold materializes v and folds its elements from the left, starting with seed.
func Fold[T, U any](v View[T], seed U, f func(U, T) U) (U, error) {
	xs, err := v.materialize()
	if err != nil {
		return seed, err
	}
	return ops.Fold(ops.Slice[T](xs), seed, f), nil
}

// Collect materializes v into a container built by unit, e.g.
//
//	set, err := lazy.Collect(view, hamt.FromSeq[int])
//
// Views are deliberately not an ops.Iterable: Collect is the way to turn a view
// into a container, as it reports a failed evaluation instead of producing an
// empty container.
func Collect[T, C any](v View[T], unit ops.Unit[T, C]) (C, error) {
	xs, err := v.materialize()
	if err != nil {
		var zero C
		return zero, err
	}
	return unit(slices.Values(xs)), nil
}
