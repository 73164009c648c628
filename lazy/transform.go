package lazy

import (
	"iter"

	"github.com/npillmayer/fpcoll"
)

// Map creates a view applying f to every element of v.
func Map[T, R any](v View[T], f func(T) R) View[R] {
	return derive(v, "map", func(c *cursor, emit sink[R]) error {
		return v.pull(c, func(pos int, x T) error {
			return emit(pos, f(x))
		})
	})
}

// MapE is like Map for functions which may fail. An error returned from f fails the
// evaluation with an fpcoll.EvaluationError.
func MapE[T, R any](v View[T], f func(T) (R, error)) View[R] {
	return derive(v, "mapE", func(c *cursor, emit sink[R]) error {
		return v.pull(c, func(pos int, x T) error {
			r, err := f(x)
			if err != nil {
				return &fpcoll.EvaluationError{Position: pos, Cause: err}
			}
			return emit(pos, r)
		})
	})
}

// FlatMap creates a view of the concatenation of the sequences f produces for the
// elements of v.
func FlatMap[T, R any](v View[T], f func(T) iter.Seq[R]) View[R] {
	return derive(v, "flatMap", func(c *cursor, emit sink[R]) error {
		return v.pull(c, func(pos int, x T) error {
			for r := range f(x) {
				if err := emit(pos, r); err != nil {
					return err
				}
			}
			return nil
		})
	})
}

// ScanLeft creates a view of the running accumulations of v, starting with seed.
// The result has one element more than v.
func ScanLeft[T, U any](v View[T], seed U, f func(U, T) U) View[U] {
	return derive(v, "scanLeft", func(c *cursor, emit sink[U]) error {
		acc := seed
		if err := emit(c.pulled, acc); err != nil {
			return err
		}
		return v.pull(c, func(pos int, x T) error {
			acc = f(acc, x)
			return emit(pos, acc)
		})
	})
}

// ZipWithIndex pairs every element of v with its index in v.
func ZipWithIndex[T any](v View[T]) View[fpcoll.Pair[T, int]] {
	return derive(v, "zipWithIndex", func(c *cursor, emit sink[fpcoll.Pair[T, int]]) error {
		i := 0
		return v.pull(c, func(pos int, x T) error {
			p := fpcoll.P(x, i)
			i++
			return emit(pos, p)
		})
	})
}

// Filter creates a view of the elements of v satisfying pred.
func (v View[T]) Filter(pred func(T) bool) View[T] {
	return derive(v, "filter", func(c *cursor, emit sink[T]) error {
		return v.pull(c, func(pos int, x T) error {
			if !pred(x) {
				return nil
			}
			return emit(pos, x)
		})
	})
}

// FilterE is like Filter for predicates which may fail. An error returned from pred
// fails the evaluation with an fpcoll.EvaluationError.
func (v View[T]) FilterE(pred func(T) (bool, error)) View[T] {
	return derive(v, "filterE", func(c *cursor, emit sink[T]) error {
		return v.pull(c, func(pos int, x T) error {
			ok, err := pred(x)
			if err != nil {
				return &fpcoll.EvaluationError{Position: pos, Cause: err}
			}
			if !ok {
				return nil
			}
			return emit(pos, x)
		})
	})
}

// Limit creates a view of the first n elements of v. Evaluation stops pulling
// from the source as soon as the n-th element has passed.
// A negative n lets terminal operations fail with fpcoll.ErrInvalidArgument.
func (v View[T]) Limit(n int) View[T] {
	w := derive(v, "limit", func(c *cursor, emit sink[T]) error {
		if n == 0 {
			return nil
		}
		stop := &stopSignal{stage: "limit"}
		count := 0
		err := v.pull(c, func(pos int, x T) error {
			if err := emit(pos, x); err != nil {
				return err
			}
			if count++; count == n {
				return stop
			}
			return nil
		})
		if err == error(stop) {
			return nil
		}
		return err
	})
	if n < 0 && w.err == nil {
		w.err = fpcoll.InvalidArgument("limit", "negative count %d", n)
	}
	return w
}

// Skip creates a view omitting the first n elements of v.
// A negative n lets terminal operations fail with fpcoll.ErrInvalidArgument.
func (v View[T]) Skip(n int) View[T] {
	w := derive(v, "skip", func(c *cursor, emit sink[T]) error {
		skipped := 0
		return v.pull(c, func(pos int, x T) error {
			if skipped < n {
				skipped++
				return nil
			}
			return emit(pos, x)
		})
	})
	if n < 0 && w.err == nil {
		w.err = fpcoll.InvalidArgument("skip", "negative count %d", n)
	}
	return w
}

// TakeWhile creates a view of the longest prefix of v satisfying pred. The source
// is not pulled beyond the first element failing pred.
func (v View[T]) TakeWhile(pred func(T) bool) View[T] {
	return derive(v, "takeWhile", func(c *cursor, emit sink[T]) error {
		stop := &stopSignal{stage: "takeWhile"}
		err := v.pull(c, func(pos int, x T) error {
			if !pred(x) {
				return stop
			}
			return emit(pos, x)
		})
		if err == error(stop) {
			return nil
		}
		return err
	})
}

// DropWhile creates a view omitting the longest prefix of v satisfying pred.
func (v View[T]) DropWhile(pred func(T) bool) View[T] {
	return derive(v, "dropWhile", func(c *cursor, emit sink[T]) error {
		dropping := true
		return v.pull(c, func(pos int, x T) error {
			if dropping && pred(x) {
				return nil
			}
			dropping = false
			return emit(pos, x)
		})
	})
}

// Peek calls f for every element passing through the view, e.g. for tracing.
func (v View[T]) Peek(f func(T)) View[T] {
	return derive(v, "peek", func(c *cursor, emit sink[T]) error {
		return v.pull(c, func(pos int, x T) error {
			f(x)
			return emit(pos, x)
		})
	})
}

// Combine merges runs of neighbouring elements: the next element is folded into the
// running accumulator with op as long as pred(prev, next) holds for its left
// neighbour prev. As with ops.Combine, pred compares input elements, never the
// accumulator.
func (v View[T]) Combine(pred func(T, T) bool, op func(T, T) T) View[T] {
	return derive(v, "combine", func(c *cursor, emit sink[T]) error {
		var acc, prev T
		accPos, started := 0, false
		err := v.pull(c, func(pos int, x T) error {
			if !started {
				acc, prev, accPos, started = x, x, pos, true
				return nil
			}
			if pred(prev, x) {
				acc, prev = op(acc, x), x
				return nil
			}
			if err := emit(accPos, acc); err != nil {
				return err
			}
			acc, prev, accPos = x, x, pos
			return nil
		})
		if err != nil || !started {
			return err
		}
		return emit(accPos, acc)
	})
}

// Concat creates a view of the elements of v followed by the elements of w.
func (v View[T]) Concat(w View[T]) View[T] {
	u := derive(v, "concat", func(c *cursor, emit sink[T]) error {
		if err := v.pull(c, emit); err != nil {
			return err
		}
		return w.pull(c, emit)
	})
	if u.err == nil {
		u.err = w.err
	}
	return u
}
