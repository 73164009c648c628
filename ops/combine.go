package ops

import "iter"

// Combine merges runs of neighbouring elements. Scanning src from left to right, the
// next element is folded into the running accumulator with op if pred(prev, next)
// holds for its left neighbour prev; otherwise the accumulator is emitted and next
// starts a new run.
//
//	Combine([1 1 2 3], equals, sum)  ⇒  [2 2 3]
//
// Note that pred never sees the accumulator. Combining variants which compare the
// accumulator with the next element would merge the 2 resulting from (1,1) with the
// following 2. To compare against the accumulator, use GroupedWhile and fold the
// groups.
//
// Combine of an empty source is empty.
func Combine[T, C any](src Iterable[T], pred func(T, T) bool, op func(T, T) T,
	unit Unit[T, C]) C {
	//
	return unit(combine(src.All(), pred, op))
}

func combine[T any](seq iter.Seq[T], pred func(T, T) bool, op func(T, T) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		var acc, prev T
		started := false
		for x := range seq {
			if !started {
				acc, prev, started = x, x, true
				continue
			}
			if pred(prev, x) {
				acc, prev = op(acc, x), x
				continue
			}
			if !yield(acc) {
				return
			}
			acc, prev = x, x
		}
		if started {
			yield(acc)
		}
	}
}

// GroupedWhile collects adjacent elements into groups. A group is extended with
// the next element as long as pred(group, next) holds.
func GroupedWhile[T, C any](src Iterable[T], pred func([]T, T) bool, unit Unit[[]T, C]) C {
	return unit(func(yield func([]T) bool) {
		var group []T
		for x := range src.All() {
			if len(group) > 0 && !pred(group, x) {
				if !yield(group) {
					return
				}
				group = nil
			}
			group = append(group, x)
		}
		if len(group) > 0 {
			yield(group)
		}
	})
}
