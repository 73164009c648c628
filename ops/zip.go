package ops

import (
	"iter"

	"github.com/npillmayer/fpcoll"
)

// Zip pairs elements of src with elements of other, in order. The result is as
// long as the shorter of both. src is never pulled for more elements than the
// result holds, so it may be infinite.
func Zip[T, U, C any](src Iterable[T], other Iterable[U], unit Unit[fpcoll.Pair[T, U], C]) C {
	return unit(func(yield func(fpcoll.Pair[T, U]) bool) {
		next, stop := iter.Pull(src.All())
		defer stop()
		for y := range other.All() {
			x, ok := next()
			if !ok || !yield(fpcoll.P(x, y)) {
				return
			}
		}
	})
}

// ZipWithIndex pairs every element of src with its position, starting at 0.
func ZipWithIndex[T, C any](src Iterable[T], unit Unit[fpcoll.Pair[T, int], C]) C {
	return unit(func(yield func(fpcoll.Pair[T, int]) bool) {
		i := 0
		for x := range src.All() {
			if !yield(fpcoll.P(x, i)) {
				return
			}
			i++
		}
	})
}
