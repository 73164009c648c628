package ops

import (
	"github.com/npillmayer/fpcoll"
)

// Grouped chunks src into consecutive groups of size elements. The final group
// may be shorter.
//
//	Grouped([1 2 3 4 5], 2)  ⇒  [[1 2] [3 4] [5]]
//
// A size ≤ 0 results in an error of kind fpcoll.ErrInvalidArgument.
func Grouped[T, C any](src Iterable[T], size int, unit Unit[[]T, C]) (C, error) {
	if size <= 0 {
		var none C
		return none, fpcoll.InvalidArgument("grouped", "group size must be positive, is %d", size)
	}
	return unit(func(yield func([]T) bool) {
		group := make([]T, 0, size)
		for x := range src.All() {
			group = append(group, x)
			if len(group) == size {
				if !yield(group) {
					return
				}
				group = make([]T, 0, size)
			}
		}
		if len(group) > 0 {
			yield(group)
		}
	}), nil
}

// Sliding produces windows of size elements, each starting step elements after
// its predecessor. Windows overlap if step < size.
// Sliding stops after the first window which reaches the end of src; this
// window may be shorter than size, if src has fewer elements than would be needed
// to fill it.
//
//	Sliding([1 2 3 4 5], 2, 1)  ⇒  [[1 2] [2 3] [3 4] [4 5]]
//	Sliding([1 2 3 4 5 6], 3, 2)  ⇒  [[1 2 3] [3 4 5] [5 6]]
//
// Window elements are copied, i.e. windows do not share memory.
func Sliding[T, C any](src Iterable[T], size, step int, unit Unit[[]T, C]) (C, error) {
	var none C
	if size <= 0 {
		return none, fpcoll.InvalidArgument("sliding", "window size must be positive, is %d", size)
	}
	if step <= 0 {
		return none, fpcoll.InvalidArgument("sliding", "step must be positive, is %d", step)
	}
	xs := ToSlice(src)
	tracer().Debugf("sliding window %d/%d over %d elements", size, step, len(xs))
	return unit(func(yield func([]T) bool) {
		for start := 0; start < len(xs); start += step {
			end := min(start+size, len(xs))
			w := make([]T, end-start)
			copy(w, xs[start:end])
			if !yield(w) || end == len(xs) {
				return
			}
		}
	}), nil
}
