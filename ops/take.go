package ops

import (
	"slices"

	"github.com/npillmayer/fpcoll"
)

// Limit retains the first n elements of src. Elements after the n-th are
// never pulled from src.
func Limit[T, C any](src Iterable[T], n int, unit Unit[T, C]) (C, error) {
	if n < 0 {
		var none C
		return none, fpcoll.InvalidArgument("limit", "negative count %d", n)
	}
	return unit(func(yield func(T) bool) {
		if n == 0 {
			return
		}
		i := 0
		for x := range src.All() {
			i++
			if !yield(x) || i == n {
				return
			}
		}
	}), nil
}

// Skip drops the first n elements of src.
func Skip[T, C any](src Iterable[T], n int, unit Unit[T, C]) (C, error) {
	if n < 0 {
		var none C
		return none, fpcoll.InvalidArgument("skip", "negative count %d", n)
	}
	return unit(func(yield func(T) bool) {
		i := 0
		for x := range src.All() {
			if i < n {
				i++
				continue
			}
			if !yield(x) {
				return
			}
		}
	}), nil
}

// TakeWhile retains elements of src up to (excluding) the first one for which
// pred does not hold.
func TakeWhile[T, C any](src Iterable[T], pred func(T) bool, unit Unit[T, C]) C {
	return unit(func(yield func(T) bool) {
		for x := range src.All() {
			if !pred(x) || !yield(x) {
				return
			}
		}
	})
}

// DropWhile drops elements of src as long as pred holds.
func DropWhile[T, C any](src Iterable[T], pred func(T) bool, unit Unit[T, C]) C {
	return unit(func(yield func(T) bool) {
		dropping := true
		for x := range src.All() {
			if dropping && pred(x) {
				continue
			}
			dropping = false
			if !yield(x) {
				return
			}
		}
	})
}

// TakeRight retains the last n elements of src.
func TakeRight[T, C any](src Iterable[T], n int, unit Unit[T, C]) (C, error) {
	if n < 0 {
		var none C
		return none, fpcoll.InvalidArgument("takeRight", "negative count %d", n)
	}
	xs := ToSlice(src)
	if n > len(xs) {
		n = len(xs)
	}
	return unit(Slice[T](xs[len(xs)-n:]).All()), nil
}

// DropRight drops the last n elements of src.
func DropRight[T, C any](src Iterable[T], n int, unit Unit[T, C]) (C, error) {
	if n < 0 {
		var none C
		return none, fpcoll.InvalidArgument("dropRight", "negative count %d", n)
	}
	xs := ToSlice(src)
	if n > len(xs) {
		n = len(xs)
	}
	return unit(Slice[T](xs[:len(xs)-n]).All()), nil
}

// Reverse produces the elements of src in reverse order.
func Reverse[T, C any](src Iterable[T], unit Unit[T, C]) C {
	xs := ToSlice(src)
	slices.Reverse(xs)
	return unit(Slice[T](xs).All())
}

// Cycle repeats the elements of src times times. Cycle(src, 0) is empty.
func Cycle[T, C any](src Iterable[T], times int, unit Unit[T, C]) (C, error) {
	if times < 0 {
		var none C
		return none, fpcoll.InvalidArgument("cycle", "negative count %d", times)
	}
	xs := ToSlice(src)
	return unit(func(yield func(T) bool) {
		for i := 0; i < times; i++ {
			for _, x := range xs {
				if !yield(x) {
					return
				}
			}
		}
	}), nil
}

// Intersperse puts sep between every two adjacent elements of src.
func Intersperse[T, C any](src Iterable[T], sep T, unit Unit[T, C]) C {
	return unit(func(yield func(T) bool) {
		first := true
		for x := range src.All() {
			if !first && !yield(sep) {
				return
			}
			first = false
			if !yield(x) {
				return
			}
		}
	})
}

// Distinct drops every element equal to an element produced before.
func Distinct[T comparable, C any](src Iterable[T], unit Unit[T, C]) C {
	return unit(func(yield func(T) bool) {
		seen := make(map[T]struct{})
		for x := range src.All() {
			if _, ok := seen[x]; ok {
				continue
			}
			seen[x] = struct{}{}
			if !yield(x) {
				return
			}
		}
	})
}

// Sorted produces the elements of src in an order determined by cmp.
// Sorting is stable.
func Sorted[T, C any](src Iterable[T], cmp func(a, b T) int, unit Unit[T, C]) C {
	xs := ToSlice(src)
	slices.SortStableFunc(xs, cmp)
	return unit(Slice[T](xs).All())
}
