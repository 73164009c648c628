package ops

// ScanLeft emits the running left fold of src, beginning with seed.
// It always emits Count(src)+1 values.
//
//	ScanLeft([1 2 3], 0, +)  ⇒  [0 1 3 6]
func ScanLeft[T, U, C any](src Iterable[T], seed U, f func(U, T) U, unit Unit[U, C]) C {
	return unit(func(yield func(U) bool) {
		acc := seed
		if !yield(acc) {
			return
		}
		for x := range src.All() {
			acc = f(acc, x)
			if !yield(acc) {
				return
			}
		}
	})
}

// ScanRight emits the running right fold of src, beginning with seed. The
// fold starts at the last element of src.
// It always emits Count(src)+1 values.
//
//	ScanRight([a b c], "", concat)  ⇒  ["" "c" "bc" "abc"]
func ScanRight[T, U, C any](src Iterable[T], seed U, f func(T, U) U, unit Unit[U, C]) C {
	xs := ToSlice(src)
	return unit(func(yield func(U) bool) {
		acc := seed
		if !yield(acc) {
			return
		}
		for i := len(xs) - 1; i >= 0; i-- {
			acc = f(xs[i], acc)
			if !yield(acc) {
				return
			}
		}
	})
}
