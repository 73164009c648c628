package ops

import "github.com/npillmayer/fpcoll"

// OnEmpty returns the elements of src, or the single element x if src is empty.
func OnEmpty[T, C any](src Iterable[T], x T, unit Unit[T, C]) C {
	return OnEmptyGet(src, fpcoll.Const(x), unit)
}

// OnEmptyGet is like OnEmpty, but calls supplier for the fallback element.
// supplier is called only if src is empty.
func OnEmptyGet[T, C any](src Iterable[T], supplier func() T, unit Unit[T, C]) C {
	if IsEmpty(src) {
		return Singleton(supplier(), unit)
	}
	return unit(src.All())
}

// OnEmptySwitch returns the container produced by supplier if src is empty.
func OnEmptySwitch[T, C any](src Iterable[T], supplier func() C, unit Unit[T, C]) C {
	if IsEmpty(src) {
		return supplier()
	}
	return unit(src.All())
}

// OnEmptyError fails with the error produced by supplier if src is empty.
func OnEmptyError[T, C any](src Iterable[T], supplier func() error, unit Unit[T, C]) (C, error) {
	if IsEmpty(src) {
		var none C
		return none, supplier()
	}
	return unit(src.All()), nil
}
