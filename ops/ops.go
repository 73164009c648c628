package ops

import (
	"iter"

	"github.com/npillmayer/fpcoll"
)

// Iterable is the capability to enumerate elements in a container-specific order.
type Iterable[T any] interface {
	All() iter.Seq[T]
}

// Unit constructs a container of kind C from a sequence of elements.
// Units must consume the sequence before returning.
type Unit[T, C any] func(iter.Seq[T]) C

// Seq turns an iter.Seq into an Iterable.
type Seq[T any] iter.Seq[T]

// All returns seq itself.
func (seq Seq[T]) All() iter.Seq[T] {
	return iter.Seq[T](seq)
}

// Slice is an Iterable for a plain slice.
type Slice[T any] []T

// All enumerates the slice from front to back.
func (s Slice[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range s {
			if !yield(x) {
				return
			}
		}
	}
}

// Empty returns an empty container of kind C.
func Empty[T, C any](unit Unit[T, C]) C {
	return unit(func(func(T) bool) {})
}

// Singleton returns a container of kind C holding x only.
func Singleton[T, C any](x T, unit Unit[T, C]) C {
	return unit(func(yield func(T) bool) {
		yield(x)
	})
}

// Map applies f to every element of src.
func Map[T, R, C any](src Iterable[T], f func(T) R, unit Unit[R, C]) C {
	return unit(func(yield func(R) bool) {
		for x := range src.All() {
			if !yield(f(x)) {
				return
			}
		}
	})
}

// FlatMap replaces every element x of src with the elements of f(x).
func FlatMap[T, R, C any](src Iterable[T], f func(T) iter.Seq[R], unit Unit[R, C]) C {
	return unit(func(yield func(R) bool) {
		for x := range src.All() {
			for y := range f(x) {
				if !yield(y) {
					return
				}
			}
		}
	})
}

// Filter retains the elements of src for which pred holds.
func Filter[T, C any](src Iterable[T], pred func(T) bool, unit Unit[T, C]) C {
	return unit(func(yield func(T) bool) {
		for x := range src.All() {
			if pred(x) && !yield(x) {
				return
			}
		}
	})
}

// FilterNot retains the elements of src for which pred does not hold.
func FilterNot[T, C any](src Iterable[T], pred func(T) bool, unit Unit[T, C]) C {
	return Filter(src, fpcoll.Compose(pred, fpcoll.Not), unit)
}

// Fold reduces src from left to right, starting with zero.
func Fold[T, U any](src Iterable[T], zero U, f func(U, T) U) U {
	acc := zero
	for x := range src.All() {
		acc = f(acc, x)
	}
	return acc
}

// ToSlice collects the elements of src.
func ToSlice[T any](src Iterable[T]) []T {
	var xs []T
	for x := range src.All() {
		xs = append(xs, x)
	}
	return xs
}

// Count returns the number of elements in src.
func Count[T any](src Iterable[T]) int {
	n := 0
	for range src.All() {
		n++
	}
	return n
}

// IsEmpty returns true if src will not produce any element.
func IsEmpty[T any](src Iterable[T]) bool {
	for range src.All() {
		return false
	}
	return true
}
