package mutable

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/npillmayer/fpcoll"
)

// List is a mutable list. The zero value is an empty list ready to use.
type List[T any] struct {
	items []T
}

// NewList creates an empty list with room for capacity elements.
func NewList[T any](capacity int) *List[T] {
	return &List[T]{items: make([]T, 0, max(capacity, 0))}
}

// ListOf creates a list of values.
func ListOf[T any](values ...T) *List[T] {
	return &List[T]{items: slices.Clone(values)}
}

// ListFromSeq creates a list from the elements of a sequence.
// It is the unit function of List for package ops.
func ListFromSeq[T any](seq iter.Seq[T]) *List[T] {
	return &List[T]{items: slices.Collect(seq)}
}

// Len returns the number of elements of l.
func (l *List[T]) Len() int {
	return len(l.items)
}

// Add appends elements to l.
func (l *List[T]) Add(x ...T) *List[T] {
	l.items = append(l.items, x...)
	return l
}

// Get returns the element at index i.
func (l *List[T]) Get(i int) (T, error) {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, fpcoll.IndexOutOfRange("get", i, len(l.items))
	}
	return l.items[i], nil
}

// Set replaces the element at index i.
func (l *List[T]) Set(i int, x T) error {
	if i < 0 || i >= len(l.items) {
		return fpcoll.IndexOutOfRange("set", i, len(l.items))
	}
	l.items[i] = x
	return nil
}

// Insert inserts x at index i, 0 ≤ i ≤ l.Len().
func (l *List[T]) Insert(i int, x T) error {
	if i < 0 || i > len(l.items) {
		return fpcoll.IndexOutOfRange("insert", i, len(l.items))
	}
	l.items = slices.Insert(l.items, i, x)
	return nil
}

// RemoveAt removes the element at index i and returns it.
func (l *List[T]) RemoveAt(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(l.items) {
		return zero, fpcoll.IndexOutOfRange("removeAt", i, len(l.items))
	}
	x := l.items[i]
	l.items = slices.Delete(l.items, i, i+1)
	return x, nil
}

// Clear removes all elements.
func (l *List[T]) Clear() {
	tracer().Debugf("clearing list of %d elements", len(l.items))
	clear(l.items)
	l.items = l.items[:0]
}

// All iterates over the elements of l, in order.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range l.items {
			if !yield(x) {
				return
			}
		}
	}
}

// ToSlice returns a copy of the elements of l.
func (l *List[T]) ToSlice() []T {
	return slices.Clone(l.items)
}

func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range l.items {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%v", x)
	}
	b.WriteByte(']')
	return b.String()
}
