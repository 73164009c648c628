package mutable

import (
	"fmt"
	"iter"
	"strings"
)

// Set is a mutable set. Iteration order is unspecified.
type Set[T comparable] struct {
	m map[T]struct{}
}

// NewSet creates an empty set.
func NewSet[T comparable]() *Set[T] {
	return &Set[T]{m: make(map[T]struct{})}
}

// SetOf creates a set of values.
func SetOf[T comparable](values ...T) *Set[T] {
	s := NewSet[T]()
	s.Add(values...)
	return s
}

// SetFromSeq creates a set from the elements of a sequence.
// It is the unit function of Set for package ops.
func SetFromSeq[T comparable](seq iter.Seq[T]) *Set[T] {
	s := NewSet[T]()
	for x := range seq {
		s.m[x] = struct{}{}
	}
	return s
}

// Len returns the number of elements of s.
func (s *Set[T]) Len() int {
	return len(s.m)
}

// Add puts elements into s.
func (s *Set[T]) Add(x ...T) *Set[T] {
	if s.m == nil {
		s.m = make(map[T]struct{}, len(x))
	}
	for _, e := range x {
		s.m[e] = struct{}{}
	}
	return s
}

// Remove deletes x from s. It reports whether x has been an element of s.
func (s *Set[T]) Remove(x T) bool {
	_, ok := s.m[x]
	delete(s.m, x)
	return ok
}

// Contains checks for membership of x.
func (s *Set[T]) Contains(x T) bool {
	_, ok := s.m[x]
	return ok
}

// All iterates over the elements of s.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for x := range s.m {
			if !yield(x) {
				return
			}
		}
	}
}

func (s *Set[T]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for x := range s.m {
		if !first {
			b.WriteByte(',')
		}
		first = false
		fmt.Fprintf(&b, "%v", x)
	}
	b.WriteByte('}')
	return b.String()
}
