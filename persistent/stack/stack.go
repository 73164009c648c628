package stack

import (
	"context"
	"iter"

	"github.com/npillmayer/fpcoll"
	"github.com/npillmayer/fpcoll/maybe"
	"github.com/npillmayer/fpcoll/ops"
)

// Stack is an immutable persistent stack. The zero value is an empty stack,
// ready to use:
//
//	s := stack.Stack[int]{}.Cons(42)
type Stack[T any] struct {
	head *snode[T]
}

// Empty returns an empty stack.
func Empty[T any]() Stack[T] {
	return Stack[T]{}
}

// Singleton returns a stack holding x only.
func Singleton[T any](x T) Stack[T] {
	return Stack[T]{head: cons(x, nil)}
}

// Of creates a stack of values, with values[0] at the top.
func Of[T any](values ...T) Stack[T] {
	return FromSlice(values)
}

// FromSlice creates a stack from a slice, with xs[0] at the top.
// The stack does not keep a reference to xs.
func FromSlice[T any](xs []T) Stack[T] {
	return Stack[T]{head: rebuild(xs, nil)}
}

// FromSeq creates a stack from a sequence, with the first element at the top.
// FromSeq is the unit operation for package ops.
func FromSeq[T any](seq iter.Seq[T]) Stack[T] {
	var xs []T
	for x := range seq {
		xs = append(xs, x)
	}
	return FromSlice(xs)
}

// FromIterable creates a stack from the elements of any container.
func FromIterable[T any](src ops.Iterable[T]) Stack[T] {
	if s, ok := src.(Stack[T]); ok {
		return s
	}
	return FromSeq(src.All())
}

// FromPublisher drains an asynchronous publisher and creates a stack of all the
// elements it published.
func FromPublisher[T any](ctx context.Context, p fpcoll.Publisher[T]) (Stack[T], error) {
	xs, err := fpcoll.Drain(ctx, p)
	if err != nil {
		return Stack[T]{}, err
	}
	return FromSlice(xs), nil
}

// Range creates the stack [start … end-1]. It is empty for end ≤ start.
func Range(start, end int) Stack[int] {
	var head *snode[int]
	for i := end - 1; i >= start; i-- {
		head = cons(i, head)
	}
	return Stack[int]{head: head}
}

// Iterate creates the stack [seed, f(seed), f(f(seed)), …] of length limit.
func Iterate[T any](limit int, seed T, f func(T) T) Stack[T] {
	xs := make([]T, 0, max(limit, 0))
	for x := seed; len(xs) < limit; x = f(x) {
		xs = append(xs, x)
		if len(xs) == limit {
			break
		}
	}
	return FromSlice(xs)
}

// Generate creates a stack of limit elements, each one produced by a call to s.
func Generate[T any](limit int, s func() T) Stack[T] {
	xs := make([]T, 0, max(limit, 0))
	for len(xs) < limit {
		xs = append(xs, s())
	}
	return FromSlice(xs)
}

// Unfold creates a stack by repeatedly calling f, starting with seed. f returns the
// next element plus the seed for the next call, or false to stop.
func Unfold[T, U any](seed U, f func(U) (T, U, bool)) Stack[T] {
	var xs []T
	for {
		x, next, ok := f(seed)
		if !ok {
			break
		}
		xs = append(xs, x)
		seed = next
	}
	return FromSlice(xs)
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements in s. This is an O(1) operation.
func (s Stack[T]) Len() int {
	return s.head.length()
}

// IsEmpty returns true if s has no elements.
func (s Stack[T]) IsEmpty() bool {
	return s.head == nil
}

// Cons returns a new stack with x on top of s.
func (s Stack[T]) Cons(x T) Stack[T] {
	return Stack[T]{head: cons(x, s.head)}
}

// Plus is a synonym for Cons.
func (s Stack[T]) Plus(x T) Stack[T] {
	return s.Cons(x)
}

// PlusAll pushes the elements of seq, one after the other. The last element of
// seq will end up on top.
func (s Stack[T]) PlusAll(seq iter.Seq[T]) Stack[T] {
	head := s.head
	for x := range seq {
		head = cons(x, head)
	}
	return Stack[T]{head: head}
}

// Head returns the top element of s. For an empty stack, an error of kind
// fpcoll.ErrEmptyCollection is returned.
func (s Stack[T]) Head() (T, error) {
	if s.head == nil {
		var none T
		return none, fpcoll.EmptyCollection("head")
	}
	return s.head.value, nil
}

// HeadOr returns the top element of s, or def if s is empty.
func (s Stack[T]) HeadOr(def T) T {
	if s.head == nil {
		return def
	}
	return s.head.value
}

// HeadOption returns the top element of s, if any.
func (s Stack[T]) HeadOption() maybe.Maybe[T] {
	if s.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(s.head.value)
}

// Tail returns s without its top element. The tail shares all of its nodes with s.
func (s Stack[T]) Tail() (Stack[T], error) {
	if s.head == nil {
		return s, fpcoll.EmptyCollection("tail")
	}
	return Stack[T]{head: s.head.next}, nil
}

// At returns the element at position i, counting from the top.
func (s Stack[T]) At(i int) (T, error) {
	if i < 0 || i >= s.Len() {
		var none T
		return none, fpcoll.IndexOutOfRange("at", i, s.Len())
	}
	return s.head.drop(i).value, nil
}

// InsertAt returns a stack with x inserted at position i, 0 ≤ i ≤ s.Len().
// Elements at positions ≥ i are shared with s.
func (s Stack[T]) InsertAt(i int, x T) (Stack[T], error) {
	if i < 0 || i > s.Len() {
		return s, fpcoll.IndexOutOfRange("insertAt", i, s.Len())
	}
	tracer().Debugf("insert at %d, rebuilding %d nodes", i, i)
	suffix := s.head.drop(i)
	return Stack[T]{head: rebuild(s.head.prefix(i), cons(x, suffix))}, nil
}

// RemoveAt returns a stack without the element at position i, 0 ≤ i < s.Len().
// Elements at positions > i are shared with s.
func (s Stack[T]) RemoveAt(i int) (Stack[T], error) {
	if i < 0 || i >= s.Len() {
		return s, fpcoll.IndexOutOfRange("removeAt", i, s.Len())
	}
	tracer().Debugf("remove at %d, rebuilding %d nodes", i, i)
	suffix := s.head.drop(i).next
	return Stack[T]{head: rebuild(s.head.prefix(i), suffix)}, nil
}

// With returns a stack with the element at position i replaced by x.
func (s Stack[T]) With(i int, x T) (Stack[T], error) {
	if i < 0 || i >= s.Len() {
		return s, fpcoll.IndexOutOfRange("with", i, s.Len())
	}
	suffix := s.head.drop(i).next
	return Stack[T]{head: rebuild(s.head.prefix(i), cons(x, suffix))}, nil
}

// SubList returns the elements at positions from … to-1, with 0 ≤ from ≤ to ≤ s.Len().
// If to = s.Len(), the result shares all its nodes with s.
func (s Stack[T]) SubList(from, to int) (Stack[T], error) {
	n := s.Len()
	if from < 0 || from > n {
		return s, fpcoll.IndexOutOfRange("subList", from, n)
	}
	if to < from || to > n {
		return s, fpcoll.IndexOutOfRange("subList", to, n)
	}
	start := s.head.drop(from)
	if to == n {
		return Stack[T]{head: start}, nil
	}
	return Stack[T]{head: rebuild(start.prefix(to-from), nil)}, nil
}

// RemoveFirst returns a stack without the topmost element matching pred.
// If no element matches, s is returned.
func (s Stack[T]) RemoveFirst(pred func(T) bool) Stack[T] {
	i := 0
	for n := s.head; n != nil; n = n.next {
		if pred(n.value) {
			return Stack[T]{head: rebuild(s.head.prefix(i), n.next)}
		}
		i++
	}
	return s
}

// RetainFunc returns a stack of the elements of s for which keep holds. Nodes below
// the deepest dropped element are shared with s. If no element is dropped, s is
// returned.
func (s Stack[T]) RetainFunc(keep func(T) bool) Stack[T] {
	var last *snode[T] // deepest node to drop
	for n := s.head; n != nil; n = n.next {
		if !keep(n.value) {
			last = n
		}
	}
	if last == nil {
		return s
	}
	var kept []T
	for n := s.head; n != last; n = n.next {
		if keep(n.value) {
			kept = append(kept, n.value)
		}
	}
	tracer().Debugf("retain rebuilds %d nodes", len(kept))
	return Stack[T]{head: rebuild(kept, last.next)}
}

// RemoveAll returns s without any of the elements of seq.
func RemoveAll[T comparable](s Stack[T], seq iter.Seq[T]) Stack[T] {
	drop := valueSet(seq)
	if len(drop) == 0 {
		return s
	}
	return s.RetainFunc(func(x T) bool {
		_, found := drop[x]
		return !found
	})
}

// RetainAll returns a stack of the elements of s which are contained in seq.
func RetainAll[T comparable](s Stack[T], seq iter.Seq[T]) Stack[T] {
	keep := valueSet(seq)
	return s.RetainFunc(func(x T) bool {
		_, found := keep[x]
		return found
	})
}

func valueSet[T comparable](seq iter.Seq[T]) map[T]struct{} {
	m := make(map[T]struct{})
	for x := range seq {
		m[x] = struct{}{}
	}
	return m
}

// PlusInOrder puts the elements of seq on top of s, keeping their order: the first
// element of seq ends up on top. Compare PlusAll.
func (s Stack[T]) PlusInOrder(seq iter.Seq[T]) Stack[T] {
	var xs []T
	for x := range seq {
		xs = append(xs, x)
	}
	return Stack[T]{head: rebuild(xs, s.head)}
}

// Reverse returns the elements of s in reverse order. No nodes are shared with s.
func (s Stack[T]) Reverse() Stack[T] {
	var head *snode[T]
	for n := s.head; n != nil; n = n.next {
		head = cons(n.value, head)
	}
	return Stack[T]{head: head}
}

// Concat returns s followed by other. The result shares all nodes of other.
func (s Stack[T]) Concat(other Stack[T]) Stack[T] {
	if other.head == nil {
		return s
	}
	return Stack[T]{head: rebuild(s.head.prefix(s.Len()), other.head)}
}

// All enumerates the elements of s from top to bottom.
func (s Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// ToSlice returns the elements of s from top to bottom.
// An empty stack returns nil.
func (s Stack[T]) ToSlice() []T {
	if s.head == nil {
		return nil
	}
	return s.head.prefix(s.Len())
}

func (s Stack[T]) String() string {
	return s.head.String()
}

// --- Combinators -----------------------------------------------------------

// Filter retains the elements of s for which pred holds.
func (s Stack[T]) Filter(pred func(T) bool) Stack[T] {
	return ops.Filter(s, pred, FromSeq[T])
}

// Combine merges adjacent elements, see ops.Combine.
func (s Stack[T]) Combine(pred func(T, T) bool, op func(T, T) T) Stack[T] {
	return ops.Combine(s, pred, op, FromSeq[T])
}

// Limit returns the top n elements of s. The result does not share nodes with s.
func (s Stack[T]) Limit(n int) (Stack[T], error) {
	return ops.Limit(s, n, FromSeq[T])
}

// Skip drops the top n elements of s. The result shares all its nodes with s.
func (s Stack[T]) Skip(n int) (Stack[T], error) {
	if n < 0 {
		return s, fpcoll.InvalidArgument("skip", "negative count %d", n)
	}
	return Stack[T]{head: s.head.drop(min(n, s.Len()))}, nil
}

// OnEmpty returns s, or a stack of x if s is empty.
func (s Stack[T]) OnEmpty(x T) Stack[T] {
	if s.head == nil {
		return Singleton(x)
	}
	return s
}

// OnEmptyGet returns s, or a stack of supplier() if s is empty.
func (s Stack[T]) OnEmptyGet(supplier func() T) Stack[T] {
	return ops.OnEmptyGet(s, supplier, FromSeq[T])
}

// OnEmptySwitch returns s, or the stack produced by supplier if s is empty.
func (s Stack[T]) OnEmptySwitch(supplier func() Stack[T]) Stack[T] {
	if s.head == nil {
		return supplier()
	}
	return s
}

// --- Equality --------------------------------------------------------------

// Equal returns true if a and b hold equal elements in the same order.
func Equal[T comparable](a, b Stack[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc compares a and b element-wise using eq.
func EqualFunc[T any](a, b Stack[T], eq func(T, T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	m, n := a.head, b.head
	for m != n { // shared suffixes are equal
		if !eq(m.value, n.value) {
			return false
		}
		m, n = m.next, n.next
	}
	return true
}
