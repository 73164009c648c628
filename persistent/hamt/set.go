package hamt

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/fpcoll"
	"github.com/npillmayer/fpcoll/maybe"
	"github.com/npillmayer/fpcoll/ops"
)

// Set is an immutable persistent set. An empty instance is usable as an empty set,
// i.e. this is legal:
//
//	s := hamt.Set[string]{}.Add("x")
type Set[T comparable] struct {
	props
	hash  func(T) uint32
	count int
	root  node[T]
}

// Option is a type to help initializing sets at creation time.
type Option struct {
	config func(props) props
}

// BitsPerLevel is an option to set the number of hash bits consumed on every level
// of the trie, and thus the degree 2^n of trie nodes. Accepted values are [1…5];
// default is 5, i.e. a degree of 32.
//
// Use it like this:
//
//	set := hamt.Empty[int](hamt.BitsPerLevel(3))
func BitsPerLevel(n int) Option {
	conf := func(p props) props {
		if n < 1 {
			n = 1
		} else if n > 5 {
			n = 5
		}
		p = props{bits: uint32(n)}
		p.mask = 1<<p.bits - 1
		return p
	}
	return Option{config: conf}
}

// Empty returns an empty set.
func Empty[T comparable](opts ...Option) Set[T] {
	s := Set[T]{}
	for _, option := range opts {
		s.props = option.config(s.props)
	}
	s.props = s.props.init()
	return s
}

// EmptyWithHasher returns an empty set using a custom hash function.
// Sets derived from it will use the same hash function.
func EmptyWithHasher[T comparable](hash func(T) uint32, opts ...Option) Set[T] {
	s := Empty[T](opts...)
	s.hash = hash
	return s
}

// Of creates a set of values.
func Of[T comparable](values ...T) Set[T] {
	return Empty[T]().addAll(ops.Slice[T](values).All())
}

// FromSlice creates a set from the elements of a slice.
// The set does not keep a reference to xs.
func FromSlice[T comparable](xs []T) Set[T] {
	return Of(xs...)
}

// FromSeq creates a set with default options from a sequence.
// FromSeq is a unit operation for package ops.
func FromSeq[T comparable](seq iter.Seq[T]) Set[T] {
	return Empty[T]().addAll(seq)
}

// FromIterable creates a set from the elements of any container.
func FromIterable[T comparable](src ops.Iterable[T]) Set[T] {
	if s, ok := src.(Set[T]); ok {
		return s
	}
	return FromSeq(src.All())
}

// FromPublisher drains an asynchronous publisher and creates a set of all the
// elements it published.
func FromPublisher[T comparable](ctx context.Context, p fpcoll.Publisher[T]) (Set[T], error) {
	xs, err := fpcoll.Drain(ctx, p)
	if err != nil {
		return Empty[T](), err
	}
	return FromSlice(xs), nil
}

// Unit returns a unit operation creating sets with the options of s.
func (s Set[T]) Unit() ops.Unit[T, Set[T]] {
	return func(seq iter.Seq[T]) Set[T] {
		return s.empty().addAll(seq)
	}
}

func (s Set[T]) empty() Set[T] {
	return Set[T]{props: s.props, hash: s.hash}
}

func (s Set[T]) env() env[T] {
	e := env[T]{props: s.props.init(), hash: s.hash}
	if e.hash == nil {
		e.hash = Hash[T]
	}
	return e
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements of s.
func (s Set[T]) Len() int {
	return s.count
}

// IsEmpty returns true if s has no elements.
func (s Set[T]) IsEmpty() bool {
	return s.count == 0
}

// Contains returns true if x is an element of s.
func (s Set[T]) Contains(x T) bool {
	if s.root == nil {
		return false
	}
	e := s.env()
	return s.root.contains(e, 0, e.hash(x), x)
}

// Add returns a set with x included. If x already is an element of s, s is returned.
func (s Set[T]) Add(x T) Set[T] {
	e := s.env()
	root := s.root
	if root == nil {
		root = &bitmapNode[T]{}
	}
	root, added := root.add(e, 0, e.hash(x), x)
	if !added {
		return s
	}
	s.root = root
	s.count++
	return s
}

// Plus is a synonym for Add.
func (s Set[T]) Plus(x T) Set[T] {
	return s.Add(x)
}

// AddAll adds all elements of seq.
func (s Set[T]) AddAll(seq iter.Seq[T]) Set[T] {
	return s.addAll(seq)
}

func (s Set[T]) addAll(seq iter.Seq[T]) Set[T] {
	for x := range seq {
		s = s.Add(x)
	}
	return s
}

// Remove returns a set without x. If x is not an element of s, s is returned.
func (s Set[T]) Remove(x T) Set[T] {
	if s.root == nil {
		return s
	}
	e := s.env()
	root, removed := s.root.remove(e, 0, e.hash(x), x)
	if !removed {
		return s
	}
	s.root = root
	s.count--
	assertThat(s.count > 0 || s.root == nil, "empty set with non-empty trie")
	return s
}

// Minus is a synonym for Remove.
func (s Set[T]) Minus(x T) Set[T] {
	return s.Remove(x)
}

// RemoveAll removes all elements of seq.
func (s Set[T]) RemoveAll(seq iter.Seq[T]) Set[T] {
	for x := range seq {
		s = s.Remove(x)
	}
	return s
}

// RetainAll removes all elements not contained in seq.
func (s Set[T]) RetainAll(seq iter.Seq[T]) Set[T] {
	return s.Intersection(s.empty().addAll(seq))
}

// Union returns a set of all elements of s and of other.
func (s Set[T]) Union(other Set[T]) Set[T] {
	if other.Len() > s.Len() && s.hash == nil && other.hash == nil && s.props == other.props {
		s, other = other, s
	}
	return s.addAll(other.All())
}

// Intersection returns a set of all elements of s which are contained in other.
func (s Set[T]) Intersection(other Set[T]) Set[T] {
	r := s
	for x := range s.All() {
		if !other.Contains(x) {
			r = r.Remove(x)
		}
	}
	return r
}

// Difference returns a set of all elements of s which are not contained in other.
func (s Set[T]) Difference(other Set[T]) Set[T] {
	return s.RemoveAll(other.All())
}

// Any returns an arbitrary element of s. For an empty set an error of kind
// fpcoll.ErrEmptyCollection is returned.
func (s Set[T]) Any() (T, error) {
	for x := range s.All() {
		return x, nil
	}
	var none T
	return none, fpcoll.EmptyCollection("any")
}

// AnyOption returns an arbitrary element of s, if any.
func (s Set[T]) AnyOption() maybe.Maybe[T] {
	x, err := s.Any()
	return maybe.Of(x, err == nil)
}

// Filter returns a set of all elements of s for which pred holds.
func (s Set[T]) Filter(pred func(T) bool) Set[T] {
	return ops.Filter(s, pred, s.Unit())
}

// Equal returns true if s and other hold the same elements.
func (s Set[T]) Equal(other Set[T]) bool {
	if s.count != other.count {
		return false
	}
	if s.root == other.root {
		return true
	}
	for x := range s.All() {
		if !other.Contains(x) {
			return false
		}
	}
	return true
}

// All enumerates the elements of s in unspecified order.
func (s Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s.root != nil {
			s.root.each(yield)
		}
	}
}

// ToSlice returns the elements of s in unspecified order.
func (s Set[T]) ToSlice() []T {
	return ops.ToSlice[T](s)
}

func (s Set[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('{')
	first := true
	for x := range s.All() {
		if !first {
			b.WriteByte(',')
		}
		first = false
		b.WriteString(fmt.Sprintf("%v", x))
	}
	b.WriteByte('}')
	return b.String()
}
