package hamt

import (
	"fmt"
	"math/bits"
	"strings"
)

const (
	defaultBits uint32 = 5 // will produce nodes with degree  2 ^ 5 = 32
	hashBits    uint32 = 32
)

type props struct {
	bits uint32 // number of hash bits to use per level
	mask uint32 // mask is 2^bits - 1, i.e. a bit pattern with trailing 1s of length 'bits'
}

func (p props) init() props {
	if p.bits == 0 {
		return props{bits: defaultBits, mask: 1<<defaultBits - 1}
	}
	return p
}

func (p props) chunk(shift, hash uint32) uint32 {
	return (hash >> shift) & p.mask
}

func (p props) bitpos(shift, hash uint32) uint32 {
	return 1 << p.chunk(shift, hash)
}

func index(bitmap, bit uint32) int {
	return bits.OnesCount32(bitmap & (bit - 1))
}

// env is the environment trie operations run in.
type env[T comparable] struct {
	props
	hash func(T) uint32
}

// node is an interface for all nodes of a trie. Nodes are never modified after
// construction. An empty (sub-)trie is represented by nil.
type node[T comparable] interface {
	// add inserts x. It returns the new node and whether x has not been present
	// before. If x is already present, the receiver is returned.
	add(e env[T], shift, hash uint32, x T) (node[T], bool)
	// remove deletes x. It returns the new node and whether x has been present
	// before. If x has not been present, the receiver is returned.
	remove(e env[T], shift, hash uint32, x T) (node[T], bool)
	contains(e env[T], shift, hash uint32, x T) bool
	// each calls yield for every element until yield returns false.
	each(yield func(T) bool) bool
	// single returns the only element of a node without sub-tries.
	single() (T, bool)
}

// --- Bitmap nodes ----------------------------------------------------------

// entry is either an element (sub == nil) or a link to a sub-trie.
type entry[T comparable] struct {
	value T
	sub   node[T]
}

// bitmapNode stores present children only. Bit i of bitmap is set if there is an
// entry for chunk value i; its position in entries is the number of lower bits set.
type bitmapNode[T comparable] struct {
	bitmap  uint32
	entries []entry[T]
}

func (n *bitmapNode[T]) withEntry(bit uint32, idx int, en entry[T]) *bitmapNode[T] {
	entries := make([]entry[T], len(n.entries)+1)
	copy(entries[:idx], n.entries[:idx])
	entries[idx] = en
	copy(entries[idx+1:], n.entries[idx:])
	return &bitmapNode[T]{n.bitmap | bit, entries}
}

func (n *bitmapNode[T]) withReplacedEntry(idx int, en entry[T]) *bitmapNode[T] {
	entries := append([]entry[T](nil), n.entries...)
	entries[idx] = en
	return &bitmapNode[T]{n.bitmap, entries}
}

func (n *bitmapNode[T]) withoutEntry(bit uint32, idx int) node[T] {
	if len(n.entries) == 1 {
		return nil
	}
	entries := make([]entry[T], len(n.entries)-1)
	copy(entries[:idx], n.entries[:idx])
	copy(entries[idx:], n.entries[idx+1:])
	return &bitmapNode[T]{n.bitmap ^ bit, entries}
}

func (n *bitmapNode[T]) add(e env[T], shift, hash uint32, x T) (node[T], bool) {
	bit := e.bitpos(shift, hash)
	idx := index(n.bitmap, bit)
	if n.bitmap&bit == 0 {
		return n.withEntry(bit, idx, entry[T]{value: x}), true
	}
	en := n.entries[idx]
	if en.sub != nil {
		sub, added := en.sub.add(e, shift+e.bits, hash, x)
		if !added {
			return n, false
		}
		return n.withReplacedEntry(idx, entry[T]{sub: sub}), true
	}
	if en.value == x {
		return n, false
	}
	tracer().Debugf("splitting slot %d at shift %d for %v and %v", idx, shift, en.value, x)
	sub := createNode(e, shift+e.bits, en.value, e.hash(en.value), x, hash)
	return n.withReplacedEntry(idx, entry[T]{sub: sub}), true
}

func (n *bitmapNode[T]) remove(e env[T], shift, hash uint32, x T) (node[T], bool) {
	bit := e.bitpos(shift, hash)
	if n.bitmap&bit == 0 {
		return n, false
	}
	idx := index(n.bitmap, bit)
	en := n.entries[idx]
	if en.sub == nil {
		if en.value != x {
			return n, false
		}
		return n.withoutEntry(bit, idx), true
	}
	sub, removed := en.sub.remove(e, shift+e.bits, hash, x)
	if !removed {
		return n, false
	}
	if sub == nil { // sub-trie vanished
		return n.withoutEntry(bit, idx), true
	}
	if v, ok := sub.single(); ok { // pull up sole remaining element
		tracer().Debugf("collapsing sub-trie at shift %d into %v", shift, v)
		return n.withReplacedEntry(idx, entry[T]{value: v}), true
	}
	return n.withReplacedEntry(idx, entry[T]{sub: sub}), true
}

func (n *bitmapNode[T]) contains(e env[T], shift, hash uint32, x T) bool {
	bit := e.bitpos(shift, hash)
	if n.bitmap&bit == 0 {
		return false
	}
	en := n.entries[index(n.bitmap, bit)]
	if en.sub != nil {
		return en.sub.contains(e, shift+e.bits, hash, x)
	}
	return en.value == x
}

func (n *bitmapNode[T]) each(yield func(T) bool) bool {
	for _, en := range n.entries {
		if en.sub != nil {
			if !en.sub.each(yield) {
				return false
			}
		} else if !yield(en.value) {
			return false
		}
	}
	return true
}

func (n *bitmapNode[T]) single() (T, bool) {
	if len(n.entries) == 1 && n.entries[0].sub == nil {
		return n.entries[0].value, true
	}
	var none T
	return none, false
}

func (n *bitmapNode[T]) String() string {
	b := strings.Builder{}
	b.WriteString(fmt.Sprintf("%b[", n.bitmap))
	for i, en := range n.entries {
		if i > 0 {
			b.WriteByte(',')
		}
		if en.sub != nil {
			b.WriteString("▪︎")
		} else {
			b.WriteString(fmt.Sprintf("%v", en.value))
		}
	}
	b.WriteByte(']')
	return b.String()
}

// createNode creates a sub-trie for two distinct elements x1 and x2.
func createNode[T comparable](e env[T], shift uint32, x1 T, h1 uint32, x2 T, h2 uint32) node[T] {
	if h1 == h2 {
		return &collisionNode[T]{hash: h1, values: []T{x1, x2}}
	}
	assertThat(shift < hashBits, "distinct hashes %x and %x not separated by trie", h1, h2)
	var n node[T] = &bitmapNode[T]{}
	n, _ = n.add(e, shift, h1, x1)
	n, _ = n.add(e, shift, h2, x2)
	return n
}

// --- Collision nodes -------------------------------------------------------

// collisionNode holds elements with identical hash values.
type collisionNode[T comparable] struct {
	hash   uint32
	values []T
}

func (n *collisionNode[T]) find(x T) int {
	for i, v := range n.values {
		if v == x {
			return i
		}
	}
	return -1
}

func (n *collisionNode[T]) add(e env[T], shift, hash uint32, x T) (node[T], bool) {
	if hash == n.hash {
		if n.find(x) >= 0 {
			return n, false
		}
		values := make([]T, len(n.values)+1)
		copy(values, n.values)
		values[len(n.values)] = x
		return &collisionNode[T]{n.hash, values}, true
	}
	// wrap in a bitmap node and add x to the wrapper
	wrap := &bitmapNode[T]{e.bitpos(shift, n.hash), []entry[T]{{sub: n}}}
	return wrap.add(e, shift, hash, x)
}

func (n *collisionNode[T]) remove(e env[T], shift, hash uint32, x T) (node[T], bool) {
	if hash != n.hash {
		return n, false
	}
	i := n.find(x)
	if i < 0 {
		return n, false
	}
	if len(n.values) == 1 {
		return nil, true
	}
	values := make([]T, 0, len(n.values)-1)
	values = append(values, n.values[:i]...)
	values = append(values, n.values[i+1:]...)
	return &collisionNode[T]{n.hash, values}, true
}

func (n *collisionNode[T]) contains(e env[T], shift, hash uint32, x T) bool {
	return hash == n.hash && n.find(x) >= 0
}

func (n *collisionNode[T]) each(yield func(T) bool) bool {
	for _, v := range n.values {
		if !yield(v) {
			return false
		}
	}
	return true
}

func (n *collisionNode[T]) single() (T, bool) {
	if len(n.values) == 1 {
		return n.values[0], true
	}
	var none T
	return none, false
}

func (n *collisionNode[T]) String() string {
	return fmt.Sprintf("#%x%v", n.hash, n.values)
}
