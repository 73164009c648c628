package stack

import (
	"fmt"
	"strings"
)

// snode is a list cell. Nodes are never modified after construction, as they
// may be shared by any number of stacks.
type snode[T any] struct {
	value T
	next  *snode[T]
	size  int // length of the list starting at this node
}

func cons[T any](x T, rest *snode[T]) *snode[T] {
	return &snode[T]{value: x, next: rest, size: rest.length() + 1}
}

func (n *snode[T]) length() int {
	if n == nil {
		return 0
	}
	return n.size
}

// drop walks i nodes down the chain.
func (n *snode[T]) drop(i int) *snode[T] {
	for ; i > 0; i-- {
		assertThat(n != nil, "attempt to walk past end of list")
		n = n.next
	}
	return n
}

// prefix copies the values of the first i nodes.
func (n *snode[T]) prefix(i int) []T {
	p := make([]T, 0, i)
	for ; i > 0; i-- {
		assertThat(n != nil, "attempt to copy prefix past end of list")
		p = append(p, n.value)
		n = n.next
	}
	return p
}

// rebuild conses prefix in front of suffix, keeping the order of prefix.
func rebuild[T any](prefix []T, suffix *snode[T]) *snode[T] {
	head := suffix
	for i := len(prefix) - 1; i >= 0; i-- {
		head = cons(prefix[i], head)
	}
	return head
}

func (n *snode[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	for c := n; c != nil; c = c.next {
		if c != n {
			b.WriteByte(',')
		}
		b.WriteString(fmt.Sprintf("%v", c.value))
	}
	b.WriteByte(']')
	return b.String()
}
