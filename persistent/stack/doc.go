/*
Package stack implements an immutable persistent stack, i.e. a singly linked
list growing at the front.

Each “modification” of a stack returns a new stack and leaves the receiver
unchanged. Versions share their common suffix: pushing an element onto a stack
of length n allocates a single node, and removing the element at position i
copies the first i nodes only.

	s := stack.Of(2, 3)
	t := s.Cons(1)          // t = [1 2 3], s is still [2 3]
	u, err := t.RemoveAt(1) // u = [1 3], sharing node 3 with s and t

Immutable stacks are inherently concurrency-safe.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package stack

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fpcoll.stack'.
func tracer() tracing.Trace {
	return tracing.Select("fpcoll.stack")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("persistent.stack: "+msg, msgargs...)
		panic(msg)
	}
}
