/*
Package ops implements combinators for all container kinds of this module.

Every combinator is written exactly once. It relies on two capabilities of a
container: iterating over its elements (Iterable) and constructing a new
container of the same kind from an element sequence (Unit). Containers
export a suitable Unit function, usually called FromSeq:

	s := stack.Of(1, 2, 3, 4, 5)
	evens := ops.Filter(s, isEven, stack.FromSeq[int])
	chunks, err := ops.Grouped(s, 2, stack.FromSeq[[]int])  // [[1 2] [3 4] [5]]

Combinators never modify their source.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package ops

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fpcoll.ops'.
func tracer() tracing.Trace {
	return tracing.Select("fpcoll.ops")
}
