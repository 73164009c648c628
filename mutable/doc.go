/*
Package mutable provides a slice-backed list and a map-backed set.

These are ordinary, mutable containers, not safe for concurrent modification.
They implement ops.Iterable and provide a unit function, which makes every
combinator of package ops available to them, e.g.

	l := mutable.ListOf(1, 2, 3)
	evens := ops.Filter(l, isEven, mutable.ListFromSeq[int])

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package mutable

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fpcoll.mutable'.
func tracer() tracing.Trace {
	return tracing.Select("fpcoll.mutable")
}
