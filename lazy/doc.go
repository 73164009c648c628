/*
Package lazy implements deferred pipelines over element sources.

A View holds a source plus a chain of pending transformations. Nothing is
evaluated until a terminal operation (ToSlice, Len, At, Fold, Collect, …) asks
for results. Elements are then pushed through the chain one at a time, so a
pipeline

	lazy.Iterate(1, double).Filter(isBig).Limit(5)

pulls from its (infinite) source only as long as it takes to let five
elements pass the filter.

Adding a transformation returns a new view and leaves the receiver untouched;
views share their common prefix of transformations. A view materializes at most
once: its result (or failure) is cached and shared by all copies of the view.
Transformations of a materialized view start from the cached result.

External sources (FromSeq, FromIterable, FromFallible, Generate) are pulled at
most once: their elements are recorded as they arrive and replayed for every
later evaluation, including those of sibling views and of First and At, which do
not cache results. A view thus never reports different elements for the same
position, even if a mutable source changes. Sources built from pure functions
(Iterate, Unfold, Range) and copied slices are simply run again.

A view is not an ops.Iterable. Use Collect to build a container from a view, which
reports evaluation failures instead of creating an empty container.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package lazy

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fpcoll.lazy'.
func tracer() tracing.Trace {
	return tracing.Select("fpcoll.lazy")
}
