/*
Package fpcoll is a collection of functional-style containers for Go.

Containers come in three flavours:

	persistent/stack    immutable cons-list, sharing suffixes between versions
	persistent/hamt     immutable hash set, sharing untouched sub-tries
	mutable             plain slice- and map-backed collections

All of them expose their elements as an iter.Seq and may be rebuilt from one.
This is all package ops needs to offer the usual combinators (map, filter,
grouped, sliding, scanLeft, …) once for every container kind.
Package lazy wraps any element source into a deferred pipeline which is evaluated
only when a terminal operation asks for results.

This root package holds the pieces shared by all sub-packages: the error
taxonomy, a 2-tuple type and a hook to drain asynchronous publishers.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package fpcoll
