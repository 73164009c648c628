/*
Package hamt implements an immutable persistent set as a hash array mapped trie.

Elements are placed into a trie by slices of their hash value, consuming
BitsPerLevel bits on every level. Inner nodes store only the children which are
present, indexed by a bitmap. Elements with identical hash values end up in
the same collision node.

Each “modification” of a set (insertion or removal) creates a copy of the path
from the root to the affected node, sharing all other sub-tries with the
original. Sets are therefore inherently concurrency-safe.

	s := hamt.Of("a", "b")
	t := s.Add("c")      // s is still {a b}
	t.Contains("c")      // true

Iteration order of sets is unspecified. Two equal sets may enumerate their
elements in different order.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package hamt

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fpcoll.hamt'.
func tracer() tracing.Trace {
	return tracing.Select("fpcoll.hamt")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("persistent.hamt: "+msg, msgargs...)
		panic(msg)
	}
}
