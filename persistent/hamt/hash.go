package hamt

import (
	"hash/maphash"
)

var seed = maphash.MakeSeed()

// Hash is the default hash function for elements of sets. It is stable for the
// lifetime of a process only.
func Hash[T comparable](x T) uint32 {
	return fold(maphash.Comparable(seed, x))
}

func fold(u uint64) uint32 {
	return mul33(uint32(u>>32)) + uint32(u&0xffffffff)
}

func mul33(u uint32) uint32 {
	return u<<5 + u
}
