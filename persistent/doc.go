/*
Package persistent is the home of immutable, persistent containers.

Persistent containers can be "modified" efficiently, leaving the original unchanged:
every update operation returns a new container value. Copies share most of their
memory (structural sharing), so making a modified copy costs a fraction of a full copy
in terms of space- and time-complexity. As no container value ever changes, all of them
are safe for concurrent use without locking.

Sub-packages:

	stack   a cons list with O(1) prepend and shared suffixes
	hamt    a set on a hash array mapped trie with shared sub-tries

Both implement ops.Iterable and provide a unit function (FromSeq), making all the
combinators of package ops available to them.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package persistent
