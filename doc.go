// Package pinlist implements cache-friendly singly- and doubly-linked
// lists over a pinned node arena. Nodes never move once inserted
// except when the configured MemoryPolicy triggers a reclaim, and
// every reclaim is observable through MemoryState: a NodeIdx handle
// issued before a reclaim fails validation afterward rather than
// silently aliasing a different node.
//
// List is the singly-linked variant (front pointer only); DoublyList
// adds back-pointers and the O(1) move/swap/reverse operations that
// require them. Slice and SliceMut are bounded views carved from a
// DoublyList's own Ends; see the arena subpackage for the underlying
// storage and growth policies.
package pinlist
