package pinlist

// MemoryState is the token of spec.md §3: it identifies the current
// physical layout of a list's arena and is stamped into every NodeIdx
// issued against that layout. It advances when a reclaimer physically
// moved a node during the operation that just ran, and when the list is
// cleared; plain growth and non-moving removals never advance it.
type MemoryState uint64

// next returns the state following a reclaim that actually moved at
// least one node.
func (s MemoryState) next() MemoryState { return s + 1 }
