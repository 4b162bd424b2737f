package pinlist

// MemoryPolicyKind selects one of the two reclamation strategies of
// spec.md §4.3.
type MemoryPolicyKind int

const (
	// Never means the reclaimer is never invoked automatically;
	// closed slots accumulate until ReclaimClosedNodes is called by
	// hand.
	Never MemoryPolicyKind = iota
	// Threshold means the reclaimer runs right after a removal once
	// utilization drops below 1 - 1/2^D.
	Threshold
)

// MemoryPolicy decides, after a removal, whether the arena's
// reclaimer should run (spec.md §4.3). The zero value is Never; use
// DefaultPolicy for the library's recommended Threshold(2).
type MemoryPolicy struct {
	Kind MemoryPolicyKind
	D    uint
}

// NeverReclaim builds the never-reclaim policy: maximum index
// stability, unbounded closed-slot growth.
func NeverReclaim() MemoryPolicy { return MemoryPolicy{Kind: Never} }

// ThresholdReclaim builds a threshold policy with exponent d: the
// reclaimer runs after a removal whenever closed/total > 1/2^d. d=0
// reclaims eagerly on every removal.
func ThresholdReclaim(d uint) MemoryPolicy { return MemoryPolicy{Kind: Threshold, D: d} }

// DefaultPolicy is Threshold(2): at least 75% node utilization,
// balancing cache locality against reclamation cost (spec.md §9).
func DefaultPolicy() MemoryPolicy { return ThresholdReclaim(2) }

// shouldReclaim implements the predicate of spec.md §4.3:
// closed/total > 1/2^D  <=>  closed << D > total, with D=0 as the eager
// case that triggers on any closed slot.
func (p MemoryPolicy) shouldReclaim(numClosed, numTotal int) bool {
	if p.Kind != Threshold || numTotal == 0 {
		return false
	}
	if p.D == 0 {
		return numClosed > 0
	}
	return numClosed<<p.D > numTotal
}
