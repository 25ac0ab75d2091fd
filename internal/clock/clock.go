package clock

import (
	"causalkv/internal/counters"
)

// VectorClock is an immutable snapshot of how many events each actor
// has observed. Every mutating operation returns a new clock, so a
// single instance may be shared across goroutines without coordination.
// The zero value is a usable empty clock (all actors implicitly at 0).
type VectorClock struct {
	vector counters.Map
}

// New creates a new empty vector clock.
func New() VectorClock {
	return VectorClock{}
}

// Increment returns a new clock identical to vc except the actor's
// counter is one greater. Fails with counters.ErrCounterOverflow
// instead of wrapping.
func (vc VectorClock) Increment(actor string) (VectorClock, error) {
	next, err := vc.vector.WithIncrement(actor)
	if err != nil {
		return VectorClock{}, err
	}
	return VectorClock{vector: next}, nil
}

// Get returns the counter value for the given actor, or 0 if the
// actor has not been observed.
func (vc VectorClock) Get(actor string) int64 {
	return vc.vector.Get(actor)
}

// CompareResult represents the result of comparing two vector clocks.
type CompareResult int

const (
	// Before indicates this clock happened before the other.
	Before CompareResult = iota
	// After indicates this clock happened after the other.
	After
	// Concurrent indicates the clocks are concurrent (no causal relationship).
	Concurrent
	// Equal indicates the clocks are equal.
	Equal
)

// Compare classifies the relationship between two clocks over the
// union of their actors, with absent actors counted as 0:
//   - Equal: all counters are equal
//   - Before: all counters <=, at least one <
//   - After: all counters >=, at least one >
//   - Concurrent: differences go in both directions
func (vc VectorClock) Compare(other VectorClock) CompareResult {
	var less, greater bool
	for actor := range counters.Union(vc.vector, other.vector) {
		a := vc.vector.Get(actor)
		b := other.vector.Get(actor)
		if a < b {
			less = true
		} else if a > b {
			greater = true
		}
	}

	switch {
	case less && greater:
		return Concurrent
	case less:
		return Before
	case greater:
		return After
	default:
		return Equal
	}
}

// HappenedBefore reports whether vc is a strict causal ancestor of
// other: every counter <= the other's, and at least one strictly
// smaller. Equal clocks do not happen before each other.
func (vc VectorClock) HappenedBefore(other VectorClock) bool {
	return vc.Compare(other) == Before
}

// Concurrent reports whether neither clock happened before the other.
func (vc VectorClock) Concurrent(other VectorClock) bool {
	return vc.Compare(other) == Concurrent
}

// Merge returns a new clock holding the pointwise maximum of the two
// clocks over the union of their actors.
func (vc VectorClock) Merge(other VectorClock) VectorClock {
	return VectorClock{vector: vc.vector.Join(other.vector)}
}

// Equal reports whether the two clocks hold the same counters.
func (vc VectorClock) Equal(other VectorClock) bool {
	return vc.vector.Equal(other.vector)
}

// Size returns the number of actors with a non-zero counter recorded.
func (vc VectorClock) Size() int {
	return len(vc.vector)
}

// String returns a deterministic string representation of the clock.
func (vc VectorClock) String() string {
	return vc.vector.String()
}
