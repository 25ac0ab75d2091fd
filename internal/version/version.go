package version

import (
	"causalkv/internal/counters"
)

// VersionVector is an immutable record of how many updates each actor
// has made to a datum. Every mutating operation returns a new vector,
// so instances may be shared across goroutines without coordination.
// The zero value is a usable empty vector.
type VersionVector struct {
	vector counters.Map
}

// New creates a new empty version vector.
func New() VersionVector {
	return VersionVector{}
}

// Increment returns a new vector recording one more update by the
// given actor. Fails with counters.ErrCounterOverflow instead of
// wrapping.
func (vv VersionVector) Increment(actor string) (VersionVector, error) {
	next, err := vv.vector.WithIncrement(actor)
	if err != nil {
		return VersionVector{}, err
	}
	return VersionVector{vector: next}, nil
}

// Get returns the update counter for the given actor, or 0 if the
// actor has never updated the datum.
func (vv VersionVector) Get(actor string) int64 {
	return vv.vector.Get(actor)
}

// GetDot returns the Dot naming the actor's most recent update event.
// Called immediately after an Increment, it captures the exact event
// just produced. This is the only way to obtain a Dot.
func (vv VersionVector) GetDot(actor string) Dot {
	return Dot{actor: actor, counter: vv.vector.Get(actor)}
}

// Descends reports whether vv has observed at least everything other
// has observed: for every actor in other, vv's counter is >= (absent
// actors count as 0). Unlike happened-before this is non-strict, so
// every vector descends itself.
func (vv VersionVector) Descends(other VersionVector) bool {
	for actor, counter := range other.vector {
		if vv.vector.Get(actor) < counter {
			return false
		}
	}
	return true
}

// DescendsDot reports whether vv has already seen the event named by
// d: vv's counter for d's actor is >= d's counter.
func (vv VersionVector) DescendsDot(d Dot) bool {
	return vv.vector.Get(d.actor) >= d.counter
}

// Concurrent reports whether neither vector descends the other.
func (vv VersionVector) Concurrent(other VersionVector) bool {
	return !vv.Descends(other) && !other.Descends(vv)
}

// Merge returns a new vector holding the pointwise maximum of the two
// histories over the union of their actors. Merge is commutative,
// associative, and idempotent, so histories from any two replicas can
// be merged in any order, any number of times.
func (vv VersionVector) Merge(other VersionVector) VersionVector {
	return VersionVector{vector: vv.vector.Join(other.vector)}
}

// Equal reports whether the two vectors hold the same counters.
func (vv VersionVector) Equal(other VersionVector) bool {
	return vv.vector.Equal(other.vector)
}

// Size returns the number of actors with a non-zero counter recorded.
func (vv VersionVector) Size() int {
	return len(vv.vector)
}

// String returns a deterministic string representation of the vector.
func (vv VersionVector) String() string {
	return vv.vector.String()
}
