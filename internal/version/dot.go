package version

import (
	"fmt"
)

// Dot identifies a single update event: the counter an actor's own
// vector held immediately after it last incremented. Dots are derived
// from a VersionVector via GetDot and cannot be constructed directly,
// so an inconsistent (actor, counter) pair can never enter the system.
type Dot struct {
	actor   string
	counter int64
}

// Actor returns the actor that produced the event.
func (d Dot) Actor() string {
	return d.actor
}

// Counter returns the actor's update counter at the event.
func (d Dot) Counter() int64 {
	return d.counter
}

// Descends reports whether d dominates other when both dots are read
// as singleton version vectors: true iff they name events by the same
// actor and d's counter is >= other's. Events by different actors are
// never dominated by a lone dot.
func (d Dot) Descends(other Dot) bool {
	return d.actor == other.actor && d.counter >= other.counter
}

// DescendsVector reports whether d's counter is >= the vector's
// counter for d's actor, ignoring all other actors. A dot always
// descends the vector that produced it.
func (d Dot) DescendsVector(vv VersionVector) bool {
	return d.counter >= vv.Get(d.actor)
}

// String returns the dot as "actor:counter".
func (d Dot) String() string {
	return fmt.Sprintf("%s:%d", d.actor, d.counter)
}
