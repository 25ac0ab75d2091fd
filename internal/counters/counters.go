package counters

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// ErrCounterOverflow is returned when incrementing a counter that is
// already at the maximum value. Silently wrapping would corrupt the
// dominance algebra, so the increment fails instead.
var ErrCounterOverflow = errors.New("counter overflow")

// Map is a mapping from actor ID to a non-negative event counter.
// A nil Map is a valid empty map for all read operations.
type Map map[string]int64

// New creates a new empty counter map.
func New() Map {
	return make(Map)
}

// Get returns the counter for the given actor, or 0 if not present.
func (m Map) Get(actor string) int64 {
	return m[actor]
}

// Clone creates a deep copy of the map. A nil receiver yields an
// empty, non-nil map.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// WithIncrement returns a new map identical to m except the actor's
// counter is one greater. The receiver is never modified.
func (m Map) WithIncrement(actor string) (Map, error) {
	cur := m.Get(actor)
	if cur == math.MaxInt64 {
		return nil, fmt.Errorf("increment %q: %w", actor, ErrCounterOverflow)
	}
	out := m.Clone()
	out[actor] = cur + 1
	return out, nil
}

// Join returns a new map holding the pointwise maximum of m and other
// over the union of their actors. Join is commutative, associative,
// and idempotent.
func (m Map) Join(other Map) Map {
	out := m.Clone()
	for actor, counter := range other {
		if out[actor] < counter {
			out[actor] = counter
		}
	}
	return out
}

// Equal reports whether the two maps hold the same counters, with
// absent and zero entries treated identically.
func (m Map) Equal(other Map) bool {
	for actor := range Union(m, other) {
		if m.Get(actor) != other.Get(actor) {
			return false
		}
	}
	return true
}

// Union returns the set of actors appearing in any of the given maps.
func Union(maps ...Map) map[string]struct{} {
	actors := make(map[string]struct{})
	for _, m := range maps {
		for actor := range m {
			actors[actor] = struct{}{}
		}
	}
	return actors
}

// String returns a deterministic representation, sorted by actor.
func (m Map) String() string {
	if len(m) == 0 {
		return "{}"
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s:%d", k, m[k]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
