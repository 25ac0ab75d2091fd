package kv

import (
	"causalkv/internal/version"
)

// Siblings is a key's full causal state: its sibling values plus the
// version vector covering everything the holder has seen for the key.
// It is the unit two divergent stores exchange when reconciling.
type Siblings struct {
	Values  []Value
	Context version.VersionVector
}

// HasConflict returns true if the key holds multiple concurrent
// versions awaiting resolution by a future write.
func (s Siblings) HasConflict() bool {
	return len(s.Values) > 1
}

// IsResolved returns true if the key holds exactly one version.
func (s Siblings) IsResolved() bool {
	return len(s.Values) == 1
}

// IsNotFound returns true if the key holds no versions at all.
func (s Siblings) IsNotFound() bool {
	return len(s.Values) == 0
}

// Reconcile merges the sibling sets two divergent stores hold for the
// same key. A value from one side survives iff the other side also
// holds its dot, or the other side's context has never seen the event
// that produced it. A value one side saw and then pruned stays pruned;
// values neither side could have known about are kept as siblings.
//
// The result's context is the join of both contexts. Reconcile is
// commutative and converges: reconciling a result with either input
// changes nothing.
func Reconcile(a, b Siblings) Siblings {
	ctx := a.Context.Merge(b.Context)

	merged := make([]Value, 0, len(a.Values)+len(b.Values))
	seen := make(map[version.Dot]struct{})

	keep := func(v Value, other Siblings) {
		if _, ok := seen[v.Dot]; ok {
			return
		}
		if !holdsDot(other, v.Dot) && other.Context.DescendsDot(v.Dot) {
			// The other side saw this event and has since pruned it.
			return
		}
		seen[v.Dot] = struct{}{}
		merged = append(merged, v)
	}

	for _, v := range a.Values {
		keep(v, b)
	}
	for _, v := range b.Values {
		keep(v, a)
	}

	return Siblings{Values: merged, Context: ctx}
}

func holdsDot(s Siblings, d version.Dot) bool {
	for _, v := range s.Values {
		if v.Dot == d {
			return true
		}
	}
	return false
}
