package kv

import (
	"sort"
	"sync"

	"causalkv/internal/version"
)

// Value is one stored version of a key. Dot names the update event
// that produced it, so a later write's dot can be compared against it
// to decide whether this version is obsolete.
type Value struct {
	Data []byte
	Dot  version.Dot
}

// Store is an in-memory key-value store that tracks the causal history
// of every key with a version vector and keeps concurrent writes as
// explicit siblings. It's thread-safe; the causality logic itself is
// pure and the lock only guards the store's own bookkeeping.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	metrics *Metrics
}

// entry holds a key's sibling values and its current version vector.
type entry struct {
	values []Value
	vv     version.VersionVector
}

// NewStore creates a new empty store. Its metrics are collected but
// not registered anywhere; use RegisterMetrics to expose them.
func NewStore() *Store {
	return &Store{
		entries: make(map[string]entry),
		metrics: newMetrics(),
	}
}

// Get retrieves the current sibling values for a key along with the
// key's version vector. The vector is the causal context a client must
// echo back on its next write. A missing key yields no values and the
// empty vector; it is not an error.
func (s *Store) Get(key string) ([]Value, version.VersionVector) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, version.New()
	}
	return copyValues(e.values), e.vv
}

// Set writes a value for a key on behalf of an actor, using the
// context the client observed on its last read:
//
//   - If ctx descends the key's current vector, the client has seen
//     everything the store has: all siblings are replaced by the new
//     value.
//   - Otherwise the contexts are merged, the actor's counter is
//     incremented, and prior siblings whose dot the new dot descends
//     are pruned; the rest are kept as concurrent siblings alongside
//     the new value.
//
// Returns the key's new version vector, which an honest client carries
// into its next write. The only error is counter overflow.
func (s *Store) Set(actor, key string, data []byte, ctx version.VersionVector) (version.VersionVector, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.entries[key]

	if ctx.Descends(e.vv) {
		vv, err := e.vv.Increment(actor)
		if err != nil {
			return version.New(), err
		}
		dot := vv.GetDot(actor)
		s.putEntry(key, entry{
			values: []Value{{Data: copyData(data), Dot: dot}},
			vv:     vv,
		})
		s.metrics.writes.WithLabelValues(outcomeOverwrite).Inc()
		return vv, nil
	}

	frontier, err := e.vv.Merge(ctx).Increment(actor)
	if err != nil {
		return version.New(), err
	}
	dot := frontier.GetDot(actor)

	kept := make([]Value, 0, len(e.values)+1)
	for _, v := range e.values {
		if dot.Descends(v.Dot) {
			s.metrics.siblingsPruned.Inc()
			continue
		}
		kept = append(kept, v)
	}
	kept = append(kept, Value{Data: copyData(data), Dot: dot})

	s.putEntry(key, entry{values: kept, vv: frontier})
	s.metrics.writes.WithLabelValues(outcomeSibling).Inc()
	return frontier, nil
}

// Delete drops a key and its causal history outright. This is a local
// convenience; replicated deletion needs tombstones and belongs to the
// replication layer, not this store.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[key]; ok {
		delete(s.entries, key)
		s.metrics.keys.Set(float64(len(s.entries)))
	}
}

// Apply installs reconciled siblings for a key, replacing whatever the
// store currently holds. Used after merging this store's state with a
// divergent copy via Reconcile.
func (s *Store) Apply(key string, sib Siblings) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.putEntry(key, entry{values: copyValues(sib.Values), vv: sib.Context})
}

// Siblings retrieves a key's state in the form Reconcile consumes.
func (s *Store) Siblings(key string) Siblings {
	values, ctx := s.Get(key)
	return Siblings{Values: values, Context: ctx}
}

// Keys returns the stored keys in sorted order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of stored keys.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// putEntry stores an entry and keeps the key gauge current. Caller
// must hold the write lock.
func (s *Store) putEntry(key string, e entry) {
	s.entries[key] = e
	s.metrics.keys.Set(float64(len(s.entries)))
}

// copyValues returns copies so callers can't reach the store's slices.
func copyValues(values []Value) []Value {
	if values == nil {
		return nil
	}
	out := make([]Value, len(values))
	for i, v := range values {
		out[i] = Value{Data: copyData(v.Data), Dot: v.Dot}
	}
	return out
}

func copyData(data []byte) []byte {
	if data == nil {
		return nil
	}
	return append([]byte(nil), data...)
}
