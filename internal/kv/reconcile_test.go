package kv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"causalkv/internal/version"
)

// write is a test helper for a write that must succeed.
func write(t *testing.T, s *Store, actor, key string, data []byte, ctx version.VersionVector) version.VersionVector {
	t.Helper()
	next, err := s.Set(actor, key, data, ctx)
	require.NoError(t, err)
	return next
}

func TestReconcile_StaleCopyStaysPruned(t *testing.T) {
	s1 := NewStore()
	s2 := NewStore()

	// Both stores hold the same initial value.
	write(t, s1, "A", "x", []byte("v1"), version.New())
	s2.Apply("x", s1.Siblings("x"))

	// s1 receives a second write that supersedes v1; s2 does not.
	_, ctx := s1.Get("x")
	write(t, s1, "A", "x", []byte("v2"), ctx)

	merged := Reconcile(s1.Siblings("x"), s2.Siblings("x"))

	require.True(t, merged.IsResolved(), "superseded value must not be resurrected")
	assert.Equal(t, []byte("v2"), merged.Values[0].Data)
	assert.True(t, merged.Context.Equal(s1.Siblings("x").Context))
}

func TestReconcile_IndependentWritesKeptAsSiblings(t *testing.T) {
	s1 := NewStore()
	s2 := NewStore()

	// Each store sees a write the other never heard about.
	write(t, s1, "A", "x", []byte("from-a"), version.New())
	write(t, s2, "B", "x", []byte("from-b"), version.New())

	merged := Reconcile(s1.Siblings("x"), s2.Siblings("x"))

	assert.True(t, merged.HasConflict(), "independent writes are concurrent")
	assert.Len(t, merged.Values, 2)
	assert.Equal(t, int64(1), merged.Context.Get("A"))
	assert.Equal(t, int64(1), merged.Context.Get("B"))
}

func TestReconcile_IdenticalCopies(t *testing.T) {
	s1 := NewStore()
	s2 := NewStore()

	write(t, s1, "A", "x", []byte("v1"), version.New())
	s2.Apply("x", s1.Siblings("x"))

	merged := Reconcile(s1.Siblings("x"), s2.Siblings("x"))

	require.True(t, merged.IsResolved(), "identical dots must be deduplicated")
	assert.Equal(t, []byte("v1"), merged.Values[0].Data)
}

func TestReconcile_EmptySides(t *testing.T) {
	s1 := NewStore()
	write(t, s1, "A", "x", []byte("v1"), version.New())

	var empty Siblings
	assert.True(t, empty.IsNotFound())

	merged := Reconcile(s1.Siblings("x"), empty)
	require.True(t, merged.IsResolved(), "a side with no history prunes nothing")
	assert.Equal(t, []byte("v1"), merged.Values[0].Data)

	merged = Reconcile(empty, empty)
	assert.True(t, merged.IsNotFound())
}

func TestReconcile_CommutativeAndConvergent(t *testing.T) {
	s1 := NewStore()
	s2 := NewStore()

	// Divergent histories with an overwrite on one side and a fresh
	// concurrent sibling on the other.
	write(t, s1, "A", "x", []byte("v1"), version.New())
	s2.Apply("x", s1.Siblings("x"))
	_, ctx := s1.Get("x")
	write(t, s1, "A", "x", []byte("v2"), ctx)
	write(t, s2, "B", "x", []byte("v3"), version.New())

	ab := Reconcile(s1.Siblings("x"), s2.Siblings("x"))
	ba := Reconcile(s2.Siblings("x"), s1.Siblings("x"))

	assert.ElementsMatch(t, ab.Values, ba.Values, "reconcile must be commutative")
	assert.True(t, ab.Context.Equal(ba.Context))

	// Reconciling a converged state with either input changes nothing.
	again := Reconcile(ab, s2.Siblings("x"))
	assert.ElementsMatch(t, ab.Values, again.Values, "reconcile must converge")
	assert.True(t, ab.Context.Equal(again.Context))
}

func TestStore_ApplyInstallsReconciledState(t *testing.T) {
	s1 := NewStore()
	s2 := NewStore()

	write(t, s1, "A", "x", []byte("from-a"), version.New())
	write(t, s2, "B", "x", []byte("from-b"), version.New())

	merged := Reconcile(s1.Siblings("x"), s2.Siblings("x"))
	s1.Apply("x", merged)
	s2.Apply("x", merged)

	v1, c1 := s1.Get("x")
	v2, c2 := s2.Get("x")
	assert.ElementsMatch(t, v1, v2)
	assert.True(t, c1.Equal(c2))

	// A client reading either store now carries the full context, so
	// its next write resolves the conflict everywhere it lands.
	write(t, s1, "C", "x", []byte("resolved"), c1)
	values, _ := s1.Get("x")
	require.Len(t, values, 1)
	assert.Equal(t, []byte("resolved"), values[0].Data)
}
