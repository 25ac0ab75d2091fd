// Package version provides an immutable version vector for tracking
// the causal history of updates to a single datum, plus the Dot type
// identifying one specific update event. Where a vector clock orders
// arbitrary events, a version vector answers dominance questions:
// Descends reports whether one history subsumes another, and Merge
// joins divergent histories without losing information.
package version
