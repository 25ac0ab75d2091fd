// Package clock provides an immutable vector clock for tracking
// causality between events in distributed operations. Vector clocks
// maintain per-actor counters that capture happened-before
// relationships; two clocks with no causal relation are concurrent.
package clock
