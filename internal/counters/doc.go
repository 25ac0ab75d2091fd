// Package counters provides the actor-to-counter map algebra shared by
// the vector clock and version vector types. An actor absent from a map
// is equivalent to that actor having counter 0, and every operation
// treats the two identically.
package counters
