// Package kv provides a sample in-memory key-value store built on the
// version vector primitives. Each stored value carries the Dot of the
// update that created it; writes either overwrite all siblings (when
// the client's context descends the key's vector) or fork a new
// sibling alongside the concurrent ones, pruning values the new dot
// causally supersedes.
package kv
