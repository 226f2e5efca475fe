// internal/treestore/doc.go

/*
Package treestore implements the owning store around the node tree: it
holds the root, delegates tree operations to it, and rewrites the full
snapshot through a Persister after every successful mutation.

# Persistence contract

The snapshot is a single opaque blob covering the entire node graph. It
is rewritten wholesale on each mutation; there is no incremental log,
no atomic rename, and no crash-consistency guarantee for a write
interrupted mid-flight. Reads never touch the persister.

A persistence failure after a successful in-memory mutation surfaces as
ErrPersistence. It is never folded into the business errors of the tree
operation that preceded it, so callers can treat it as a separate
fatal or retryable condition.

# Concurrency

One store instance operates on one persistence target at a time, with a
single logical writer. The store performs no locking of its own.
*/
package treestore
