// internal/node/doc.go

/*
Package node implements the tree's hierarchical entity and its
operations: insertion, subset-match search, payload update, unlink
deletion, flat and structural export, and outline rendering.

Every node owns its children exclusively; there are no cross-links and
no cycles. Operations are synchronous, in-memory graph walks with no
internal locking. Callers that share a tree across goroutines must
serialize access themselves.
*/
package node
