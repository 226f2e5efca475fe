// internal/snapshot/doc.go

/*
Package snapshot implements the durable form of the tree: a single
opaque CBOR blob holding the entire node graph, one self-contained
record per node carrying its identity, ordered identifier pairs,
payload, and children.

The blob is rewritten wholesale on every save and carries no schema
version. FileStore binds the codec to a file path and satisfies the
store's Persister contract.
*/
package snapshot
