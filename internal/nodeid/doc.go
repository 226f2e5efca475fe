// internal/nodeid/doc.go

/*
Package nodeid provides a structured, type-safe representation for node
identifiers within the tree, based on the canonical format
`k1=v1,k2=v2,...`.

An identifier is an ordered, comma-separated sequence of key=value
pairs describing the path from the tree root down to a node; the last
pair names the node itself relative to its parent.

This package enforces the identifier schema and centralizes all
parsing, formatting, and matching logic.
*/
package nodeid
