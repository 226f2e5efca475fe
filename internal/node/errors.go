// internal/node/errors.go
package node

import "errors"

var (
	// ErrInvalidIdentifier flags a new node identifier that fails the
	// shallow sanity check against the tree root.
	ErrInvalidIdentifier = errors.New("node: invalid new node identifier")

	// ErrParentNotFound flags an insert whose ancestor path resolves to
	// no existing node.
	ErrParentNotFound = errors.New("node: parent node not found")

	// ErrDuplicateIdentifier flags an insert whose identifier is already
	// held by a node anywhere in the tree.
	ErrDuplicateIdentifier = errors.New("node: a node with this identifier already exists")

	// ErrNotFound flags a query that matches no node.
	ErrNotFound = errors.New("node: node not found")
)
