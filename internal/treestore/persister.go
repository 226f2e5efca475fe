// internal/treestore/persister.go
package treestore

import (
	"context"

	"github.com/Maszz/simple-tree-db/internal/node"
)

// Persister is the durable target for whole-tree snapshots. The store
// rewrites the complete tree after every successful mutation;
// implementations decide the encoding and the medium.
type Persister interface {
	// Save replaces the target's contents with a snapshot of the tree
	// rooted at root.
	Save(ctx context.Context, root *node.Node) error

	// Load restores the most recently saved tree. A target holding no
	// snapshot yields (nil, nil), so callers can tell a fresh target
	// from a read failure.
	Load(ctx context.Context) (*node.Node, error)
}
