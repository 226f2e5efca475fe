// internal/treestore/store.go
package treestore

import (
	"context"
	"fmt"

	"github.com/Maszz/simple-tree-db/internal/node"
	"github.com/Maszz/simple-tree-db/internal/nodeid"
)

// Store owns the tree root and coordinates persistence. Every mutation
// that succeeds in memory is followed by a synchronous whole-tree
// snapshot through the configured Persister before the call returns.
//
// The store itself is not safe for concurrent use. It assumes a single
// logical writer; callers dispatching concurrent requests must
// serialize access themselves.
type Store struct {
	root      *node.Node
	persister Persister
}

// Create builds a fresh store around a single root node and immediately
// persists it.
func Create(ctx context.Context, p Persister, data map[string]any, rawRootID string) (*Store, error) {
	rootID, err := nodeid.Parse(rawRootID)
	if err != nil {
		return nil, err
	}

	s := &Store{
		root:      node.New(data, rootID),
		persister: p,
	}
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Open restores a store from the persister's target. A target that
// already holds a snapshot is loaded as-is and rawRootID is ignored.
// When the target holds no snapshot, a non-empty rawRootID creates and
// persists a fresh root with an empty payload; an empty rawRootID is
// reported as node.ErrNotFound.
func Open(ctx context.Context, p Persister, rawRootID string) (*Store, error) {
	root, err := p.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if root != nil {
		return &Store{root: root, persister: p}, nil
	}

	if rawRootID == "" {
		return nil, fmt.Errorf("%w: target holds no snapshot and no root identifier was given", node.ErrNotFound)
	}
	return Create(ctx, p, map[string]any{}, rawRootID)
}

// Root returns the tree root. Stores are only constructed through
// Create or Open, so a nil root is a programming error and panics.
func (s *Store) Root() *node.Node {
	if s.root == nil {
		panic("treestore: store has no root")
	}
	return s.root
}

// Insert adds a node carrying data under the parent its identifier
// names, then persists the tree. Tree-level failures are returned
// unchanged and skip persistence.
func (s *Store) Insert(ctx context.Context, data map[string]any, rawID string) error {
	if err := s.Root().Insert(data, rawID); err != nil {
		return err
	}
	return s.persist(ctx)
}

// Update replaces the payload of the node the query resolves to, then
// persists the tree.
func (s *Store) Update(ctx context.Context, rawQuery string, newData map[string]any) error {
	if err := s.Root().Update(rawQuery, newData); err != nil {
		return err
	}
	return s.persist(ctx)
}

// Delete unlinks the node the query resolves to, along with its whole
// subtree, then persists the tree.
func (s *Store) Delete(ctx context.Context, rawQuery string) error {
	if err := s.Root().Delete(rawQuery); err != nil {
		return err
	}
	return s.persist(ctx)
}

// Query resolves query text to a node. Read-only, never persists.
func (s *Store) Query(rawQuery string) (*node.Node, error) {
	return s.Root().FindByQuery(rawQuery)
}

// AllChildren flattens the whole tree into summary records, root first.
func (s *Store) AllChildren() []node.Summary {
	return s.Root().AllDescendants()
}

// Tree exports the structural shape of the whole tree.
func (s *Store) Tree() any {
	return s.Root().Structure()
}

// persist rewrites the full tree snapshot. Failures are wrapped as
// ErrPersistence so callers can tell them apart from tree-level errors,
// even when the in-memory mutation already succeeded.
func (s *Store) persist(ctx context.Context) error {
	if err := s.persister.Save(ctx, s.root); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
