// internal/node/delete.go
package node

import (
	"fmt"

	"github.com/Maszz/simple-tree-db/internal/nodeid"
)

// Delete resolves query text to a node, then unlinks exactly that node
// from its parent. The node's entire subtree goes with it.
//
// Resolution uses the same subset semantics as FindByQuery, but the
// unlink step compares full identifiers against the resolved node, so a
// node sharing only a trailing pair with the target in another branch
// is never removed.
func (n *Node) Delete(rawQuery string) error {
	target, err := n.FindByQuery(rawQuery)
	if err != nil {
		return err
	}

	// The receiver has no parent here, so a query resolving to the
	// receiver itself unlinks nothing and reports not found.
	if !n.unlink(target.identifier) {
		return fmt.Errorf("%w: no node matches %q", ErrNotFound, rawQuery)
	}
	return nil
}

// unlink removes the child holding the identifier from its parent,
// walking the subtree pre-order. Reports whether a child was removed.
func (n *Node) unlink(id *nodeid.ID) bool {
	for i, child := range n.children {
		if child.identifier.Equal(id) {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return true
		}
		if child.unlink(id) {
			return true
		}
	}
	return false
}
