// internal/node/insert.go
package node

import (
	"fmt"
	"strings"

	"github.com/Maszz/simple-tree-db/internal/nodeid"
)

// ValidNewIdentifier is the shallow sanity check applied before an
// insert: the candidate text must open with the key that roots the
// receiver's own identifier.
func (n *Node) ValidNewIdentifier(rawID string) bool {
	if len(n.identifier.Pairs) == 0 {
		return false
	}
	return strings.HasPrefix(rawID, n.identifier.Pairs[0].Key+"=")
}

// Insert adds a node carrying data under the parent its identifier
// names. The new identifier must extend an existing node's identifier
// by exactly one trailing pair and must not collide with any identifier
// already present in the subtree rooted at the receiver.
func (n *Node) Insert(data map[string]any, rawID string) error {
	if !n.ValidNewIdentifier(rawID) {
		return fmt.Errorf("%w: %q must begin with key %q", ErrInvalidIdentifier, rawID, n.identifier.Pairs[0].Key)
	}

	id, err := nodeid.Parse(rawID)
	if err != nil {
		return err
	}

	// A single-pair identifier leaves no ancestor path to resolve.
	parentID := id.Prefix()
	if len(parentID.Pairs) == 0 {
		return fmt.Errorf("%w: identifier %q names no parent path", ErrParentNotFound, rawID)
	}

	parent := n.search(parentID)
	if parent == nil {
		return fmt.Errorf("%w: no node matches %q", ErrParentNotFound, parentID.String())
	}

	for _, existing := range n.identifiers() {
		if existing.Equal(id) {
			return fmt.Errorf("%w: %q", ErrDuplicateIdentifier, rawID)
		}
	}

	parent.addChild(New(data, id))
	return nil
}

// identifiers collects the identifier of every node in the subtree,
// the receiver first, then each child's subtree in order.
func (n *Node) identifiers() []*nodeid.ID {
	ids := []*nodeid.ID{n.identifier}
	for _, child := range n.children {
		ids = append(ids, child.identifiers()...)
	}
	return ids
}
