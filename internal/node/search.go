// internal/node/search.go
package node

import (
	"fmt"

	"github.com/Maszz/simple-tree-db/internal/nodeid"
)

// FindByQuery resolves query text against the subtree rooted at the
// receiver and returns the first matching node in pre-order: the
// receiver itself first, then each child's subtree left to right.
func (n *Node) FindByQuery(rawQuery string) (*Node, error) {
	query, err := nodeid.Parse(rawQuery)
	if err != nil {
		return nil, err
	}

	found := n.search(query)
	if found == nil {
		return nil, fmt.Errorf("%w: no node matches %q", ErrNotFound, rawQuery)
	}
	return found, nil
}

// search walks the subtree pre-order and returns the first node whose
// identifier satisfies the query, or nil.
func (n *Node) search(query *nodeid.ID) *Node {
	if n.identifier.Matches(query) {
		return n
	}
	for _, child := range n.children {
		if found := child.search(query); found != nil {
			return found
		}
	}
	return nil
}
