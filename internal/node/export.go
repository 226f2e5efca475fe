// internal/node/export.go
package node

import "github.com/Maszz/simple-tree-db/internal/nodeid"

// Summary is the flat export record of a single node.
type Summary struct {
	UID        string
	Data       map[string]any
	Identifier *nodeid.ID
}

// Summary returns the receiver's flat export record.
func (n *Node) Summary() Summary {
	return Summary{
		UID:        n.uid.String(),
		Data:       n.data,
		Identifier: n.identifier,
	}
}

// AllDescendants flattens the subtree into summary records, the
// receiver first, then each child's subtree in order.
func (n *Node) AllDescendants() []Summary {
	all := []Summary{n.Summary()}
	for _, child := range n.children {
		all = append(all, child.AllDescendants()...)
	}
	return all
}

// Structure exports the shape of the subtree: an inner node renders as
// a map keyed by each child's current-level identifier, a leaf renders
// as an empty slice. The asymmetry is part of the wire contract.
func (n *Node) Structure() any {
	if len(n.children) == 0 {
		return []any{}
	}

	structure := make(map[string]any, len(n.children))
	for _, child := range n.children {
		level, err := child.identifier.CurrentLevel()
		if err != nil {
			// Unreachable: parsed identifiers carry at least one pair.
			continue
		}
		structure[level] = child.Structure()
	}
	return structure
}
