// internal/node/node.go
package node

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Maszz/simple-tree-db/internal/nodeid"
)

// Node is a single vertex in the tree, holding an arbitrary payload and
// owning its children exclusively.
type Node struct {
	// uid is the process-unique identity of the node, assigned at
	// construction and never changed afterwards.
	uid uuid.UUID
	// identifier is the structured path addressing the node within its
	// tree. Exactly one per node; unique across the tree.
	identifier *nodeid.ID
	// data is the node's payload. Updates replace the map wholesale,
	// there is no per-key merge.
	data map[string]any
	// children are owned exclusively by this node, kept in insertion
	// order. No sorting is ever applied.
	children []*Node
}

// New creates a node with a fresh identity for the given payload and
// parsed identifier.
func New(data map[string]any, identifier *nodeid.ID) *Node {
	if data == nil {
		data = map[string]any{}
	}
	return &Node{
		uid:        uuid.New(),
		identifier: identifier,
		data:       data,
	}
}

// Restore rebuilds a node from previously persisted state, keeping its
// original identity. Used by snapshot decoding only.
func Restore(uid uuid.UUID, data map[string]any, identifier *nodeid.ID, children []*Node) *Node {
	if data == nil {
		data = map[string]any{}
	}
	return &Node{
		uid:        uid,
		identifier: identifier,
		data:       data,
		children:   children,
	}
}

// UID returns the node's process-unique identity.
func (n *Node) UID() uuid.UUID {
	return n.uid
}

// Identifier returns the structured identifier of the node.
func (n *Node) Identifier() *nodeid.ID {
	return n.identifier
}

// Data returns the node's payload.
func (n *Node) Data() map[string]any {
	return n.data
}

// Children returns the node's children in insertion order.
func (n *Node) Children() []*Node {
	return n.children
}

// String implements fmt.Stringer for debug output.
func (n *Node) String() string {
	return fmt.Sprintf("Node(uid=%s, identifier=%s)", n.uid, n.identifier)
}

// addChild appends a child node, preserving insertion order.
func (n *Node) addChild(child *Node) {
	n.children = append(n.children, child)
}

// setData replaces the node's payload wholesale.
func (n *Node) setData(data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	n.data = data
}
