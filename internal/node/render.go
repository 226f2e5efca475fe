// internal/node/render.go
package node

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/Maszz/simple-tree-db/internal/nodeid"
)

// Render writes the subtree as a box-drawing outline, one node per
// line, each labeled with its full identifier.
func (n *Node) Render(w io.Writer) {
	n.render(w, "", true)
}

func (n *Node) render(w io.Writer, indent string, last bool) {
	prefix := "├── "
	if last {
		prefix = "└── "
	}
	fmt.Fprintf(w, "%s%s%s\n", indent, prefix, n.identifier.String())

	if last {
		indent += "    "
	} else {
		indent += "│   "
	}
	for i, child := range n.children {
		child.render(w, indent, i == len(n.children)-1)
	}
}

// RenderCompact writes the same outline but labels each node with only
// the segments it adds over its parent. The root keeps its full
// identifier.
func (n *Node) RenderCompact(w io.Writer) {
	n.renderCompact(w, nil, "", true)
}

func (n *Node) renderCompact(w io.Writer, parent *nodeid.ID, indent string, last bool) {
	label := n.identifier.String()
	if parent != nil {
		label = uniquePart(n.identifier, parent)
	}

	prefix := "├── "
	if last {
		prefix = "└── "
	}
	fmt.Fprintf(w, "%s%s%s\n", indent, prefix, label)

	if last {
		indent += "    "
	} else {
		indent += "│   "
	}
	for i, child := range n.children {
		child.renderCompact(w, n.identifier, indent, i == len(n.children)-1)
	}
}

// uniquePart renders the pairs id carries beyond parent, deduplicated,
// sorted, and comma-joined.
func uniquePart(id, parent *nodeid.ID) string {
	parentParts := make(map[string]struct{}, len(parent.Pairs))
	for _, pair := range parent.Pairs {
		parentParts[pair.String()] = struct{}{}
	}

	unique := make(map[string]struct{})
	for _, pair := range id.Pairs {
		if _, ok := parentParts[pair.String()]; !ok {
			unique[pair.String()] = struct{}{}
		}
	}

	parts := make([]string, 0, len(unique))
	for part := range unique {
		parts = append(parts, part)
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}
