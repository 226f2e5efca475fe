// internal/node/update.go
package node

// Update resolves query text to a node and replaces that node's payload
// with newData. Nothing is mutated when the query resolves to no node.
func (n *Node) Update(rawQuery string, newData map[string]any) error {
	target, err := n.FindByQuery(rawQuery)
	if err != nil {
		return err
	}

	target.setData(newData)
	return nil
}
