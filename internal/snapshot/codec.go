// internal/snapshot/codec.go
package snapshot

import (
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"

	"github.com/Maszz/simple-tree-db/internal/node"
	"github.com/Maszz/simple-tree-db/internal/nodeid"
)

// record is the persisted form of one node: identity, ordered
// identifier pairs, payload, and children, nested recursively. The
// whole tree serializes as a single root record.
type record struct {
	UID      string         `cbor:"1,keyasint"`
	Pairs    []pairRecord   `cbor:"2,keyasint"`
	Data     map[string]any `cbor:"3,keyasint"`
	Children []record       `cbor:"4,keyasint"`
}

type pairRecord struct {
	Key   string `cbor:"1,keyasint"`
	Value string `cbor:"2,keyasint"`
}

// Codec encodes and decodes whole-tree snapshots as CBOR.
type Codec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

// NewCodec builds a codec with deterministic encoding options.
func NewCodec() (*Codec, error) {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, err
	}

	// Nested payload maps must come back as map[string]any so they can
	// cross the JSON boundary unchanged.
	dec, err := cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		return nil, err
	}

	return &Codec{enc: enc, dec: dec}, nil
}

// Encode serializes the tree rooted at root into a single blob.
func (c *Codec) Encode(root *node.Node) ([]byte, error) {
	data, err := c.enc.Marshal(toRecord(root))
	if err != nil {
		return nil, fmt.Errorf("snapshot: encoding tree: %w", err)
	}
	return data, nil
}

// Decode rebuilds the tree from a previously encoded blob.
func (c *Codec) Decode(data []byte) (*node.Node, error) {
	var rec record
	if err := c.dec.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("snapshot: decoding tree: %w", err)
	}
	return fromRecord(rec)
}

func toRecord(n *node.Node) record {
	pairs := make([]pairRecord, 0, len(n.Identifier().Pairs))
	for _, pair := range n.Identifier().Pairs {
		pairs = append(pairs, pairRecord{Key: pair.Key, Value: pair.Value})
	}

	children := make([]record, 0, len(n.Children()))
	for _, child := range n.Children() {
		children = append(children, toRecord(child))
	}

	return record{
		UID:      n.UID().String(),
		Pairs:    pairs,
		Data:     n.Data(),
		Children: children,
	}
}

func fromRecord(rec record) (*node.Node, error) {
	uid, err := uuid.Parse(rec.UID)
	if err != nil {
		return nil, fmt.Errorf("snapshot: node identity %q: %w", rec.UID, err)
	}

	pairs := make([]nodeid.Pair, 0, len(rec.Pairs))
	for _, pair := range rec.Pairs {
		pairs = append(pairs, nodeid.NewPair(pair.Key, pair.Value))
	}

	children := make([]*node.Node, 0, len(rec.Children))
	for _, childRec := range rec.Children {
		child, err := fromRecord(childRec)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	return node.Restore(uid, rec.Data, &nodeid.ID{Pairs: pairs}, children), nil
}
