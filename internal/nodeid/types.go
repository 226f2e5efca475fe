// internal/nodeid/types.go
package nodeid

// Pair is a single key=value component of an identifier path.
type Pair struct {
	Key   string
	Value string
}

// NewPair creates a new identifier pair.
func NewPair(key, value string) Pair {
	return Pair{Key: key, Value: value}
}

// String renders the pair in its canonical `key=value` form.
func (p Pair) String() string {
	return p.Key + "=" + p.Value
}

// ID is the structured representation of a node identifier.
// It is modeled as an ordered path of key=value pairs; the order is the
// declaration order of the source text. Keys may repeat within one
// identifier, each occurrence kept as a distinct pair.
type ID struct {
	Pairs []Pair
}
