// internal/nodeid/parser.go
package nodeid

import (
	"fmt"
	"strings"
)

// Parse creates a new ID by parsing its canonical string representation.
func Parse(rawID string) (*ID, error) {
	if rawID == "" {
		return nil, fmt.Errorf("%w: identifier cannot be empty", ErrParse)
	}

	id := &ID{}
	for _, segmentStr := range strings.Split(rawID, ",") {
		if segmentStr == "" {
			return nil, fmt.Errorf("%w: identifier contains empty segment", ErrParse)
		}

		key, value, found := strings.Cut(segmentStr, "=")
		if !found {
			return nil, fmt.Errorf("%w: segment %q is not a key=value pair", ErrParse, segmentStr)
		}
		if strings.Contains(value, "=") {
			return nil, fmt.Errorf("%w: segment %q contains more than one '='", ErrParse, segmentStr)
		}

		id.Pairs = append(id.Pairs, NewPair(key, value))
	}

	return id, nil
}
