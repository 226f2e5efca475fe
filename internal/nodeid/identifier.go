// internal/nodeid/identifier.go
package nodeid

import (
	"reflect"
	"strings"
)

// String serializes the ID into its canonical comma-separated string form.
func (id *ID) String() string {
	if id == nil {
		return ""
	}

	var sb strings.Builder
	for i, pair := range id.Pairs {
		if i > 0 {
			sb.WriteRune(',')
		}
		sb.WriteString(pair.Key)
		sb.WriteRune('=')
		sb.WriteString(pair.Value)
	}

	return sb.String()
}

// Key returns the canonical string form for use as a map key.
func (id *ID) Key() string {
	return id.String()
}

// Equal checks for deep equality between two ID pointers. Equality is
// order-sensitive: the same pairs in a different order are not equal.
func (id *ID) Equal(other *ID) bool {
	if id == nil || other == nil {
		return id == other
	}
	return reflect.DeepEqual(id.Pairs, other.Pairs)
}

// Get returns the value of the first pair carrying the given key,
// regardless of its position in the path.
func (id *ID) Get(key string) (string, bool) {
	if id == nil {
		return "", false
	}
	for _, pair := range id.Pairs {
		if pair.Key == key {
			return pair.Value, true
		}
	}
	return "", false
}

// Matches reports whether id satisfies the query: every pair of the
// query must be present in id (by Get semantics) with an equal value.
// Pairs id carries beyond the query do not affect the result.
func (id *ID) Matches(query *ID) bool {
	if id == nil || query == nil {
		return false
	}
	for _, pair := range query.Pairs {
		value, ok := id.Get(pair.Key)
		if !ok || value != pair.Value {
			return false
		}
	}
	return true
}

// Last returns the trailing pair, the one naming the node relative to
// its parent.
func (id *ID) Last() (Pair, error) {
	if id == nil || len(id.Pairs) == 0 {
		return Pair{}, ErrEmptyIdentifier
	}
	return id.Pairs[len(id.Pairs)-1], nil
}

// CurrentLevel returns the trailing pair rendered as `key=value`.
func (id *ID) CurrentLevel() (string, error) {
	last, err := id.Last()
	if err != nil {
		return "", err
	}
	return last.String(), nil
}

// Prefix returns the ancestor portion of the path: every pair except
// the last. A single-pair identifier yields an empty prefix.
func (id *ID) Prefix() *ID {
	if id == nil || len(id.Pairs) == 0 {
		return &ID{}
	}
	return &ID{Pairs: id.Pairs[:len(id.Pairs)-1]}
}
