// internal/nodeid/errors.go
package nodeid

import "errors"

var (
	// ErrParse flags identifier text that does not conform to the
	// `k1=v1,k2=v2` format.
	ErrParse = errors.New("nodeid: malformed identifier")

	// ErrEmptyIdentifier flags an operation that needs at least one
	// pair performed on an empty identifier.
	ErrEmptyIdentifier = errors.New("nodeid: empty identifier")
)
