// internal/treestore/errors.go
package treestore

import "errors"

// ErrPersistence flags a snapshot write or read failure. It is kept
// distinct from tree-level errors: a mutation that succeeded in memory
// but failed to persist reports this, never a business error.
var ErrPersistence = errors.New("treestore: persistence failure")
