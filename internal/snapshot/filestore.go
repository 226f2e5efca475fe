// internal/snapshot/filestore.go
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Maszz/simple-tree-db/internal/node"
)

// FileStore persists whole-tree snapshots to a single file. It
// implements the store's Persister contract: Save rewrites the file
// wholesale, Load reports an absent file as (nil, nil).
type FileStore struct {
	path  string
	codec *Codec
}

// NewFileStore builds a file-backed snapshot target for the given path.
func NewFileStore(path string) (*FileStore, error) {
	codec, err := NewCodec()
	if err != nil {
		return nil, err
	}
	return &FileStore{path: path, codec: codec}, nil
}

// Path returns the target file path.
func (f *FileStore) Path() string {
	return f.path
}

// Save encodes the tree and rewrites the target file. The write is a
// plain synchronous replacement with no atomic rename; a write
// interrupted mid-flight leaves no consistency guarantee.
func (f *FileStore) Save(ctx context.Context, root *node.Node) error {
	data, err := f.codec.Encode(root)
	if err != nil {
		return err
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("snapshot: writing %s: %w", f.path, err)
	}
	return nil
}

// Load reads and decodes the target file. An absent file yields
// (nil, nil) so the caller can tell a fresh target from a read failure.
func (f *FileStore) Load(ctx context.Context) (*node.Node, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("snapshot: reading %s: %w", f.path, err)
	}
	return f.codec.Decode(data)
}
