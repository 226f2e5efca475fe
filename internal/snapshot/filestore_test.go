// internal/snapshot/filestore_test.go
package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.db")
	fs, err := NewFileStore(path)
	require.NoError(t, err)
	ctx := context.Background()

	original := buildTestTree(t)
	require.NoError(t, fs.Save(ctx, original))
	require.FileExists(t, path)

	restored, err := fs.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, collectUIDs(original), collectUIDs(restored))
}

func TestFileStore_LoadAbsentFile(t *testing.T) {
	fs, err := NewFileStore(filepath.Join(t.TempDir(), "missing.db"))
	require.NoError(t, err)

	root, err := fs.Load(context.Background())
	require.NoError(t, err, "an absent file is a fresh target, not a failure")
	assert.Nil(t, root)
}

func TestFileStore_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.db")
	require.NoError(t, os.WriteFile(path, []byte("scrambled bytes"), 0o644))

	fs, err := NewFileStore(path)
	require.NoError(t, err)

	_, err = fs.Load(context.Background())
	require.Error(t, err)
}

func TestFileStore_SaveToUnwritablePath(t *testing.T) {
	fs, err := NewFileStore(filepath.Join(t.TempDir(), "no", "such", "dir", "tree.db"))
	require.NoError(t, err)

	err = fs.Save(context.Background(), buildTestTree(t))
	require.Error(t, err)
}

func TestFileStore_SaveRewritesWholesale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.db")
	fs, err := NewFileStore(path)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, fs.Save(ctx, buildTestTree(t)))

	// A second save with a smaller tree must fully replace the first.
	small := buildSingleNodeTree(t)
	require.NoError(t, fs.Save(ctx, small))

	restored, err := fs.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, restored.AllDescendants(), 1)
	assert.Equal(t, small.UID(), restored.UID())
}
