// internal/node/update_test.go
package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdate(t *testing.T) {
	root := newTestRoot(t, "o=root")
	mustInsert(t, root, map[string]any{"color": "white", "size": "king"}, "o=root,m=a")

	err := root.Update("o=root,m=a", map[string]any{"color": "black"})
	require.NoError(t, err)

	found, err := root.FindByQuery("o=root,m=a")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"color": "black"}, found.Data(),
		"update must replace the payload wholesale, not merge")
}

func TestUpdate_NotFound(t *testing.T) {
	root := newTestRoot(t, "o=root")
	mustInsert(t, root, map[string]any{"k": "v"}, "o=root,m=a")

	err := root.Update("o=root,m=z", map[string]any{"k": "other"})
	require.ErrorIs(t, err, ErrNotFound)

	found, err := root.FindByQuery("o=root,m=a")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"k": "v"}, found.Data(), "a failed update must not mutate anything")
}

func TestUpdate_NilDataBecomesEmptyMap(t *testing.T) {
	root := newTestRoot(t, "o=root")
	mustInsert(t, root, map[string]any{"k": "v"}, "o=root,m=a")

	require.NoError(t, root.Update("o=root,m=a", nil))

	found, err := root.FindByQuery("o=root,m=a")
	require.NoError(t, err)
	require.NotNil(t, found.Data())
	assert.Empty(t, found.Data())
}

func TestUpdate_PartialQueryHitsFirstMatch(t *testing.T) {
	root := newTestRoot(t, "o=root")
	mustInsert(t, root, map[string]any{"n": 1}, "o=root,m=a")
	mustInsert(t, root, map[string]any{"n": 2}, "o=root,m=a,c=1")

	require.NoError(t, root.Update("m=a", map[string]any{"n": 3}))

	parent, err := root.FindByQuery("o=root,m=a")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"n": 3}, parent.Data())

	child, err := root.FindByQuery("o=root,m=a,c=1")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"n": 2}, child.Data())
}
