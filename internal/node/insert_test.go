// internal/node/insert_test.go
package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maszz/simple-tree-db/internal/nodeid"
)

func TestValidNewIdentifier(t *testing.T) {
	root := newTestRoot(t, "o=root")

	assert.True(t, root.ValidNewIdentifier("o=root,m=a"))
	assert.True(t, root.ValidNewIdentifier("o=other"))
	assert.False(t, root.ValidNewIdentifier("x=1"))
	assert.False(t, root.ValidNewIdentifier("oo=1"))
	assert.False(t, root.ValidNewIdentifier(""))
}

func TestInsert(t *testing.T) {
	testCases := []struct {
		name        string
		seed        []string
		data        map[string]any
		rawID       string
		expectedErr error
	}{
		{
			name:  "child of the root",
			rawID: "o=root,m=a",
			data:  map[string]any{"k": "v"},
		},
		{
			name:  "deep descendant",
			seed:  []string{"o=root,m=a", "o=root,m=a,c=1"},
			rawID: "o=root,m=a,c=1,s=king",
		},
		{
			name:        "wrong first key",
			rawID:       "x=1,y=2",
			expectedErr: ErrInvalidIdentifier,
		},
		{
			name:        "malformed identifier",
			rawID:       "o=root,m",
			expectedErr: nodeid.ErrParse,
		},
		{
			name:        "single pair names no parent",
			rawID:       "o=other",
			expectedErr: ErrParentNotFound,
		},
		{
			name:        "ancestor path resolves to nothing",
			rawID:       "o=root,m=missing,c=1",
			expectedErr: ErrParentNotFound,
		},
		{
			name:        "duplicate of an existing node",
			seed:        []string{"o=root,m=a"},
			rawID:       "o=root,m=a",
			expectedErr: ErrDuplicateIdentifier,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root := newTestRoot(t, "o=root")
			for _, rawID := range tc.seed {
				mustInsert(t, root, map[string]any{}, rawID)
			}

			err := root.Insert(tc.data, tc.rawID)

			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				return
			}

			require.NoError(t, err)
			found, err := root.FindByQuery(tc.rawID)
			require.NoError(t, err)
			assert.Equal(t, tc.rawID, found.Identifier().String())
			if tc.data != nil {
				assert.Equal(t, tc.data, found.Data())
			}
		})
	}
}

func TestInsert_DuplicateDetectedAtAnyDepth(t *testing.T) {
	root := newTestRoot(t, "o=root")
	mustInsert(t, root, nil, "o=root,m=a")
	mustInsert(t, root, nil, "o=root,m=a,c=1")
	mustInsert(t, root, nil, "o=root,m=a,c=1,s=king")

	err := root.Insert(nil, "o=root,m=a,c=1,s=king")
	require.ErrorIs(t, err, ErrDuplicateIdentifier)

	err = root.Insert(nil, "o=root")
	require.ErrorIs(t, err, ErrParentNotFound, "a single-pair duplicate of the root has no parent path")
}

func TestInsert_ChildrenKeepInsertionOrder(t *testing.T) {
	root := newTestRoot(t, "o=root")
	mustInsert(t, root, nil, "o=root,m=c")
	mustInsert(t, root, nil, "o=root,m=a")
	mustInsert(t, root, nil, "o=root,m=b")

	var got []string
	for _, child := range root.Children() {
		got = append(got, child.Identifier().String())
	}
	assert.Equal(t, []string{"o=root,m=c", "o=root,m=a", "o=root,m=b"}, got)
}

func TestInsert_FailureLeavesTreeUntouched(t *testing.T) {
	root := newTestRoot(t, "o=root")
	mustInsert(t, root, nil, "o=root,m=a")

	before := len(root.AllDescendants())
	require.Error(t, root.Insert(nil, "o=root,m=missing,c=1"))
	assert.Equal(t, before, len(root.AllDescendants()))
}
