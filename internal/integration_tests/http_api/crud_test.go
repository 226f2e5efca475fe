package integration_tests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maszz/simple-tree-db/internal/app"
	"github.com/Maszz/simple-tree-db/internal/testutil"
)

func TestHTTPAPI_FullLifecycle(t *testing.T) {
	t.Parallel()
	h := testutil.StartApp(t, &app.Config{})

	// Build a small catalog.
	for _, req := range []map[string]any{
		{"node_id": "o=root,m=cotton", "data": map[string]any{"weave": "percale"}},
		{"node_id": "o=root,m=cotton,c=white", "data": map[string]any{"sku": "CTW-400"}},
		{"node_id": "o=root,m=linen", "data": map[string]any{}},
	} {
		code, body := h.PostJSON(t, "/items", req)
		require.Equal(t, http.StatusCreated, code)
		require.Equal(t, map[string]any{"status": "200", "message": "OK"}, body)
	}

	// Read one node back through a subset query.
	code, body := h.GetJSON(t, testutil.QueryPath("c=white"))
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "c=white", body["node_id"])
	assert.Equal(t, map[string]any{"sku": "CTW-400"}, body["data"])

	// The flat export lists every node, root first, in insertion order.
	code, body = h.GetJSON(t, "/items/")
	require.Equal(t, http.StatusOK, code)
	all, ok := body["all"].([]any)
	require.True(t, ok)
	require.Len(t, all, 4)
	first, ok := all[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "o=root", first["node_id"])

	// The structural export keys children by the level they add and
	// renders leaves as empty lists.
	code, body = h.GetJSON(t, "/items/query_tree")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{
		"m=cotton": map[string]any{"c=white": []any{}},
		"m=linen":  []any{},
	}, body["tree"])

	// Update replaces the payload wholesale.
	code, body = h.PostJSON(t, "/items/update", map[string]any{
		"node_id": "m=cotton",
		"data":    map[string]any{"weave": "sateen"},
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{"status": "200", "message": "OK"}, body)

	code, body = h.GetJSON(t, testutil.QueryPath("m=cotton"))
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{"weave": "sateen"}, body["data"])

	// Delete takes the whole branch with it.
	code, _ = h.PostJSON(t, "/items/delete", map[string]any{"node_id": "m=cotton"})
	require.Equal(t, http.StatusOK, code)

	code, body = h.GetJSON(t, testutil.QueryPath("c=white"))
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Item not found", body["detail"])

	code, body = h.GetJSON(t, "/items/")
	require.Equal(t, http.StatusOK, code)
	all, ok = body["all"].([]any)
	require.True(t, ok)
	assert.Len(t, all, 2)
}

func TestHTTPAPI_OperationalEndpoints(t *testing.T) {
	t.Parallel()
	h := testutil.StartApp(t, &app.Config{})

	code, body := h.GetJSON(t, "/")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, body["message"], "treedb")

	resp, err := http.Get(h.Server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(h.Server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHTTPAPI_RejectsBadInput(t *testing.T) {
	t.Parallel()
	h := testutil.StartApp(t, &app.Config{})

	code, _ := h.PostJSON(t, "/items", map[string]any{"node_id": "o=root,m=a", "data": map[string]any{}})
	require.Equal(t, http.StatusCreated, code)

	// Same identifier again is a duplicate.
	code, body := h.PostJSON(t, "/items", map[string]any{"node_id": "o=root,m=a", "data": map[string]any{}})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body["detail"], "already exists")

	// Inserting under an absent parent fails.
	code, body = h.PostJSON(t, "/items", map[string]any{"node_id": "o=root,m=b,c=blue", "data": map[string]any{}})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body["detail"], "parent node not found")

	// Query text that is not a key=value list is rejected.
	code, body = h.GetJSON(t, testutil.QueryPath("bananas"))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body["detail"], "malformed identifier")
}
