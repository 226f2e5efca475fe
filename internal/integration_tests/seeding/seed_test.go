package integration_tests

import (
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maszz/simple-tree-db/internal/app"
	"github.com/Maszz/simple-tree-db/internal/config"
	"github.com/Maszz/simple-tree-db/internal/hclconf"
	"github.com/Maszz/simple-tree-db/internal/testutil"
)

const catalogHCL = `
node "o=root,m=cotton" {
  data = {
    weave        = "percale"
    thread_count = 400
    organic      = true
  }
}

node "o=root,m=cotton,c=white" {
  data = {
    sku   = "CTW-400"
    price = 49.9
    sizes = ["single", "double", "king"]
  }
}

node "o=root,m=linen" {}
`

func TestSeeding_AppliesCatalogOnBoot(t *testing.T) {
	t.Parallel()
	seedDir := t.TempDir()
	testutil.WriteHCL(t, seedDir, "catalog.hcl", catalogHCL)

	h := testutil.StartApp(t, &app.Config{
		Overrides: config.Settings{SeedPath: seedDir},
	})

	// Seeded payloads cross the HCL and JSON boundaries with numbers as
	// floats and lists as plain arrays.
	code, body := h.GetJSON(t, testutil.QueryPath("c=white"))
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{
		"sku":   "CTW-400",
		"price": 49.9,
		"sizes": []any{"single", "double", "king"},
	}, body["data"])

	code, body = h.GetJSON(t, testutil.QueryPath("m=cotton"))
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{
		"weave":        "percale",
		"thread_count": 400.0,
		"organic":      true,
	}, body["data"])

	// A declaration without data seeds an empty payload.
	code, body = h.GetJSON(t, testutil.QueryPath("m=linen"))
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{}, body["data"])

	assert.Contains(t, h.Logs.String(), "Seed catalog applied.")
}

func TestSeeding_IsIdempotentAcrossRestarts(t *testing.T) {
	t.Parallel()
	seedDir := t.TempDir()
	testutil.WriteHCL(t, seedDir, "catalog.hcl", catalogHCL)
	dbPath := filepath.Join(t.TempDir(), "tree.db")

	first := testutil.StartApp(t, &app.Config{
		Overrides: config.Settings{DBPath: dbPath, SeedPath: seedDir},
	})
	code, body := first.GetJSON(t, "/items/")
	require.Equal(t, http.StatusOK, code)
	all, ok := body["all"].([]any)
	require.True(t, ok)
	require.Len(t, all, 4)
	first.Server.Close()

	// Re-seeding over the existing snapshot adds nothing.
	second := testutil.StartApp(t, &app.Config{
		Overrides: config.Settings{DBPath: dbPath, SeedPath: seedDir},
	})
	code, body = second.GetJSON(t, "/items/")
	require.Equal(t, http.StatusOK, code)
	all, ok = body["all"].([]any)
	require.True(t, ok)
	assert.Len(t, all, 4)
	assert.Contains(t, second.Logs.String(), "skipped=3")
}

func TestSeeding_BadCatalogAbortsStartup(t *testing.T) {
	t.Parallel()
	seedDir := t.TempDir()
	testutil.WriteHCL(t, seedDir, "catalog.hcl", `node "o=root,m=a" { data = "not an object" }`)

	cfg := &app.Config{Overrides: config.Settings{
		DBPath:   filepath.Join(t.TempDir(), "tree.db"),
		RootNode: "o=root",
		SeedPath: seedDir,
		LogLevel: "error",
	}}

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected startup to panic")
	}()
	app.NewApp(&app.SafeBuffer{}, cfg, hclconf.NewLoader())
}
