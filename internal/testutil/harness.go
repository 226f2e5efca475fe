// Package testutil provides the shared harness for integration tests:
// it boots the full application over a temporary snapshot and exposes
// its HTTP API on a test listener.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Maszz/simple-tree-db/internal/app"
	"github.com/Maszz/simple-tree-db/internal/hclconf"
)

// Harness holds a booted application and the test server in front of
// its handler.
type Harness struct {
	App    *app.App
	Server *httptest.Server
	Logs   *app.SafeBuffer
	DBPath string
}

// StartApp boots the application and serves its API over a test
// listener. When the config pins no snapshot path or root identifier,
// the harness supplies a temporary file and "o=root".
func StartApp(t *testing.T, cfg *app.Config) *Harness {
	t.Helper()

	if cfg.Overrides.DBPath == "" {
		cfg.Overrides.DBPath = filepath.Join(t.TempDir(), "tree.db")
	}
	if cfg.Overrides.RootNode == "" {
		cfg.Overrides.RootNode = "o=root"
	}

	testApp, logs := app.SetupAppTest(t, cfg, hclconf.NewLoader())
	srv := httptest.NewServer(testApp.Handler())
	t.Cleanup(srv.Close)

	return &Harness{
		App:    testApp,
		Server: srv,
		Logs:   logs,
		DBPath: cfg.Overrides.DBPath,
	}
}

// PostJSON sends body to path and decodes any JSON response into a
// generic map.
func (h *Harness) PostJSON(t *testing.T, path string, body any) (int, map[string]any) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(h.Server.URL+path, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	defer resp.Body.Close()

	return resp.StatusCode, decodeJSON(t, resp)
}

// GetJSON fetches path and decodes any JSON response into a generic
// map.
func (h *Harness) GetJSON(t *testing.T, path string) (int, map[string]any) {
	t.Helper()

	resp, err := http.Get(h.Server.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	return resp.StatusCode, decodeJSON(t, resp)
}

// QueryPath builds the single-node read path with the node_id parameter
// escaped.
func QueryPath(rawQuery string) string {
	return "/items/?" + url.Values{"node_id": {rawQuery}}.Encode()
}

// WriteHCL drops an HCL file under dir, creating intermediate
// directories, and returns its full path.
func WriteHCL(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func decodeJSON(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	decoded := map[string]any{}
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return decoded
}
