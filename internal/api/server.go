package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Maszz/simple-tree-db/internal/treestore"
)

// Server is the HTTP adapter over a tree store. The store itself
// assumes a single logical writer, so the server serializes mutations
// behind a write lock while reads share a read lock.
type Server struct {
	store   *treestore.Store
	logger  *slog.Logger
	metrics *metrics
	mux     *http.ServeMux

	// mu guards every store access. The store performs no locking of
	// its own.
	mu sync.RWMutex
}

// NewServer wires the routes and metrics around an opened store.
func NewServer(store *treestore.Store, logger *slog.Logger) *Server {
	s := &Server{
		store:   store,
		logger:  logger,
		metrics: newMetrics(),
		mux:     http.NewServeMux(),
	}

	s.mux.HandleFunc("GET /{$}", s.handleGreeting)
	s.mux.HandleFunc("GET /items/query_tree", s.handleQueryTree)
	s.mux.HandleFunc("GET /items/{$}", s.handleRead)
	s.mux.HandleFunc("POST /items", s.handleInsert)
	s.mux.HandleFunc("POST /items/update", s.handleUpdate)
	s.mux.HandleFunc("POST /items/delete", s.handleDelete)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.Handle("GET /metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))

	s.metrics.treeNodes.Set(float64(len(store.AllChildren())))
	return s
}

// Handler returns the root handler carrying all API routes.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// mutate runs op under the write lock and maintains the operation
// counter and the tree size gauge.
func (s *Server) mutate(name string, op func() error) error {
	s.mu.Lock()
	err := op()
	size := -1
	if err == nil {
		size = len(s.store.AllChildren())
	}
	s.mu.Unlock()

	if err != nil {
		s.metrics.operations.WithLabelValues(name, outcomeError).Inc()
		return err
	}
	s.metrics.operations.WithLabelValues(name, outcomeOK).Inc()
	s.metrics.treeNodes.Set(float64(size))
	return nil
}

// writeJSON renders v with the given status. By the time encoding could
// fail the status line is already written, so failures are only logged.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Response encoding failed.", "error", err)
	}
}

// writeDetail renders the error body shared by every failure path.
func (s *Server) writeDetail(w http.ResponseWriter, status int, detail string) {
	s.writeJSON(w, status, detailResponse{Detail: detail})
}
