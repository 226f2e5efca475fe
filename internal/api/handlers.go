package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Maszz/simple-tree-db/internal/node"
	"github.com/Maszz/simple-tree-db/internal/treestore"
)

// handleGreeting answers callers probing the service root.
func (s *Server) handleGreeting(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "treedb: hierarchical key-value tree store"})
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

// handleQueryTree exports the structural shape of the whole tree.
func (s *Server) handleQueryTree(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	tree := s.store.Tree()
	s.mu.RUnlock()

	s.metrics.operations.WithLabelValues("query_tree", outcomeOK).Inc()
	s.writeJSON(w, http.StatusOK, treeResponse{Tree: tree})
}

// handleRead resolves the node_id query to a single node, or exports
// every node when the parameter is absent.
func (s *Server) handleRead(w http.ResponseWriter, r *http.Request) {
	if !r.URL.Query().Has("node_id") {
		s.mu.RLock()
		summaries := s.store.AllChildren()
		s.mu.RUnlock()

		all := make([]nodeResponse, 0, len(summaries))
		for _, sum := range summaries {
			all = append(all, nodeResponse{ID: sum.UID, Data: sum.Data, NodeID: sum.Identifier.String()})
		}
		s.metrics.operations.WithLabelValues("query_all", outcomeOK).Inc()
		s.writeJSON(w, http.StatusOK, allResponse{All: all})
		return
	}

	rawQuery := r.URL.Query().Get("node_id")
	s.mu.RLock()
	found, err := s.store.Query(rawQuery)
	s.mu.RUnlock()

	if err != nil {
		s.metrics.operations.WithLabelValues("query", outcomeError).Inc()
		if errors.Is(err, node.ErrNotFound) {
			s.writeDetail(w, http.StatusNotFound, "Item not found")
			return
		}
		// Anything else is malformed query text.
		s.writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	s.metrics.operations.WithLabelValues("query", outcomeOK).Inc()
	s.writeJSON(w, http.StatusOK, nodeResponse{
		ID:     found.UID().String(),
		Data:   found.Data(),
		NodeID: rawQuery,
	})
}

// handleInsert adds one node under the parent its identifier names.
func (s *Server) handleInsert(w http.ResponseWriter, r *http.Request) {
	var req upsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeDetail(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	err := s.mutate("insert", func() error {
		return s.store.Insert(r.Context(), req.Data, req.NodeID)
	})
	if err != nil {
		s.logger.Warn("Insert rejected.", "node_id", req.NodeID, "error", err)
		s.writeDetail(w, mutationStatus(err), err.Error())
		return
	}

	s.logger.Info("Node inserted.", "node_id", req.NodeID)
	s.writeJSON(w, http.StatusCreated, okStatus)
}

// handleUpdate replaces the payload of the node a query resolves to.
func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req upsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeDetail(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	err := s.mutate("update", func() error {
		return s.store.Update(r.Context(), req.NodeID, req.Data)
	})
	if err != nil {
		s.logger.Warn("Update rejected.", "node_id", req.NodeID, "error", err)
		s.writeDetail(w, mutationStatus(err), err.Error())
		return
	}

	s.logger.Info("Node updated.", "node_id", req.NodeID)
	s.writeJSON(w, http.StatusOK, okStatus)
}

// handleDelete unlinks the node a query resolves to, subtree included.
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	var req deleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeDetail(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	err := s.mutate("delete", func() error {
		return s.store.Delete(r.Context(), req.NodeID)
	})
	if err != nil {
		s.logger.Warn("Delete rejected.", "node_id", req.NodeID, "error", err)
		s.writeDetail(w, mutationStatus(err), err.Error())
		return
	}

	s.logger.Info("Node deleted.", "node_id", req.NodeID)
	s.writeJSON(w, http.StatusOK, okStatus)
}

// mutationStatus maps a mutation error to its HTTP status. Persistence
// failures are server-side and kept distinct from the 400-class
// rejections the tree itself raises.
func mutationStatus(err error) int {
	if errors.Is(err, treestore.ErrPersistence) {
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}
