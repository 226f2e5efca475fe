package api

// upsertRequest is the body of POST /items and POST /items/update: the
// identifier text plus the payload to attach.
type upsertRequest struct {
	NodeID string         `json:"node_id"`
	Data   map[string]any `json:"data"`
}

// deleteRequest is the body of POST /items/delete.
type deleteRequest struct {
	NodeID string `json:"node_id"`
}

// statusResponse acknowledges a successful mutation.
type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// okStatus is the acknowledgement body every successful mutation
// returns.
var okStatus = statusResponse{Status: "200", Message: "OK"}

// nodeResponse is a single exported node. On a read by query, node_id
// echoes the query text the caller sent; in the flat export it carries
// the node's canonical identifier.
type nodeResponse struct {
	ID     string         `json:"id"`
	Data   map[string]any `json:"data"`
	NodeID string         `json:"node_id"`
}

// allResponse wraps the flat export of the whole tree.
type allResponse struct {
	All []nodeResponse `json:"all"`
}

// treeResponse wraps the structural export of the whole tree.
type treeResponse struct {
	Tree any `json:"tree"`
}

// detailResponse carries an error message, business or transport alike.
type detailResponse struct {
	Detail string `json:"detail"`
}
