// Package api exposes the tree store over HTTP. It owns the wire
// contract (request and response bodies, status codes), serializes
// access to the single-writer store, and publishes Prometheus metrics
// for the operations it serves.
package api
