// Package app contains the core application logic. It resolves the
// layered configuration, opens the tree store, applies the seed
// catalog, and drives the serving lifecycle, decoupled from any
// specific entrypoint like a CLI.
package app
