package config

import "os"

// Environment variables recognized by FromEnv.
const (
	// EnvDBPath names the snapshot file the store persists to.
	EnvDBPath = "TREEDB_PATH"
	// EnvRootNode names the identifier used to create a fresh root when
	// the snapshot file is absent.
	EnvRootNode = "TREEDB_ROOT_NODE"
)

// Settings is the unified, format-agnostic configuration of the
// application. It is assembled by layering sources with Merge: built-in
// defaults, then the optional settings file, then the environment, then
// CLI flags. An empty field means "not set by this layer".
type Settings struct {
	// DBPath is the snapshot file the tree persists to. Required once
	// all layers are merged.
	DBPath string
	// RootNode optionally names the root identifier used to create a
	// fresh tree when DBPath holds no snapshot yet.
	RootNode string
	// ListenAddr is the HTTP listen address of the API server.
	ListenAddr string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
	// LogFormat is either text or json.
	LogFormat string
	// SeedPath optionally points to an .hcl seed file or a directory of
	// them, applied through the store API before the server starts.
	SeedPath string
}

// Defaults returns the built-in configuration baseline.
func Defaults() Settings {
	return Settings{
		ListenAddr: ":8000",
		LogLevel:   "info",
		LogFormat:  "json",
	}
}

// FromEnv collects the environment layer. Unset and empty variables
// leave their fields unset.
func FromEnv() Settings {
	return Settings{
		DBPath:   os.Getenv(EnvDBPath),
		RootNode: os.Getenv(EnvRootNode),
	}
}

// Merge overlays every non-empty field of layer onto s and returns the
// result. Later layers win.
func (s Settings) Merge(layer Settings) Settings {
	if layer.DBPath != "" {
		s.DBPath = layer.DBPath
	}
	if layer.RootNode != "" {
		s.RootNode = layer.RootNode
	}
	if layer.ListenAddr != "" {
		s.ListenAddr = layer.ListenAddr
	}
	if layer.LogLevel != "" {
		s.LogLevel = layer.LogLevel
	}
	if layer.LogFormat != "" {
		s.LogFormat = layer.LogFormat
	}
	if layer.SeedPath != "" {
		s.SeedPath = layer.SeedPath
	}
	return s
}

// SeedNode is one node declaration from a seed file: the identifier
// text and the payload to insert under it. Declarations apply in file
// order, so parents must precede their children.
type SeedNode struct {
	Identifier string
	Data       map[string]any
}
