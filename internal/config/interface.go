package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// LoadSettings reads the settings file at path into the
	// format-agnostic model. Only fields present in the file are set;
	// the caller layers the result over its defaults. A missing or
	// malformed file is an error.
	LoadSettings(ctx context.Context, path string) (Settings, error)

	// LoadSeed reads seed node declarations from the given paths (.hcl
	// files, or directories searched recursively) in discovery order.
	// Absent paths yield no declarations.
	LoadSeed(ctx context.Context, paths ...string) ([]SeedNode, error)
}
