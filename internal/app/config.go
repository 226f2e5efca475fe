package app

import "github.com/Maszz/simple-tree-db/internal/config"

// Config is the flag-layer configuration an entrypoint hands to NewApp.
type Config struct {
	// SettingsPath optionally points to an HCL settings file.
	SettingsPath string

	// Overrides carries the settings pinned on the command line. Empty
	// fields mean "not set"; non-empty fields win over every other
	// configuration source.
	Overrides config.Settings

	// PrintTree renders the tree as an outline labeled with full
	// identifiers and exits instead of serving.
	PrintTree bool

	// PrintTreeCompact renders the outline labeled with only the
	// segments each node adds over its parent, then exits.
	PrintTreeCompact bool
}
