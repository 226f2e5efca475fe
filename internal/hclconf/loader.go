package hclconf

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/Maszz/simple-tree-db/internal/config"
	"github.com/Maszz/simple-tree-db/internal/ctxlog"
	"github.com/Maszz/simple-tree-db/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader
// interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// settingsFile is the top-level schema of a settings file. Unknown
// top-level blocks are tolerated via Remain; unknown attributes inside
// the settings block are rejected by the decoder.
type settingsFile struct {
	Settings *settingsBlock `hcl:"settings,block"`
	Remain   hcl.Body       `hcl:",remain"`
}

// settingsBlock mirrors config.Settings attribute for attribute. Every
// attribute is optional so a file can pin only the fields it cares
// about and leave the rest to the other configuration layers.
type settingsBlock struct {
	DBPath     string `hcl:"db_path,optional"`
	RootNode   string `hcl:"root_node,optional"`
	ListenAddr string `hcl:"listen_addr,optional"`
	LogLevel   string `hcl:"log_level,optional"`
	LogFormat  string `hcl:"log_format,optional"`
	SeedPath   string `hcl:"seed_path,optional"`
}

// LoadSettings reads a single settings file. The file must exist, parse
// cleanly, and contain a settings block.
func (l *Loader) LoadSettings(ctx context.Context, path string) (config.Settings, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading settings file.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return config.Settings{}, fmt.Errorf("failed to parse settings file %s: %w", path, diags)
	}

	var root settingsFile
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return config.Settings{}, fmt.Errorf("failed to decode settings file %s: %w", path, diags)
	}
	if root.Settings == nil {
		return config.Settings{}, fmt.Errorf("settings file %s contains no settings block", path)
	}

	logger.Debug("Settings file loaded.", "path", path)
	return config.Settings{
		DBPath:     root.Settings.DBPath,
		RootNode:   root.Settings.RootNode,
		ListenAddr: root.Settings.ListenAddr,
		LogLevel:   root.Settings.LogLevel,
		LogFormat:  root.Settings.LogFormat,
		SeedPath:   root.Settings.SeedPath,
	}, nil
}

// seedFile is the top-level schema of a seed file.
type seedFile struct {
	Nodes  []*seedBlock `hcl:"node,block"`
	Remain hcl.Body     `hcl:",remain"`
}

// seedBlock is a single node declaration: the identifier as the block
// label and the payload as a data object.
type seedBlock struct {
	Identifier string         `hcl:"identifier,label"`
	Data       hcl.Expression `hcl:"data,optional"`
}

// LoadSeed reads every node declaration found under the given paths, in
// discovery order. Identifier validity is not checked here; the store
// rejects bad identifiers when the declarations are applied.
func (l *Loader) LoadSeed(ctx context.Context, paths ...string) ([]config.SeedNode, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.DiscoverHCL(paths...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered seed files.", "count", len(files))

	parser := hclparse.NewParser()
	var nodes []config.SeedNode

	for _, path := range files {
		file, diags := parser.ParseHCLFile(path)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse seed file %s: %w", path, diags)
		}

		var root seedFile
		if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode seed file %s: %w", path, diags)
		}

		for _, block := range root.Nodes {
			data, err := seedData(block)
			if err != nil {
				return nil, fmt.Errorf("seed file %s, node %q: %w", path, block.Identifier, err)
			}
			nodes = append(nodes, config.SeedNode{Identifier: block.Identifier, Data: data})
		}
		logger.Debug("Seed file loaded.", "path", path, "nodes", len(root.Nodes))
	}

	return nodes, nil
}

// seedData evaluates a node block's data attribute into a payload map.
// The attribute is optional and must be a literal object when present.
func seedData(block *seedBlock) (map[string]any, error) {
	if block.Data == nil {
		return map[string]any{}, nil
	}

	// A nil EvalContext restricts the expression to literals: seed data
	// cannot reference variables or call functions.
	val, diags := block.Data.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("evaluating data: %w", diags)
	}

	native, err := ctyToNative(val)
	if err != nil {
		return nil, fmt.Errorf("converting data: %w", err)
	}
	if native == nil {
		return map[string]any{}, nil
	}

	payload, ok := native.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("data must be an object, got %T", native)
	}
	return payload, nil
}
