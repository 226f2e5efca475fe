package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/Maszz/simple-tree-db/internal/config"
	"github.com/Maszz/simple-tree-db/internal/node"
)

// seed applies the seed catalog through the regular store API.
// Declarations whose identifier is already present are skipped, which
// makes the pass idempotent across restarts. Any other rejection aborts
// startup: a catalog that cannot be applied in full is a broken
// deployment.
func (a *App) seed(ctx context.Context, loader config.Loader, path string) error {
	declarations, err := loader.LoadSeed(ctx, path)
	if err != nil {
		return err
	}
	a.logger.Debug("Seed declarations loaded.", "count", len(declarations), "seed_path", path)

	inserted, skipped := 0, 0
	for _, decl := range declarations {
		err := a.store.Insert(ctx, decl.Data, decl.Identifier)
		switch {
		case err == nil:
			inserted++
		case errors.Is(err, node.ErrDuplicateIdentifier):
			a.logger.Debug("Seed node already present, skipping.", "node_id", decl.Identifier)
			skipped++
		default:
			return fmt.Errorf("inserting %q: %w", decl.Identifier, err)
		}
	}

	a.logger.Info("Seed catalog applied.", "inserted", inserted, "skipped", skipped)
	return nil
}
