package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Maszz/simple-tree-db/internal/ctxlog"
)

// shutdownTimeout bounds how long a graceful stop may take.
const shutdownTimeout = 5 * time.Second

// Run executes the application: when a tree rendering was requested it
// prints and returns, otherwise it serves HTTP until ctx is canceled or
// the listener fails.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.cfg.PrintTree || a.cfg.PrintTreeCompact {
		if a.cfg.PrintTree {
			a.store.Root().Render(a.outW)
		}
		if a.cfg.PrintTreeCompact {
			a.store.Root().RenderCompact(a.outW)
		}
		a.logger.Debug("Tree rendering finished, not serving.")
		return nil
	}

	httpServer := &http.Server{
		Addr:    a.settings.ListenAddr,
		Handler: a.server.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("🌳 Tree store serving.", "address", a.settings.ListenAddr)
		// ListenAndServe returns ErrServerClosed on graceful shutdown;
		// only real failures go to the channel.
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	a.logger.Info("🌳 Shutting down...")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("HTTP server shutdown failed.", "error", err)
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
