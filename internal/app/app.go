package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"

	"github.com/Maszz/simple-tree-db/internal/api"
	"github.com/Maszz/simple-tree-db/internal/config"
	"github.com/Maszz/simple-tree-db/internal/ctxlog"
	"github.com/Maszz/simple-tree-db/internal/snapshot"
	"github.com/Maszz/simple-tree-db/internal/treestore"
)

// Accepted values for the logging settings.
var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle: the fully resolved settings, the opened store, and the
// HTTP server around it.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	cfg      *Config
	settings config.Settings
	store    *treestore.Store
	server   *api.Server
}

// NewApp is the constructor for the main application. It resolves the
// configuration layers, opens or creates the store, applies the seed
// catalog, and prepares the HTTP server. Fatal startup problems panic;
// the entrypoint recovers them into a clean exit.
func NewApp(outW io.Writer, cfg *Config, loader config.Loader) *App {
	settings, err := resolveSettings(context.Background(), cfg, loader)
	if err != nil {
		// A failure to assemble the configuration is a fatal startup error.
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}

	logger := newLogger(settings.LogLevel, settings.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.", "level", settings.LogLevel, "format", settings.LogFormat)

	target, err := snapshot.NewFileStore(settings.DBPath)
	if err != nil {
		panic(fmt.Errorf("failed to prepare snapshot target %s: %w", settings.DBPath, err))
	}

	store, err := treestore.Open(ctx, target, settings.RootNode)
	if err != nil {
		panic(fmt.Errorf("failed to open store at %s: %w", settings.DBPath, err))
	}
	logger.Info("Store opened.", "db_path", settings.DBPath, "root", store.Root().Identifier().String())

	a := &App{
		outW:     outW,
		logger:   logger,
		cfg:      cfg,
		settings: settings,
		store:    store,
	}

	if settings.SeedPath != "" {
		if err := a.seed(ctx, loader, settings.SeedPath); err != nil {
			panic(fmt.Errorf("failed to apply seed catalog: %w", err))
		}
	}

	// The server samples the tree size for its gauge, so it is wired
	// after seeding.
	a.server = api.NewServer(store, logger)
	return a
}

// resolveSettings assembles the configuration layers, later layers
// winning: built-in defaults, the optional settings file, the
// environment, then CLI flags.
func resolveSettings(ctx context.Context, cfg *Config, loader config.Loader) (config.Settings, error) {
	settings := config.Defaults()

	if cfg.SettingsPath != "" {
		fileLayer, err := loader.LoadSettings(ctx, cfg.SettingsPath)
		if err != nil {
			return config.Settings{}, err
		}
		settings = settings.Merge(fileLayer)
	}

	settings = settings.Merge(config.FromEnv())
	settings = settings.Merge(cfg.Overrides)

	if settings.DBPath == "" {
		return config.Settings{}, fmt.Errorf("db_path is required: set the -db flag, the %s environment variable, or db_path in the settings file", config.EnvDBPath)
	}
	if !slices.Contains(logLevels, settings.LogLevel) {
		return config.Settings{}, fmt.Errorf("invalid log_level %q: must be one of %v", settings.LogLevel, logLevels)
	}
	if !slices.Contains(logFormats, settings.LogFormat) {
		return config.Settings{}, fmt.Errorf("invalid log_format %q: must be one of %v", settings.LogFormat, logFormats)
	}
	return settings, nil
}

// Store returns the opened tree store. This is primarily for testing.
func (a *App) Store() *treestore.Store {
	return a.store
}

// Handler returns the HTTP handler carrying the API routes. This is
// primarily for testing.
func (a *App) Handler() http.Handler {
	return a.server.Handler()
}

// Settings returns the fully resolved configuration.
func (a *App) Settings() config.Settings {
	return a.settings
}
