// Package bootstrap wires the store's adapters for the CLI and the MCP server.
package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"

	"sfadsms/internal/adapters/filesystem"
	"sfadsms/internal/adapters/sqlite"
	"sfadsms/internal/application"
	"sfadsms/internal/config"
	"sfadsms/internal/logging"
	"sfadsms/internal/ports"
)

// App holds the wired components for one store root
type App struct {
	Config     *config.Config
	Logger     *slog.Logger
	Prober     *filesystem.Prober
	Index      *filesystem.MetaIndex
	Registry   *filesystem.Manifest
	Store      *filesystem.Repository
	Reconciler *application.Reconciler
	Audit      ports.AuditLog // nil when the audit trail is disabled
	Auditor    *application.Auditor

	lock       *filesystem.StoreLock
	logCleanup func()
}

// Options tweak how the app is opened
type Options struct {
	Root        string // Overrides SFADSMS_ROOT when set
	LogToStderr bool
	SkipLock    bool
}

// Open loads configuration, takes the store lock and wires every component.
// The registry is loaded before Open returns.
func Open(opts Options) (*App, error) {
	cfg, err := config.Load(opts.Root)
	if err != nil {
		return nil, err
	}

	logger, cleanup, err := logging.Setup(logging.Config{
		Level:         cfg.Log.Level,
		FilePath:      cfg.LogPath(),
		MaxSizeMB:     cfg.Log.MaxSizeMB,
		MaxFiles:      cfg.Log.MaxFiles,
		WriteToStderr: cfg.Log.Stderr || opts.LogToStderr,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	app := &App{Config: cfg, Logger: logger, logCleanup: cleanup}

	if !opts.SkipLock {
		app.lock = filesystem.NewStoreLock(cfg.LockPath())
		if err := app.lock.Acquire(); err != nil {
			app.Close()
			return nil, err
		}
	}

	app.Prober = filesystem.NewProber(cfg.DataDir(), logger)
	app.Index = filesystem.NewMetaIndex(cfg.DataDir(), app.Prober, logger)
	app.Registry = filesystem.NewManifest(cfg.ManifestPath(), app.Prober, app.Index, logger)
	app.Registry.Load()
	app.Store = filesystem.NewRepository(cfg.DataDir(), app.Prober, app.Index, app.Registry, logger)
	app.Reconciler = application.NewReconciler(app.Registry, app.Prober, app.Index, logger)

	if cfg.Audit.Enabled {
		audit, err := sqlite.OpenAuditLog(cfg.AuditPath())
		if err != nil {
			logger.Warn("audit trail unavailable", "path", cfg.AuditPath(), "error", err)
		} else {
			app.Audit = audit
		}
	}
	app.Auditor = application.NewAuditor(app.Audit, cfg.User, logger)

	logger.Debug("opened store", "root", cfg.Root, "user", cfg.User)
	return app, nil
}

// Watcher returns a watcher over the data directory using the configured debounce
func (a *App) Watcher() *filesystem.Watcher {
	return filesystem.NewWatcher(a.Config.DataDir(), a.Config.Watch.Debounce, a.Logger)
}

// Close releases the audit database, the store lock and the log file
func (a *App) Close() error {
	var errs []error
	if a.Audit != nil {
		errs = append(errs, a.Audit.Close())
		a.Audit = nil
	}
	if a.Registry != nil {
		a.Registry.Invalidate()
	}
	if a.lock != nil {
		errs = append(errs, a.lock.Release())
	}
	if a.logCleanup != nil {
		a.logCleanup()
		a.logCleanup = nil
	}
	return errors.Join(errs...)
}
