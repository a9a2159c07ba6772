// Package internal provides the App struct that wires all components of
// lista-tareas together and initializes the CLI layer.
package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/valter-silva-au/lista-tareas/internal/cli"
	"github.com/valter-silva-au/lista-tareas/internal/core"
	"github.com/valter-silva-au/lista-tareas/internal/logging"
	"github.com/valter-silva-au/lista-tareas/internal/observability"
	"github.com/valter-silva-au/lista-tareas/internal/storage"
	"github.com/valter-silva-au/lista-tareas/pkg/models"
)

// configFileNames are the names ResolveBasePath looks for while walking up.
var configFileNames = []string{".listarc.yaml", ".listarc.yml"}

// App holds all service dependencies for lista-tareas.
type App struct {
	BasePath string

	// Configuration
	ConfigMgr core.ConfigurationManager
	Config    *models.Config

	// Core services
	Store   *core.Store
	TaskMgr core.TaskManager

	// Observability
	Logger      *log.Logger
	EventLog    observability.EventLog
	MetricsCalc observability.MetricsCalculator
}

// NewApp creates and wires all components. basePath is the directory searched
// for .listarc.yaml; relative seed_file and event_log paths in the config are
// resolved against it. Flag values in opts override the config file.
func NewApp(basePath string, opts cli.InitOptions) (*App, error) {
	app := &App{BasePath: basePath}

	// --- Configuration ---
	app.ConfigMgr = core.NewConfigurationManager(basePath, opts.ConfigFile)
	cfg, err := app.ConfigMgr.LoadConfig()
	if err != nil {
		return nil, err
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if err := app.ConfigMgr.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	app.Config = cfg

	// --- Logging ---
	logOpts := logging.DefaultOptions()
	logOpts.Level = cfg.LogLevel
	app.Logger, err = logging.New(os.Stderr, logOpts)
	if err != nil {
		return nil, err
	}

	// --- Seed ---
	seedPath := opts.SeedFile
	if seedPath == "" && cfg.SeedFile != "" {
		seedPath = app.resolvePath(cfg.SeedFile)
	}
	entries := core.DefaultSeed()
	if seedPath != "" {
		entries, err = storage.LoadSeedFile(seedPath)
		if err != nil {
			return nil, err
		}
		app.Logger.Debug("loaded seed file", "path", seedPath, "tasks", len(entries))
	}
	tasks, err := core.BuildTasks(entries)
	if err != nil {
		return nil, fmt.Errorf("building tasks: %w", err)
	}

	// --- Observability ---
	if cfg.EventLog != "" {
		eventLogPath := app.resolvePath(cfg.EventLog)
		app.EventLog, err = observability.NewJSONLEventLog(eventLogPath)
		if err != nil {
			// Non-fatal: fall back to an in-memory log for this session.
			app.Logger.Warn("event log unavailable, keeping events in memory", "path", eventLogPath, "err", err)
			app.EventLog = nil
		}
	}
	if app.EventLog == nil {
		app.EventLog = observability.NewMemoryEventLog()
	}
	app.MetricsCalc = observability.NewMetricsCalculator(app.EventLog)

	// --- Core services ---
	app.Store = core.NewStore(tasks)
	app.TaskMgr = core.NewTaskManager(app.Store, observability.NewRecorder(app.EventLog))

	// --- Wire CLI ---
	cli.BasePath = basePath
	cli.TaskMgr = app.TaskMgr
	cli.Labels = cfg.UI
	cli.Logger = app.Logger
	cli.EventLog = app.EventLog
	cli.MetricsCalc = app.MetricsCalc

	return app, nil
}

// Close releases resources held by the App.
func (a *App) Close() error {
	if a.EventLog != nil {
		return a.EventLog.Close()
	}
	return nil
}

func (a *App) resolvePath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(a.BasePath, p)
}

// ResolveBasePath determines the directory lt reads its config from.
// It checks the LT_HOME env var, then walks up from the current directory
// looking for .listarc.yaml, then falls back to the current directory.
func ResolveBasePath() string {
	if home := os.Getenv("LT_HOME"); home != "" {
		return home
	}
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	for {
		for _, name := range configFileNames {
			if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
				return dir
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	cwd, _ := os.Getwd()
	return cwd
}
