// Package cli wires the synapse engine for the command line and the deck TUI.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/bnema/synapse/internal/application/usecase"
	"github.com/bnema/synapse/internal/cli/styles"
	"github.com/bnema/synapse/internal/domain/build"
	"github.com/bnema/synapse/internal/domain/entity"
	"github.com/bnema/synapse/internal/domain/repository"
	"github.com/bnema/synapse/internal/infrastructure/config"
	"github.com/bnema/synapse/internal/infrastructure/desktop"
	"github.com/bnema/synapse/internal/infrastructure/env"
	"github.com/bnema/synapse/internal/infrastructure/evdev"
	"github.com/bnema/synapse/internal/infrastructure/filesystem"
	"github.com/bnema/synapse/internal/infrastructure/launcher"
	"github.com/bnema/synapse/internal/infrastructure/persistence/jsonstore"
	"github.com/bnema/synapse/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/synapse/internal/infrastructure/session"
	"github.com/bnema/synapse/internal/infrastructure/xdg"
	"github.com/bnema/synapse/internal/logging"
)

const (
	logMaxSizeMB  = 10
	logMaxBackups = 3
)

// Options are the global flags that shape logging.
type Options struct {
	LogLevel  string
	LogFormat string
	LogFile   bool

	// Quiet keeps logs off stderr, for full-screen commands.
	Quiet bool
}

// App holds CLI dependencies.
type App struct {
	Theme     *styles.Theme
	BuildInfo build.Info
	User      *env.User

	Settings *config.Manager
	Bindings *jsonstore.Store
	Activity repository.ActivityRepository
	Deck     *entity.Deck

	// Use cases
	Controller   *usecase.BindingController
	Dispatcher   *usecase.DispatchActionUseCase
	Runtime      *usecase.DeckRuntime
	SearchAppsUC *usecase.SearchAppsUseCase

	db         *sqlite.LazyDB
	ctx        context.Context
	logCleanup func()
}

// NewApp creates the application with all dependencies. The only fatal
// condition is a persistence directory that cannot be created.
func NewApp(opts Options) (*App, error) {
	logger, logCleanup := newLogger(opts)
	ctx := logging.WithContext(context.Background(), logger)

	if err := config.EnsureDirectories(); err != nil {
		logCleanup()
		return nil, fmt.Errorf("create synapse directories: %w", err)
	}

	paths := xdg.New()
	dataDir, err := paths.DataDir()
	if err != nil {
		logCleanup()
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	scriptsDir, err := paths.ScriptsDir()
	if err != nil {
		logCleanup()
		return nil, fmt.Errorf("resolve scripts dir: %w", err)
	}
	dbFile, err := config.GetDatabaseFile()
	if err != nil {
		logCleanup()
		return nil, fmt.Errorf("resolve database path: %w", err)
	}

	user, err := env.TargetUser()
	if err != nil {
		logCleanup()
		return nil, fmt.Errorf("resolve target user: %w", err)
	}
	elevated := env.Elevated()
	logger.Debug().
		Str("user", user.Name).
		Uint32("uid", user.UID).
		Bool("elevated", elevated).
		Str("data_dir", dataDir).
		Msg("resolved environment")

	settings, err := config.NewDefaultManager()
	if err != nil {
		logCleanup()
		return nil, fmt.Errorf("create settings manager: %w", err)
	}
	if _, err := settings.Load(ctx); err != nil {
		logCleanup()
		return nil, fmt.Errorf("load settings: %w", err)
	}

	store := jsonstore.New(dataDir)
	bindings, actions, err := store.Load(ctx)
	if err != nil {
		logCleanup()
		return nil, fmt.Errorf("load bindings: %w", err)
	}
	deck := entity.NewDeck(entity.DefaultLayout(), bindings, actions)

	db := sqlite.NewLazyDB(dbFile)
	activity := sqlite.NewLazyActivityRepository(db)

	sessions := session.NewFallbackProvider(
		session.NewProcDiscovery(user.UID, user.Home),
		session.Defaults{Home: user.Home, UID: user.UID},
	)
	dispatcher := usecase.NewDispatchActionUseCase(
		ctx,
		sessions,
		launcher.New(user, elevated),
		filesystem.New(scriptsDir),
	)
	controller := usecase.NewBindingController(deck, store, dispatcher, activity)
	runtime := usecase.NewDeckRuntime(evdev.NewListener(evdev.OpenDevice), controller, settings)

	return &App{
		Theme:        styles.NewTheme(),
		User:         user,
		Settings:     settings,
		Bindings:     store,
		Activity:     activity,
		Deck:         deck,
		Controller:   controller,
		Dispatcher:   dispatcher,
		Runtime:      runtime,
		SearchAppsUC: usecase.NewSearchAppsUseCase(desktop.NewDefault(user.Home)),
		db:           db,
		ctx:          ctx,
		logCleanup:   logCleanup,
	}, nil
}

// newLogger builds the process logger. Flags win over SYNAPSE_LOG_* variables.
// With LogFile set, JSON lines also go to the rotating file in the state dir.
func newLogger(opts Options) (zerolog.Logger, func()) {
	level := opts.LogLevel
	if level == "" {
		level = os.Getenv("SYNAPSE_LOG_LEVEL")
	}
	format := opts.LogFormat
	if format == "" {
		format = os.Getenv("SYNAPSE_LOG_FORMAT")
	}

	if !opts.LogFile {
		if opts.Quiet {
			return zerolog.Nop(), func() {}
		}
		return logging.NewFromConfigValues(level, format), func() {}
	}

	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel(level)
	cfg.TimeFormat = "15:04:05"
	if format == "json" {
		cfg.Format = format
	}

	dir, err := config.GetLogDir()
	if err != nil {
		if opts.Quiet {
			return zerolog.Nop(), func() {}
		}
		logger := logging.New(cfg)
		logger.Warn().Err(err).Msg("log dir unavailable, logging to stderr only")
		return logger, func() {}
	}

	logger, cleanup, err := logging.NewWithFile(cfg, logging.FileConfig{
		Enabled:       true,
		Dir:           dir,
		MaxSizeMB:     logMaxSizeMB,
		MaxBackups:    logMaxBackups,
		WriteToStderr: !opts.Quiet,
	})
	if err != nil {
		logger.Warn().Err(err).Str("dir", dir).Msg("log file unavailable, logging to stderr only")
	}
	return logger, cleanup
}

// Close releases all resources.
func (a *App) Close() error {
	var err error
	if a.Runtime != nil {
		err = a.Runtime.Stop()
	}
	if a.db != nil {
		if cerr := a.db.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return err
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// WarmDatabase opens the activity database ahead of the first write.
func (a *App) WarmDatabase(ctx context.Context) error {
	_, err := a.db.DB(ctx)
	return err
}
