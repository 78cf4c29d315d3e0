// Package app wires configuration, storage, services and transport into a
// runnable prompt library.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/graymanconcepts/prompt-manager/internal/adapter/sqlite"
	"github.com/graymanconcepts/prompt-manager/internal/adapter/sqlite/history"
	"github.com/graymanconcepts/prompt-manager/internal/adapter/sqlite/prompt"
	"github.com/graymanconcepts/prompt-manager/internal/app/seeder"
	"github.com/graymanconcepts/prompt-manager/internal/config"
	"github.com/graymanconcepts/prompt-manager/internal/domain"
	"github.com/graymanconcepts/prompt-manager/internal/importer"
	"github.com/graymanconcepts/prompt-manager/internal/metrics"
	"github.com/graymanconcepts/prompt-manager/internal/service/library"
	"github.com/graymanconcepts/prompt-manager/internal/transport/middleware"
	"github.com/graymanconcepts/prompt-manager/internal/transport/rest"
)

// App holds the wired application. Every command builds one with New and
// releases it with Close.
type App struct {
	Config  *config.Config
	Log     *slog.Logger
	DB      *sql.DB
	Metrics *metrics.Metrics
	Library *library.Service
	Seeder  *seeder.Seeder
}

// New opens the database, brings its schema up to date and wires the
// services. A schema failure is returned before anything else is built.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := sqlite.Open(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	results, err := sqlite.EnsureSchema(ctx, db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	for _, res := range results {
		logger.InfoContext(ctx, "schema migration applied",
			slog.Int64("version", res.Source.Version),
			slog.Duration("duration", res.Duration),
		)
	}

	prompts := prompt.New(db)
	entries := history.New(db)
	tx := sqlite.NewTxManager(db)
	m := metrics.New()

	return &App{
		Config:  cfg,
		Log:     logger,
		DB:      db,
		Metrics: m,
		Library: library.NewService(logger, prompts, entries, tx, m),
		Seeder:  seeder.New(logger, tx, prompts, entries),
	}, nil
}

// Close releases the database.
func (a *App) Close() error {
	return a.DB.Close()
}

// ImportOptions returns the importer settings from the library config.
func (a *App) ImportOptions() importer.Options {
	return importer.Options{
		DescriptionLength: a.Config.Library.DescriptionLength,
		Extensions:        a.Config.Library.Extensions(),
	}
}

// ImportFile parses one file from disk and stores it as an upload batch.
func (a *App) ImportFile(ctx context.Context, path string) (*library.ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	name := filepath.Base(path)
	candidates, err := importer.Parse(name, f, a.ImportOptions())
	if err != nil {
		return nil, err
	}
	return a.Library.ImportBatch(ctx, name, candidates)
}

// Handler builds the HTTP handler: the REST router wrapped in the
// middleware chain.
func (a *App) Handler() http.Handler {
	router := rest.NewRouter(rest.Handlers{
		Prompts: rest.NewPromptHandler(a.Library, domain.View(a.Config.Library.DefaultView), a.Log),
		History: rest.NewHistoryHandler(a.Library, a.Log),
		Import:  rest.NewImportHandler(a.Library, a.ImportOptions(), a.Log),
		Stats:   rest.NewStatsHandler(a.Library, a.Log),
		Health: rest.NewHealthHandler(a.DB, func(ctx context.Context) (int64, error) {
			return sqlite.SchemaVersion(ctx, a.DB)
		}, sqlite.LatestVersion, BuildVersion()),
		Metrics: a.Metrics.Handler(),
	})

	return middleware.Chain(
		middleware.Recovery(a.Log),
		middleware.RequestID(),
		middleware.Logger(a.Log),
		middleware.Metrics(a.Metrics),
		middleware.CORS(a.Config.CORS),
	)(router)
}

// Serve seeds an empty library (unless disabled) and serves HTTP on the
// configured address until ctx is cancelled.
func (a *App) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.Config.Server.Addr())
	if err != nil {
		return fmt.Errorf("listen %s: %w", a.Config.Server.Addr(), err)
	}
	return a.ServeListener(ctx, ln)
}

// ServeListener is Serve on an existing listener. The listener is closed
// when the server stops.
func (a *App) ServeListener(ctx context.Context, ln net.Listener) error {
	if !a.Config.Database.SkipSeed {
		if _, err := a.Seeder.SeedIfEmpty(ctx); err != nil {
			ln.Close()
			return fmt.Errorf("seed: %w", err)
		}
	}

	srv := &http.Server{
		Handler:      a.Handler(),
		ReadTimeout:  a.Config.Server.ReadTimeout,
		WriteTimeout: a.Config.Server.WriteTimeout,
		IdleTimeout:  a.Config.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(a.Log.Handler(), slog.LevelWarn),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Log.InfoContext(gctx, "http server listening", slog.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.Server.ShutdownTimeout)
		defer cancel()

		a.Log.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// Run is the entry point of the serve command. It loads configuration,
// initializes the logger, opens the library and serves until ctx is
// cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("database", cfg.Database.Path),
	)

	a, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Serve(ctx)
}
