package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/wordoftheday-backend/internal/adapter/postgres"
	wordrepo "github.com/heartmarshall/wordoftheday-backend/internal/adapter/postgres/word"
	"github.com/heartmarshall/wordoftheday-backend/internal/config"
	"github.com/heartmarshall/wordoftheday-backend/internal/service/presentation"
	wordsvc "github.com/heartmarshall/wordoftheday-backend/internal/service/word"
	"github.com/heartmarshall/wordoftheday-backend/internal/transport/middleware"
	"github.com/heartmarshall/wordoftheday-backend/internal/transport/rest"
)

// database is what the HTTP stack needs from the connection pool.
type database interface {
	postgres.Querier
	Ping(ctx context.Context) error
}

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, serves HTTP until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           NewHandler(cfg, logger, pool, wordsvc.SystemClock{}),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return serve(ctx, srv, logger, cfg.Server.ShutdownTimeout)
}

// NewHandler wires repository, services and handlers into the HTTP router.
func NewHandler(cfg *config.Config, logger *slog.Logger, db database, clock wordsvc.Clock) http.Handler {
	words := wordsvc.NewService(logger, wordrepo.New(db, logger), clock)
	pages := presentation.NewService(logger, words)
	cache := rest.NewCachePolicy(cfg.Cache)

	return rest.NewRouter(
		middleware.Standard(logger, cfg.CORS),
		rest.NewWordHandler(words, cache, logger),
		rest.NewPageHandler(pages, cache, logger),
		rest.NewHealthHandler(db, BuildVersion(), logger),
	)
}

func serve(ctx context.Context, srv *http.Server, logger *slog.Logger, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("shutting down", slog.Duration("timeout", shutdownTimeout))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
