package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"lightlock/internal/appinfo"
	"lightlock/internal/auth"
	"lightlock/internal/catalog"
	"lightlock/internal/config"
	"lightlock/internal/database"
	"lightlock/internal/handlers"
	"lightlock/internal/middleware"
	"lightlock/internal/session"
	"lightlock/pkg/cache"
	"lightlock/pkg/logger"
)

var servePort int

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the gallery web server (default command)",
		RunE:  runServe,
	}
	cmd.Flags().IntVarP(&servePort, "port", "p", 0, "Listen port (overrides config and APP_PORT)")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Server.Port = servePort
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	if cfg.App.StartMessage {
		printBanner(cfg.App.Name)
		printSignature(cfg.App.Version)
	}

	appinfo.StartTime = time.Now()

	db, err := database.InitDB(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer database.Close(db)

	repo := catalog.NewRepository(db)
	n, err := repo.Seed(cmd.Context())
	if err != nil {
		return err
	}
	logger.LogSuccess("Catalog ready: %d images", n)

	sessions := session.NewStore(cfg.SessionTTL(), cfg.SweepInterval(), cfg.ControlsIdle())
	defer sessions.Close()

	appCache := cache.New(cache.Options{
		Enabled:     cfg.Cache.Enabled,
		MaxCapacity: cfg.Cache.MaxCapacity,
		TTL:         cfg.CacheTTL(),
	})
	defer appCache.Close()

	loginLimiter := middleware.NewLoginLimiter()
	defer loginLimiter.Close()

	h, err := handlers.New(auth.NewVerifier(cfg.AuthLatency()), sessions, repo, appCache, loginLimiter, handlers.Options{
		AppName:      cfg.App.Name,
		CookieName:   cfg.Session.CookieName,
		SecureCookie: cfg.IsProduction(),
		Columns:      cfg.Gallery.Columns,
		ControlsIdle: cfg.ControlsIdle(),
		ShowDemo:     !cfg.IsProduction(),
	})
	if err != nil {
		return err
	}

	mws := []func(http.Handler) http.Handler{middleware.RequestID}
	if cfg.Security.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.Security.RateLimit.Requests, cfg.RateWindow(), cfg.Security.RateLimit.Burst)
		defer limiter.Close()
		mws = append(mws, limiter.Middleware)
	}
	mws = append(mws, middleware.Cors(cfg.Security.CorsOrigins), middleware.AccessLog(nil))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      middleware.Chain(h.Routes(), mws...),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return listenAndShutdown(server, cfg)
}

// listenAndShutdown serves until SIGINT/SIGTERM, then drains in-flight
// requests for up to the configured shutdown timeout.
func listenAndShutdown(server *http.Server, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.LogServerStart(cfg.App.Name, cfg.Server.Port, cfg.GetBaseUrl())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.LogWarn("Shutting down, waiting up to %s for open requests...", cfg.ShutdownTimeout())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.LogSuccess("Server stopped")
	return nil
}
