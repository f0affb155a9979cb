// Package app wires configuration, storage, services, and transport into a
// running HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/promptmixer/promptmixer-backend/internal/adapter/postgres"
	historyrepo "github.com/promptmixer/promptmixer-backend/internal/adapter/postgres/history"
	libraryrepo "github.com/promptmixer/promptmixer-backend/internal/adapter/postgres/library"
	promptrepo "github.com/promptmixer/promptmixer-backend/internal/adapter/postgres/prompt"
	userrepo "github.com/promptmixer/promptmixer-backend/internal/adapter/postgres/user"
	"github.com/promptmixer/promptmixer-backend/internal/adapter/provider/claude"
	"github.com/promptmixer/promptmixer-backend/internal/adapter/provider/google"
	"github.com/promptmixer/promptmixer-backend/internal/adapter/provider/stripe"
	"github.com/promptmixer/promptmixer-backend/internal/auth"
	"github.com/promptmixer/promptmixer-backend/internal/config"
	authsvc "github.com/promptmixer/promptmixer-backend/internal/service/auth"
	"github.com/promptmixer/promptmixer-backend/internal/service/billing"
	historysvc "github.com/promptmixer/promptmixer-backend/internal/service/history"
	"github.com/promptmixer/promptmixer-backend/internal/service/improver"
	librarysvc "github.com/promptmixer/promptmixer-backend/internal/service/library"
	"github.com/promptmixer/promptmixer-backend/internal/service/limits"
	promptsvc "github.com/promptmixer/promptmixer-backend/internal/service/prompt"
	usersvc "github.com/promptmixer/promptmixer-backend/internal/service/user"
	"github.com/promptmixer/promptmixer-backend/internal/transport/middleware"
	"github.com/promptmixer/promptmixer-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires all services, and serves HTTP until ctx is cancelled.
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

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	// Repositories.
	users := userrepo.New(pool)
	history := historyrepo.New(pool)
	library := libraryrepo.New(pool)
	prompts := promptrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	// External providers.
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	googleVerifier := google.NewVerifier(cfg.Auth.GoogleClientID, logger)
	claudeClient := claude.New(cfg.Claude, logger)
	stripeCustomers := stripe.NewCustomerResolver(cfg.Stripe.APIKey, logger)

	// Services.
	authService := authsvc.NewService(logger, users, googleVerifier, jwtManager)
	userService := usersvc.NewService(logger, users)
	limitsService := limits.NewService(logger, users, library, history, cfg.Limits)
	improverService := improver.NewService(logger, claudeClient, history, limitsService)
	historyService := historysvc.NewService(logger, history)
	libraryService := librarysvc.NewService(logger, library, history, limitsService)
	promptService := promptsvc.NewService(logger, prompts, txManager)
	billingService := billing.NewService(logger, users, stripeCustomers, cfg.Stripe.WebhookSecret)

	rateLimiter := middleware.NewRateLimiter(5 * time.Minute)
	defer rateLimiter.Stop()

	handlers := rest.Handlers{
		Auth:    rest.NewAuthHandler(authService, logger),
		Users:   rest.NewUserHandler(userService, cfg.Admin.AllowedEmails(), logger),
		Improve: rest.NewImproveHandler(improverService, logger),
		History: rest.NewHistoryHandler(historyService, logger),
		Library: rest.NewLibraryHandler(libraryService, logger),
		Limits:  rest.NewLimitsHandler(limitsService, logger),
		Prompts: rest.NewPromptHandler(promptService, logger),
		Webhook: rest.NewWebhookHandler(billingService, logger),
		Health:  rest.NewHealthHandler(pool, BuildVersion()),
	}

	router := rest.NewRouter(cfg, logger, jwtManager, rateLimiter, handlers)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down",
		slog.Duration("timeout", cfg.Server.ShutdownTimeout),
	)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
