package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/promptmixer/promptmixer-backend/internal/config"
	"github.com/promptmixer/promptmixer-backend/internal/transport/middleware"
)

// TokenReader resolves a bearer token to a user id.
type TokenReader interface {
	Read(token string) (int64, error)
}

// Handlers bundles the REST handlers mounted by NewRouter.
type Handlers struct {
	Auth    *AuthHandler
	Users   *UserHandler
	Improve *ImproveHandler
	History *HistoryHandler
	Library *LibraryHandler
	Limits  *LimitsHandler
	Prompts *PromptHandler
	Webhook *WebhookHandler
	Health  *HealthHandler
}

// NewRouter builds the HTTP routing tree. Health probes sit at the root;
// everything else lives under the configured API prefix. Auth endpoints are
// rate limited per IP.
func NewRouter(cfg *config.Config, logger *slog.Logger, tokens TokenReader, limiter *middleware.RateLimiter, h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", h.Health.Live)
	r.Get("/readyz", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	r.Route(cfg.API.PathPrefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			if limiter != nil {
				r.Use(limiter.Limit(cfg.API.AuthRateLimit))
			}
			r.Post("/login", h.Auth.Login)
			r.Post("/google", h.Auth.LoginGoogle)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/me", h.Users.Me)
			r.Put("/me", h.Users.UpdateMe)
			r.Get("/", h.Users.List)
			r.Put("/{id}/payment-status", h.Users.SetPaymentStatus)
		})

		r.Route("/prompts", func(r chi.Router) {
			r.Post("/improve", h.Improve.Improve)
			r.Get("/history", h.History.List)
			r.Get("/history/{id}", h.History.Get)
			r.Get("/shared", h.Prompts.ListShared)

			r.Post("/", h.Prompts.Create)
			r.Get("/", h.Prompts.List)
			r.Get("/{id}", h.Prompts.Get)
			r.Put("/{id}", h.Prompts.Update)
			r.Delete("/{id}", h.Prompts.Delete)
		})

		r.Route("/library", func(r chi.Router) {
			r.Get("/", h.Library.List)
			r.Post("/", h.Library.Create)
			r.Post("/from-history/{history_id}", h.Library.CreateFromHistory)
			r.Get("/{id}", h.Library.Get)
			r.Put("/{id}", h.Library.Update)
			r.Delete("/{id}", h.Library.Delete)
		})

		r.Get("/limits", h.Limits.Summary)

		r.Post("/stripe/webhook", h.Webhook.HandleStripe)
	})

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(tokens),
	)

	return chain(r)
}
