package handlers

import (
	"LinkKeeper/internal/config"
	"LinkKeeper/internal/middleware"
	"LinkKeeper/internal/ratelimit"
	"LinkKeeper/internal/service"
	"LinkKeeper/internal/token"
	"LinkKeeper/internal/validation"
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const requestTimeout = 30 * time.Second

// Pinger проверяет доступность хранилища (*sql.DB подходит).
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	Router  chi.Router
	limiter *ratelimit.KeyedRateLimiter
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	contentService *service.ContentService,
	shareService *service.ShareService,
	tokens *token.Manager,
	db Pinger,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()
	v := validation.New()
	limiter := ratelimit.New(config.PublicRPS, config.PublicBurst)

	r.Use(chimw.RequestID)
	// иначе лимитер ключуется по заголовку, который клиент подставляет сам
	if config.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Encoding"},
		MaxAge:         300,
	}))
	r.Use(middleware.WithMetrics)
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(chimw.Timeout(requestTimeout))

	// Handlers
	userHandler := NewUserHandler(userService, tokens, v, logger, config.EnableHTTPS)
	contentHandler := NewContentHandler(contentService, v, logger)
	shareHandler := NewShareHandler(shareService, v, logger)

	r.Get("/healthz", health(db, logger))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		// публичные маршруты под ограничением частоты
		r.Group(func(r chi.Router) {
			r.Use(middleware.WithRateLimit(limiter))
			r.Post("/Signup", userHandler.Signup)
			r.Post("/Signin", userHandler.Signin)
			r.Get("/{sharelink}", shareHandler.Resolve)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(tokens))
			r.Post("/Signout", userHandler.Signout)

			r.Post("/content", contentHandler.Create)
			r.Get("/content", contentHandler.List)
			r.Delete("/content", contentHandler.Delete)

			r.Get("/share", shareHandler.Toggle)
			r.Post("/share", shareHandler.Toggle)
		})
	})

	return &Handler{Router: r, limiter: limiter}
}

// Close останавливает фоновые задачи роутера.
func (h *Handler) Close() {
	h.limiter.Stop()
}

func health(db Pinger, logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				logger.Errorw("healthz: store unavailable", "error", err)
				writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
