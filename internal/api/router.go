package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/advising-studio/engine/internal/api/envelope"
	"github.com/advising-studio/engine/internal/api/handlers"
	mw "github.com/advising-studio/engine/internal/api/middleware"
	"github.com/advising-studio/engine/internal/models"
	"github.com/advising-studio/engine/pkg/logger"
)

type Dependencies struct {
	HMACSecret     []byte
	AuthCookieName string
	CORS           envelope.Policy
	RateLimitRPS   float64
	RateLimitBurst int
	// TrustedProxies may set X-Forwarded-For for rate limiting.
	TrustedProxies []string
	// DocsURL is where the swagger UI fetches the spec; empty serves it relative to /docs.
	DocsURL string

	AuthHandler         *handlers.AuthHandler
	StudentsHandler     *handlers.StudentsHandler
	InteractionsHandler *handlers.InteractionsHandler
	StaffHandler        *handlers.StaffHandler
	IntegrationsHandler *handlers.IntegrationsHandler
	AdminHandler        *handlers.AdminHandler
	HealthHandler       *handlers.HealthHandler
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()

	// CORS sits ahead of recovery and the limiter so their replies carry
	// the same headers as every other response.
	r.Use(mw.RequestID)
	r.Use(mw.Logging)
	r.Use(mw.Metrics)
	r.Use(mw.CORS(dep.CORS))
	r.Use(mw.Recovery)
	if dep.RateLimitRPS > 0 {
		rl := mw.NewRateLimiter(dep.RateLimitRPS, dep.RateLimitBurst)
		if err := rl.TrustProxies(dep.TrustedProxies); err != nil {
			logger.L().Warn("ignoring trusted proxies", zap.Strings("proxies", dep.TrustedProxies), zap.Error(err))
		}
		r.Use(rl.Handler)
	}
	r.Use(chimid.Compress(5))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		envelope.Failure(w, r, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		envelope.Failure(w, r, http.StatusMethodNotAllowed, "Method not allowed")
	})

	hh := dep.HealthHandler
	if hh == nil {
		hh = handlers.NewHealthHandler()
	}
	r.Get("/healthz", hh.Liveness)
	r.Get("/readyz", hh.Readiness)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	docsURL := dep.DocsURL
	if docsURL == "" {
		docsURL = "doc.json"
	}
	r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))

	r.Route("/api", func(api chi.Router) {
		api.Use(mw.Authenticate(dep.HMACSecret, dep.AuthCookieName))

		api.Post("/auth/logout", dep.AuthHandler.Logout)
		api.Get("/interaction-types", handlers.InteractionTypes)
		api.Get("/staff", dep.StaffHandler.List)

		api.Route("/students", func(sr chi.Router) {
			sr.Get("/", dep.StudentsHandler.List)
			sr.Post("/", dep.StudentsHandler.Create)
			sr.Get("/{id}", dep.StudentsHandler.Get)
			sr.Put("/{id}", dep.StudentsHandler.Update)
			sr.Delete("/{id}", dep.StudentsHandler.Delete)
			sr.Get("/{id}/interactions", dep.StudentsHandler.Interactions)
		})

		api.Route("/interactions", func(ir chi.Router) {
			ir.Get("/", dep.InteractionsHandler.List)
			ir.Post("/", dep.InteractionsHandler.Create)
			ir.Delete("/{id}", dep.InteractionsHandler.Delete)
		})

		api.Route("/integrations", func(gr chi.Router) {
			gr.Get("/", dep.IntegrationsHandler.List)
			gr.Post("/{id}/check", dep.IntegrationsHandler.Check)
		})

		api.Group(func(admin chi.Router) {
			admin.Use(mw.RequireRole(models.RoleAdmin))
			admin.Delete("/admin/flush", dep.AdminHandler.Flush)
		})
	})

	return r
}
