// Package http provides the HTTP delivery layer of the shortener web client.
// It exposes the submission form, the user's links and the stats dashboard
// as a JSON API for the frontend, together with the Google sign-in flow.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	httpSwagger "github.com/swaggo/http-swagger"
)

// RouterConfig holds the delivery settings that do not come from use cases.
type RouterConfig struct {
	AllowedOrigins []string
	SecureCookies  bool
	AfterSignInURL string
	SwaggerFile    string
}

// NewRouter initializes a chi router with middleware and the routes of the web client API.
// identity may be nil, in which case sign-in answers 503.
func NewRouter(
	logger *httplog.Logger,
	cfg RouterConfig,
	forms formUseCase,
	links linkUseCase,
	stats dashboard,
	sessions sessionManager,
	identity identityProvider,
) *chi.Mux {
	if cfg.AfterSignInURL == "" {
		cfg.AfterSignInURL = "/"
	}
	if cfg.SwaggerFile == "" {
		cfg.SwaggerFile = "./docs/swagger.yml"
	}

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           84600,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httplog.RequestLogger(logger))
	r.Use(recoverer)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/swagger.yml"),
	))

	r.Get("/docs/swagger.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, cfg.SwaggerFile)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(withSession(sessions))

		r.Get("/ping", handlePing)

		r.Route("/auth", func(r chi.Router) {
			h := newAuthHandler(identity, sessions, cfg.SecureCookies, cfg.AfterSignInURL)

			r.Get("/login", h.login)
			r.Get("/callback", h.callback)
			r.Post("/logout", h.logout)
			r.Get("/me", h.me)
		})

		h := newLinkHandler(forms, links, stats, newValidator())

		r.Route("/links", func(r chi.Router) {
			r.Post("/", h.shortenURL)
			r.Get("/preview", h.previewLink)

			r.Group(func(r chi.Router) {
				r.Use(requireSession)

				r.Get("/", h.listLinks)
				r.Post("/sync", h.syncLinks)
			})
		})

		r.With(requireSession).Get("/stats", h.getStats)
	})

	return r
}
