package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Encoding", "Authorization", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}))

	router.Group(func(r chi.Router) {
		r.Use(h.withRateLimit)
		r.Use(middleware.Timeout(h.cfg.RequestTimeout))
		r.Use(withGZip)

		r.Get("/api/version", h.getAppInfo)

		r.With(middleware.RequestSize(h.cfg.MaxBodyBytes)).Post("/api/documents", h.createDocument)
		r.Get("/api/documents/{id}", h.getDocument)
		r.With(middleware.RequestSize(h.cfg.MaxBodyBytes)).Post("/api/documents/{id}/decrypt", h.decryptDocument)

		// disabled without a configured secret
		if h.cronSecret != "" {
			r.Get("/api/cron/cleanup", h.cleanup)
		}
	})

	if h.collectors != nil {
		router.Method(http.MethodGet, "/metrics", h.collectors.Handler())
	}

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, ErrRouteNotFound, "*Handler.notFound")
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
