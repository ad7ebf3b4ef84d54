package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	"github.com/lanternfly/service/internal/image"
	appMiddleware "github.com/lanternfly/service/internal/middleware"
	"github.com/lanternfly/service/internal/response"
	"github.com/lanternfly/service/internal/web"

	_ "github.com/lanternfly/service/docs/swagger"
)

func newRouter(images *image.Handler, maxUploadBytes int64, log *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger(log))
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	// Health check; never touches storage
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.Text(w, http.StatusOK, "OK")
	})

	r.Get("/", web.Index)

	// Swagger UI at /swagger/index.html
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/api/v1", func(r chi.Router) {
		r.With(appMiddleware.MaxBodySize(maxUploadBytes)).Post("/upload", images.Upload)
		r.Get("/gallery", images.Gallery)
	})

	return r
}
