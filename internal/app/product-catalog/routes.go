// Package productcatalog предоставляет маршруты для основного приложения.
package productcatalog

import (
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/product-catalog/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/product-catalog/internal/http/handlers/auth/profile"
	"github.com/magabrotheeeer/product-catalog/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/product-catalog/internal/http/handlers/auth/verify"
	"github.com/magabrotheeeer/product-catalog/internal/http/handlers/health"
	"github.com/magabrotheeeer/product-catalog/internal/http/handlers/product/create"
	"github.com/magabrotheeeer/product-catalog/internal/http/handlers/product/list"
	"github.com/magabrotheeeer/product-catalog/internal/http/handlers/product/read"
	"github.com/magabrotheeeer/product-catalog/internal/http/handlers/product/remove"
	"github.com/magabrotheeeer/product-catalog/internal/http/handlers/product/update"
	"github.com/magabrotheeeer/product-catalog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/product-catalog/internal/lib/upload"
	authservice "github.com/magabrotheeeer/product-catalog/internal/services/auth"
	productservice "github.com/magabrotheeeer/product-catalog/internal/services/product"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, authService *authservice.Service, productService *productservice.Service, saver *upload.Saver) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		middlewarectx.MetricsMiddleware,
	)

	limiter := rate.NewLimiter(rate.Limit(100), 200)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger, limiter))

		r.Get("/health", health.New(logger).ServeHTTP)

		// Открытые конечные точки
		r.Post("/auth/register", register.New(logger, authService).ServeHTTP)
		r.Post("/auth/login", login.New(logger, authService).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Get("/auth/profile", profile.New(logger, authService).ServeHTTP)
			r.Get("/auth/verify", verify.New(logger).ServeHTTP)
			r.Post("/products", create.New(logger, productService, saver).ServeHTTP)
			r.Get("/products", list.New(logger, productService).ServeHTTP)
			r.Get("/products/{id}", read.New(logger, productService).ServeHTTP)
			r.Put("/products/{id}", update.New(logger, productService, saver).ServeHTTP)
			r.Delete("/products/{id}", remove.New(logger, productService).ServeHTTP)
		})
	})

	// Раздача загруженных изображений
	uploadsFS := http.FileServer(http.Dir(filepath.Clean(saver.Dir())))
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", uploadsFS))

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
