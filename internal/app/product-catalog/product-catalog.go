// Package productcatalog собирает приложение каталога товаров:
// хранилища, сервисы, маршруты и жизненный цикл HTTP-сервера.
package productcatalog

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/product-catalog/internal/config"
	"github.com/magabrotheeeer/product-catalog/internal/lib/jwt"
	"github.com/magabrotheeeer/product-catalog/internal/lib/upload"
	authservice "github.com/magabrotheeeer/product-catalog/internal/services/auth"
	productservice "github.com/magabrotheeeer/product-catalog/internal/services/product"
	"github.com/magabrotheeeer/product-catalog/internal/storage/memory"
)

// App инкапсулирует HTTP-сервер и его зависимости.
type App struct {
	server *http.Server
	logger *slog.Logger
}

// New собирает приложение: хранилища в памяти, сервисы, маршруты и сервер.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	userStore := memory.NewUserStore()
	productStore := memory.NewProductStore()

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	authService := authservice.NewService(userStore, jwtMaker)
	productService := productservice.NewService(productStore)

	saver, err := upload.NewSaver(cfg.UploadsDir, cfg.MaxUploadSize)
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, authService, productService, saver)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его по отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		return a.server.Shutdown(timeoutCtx)
	}
}
