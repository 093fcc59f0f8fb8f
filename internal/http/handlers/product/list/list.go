// Package list реализует HTTP-обработчик списка товаров текущего пользователя.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/product-catalog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/product-catalog/internal/http/response"
	"github.com/magabrotheeeer/product-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/product-catalog/internal/models"
)

// Service описывает интерфейс бизнес-логики списка товаров.
type Service interface {
	List(ctx context.Context, ownerID int) ([]*models.Product, error)
}

// Handler обрабатывает HTTP-запросы на получение списка товаров.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список товаров пользователя
// @Description Возвращает все товары текущего пользователя в порядке добавления.
// @Tags Products
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} response.OKResponse "Список товаров"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /products [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, ok := r.Context().Value(middlewarectx.UserID).(int)
	if !ok || userID == 0 {
		log.Error("user id not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	products, err := h.service.List(r.Context(), userID)
	if err != nil {
		log.Error("failed to list products", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list products"))
		return
	}

	log.Info("products listed", slog.Int("count", len(products)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"products": products,
		"total":    len(products),
	}))
}
