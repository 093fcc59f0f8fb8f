// Package remove реализует HTTP-обработчик удаления карточки товара.
package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/product-catalog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/product-catalog/internal/http/response"
	"github.com/magabrotheeeer/product-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/product-catalog/internal/models"
	"github.com/magabrotheeeer/product-catalog/internal/storage"
)

// Service описывает интерфейс бизнес-логики удаления товара.
type Service interface {
	Remove(ctx context.Context, id, ownerID int) (*models.Product, error)
}

// Handler обрабатывает HTTP-запросы на удаление товара.
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
// @Summary Удалить карточку товара
// @Description Удаляет товар текущего пользователя по ID и возвращает удаленную запись.
// @Tags Products
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID товара"
// @Success 200 {object} response.OKResponse "Удаленная карточка"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Товар не найден"
// @Router /products/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.remove"

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

	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		log.Error("invalid id format", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid id"))
		return
	}

	product, err := h.service.Remove(r.Context(), id, userID)
	if err != nil {
		if errors.Is(err, storage.ErrProductNotFound) {
			log.Error("product not found", slog.Int("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("product not found"))
			return
		}
		log.Error("failed to delete product", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to delete product"))
		return
	}

	log.Info("product deleted", slog.Int("id", product.ID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"product": product,
	}))
}
