// Package verify реализует HTTP-обработчик проверки действительности токена.
// Маршрут закрыт JWT middleware, поэтому сюда попадают только валидные токены.
package verify

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/product-catalog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/product-catalog/internal/http/response"
)

// Handler подтверждает валидность токена текущего запроса.
type Handler struct {
	log *slog.Logger
}

// New создает новый Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// ServeHTTP godoc
// @Summary Проверка токена
// @Description Подтверждает, что переданный JWT действителен, и возвращает идентификатор пользователя.
// @Tags Auth
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} response.OKResponse "Токен действителен"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Router /auth/verify [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.verify"

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

	log.Info("token verified", slog.Int("user_id", userID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"user_id": userID,
	}))
}
