// Package update реализует HTTP-обработчик обновления карточки товара.
//
// Handler принимает JSON либо multipart/form-data с новыми данными товара и
// опциональным изображением. Если изображение не передано, прежнее сохраняется.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/product-catalog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/product-catalog/internal/http/response"
	"github.com/magabrotheeeer/product-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/product-catalog/internal/lib/upload"
	"github.com/magabrotheeeer/product-catalog/internal/models"
	productservice "github.com/magabrotheeeer/product-catalog/internal/services/product"
	"github.com/magabrotheeeer/product-catalog/internal/storage"
)

const maxMultipartMemory = 10 << 20

// Service описывает интерфейс бизнес-логики обновления товара.
type Service interface {
	Update(ctx context.Context, id, ownerID int, req models.DummyProduct) (*models.Product, error)
}

// FileSaver сохраняет загруженное изображение и возвращает его публичный путь.
type FileSaver interface {
	SaveProductImage(file multipart.File, header *multipart.FileHeader) (string, error)
}

// Handler управляет HTTP-запросами на обновление карточек товаров.
type Handler struct {
	log     *slog.Logger
	service Service
	saver   FileSaver
}

// New создает новый Handler с переданными логгером, сервисом и хранителем файлов.
func New(log *slog.Logger, service Service, saver FileSaver) *Handler {
	return &Handler{
		log:     log,
		service: service,
		saver:   saver,
	}
}

func decodeRequest(r *http.Request, saver FileSaver) (models.DummyProduct, error) {
	var req models.DummyProduct

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			return req, err
		}
		req.Title = r.FormValue("title")
		req.Description = r.FormValue("description")
		req.Category = r.FormValue("category")

		file, header, err := r.FormFile("image")
		if err == nil {
			defer func() {
				_ = file.Close()
			}()
			imagePath, err := saver.SaveProductImage(file, header)
			if err != nil {
				return req, err
			}
			req.Image = imagePath
		}
		return req, nil
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, err
	}
	req.Image = ""
	return req, nil
}

// ServeHTTP godoc
// @Summary Обновить карточку товара
// @Description Обновляет товар текущего пользователя по ID. Прежнее изображение сохраняется, если новое не передано.
// @Tags Products
// @Accept  json
// @Accept  mpfd
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID товара"
// @Param request body models.DummyProduct true "Новые данные товара"
// @Success 200 {object} response.OKResponse "Обновленная карточка"
// @Failure 400 {object} response.ErrorResponse "Некорректные данные"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Товар не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при обновлении"
// @Router /products/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.update"

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

	req, err := decodeRequest(r, h.saver)
	if err != nil {
		if errors.Is(err, upload.ErrUnsupportedType) {
			log.Error("unsupported image type", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("unsupported image type"))
			return
		}
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	product, err := h.service.Update(r.Context(), id, userID, req)
	if err != nil {
		var verr *productservice.ValidationError
		if errors.As(err, &verr) {
			log.Error("validation failed", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.FieldErrors(verr.Fields))
			return
		}
		if errors.Is(err, storage.ErrProductNotFound) {
			log.Error("product not found", slog.Int("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("product not found"))
			return
		}
		log.Error("failed to update product", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update product"))
		return
	}

	log.Info("product updated", slog.Int("id", product.ID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"product": product,
	}))
}
