// Package create реализует HTTP-обработчик для создания новых карточек товаров.
//
// Handler принимает JSON либо multipart/form-data с данными товара и опциональным
// изображением, извлекает идентификатор пользователя из контекста, вызывает
// бизнес-логику создания и возвращает созданную запись в JSON-формате.
//
// В случае ошибок формируются соответствующие HTTP-ответы с описанием проблемы.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/product-catalog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/product-catalog/internal/http/response"
	"github.com/magabrotheeeer/product-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/product-catalog/internal/lib/upload"
	"github.com/magabrotheeeer/product-catalog/internal/models"
	productservice "github.com/magabrotheeeer/product-catalog/internal/services/product"
)

// maxMultipartMemory — лимит буферизации multipart-формы в памяти, остальное уходит на диск.
const maxMultipartMemory = 10 << 20

// Service описывает интерфейс бизнес-логики создания товара.
type Service interface {
	Create(ctx context.Context, ownerID int, req models.DummyProduct) (*models.Product, error)
}

// FileSaver сохраняет загруженное изображение и возвращает его публичный путь.
type FileSaver interface {
	SaveProductImage(file multipart.File, header *multipart.FileHeader) (string, error)
}

// Handler управляет HTTP-запросами на создание карточек товаров.
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

// decodeRequest разбирает тело запроса: multipart-форму с опциональным файлом
// изображения либо обычный JSON без файла.
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
// @Summary Создать карточку товара
// @Description Создает новый товар текущего пользователя, опционально с изображением. Возвращает созданную запись.
// @Tags Products
// @Accept  json
// @Accept  mpfd
// @Produce  json
// @Security BearerAuth
// @Param request body models.DummyProduct true "Данные нового товара"
// @Success 201 {object} response.OKResponse "Товар создан"
// @Failure 400 {object} response.ErrorResponse "Некорректные данные"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при создании товара"
// @Router /products [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.create"

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
	log.Info("request decoded", slog.String("title", req.Title))

	product, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		var verr *productservice.ValidationError
		if errors.As(err, &verr) {
			log.Error("validation failed", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.FieldErrors(verr.Fields))
			return
		}
		log.Error("failed to create product", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create product"))
		return
	}

	log.Info("product created", slog.Int("id", product.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData(map[string]any{
		"product": product,
	}))
}
