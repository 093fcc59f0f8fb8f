// Package product содержит бизнес-логику управления карточками товаров:
// проверку полей и CRUD-операции, ограниченные владельцем записи.
package product

import (
	"context"
	"fmt"
	"strings"

	"github.com/magabrotheeeer/product-catalog/internal/models"
)

// Ограничения на поля карточки товара (после обрезки пробелов).
const (
	titleMinLen       = 3
	titleMaxLen       = 100
	descriptionMinLen = 10
	descriptionMaxLen = 1000
)

// DefaultCategory подставляется, когда категория не указана.
const DefaultCategory = "Electronics"

// ValidationError описывает нарушения правил заполнения карточки товара.
// Fields содержит сообщение по каждому некорректному полю.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	return "validation error: " + strings.Join(msgs, ", ")
}

// Repository определяет методы для работы с товарами в хранилище.
type Repository interface {
	// CreateProduct добавляет новый товар и возвращает запись с присвоенным ID.
	CreateProduct(ctx context.Context, product models.Product) (*models.Product, error)
	// ListProducts возвращает все товары пользователя в порядке добавления.
	ListProducts(ctx context.Context, ownerID int) ([]*models.Product, error)
	// ReadProduct возвращает товар по ID с проверкой владельца.
	ReadProduct(ctx context.Context, id, ownerID int) (*models.Product, error)
	// UpdateProduct обновляет изменяемые поля товара по ID с проверкой владельца.
	UpdateProduct(ctx context.Context, id, ownerID int, req models.DummyProduct) (*models.Product, error)
	// RemoveProduct удаляет товар по ID с проверкой владельца и возвращает запись.
	RemoveProduct(ctx context.Context, id, ownerID int) (*models.Product, error)
}

// Service реализует бизнес-логику работы с товарами.
type Service struct {
	repo Repository
}

// NewService создает новый экземпляр Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// validate проверяет название и описание товара, возвращая *ValidationError
// со всеми найденными нарушениями сразу.
func validate(title, description string) *ValidationError {
	fields := make(map[string]string)

	title = strings.TrimSpace(title)
	switch {
	case title == "":
		fields["title"] = "Title is required"
	case len([]rune(title)) < titleMinLen:
		fields["title"] = fmt.Sprintf("Title must be at least %d characters long", titleMinLen)
	case len([]rune(title)) > titleMaxLen:
		fields["title"] = fmt.Sprintf("Title must be less than %d characters", titleMaxLen)
	}

	description = strings.TrimSpace(description)
	switch {
	case description == "":
		fields["description"] = "Description is required"
	case len([]rune(description)) < descriptionMinLen:
		fields["description"] = fmt.Sprintf("Description must be at least %d characters long", descriptionMinLen)
	case len([]rune(description)) > descriptionMaxLen:
		fields["description"] = fmt.Sprintf("Description must be less than %d characters", descriptionMaxLen)
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// Create валидирует данные и создает новый товар для пользователя ownerID.
func (s *Service) Create(ctx context.Context, ownerID int, req models.DummyProduct) (*models.Product, error) {
	const op = "services.product.Create"

	if verr := validate(req.Title, req.Description); verr != nil {
		return nil, verr
	}
	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = DefaultCategory
	}
	created, err := s.repo.CreateProduct(ctx, models.Product{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Category:    category,
		Image:       req.Image,
		UserID:      ownerID,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}

// List возвращает товары пользователя ownerID.
func (s *Service) List(ctx context.Context, ownerID int) ([]*models.Product, error) {
	const op = "services.product.List"

	result, err := s.repo.ListProducts(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// Read возвращает один товар пользователя ownerID.
func (s *Service) Read(ctx context.Context, id, ownerID int) (*models.Product, error) {
	const op = "services.product.Read"

	result, err := s.repo.ReadProduct(ctx, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// Update валидирует данные и обновляет товар пользователя ownerID.
func (s *Service) Update(ctx context.Context, id, ownerID int, req models.DummyProduct) (*models.Product, error) {
	const op = "services.product.Update"

	if verr := validate(req.Title, req.Description); verr != nil {
		return nil, verr
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	req.Category = strings.TrimSpace(req.Category)

	updated, err := s.repo.UpdateProduct(ctx, id, ownerID, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

// Remove удаляет товар пользователя ownerID и возвращает удаленную запись.
func (s *Service) Remove(ctx context.Context, id, ownerID int) (*models.Product, error) {
	const op = "services.product.Remove"

	removed, err := s.repo.RemoveProduct(ctx, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return removed, nil
}
