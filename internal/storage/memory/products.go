package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/magabrotheeeer/product-catalog/internal/models"
	"github.com/magabrotheeeer/product-catalog/internal/storage"
)

// ProductStore инкапсулирует список товаров и выдачу идентификаторов.
//
// Каждая запись помечена идентификатором владельца; все операции чтения
// и изменения фильтруются одновременно по ID записи и по владельцу.
type ProductStore struct {
	mu       sync.Mutex
	products []models.Product
}

// NewProductStore создает пустое хранилище товаров.
func NewProductStore() *ProductStore {
	return &ProductStore{}
}

// CreateProduct вставляет новую запись товара и возвращает её с присвоенным ID.
//
// ID — максимум существующих плюс один, либо 1 для пустого хранилища.
// CreatedAt и UpdatedAt при создании совпадают.
func (s *ProductStore) CreateProduct(ctx context.Context, product models.Product) (*models.Product, error) {
	const op = "storage.memory.CreateProduct"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	maxID := 0
	for _, p := range s.products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	now := time.Now().UTC()
	product.ID = maxID + 1
	product.CreatedAt = now
	product.UpdatedAt = now
	s.products = append(s.products, product)

	stored := product
	return &stored, nil
}

// ListProducts возвращает все товары пользователя в порядке добавления.
func (s *ProductStore) ListProducts(ctx context.Context, ownerID int) ([]*models.Product, error) {
	const op = "storage.memory.ListProducts"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*models.Product, 0)
	for _, p := range s.products {
		if p.UserID == ownerID {
			found := p
			result = append(result, &found)
		}
	}
	return result, nil
}

// ReadProduct возвращает товар по ID, если он принадлежит ownerID.
//
// Чужая запись и отсутствующая запись дают одинаковую ошибку storage.ErrProductNotFound.
func (s *ProductStore) ReadProduct(ctx context.Context, id, ownerID int) (*models.Product, error) {
	const op = "storage.memory.ReadProduct"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.ID == id && p.UserID == ownerID {
			found := p
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", op, storage.ErrProductNotFound)
}

// UpdateProduct обновляет изменяемые поля товара по ID с проверкой владельца.
//
// ID, владелец и CreatedAt сохраняются, UpdatedAt обновляется.
// Пустое поле Image оставляет прежнее изображение, пустая категория — прежнюю категорию.
func (s *ProductStore) UpdateProduct(ctx context.Context, id, ownerID int, req models.DummyProduct) (*models.Product, error) {
	const op = "storage.memory.UpdateProduct"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id || s.products[i].UserID != ownerID {
			continue
		}
		s.products[i].Title = req.Title
		s.products[i].Description = req.Description
		if req.Category != "" {
			s.products[i].Category = req.Category
		}
		if req.Image != "" {
			s.products[i].Image = req.Image
		}
		s.products[i].UpdatedAt = time.Now().UTC()

		updated := s.products[i]
		return &updated, nil
	}
	return nil, fmt.Errorf("%s: %w", op, storage.ErrProductNotFound)
}

// RemoveProduct удаляет товар по ID с проверкой владельца и возвращает удаленную запись.
func (s *ProductStore) RemoveProduct(ctx context.Context, id, ownerID int) (*models.Product, error) {
	const op = "storage.memory.RemoveProduct"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id && s.products[i].UserID == ownerID {
			removed := s.products[i]
			s.products = append(s.products[:i], s.products[i+1:]...)
			return &removed, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", op, storage.ErrProductNotFound)
}
