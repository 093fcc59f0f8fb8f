// Package memory реализует хранилище данных в памяти процесса
// для управления пользователями и товарами. Предоставляет методы
// создания, чтения, обновления и удаления записей с учетом владельца.
//
// Состояние не переживает перезапуск процесса и не разделяется между
// экземплярами сервиса. Мутации сериализуются мьютексом, поскольку
// HTTP-сервер обрабатывает запросы конкурентно.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/magabrotheeeer/product-catalog/internal/models"
	"github.com/magabrotheeeer/product-catalog/internal/storage"
)

// UserStore инкапсулирует список пользователей и выдачу идентификаторов.
type UserStore struct {
	mu     sync.Mutex
	users  []models.User
	nextID int
}

// NewUserStore создает пустое хранилище пользователей.
func NewUserStore() *UserStore {
	return &UserStore{nextID: 1}
}

// RegisterUser сохраняет нового пользователя и возвращает запись с присвоенным ID.
//
// Email сравнивается без учета регистра; повторная регистрация дает storage.ErrEmailTaken.
func (s *UserStore) RegisterUser(ctx context.Context, user models.User) (*models.User, error) {
	const op = "storage.memory.RegisterUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(strings.TrimSpace(user.Email))
	for _, u := range s.users {
		if strings.ToLower(u.Email) == email {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrEmailTaken)
		}
	}

	user.ID = s.nextID
	user.CreatedAt = time.Now().UTC()
	s.nextID++
	s.users = append(s.users, user)

	stored := user
	return &stored, nil
}

// GetUserByEmail возвращает пользователя по email (без учета регистра).
//
// Используется только при логине, не для проверок владения записями.
func (s *UserStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.memory.GetUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range s.users {
		if strings.ToLower(u.Email) == email {
			found := u
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
}

// GetUser возвращает пользователя по его ID.
func (s *UserStore) GetUser(ctx context.Context, id int) (*models.User, error) {
	const op = "storage.memory.GetUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
}

// CountUsers возвращает текущее количество пользователей.
func (s *UserStore) CountUsers(ctx context.Context) (int, error) {
	const op = "storage.memory.CountUsers"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users), nil
}
