// Package auth содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/product-catalog/internal/lib/jwt"
	"github.com/magabrotheeeer/product-catalog/internal/lib/password"
	"github.com/magabrotheeeer/product-catalog/internal/models"
)

// ErrInvalidCredentials — email не зарегистрирован либо пароль не подходит.
// Оба случая наружу неразличимы.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository описывает контракт для работы с пользователями в хранилище.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает запись с присвоенным ID.
	RegisterUser(ctx context.Context, user models.User) (*models.User, error)

	// GetUserByEmail возвращает пользователя по email или ошибку, если не найден.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUser возвращает пользователя по ID или ошибку, если не найден.
	GetUser(ctx context.Context, id int) (*models.User, error)
}

// Service отвечает за регистрацию, авторизацию и валидацию JWT.
type Service struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewService создает новый экземпляр Service.
func NewService(users UserRepository, jwtMaker jwt.Maker) *Service {
	return &Service{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля и сразу выдает токен,
// чтобы клиент не делал отдельный запрос логина после регистрации.
func (s *Service) Register(ctx context.Context, email, rawPassword, name string) (string, *models.User, error) {
	const op = "services.auth.Register"

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	user, err := s.users.RegisterUser(ctx, models.User{
		Email:        email,
		PasswordHash: hashed,
		Name:         name,
	})
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	token, err := s.jwtMaker.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	return token, user, nil
}

// Login проверяет пароль пользователя и генерирует JWT.
func (s *Service) Login(ctx context.Context, email, rawPassword string) (string, *models.User, error) {
	const op = "services.auth.Login"

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}
	token, err := s.jwtMaker.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	return token, user, nil
}

// ValidateToken проверяет JWT и возвращает данные пользователя из claims.
//
// Ошибки jwt.ErrInvalidToken и jwt.ErrExpiredToken пробрасываются как есть,
// middleware различает их через errors.Is.
func (s *Service) ValidateToken(_ context.Context, token string) (*jwt.CustomClaims, error) {
	return s.jwtMaker.ParseToken(token)
}

// Profile возвращает пользователя по ID для отображения профиля.
func (s *Service) Profile(ctx context.Context, id int) (*models.User, error) {
	const op = "services.auth.Profile"

	user, err := s.users.GetUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}
