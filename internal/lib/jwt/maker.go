// Package jwt реализует генерацию и парсинг JWT токенов с пользовательскими claim полями.
//
// Maker определяет интерфейс для создания и проверки JWT токенов с идентификатором и email пользователя.
// MakerImpl — конкретная реализация с использованием секретного ключа и срока жизни токена.
package jwt

import (
	"errors"
	"time"
)

// Ошибки проверки токена. Обработчики различают их через errors.Is:
// просроченный токен и токен с неверной подписью приводят к разным сообщениям в логе,
// но оба закрывают доступ к защищенным маршрутам.
var (
	// ErrInvalidToken — подпись не совпадает либо полезная нагрузка не декодируется.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken — срок действия токена истек.
	ErrExpiredToken = errors.New("token has expired")
)

// Maker описывает интерфейс для генерации и парсинга JWT токенов.
//
// Методы позволяют создавать токен с указанием идентификатора и email пользователя,
// а также разбирать токен и извлекать из него кастомные данные.
type Maker interface {
	// GenerateToken создает подписанный токен для пользователя с указанными id и email.
	GenerateToken(userID int, email string) (string, error)
	// ParseToken возвращает *CustomClaims с идентификатором и email пользователя.
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL).
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration // Время жизни токена.
}

// NewJWTMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
