// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи, хэш пароля и дату создания.
// Структура используется в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
type User struct {
	ID           int       `json:"id"`         // Уникальный идентификатор пользователя
	Email        string    `json:"email"`      // Электронная почта (уникальная, сравнение без учёта регистра)
	PasswordHash string    `json:"-"`          // Хэш пароля пользователя, наружу не отдается
	Name         string    `json:"name"`       // Отображаемое имя пользователя
	CreatedAt    time.Time `json:"created_at"` // Дата регистрации
}
