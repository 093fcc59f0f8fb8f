// Package models содержит доменные структуры каталога товаров,
// а также вспомогательные типы для работы с данными из внешних источников (например, JSON-запросы).
package models

import "time"

// Product представляет собой основную модель товара,
// используемую в бизнес-логике и хранилище.
// Поле Image может быть пустой строкой — это означает, что изображение не загружено.
type Product struct {
	ID          int       `json:"id"`          // Уникальный идентификатор товара
	Title       string    `json:"title"`       // Название товара
	Description string    `json:"description"` // Описание товара
	Category    string    `json:"category"`    // Категория товара
	Image       string    `json:"image"`       // Путь к загруженному изображению
	UserID      int       `json:"user_id"`     // Идентификатор пользователя-владельца
	CreatedAt   time.Time `json:"created_at"`  // Дата создания записи
	UpdatedAt   time.Time `json:"updated_at"`  // Дата последнего обновления
}

// DummyProduct используется для приёма данных товара из запроса,
// прежде чем конвертировать их в Product.
// Поле Image заполняется отдельно после сохранения загруженного файла.
type DummyProduct struct {
	Title       string `json:"title"`       // Название товара
	Description string `json:"description"` // Описание товара
	Category    string `json:"category"`    // Категория товара
	Image       string `json:"image"`       // Путь к изображению (опционально)
}
