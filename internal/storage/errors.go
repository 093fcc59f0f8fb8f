// Package storage определяет общие ошибки слоя хранения.
// Конкретные реализации хранилищ лежат в подпакетах.
package storage

import "errors"

var (
	// ErrEmailTaken — пользователь с таким email уже зарегистрирован.
	ErrEmailTaken = errors.New("email already taken")
	// ErrUserNotFound — пользователь не найден.
	ErrUserNotFound = errors.New("user not found")
	// ErrProductNotFound — товар не найден либо принадлежит другому пользователю.
	// Эти два случая намеренно неразличимы, чтобы не раскрывать чужие записи.
	ErrProductNotFound = errors.New("product not found")
)
