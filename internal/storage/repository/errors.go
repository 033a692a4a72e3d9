// Package repository реализует хранилище данных на основе MongoDB
// для ресторанного сервиса. Предоставляет методы создания, чтения,
// обновления, удаления и агрегирования документов по коллекциям
// users, menus, carts и payments.
package repository

import "errors"

// Ошибки уровня хранилища, различимые вызывающим кодом.
var (
	// ErrNotFound — запрошенный документ отсутствует в коллекции.
	ErrNotFound = errors.New("document not found")
	// ErrUserExists — нарушение уникального индекса по email пользователей.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidID — идентификатор не является корректным ObjectID.
	ErrInvalidID = errors.New("invalid document id")
)
