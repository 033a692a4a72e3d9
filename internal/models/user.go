// Package models содержит доменные структуры ресторанного сервиса:
// пользователей, позиции меню, корзину и платежи. Структуры несут
// bson-теги для хранилища и json-теги для HTTP-ответов.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Роли пользователей.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User представляет зарегистрированного пользователя системы.
// Email уникален в пределах коллекции (уникальный индекс в хранилище).
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Role      string             `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// DummyUser используется для приёма данных из JSON-запроса на создание
// пользователя, прежде чем конвертировать их в User.
type DummyUser struct {
	Email string `json:"email" validate:"required,email"` // Электронная почта (уникальная)
	Name  string `json:"name"`                            // Отображаемое имя
}
