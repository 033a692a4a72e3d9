package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartEntry представляет неоплаченный выбор позиции меню пользователем.
// Цена фиксируется на момент добавления, ссылочная целостность с меню
// не гарантируется хранилищем.
type CartEntry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email      string             `bson:"email" json:"email"`
	MenuItemID string             `bson:"menu_item_id" json:"menu_item_id"`
	Name       string             `bson:"name" json:"name"`
	Image      string             `bson:"image,omitempty" json:"image,omitempty"`
	Price      float64            `bson:"price" json:"price"`
	AddedAt    time.Time          `bson:"added_at" json:"added_at"`
}

// DummyCartEntry используется для приёма данных из JSON-запроса на добавление в корзину.
type DummyCartEntry struct {
	Email      string  `json:"email" validate:"required,email"`  // Владелец корзины
	MenuItemID string  `json:"menu_item_id" validate:"required"` // Идентификатор позиции меню
	Name       string  `json:"name" validate:"required"`         // Название на момент добавления
	Image      string  `json:"image"`                            // Изображение на момент добавления
	Price      float64 `json:"price" validate:"required,gt=0"`   // Цена на момент добавления
}
