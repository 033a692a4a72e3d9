package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// MenuItem представляет позицию меню ресторана.
// Изменяется только администраторами, читается всеми.
type MenuItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Category string             `bson:"category" json:"category"`
	Price    float64            `bson:"price" json:"price"`
	Recipe   string             `bson:"recipe,omitempty" json:"recipe,omitempty"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
}

// DummyMenuItem используется для приёма данных из JSON-запроса
// на создание или обновление позиции меню.
type DummyMenuItem struct {
	Name     string  `json:"name" validate:"required"`       // Название блюда
	Category string  `json:"category" validate:"required"`   // Категория (soup, dessert и т.д.)
	Price    float64 `json:"price" validate:"required,gt=0"` // Цена (>0)
	Recipe   string  `json:"recipe"`                         // Описание или рецепт
	Image    string  `json:"image"`                          // Ссылка на изображение
}
