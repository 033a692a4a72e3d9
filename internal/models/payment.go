package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment представляет завершённую оплату заказа. Запись создаётся один раз
// при чекауте и далее не изменяется.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	Price         float64            `bson:"price" json:"price"`
	Currency      string             `bson:"currency" json:"currency"`
	TransactionID string             `bson:"transaction_id" json:"transaction_id"`
	MenuItemIDs   []string           `bson:"menu_item_ids" json:"menu_item_ids"`
	CartIDs       []string           `bson:"cart_ids" json:"cart_ids"`
	Status        string             `bson:"status" json:"status"`
	Date          time.Time          `bson:"date" json:"date"`
}

// DummyPayment используется для приёма данных из JSON-запроса на завершение чекаута.
type DummyPayment struct {
	Email         string   `json:"email" validate:"required,email"`     // Владелец заказа
	Price         float64  `json:"price" validate:"required,gt=0"`      // Итоговая сумма
	Currency      string   `json:"currency"`                            // Валюта, по умолчанию usd
	TransactionID string   `json:"transaction_id" validate:"required"`  // Идентификатор транзакции шлюза
	MenuItemIDs   []string `json:"menu_item_ids" validate:"required"`   // Купленные позиции меню
	CartIDs       []string `json:"cart_ids" validate:"required,min=1"`  // Очищаемые записи корзины
	Status        string   `json:"status"`                              // Статус оплаты
}

// CheckoutResult объединяет результаты двух операций чекаута:
// вставки платежа и удаления записей корзины.
type CheckoutResult struct {
	PaymentID    string `json:"payment_id"`
	DeletedCarts int64  `json:"deleted_carts"`
}
