package paymentprovider

// CreateIntentRequest — параметры создания платёжного намерения.
// Amount задаётся в минимальных единицах валюты (центах).
type CreateIntentRequest struct {
	Amount   int64  `json:"amount" validate:"required,gt=0"`
	Currency string `json:"currency" validate:"required"`
}

// PaymentIntent — ответ Stripe на создание платёжного намерения.
// ClientSecret возвращается клиенту как есть для завершения оплаты.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

// apiError — обёртка ошибки Stripe API.
type apiError struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
