// Package services содержит бизнес-логику платежей: создание платёжных
// намерений через шлюз и запись завершённого чекаута.
package services

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/magabrotheeeer/bistro-backend/internal/models"
	"github.com/magabrotheeeer/bistro-backend/internal/paymentprovider"
)

// DefaultCurrency — валюта по умолчанию для платёжных намерений.
const DefaultCurrency = "usd"

// PaymentRepository определяет методы для работы с платежами в хранилище.
type PaymentRepository interface {
	// ListByEmail возвращает историю платежей пользователя.
	ListByEmail(ctx context.Context, email string) ([]*models.Payment, error)
	// RecordCheckout вставляет платёж и удаляет записи корзины одной транзакцией.
	RecordCheckout(ctx context.Context, payment models.Payment) (*models.CheckoutResult, error)
}

// ProviderClient определяет интерфейс платёжного шлюза.
type ProviderClient interface {
	CreatePaymentIntent(ctx context.Context, req paymentprovider.CreateIntentRequest) (*paymentprovider.PaymentIntent, error)
}

// ReceiptPublisher публикует событие о записанном чекауте.
type ReceiptPublisher interface {
	PublishReceipt(message any) error
}

// ReceiptEvent — событие для downstream-потребителей после чекаута.
type ReceiptEvent struct {
	PaymentID string    `json:"payment_id"`
	Email     string    `json:"email"`
	Price     float64   `json:"price"`
	Currency  string    `json:"currency"`
	Date      time.Time `json:"date"`
}

// PaymentService реализует бизнес-логику платежей.
type PaymentService struct {
	repo      PaymentRepository
	provider  ProviderClient
	publisher ReceiptPublisher
	log       *slog.Logger
}

// NewPaymentService создает новый экземпляр PaymentService.
// publisher может быть nil, тогда события чекаута не публикуются.
func NewPaymentService(repo PaymentRepository, provider ProviderClient, publisher ReceiptPublisher, log *slog.Logger) *PaymentService {
	return &PaymentService{
		repo:      repo,
		provider:  provider,
		publisher: publisher,
		log:       log,
	}
}

// ToCents конвертирует цену в минимальные единицы валюты.
// Политика явная: округление к ближайшему целому (half away from zero),
// а не отбрасывание дробных центов.
func ToCents(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CreateIntent создаёт платёжное намерение на указанную сумму
// и возвращает client_secret для завершения оплаты на клиенте.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	intent, err := s.provider.CreatePaymentIntent(ctx, paymentprovider.CreateIntentRequest{
		Amount:   ToCents(price),
		Currency: DefaultCurrency,
	})
	if err != nil {
		return "", err
	}
	s.log.Info("created payment intent", slog.String("intent_id", intent.ID))
	return intent.ClientSecret, nil
}

// ListByEmail возвращает историю платежей пользователя.
func (s *PaymentService) ListByEmail(ctx context.Context, email string) ([]*models.Payment, error) {
	return s.repo.ListByEmail(ctx, email)
}

// Checkout записывает платёж и очищает перечисленные записи корзины.
// После успешной записи публикует событие с чеком; сбой публикации
// логируется и не откатывает чекаут.
func (s *PaymentService) Checkout(ctx context.Context, req models.DummyPayment) (*models.CheckoutResult, error) {
	currency := req.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	status := req.Status
	if status == "" {
		status = "pending"
	}
	payment := models.Payment{
		Email:         req.Email,
		Price:         req.Price,
		Currency:      currency,
		TransactionID: req.TransactionID,
		MenuItemIDs:   req.MenuItemIDs,
		CartIDs:       req.CartIDs,
		Status:        status,
		Date:          time.Now().UTC(),
	}

	result, err := s.repo.RecordCheckout(ctx, payment)
	if err != nil {
		return nil, err
	}
	s.log.Info("recorded checkout",
		slog.String("payment_id", result.PaymentID),
		slog.Int64("deleted_carts", result.DeletedCarts))

	if s.publisher != nil {
		event := ReceiptEvent{
			PaymentID: result.PaymentID,
			Email:     payment.Email,
			Price:     payment.Price,
			Currency:  payment.Currency,
			Date:      payment.Date,
		}
		if err := s.publisher.PublishReceipt(event); err != nil {
			s.log.Warn("failed to publish receipt event", slog.Any("err", err))
		}
	}
	return result, nil
}
