package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/magabrotheeeer/bistro-backend/internal/models"
	"github.com/magabrotheeeer/bistro-backend/internal/storage"
)

// PaymentRepository реализует операции над коллекцией платежей.
// Для чекаута держит клиент целиком: вставка платежа и очистка корзины
// выполняются в одной multi-document транзакции.
type PaymentRepository struct {
	client   *mongo.Client
	payments *mongo.Collection
	carts    *mongo.Collection
}

// NewPaymentRepository создаёт репозиторий платежей поверх базы данных.
func NewPaymentRepository(s *storage.Storage) *PaymentRepository {
	return &PaymentRepository{
		client:   s.Client,
		payments: s.Db.Collection(storage.PaymentsCollection),
		carts:    s.Db.Collection(storage.CartsCollection),
	}
}

// ListByEmail возвращает историю платежей пользователя.
func (r *PaymentRepository) ListByEmail(ctx context.Context, email string) ([]*models.Payment, error) {
	const op = "repository.payments.ListByEmail"

	cur, err := r.payments.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var result []*models.Payment
	if err = cur.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// RecordCheckout вставляет платёж и удаляет перечисленные записи корзины
// в одной транзакции: либо платёж записан и корзина очищена, либо ни то ни другое.
// Возвращает ID платежа и количество удалённых записей корзины.
func (r *PaymentRepository) RecordCheckout(ctx context.Context, payment models.Payment) (*models.CheckoutResult, error) {
	const op = "repository.payments.RecordCheckout"

	cartOIDs := make([]primitive.ObjectID, 0, len(payment.CartIDs))
	for _, id := range payment.CartIDs {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidID)
		}
		cartOIDs = append(cartOIDs, oid)
	}

	session, err := r.client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer session.EndSession(ctx)

	result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		insertRes, err := r.payments.InsertOne(sc, payment)
		if err != nil {
			return nil, err
		}
		oid, ok := insertRes.InsertedID.(primitive.ObjectID)
		if !ok {
			return nil, fmt.Errorf("unexpected inserted id type")
		}

		deleteRes, err := r.carts.DeleteMany(sc, bson.M{"_id": bson.M{"$in": cartOIDs}})
		if err != nil {
			return nil, err
		}
		return &models.CheckoutResult{
			PaymentID:    oid.Hex(),
			DeletedCarts: deleteRes.DeletedCount,
		}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result.(*models.CheckoutResult), nil
}
