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

// CartRepository реализует операции над коллекцией записей корзины.
type CartRepository struct {
	coll *mongo.Collection
}

// NewCartRepository создаёт репозиторий корзины поверх базы данных.
func NewCartRepository(s *storage.Storage) *CartRepository {
	return &CartRepository{coll: s.Db.Collection(storage.CartsCollection)}
}

// List возвращает записи корзины. Непустой email ограничивает выборку
// корзиной этого пользователя, пустой — возвращает все записи.
func (r *CartRepository) List(ctx context.Context, email string) ([]*models.CartEntry, error) {
	const op = "repository.carts.List"

	filter := bson.M{}
	if email != "" {
		filter["email"] = email
	}
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var result []*models.CartEntry
	if err = cur.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// Create сохраняет новую запись корзины и возвращает её ID.
func (r *CartRepository) Create(ctx context.Context, entry models.CartEntry) (string, error) {
	const op = "repository.carts.Create"

	res, err := r.coll.InsertOne(ctx, entry)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("%s: unexpected inserted id type", op)
	}
	return oid.Hex(), nil
}

// Remove удаляет ровно одну запись корзины по ID.
func (r *CartRepository) Remove(ctx context.Context, id string) (int64, error) {
	const op = "repository.carts.Remove"

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, ErrInvalidID)
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return res.DeletedCount, nil
}
