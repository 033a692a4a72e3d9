package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/magabrotheeeer/bistro-backend/internal/models"
	"github.com/magabrotheeeer/bistro-backend/internal/storage"
)

// MenuRepository реализует операции над коллекцией позиций меню.
type MenuRepository struct {
	coll *mongo.Collection
}

// NewMenuRepository создаёт репозиторий меню поверх базы данных.
func NewMenuRepository(s *storage.Storage) *MenuRepository {
	return &MenuRepository{coll: s.Db.Collection(storage.MenusCollection)}
}

// ListAll возвращает все позиции меню.
func (r *MenuRepository) ListAll(ctx context.Context) ([]*models.MenuItem, error) {
	const op = "repository.menu.ListAll"

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var result []*models.MenuItem
	if err = cur.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// Read возвращает позицию меню по ID или ErrNotFound.
func (r *MenuRepository) Read(ctx context.Context, id string) (*models.MenuItem, error) {
	const op = "repository.menu.Read"

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidID)
	}
	var item models.MenuItem
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &item, nil
}

// Create сохраняет новую позицию меню и возвращает её ID.
func (r *MenuRepository) Create(ctx context.Context, item models.MenuItem) (string, error) {
	const op = "repository.menu.Create"

	res, err := r.coll.InsertOne(ctx, item)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("%s: unexpected inserted id type", op)
	}
	return oid.Hex(), nil
}

// Update заменяет перечисленные поля позиции меню по ID ($set),
// не затрагивая остальные. Возвращает количество изменённых документов.
func (r *MenuRepository) Update(ctx context.Context, id string, item models.DummyMenuItem) (int64, error) {
	const op = "repository.menu.Update"

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, ErrInvalidID)
	}
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"name":     item.Name,
			"category": item.Category,
			"price":    item.Price,
			"recipe":   item.Recipe,
			"image":    item.Image,
		}},
	)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return res.ModifiedCount, nil
}

// Remove удаляет ровно одну позицию меню по ID.
func (r *MenuRepository) Remove(ctx context.Context, id string) (int64, error) {
	const op = "repository.menu.Remove"

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
