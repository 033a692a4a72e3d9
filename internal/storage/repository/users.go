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

// UserRepository реализует операции над коллекцией пользователей.
type UserRepository struct {
	coll *mongo.Collection
}

// NewUserRepository создаёт репозиторий пользователей поверх базы данных.
func NewUserRepository(s *storage.Storage) *UserRepository {
	return &UserRepository{coll: s.Db.Collection(storage.UsersCollection)}
}

// Create сохраняет нового пользователя и возвращает его ID.
// Дубликат email приходит из уникального индекса как ErrUserExists.
func (r *UserRepository) Create(ctx context.Context, user models.User) (string, error) {
	const op = "repository.users.Create"

	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", fmt.Errorf("%s: %w", op, ErrUserExists)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("%s: unexpected inserted id type", op)
	}
	return oid.Hex(), nil
}

// ListAll возвращает всех пользователей.
func (r *UserRepository) ListAll(ctx context.Context) ([]*models.User, error) {
	const op = "repository.users.ListAll"

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var result []*models.User
	if err = cur.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetByEmail возвращает пользователя по email или ErrNotFound.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "repository.users.GetByEmail"

	var u models.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}

// PromoteToAdmin выставляет роль admin пользователю по ID,
// возвращает количество изменённых документов.
func (r *UserRepository) PromoteToAdmin(ctx context.Context, id string) (int64, error) {
	const op = "repository.users.PromoteToAdmin"

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, ErrInvalidID)
	}
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"role": models.RoleAdmin}},
	)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return res.ModifiedCount, nil
}

// Remove удаляет ровно одного пользователя по ID,
// возвращает количество удалённых документов.
func (r *UserRepository) Remove(ctx context.Context, id string) (int64, error) {
	const op = "repository.users.Remove"

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
