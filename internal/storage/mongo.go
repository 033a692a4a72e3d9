// Package storage реализует подключение к MongoDB и первичную инициализацию
// коллекций ресторанного сервиса: users, menus, carts, payments.
package storage

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/magabrotheeeer/bistro-backend/internal/config"
)

// Имена коллекций базы данных.
const (
	UsersCollection    = "users"
	MenusCollection    = "menus"
	CartsCollection    = "carts"
	PaymentsCollection = "payments"
)

// Storage инкапсулирует клиент MongoDB и выбранную базу данных.
type Storage struct {
	Client *mongo.Client
	Db     *mongo.Database
}

// New создаёт подключение к MongoDB, проверяет его ping-ом
// и создаёт обязательные индексы.
func New(ctx context.Context, cfg config.MongoConnection) (*Storage, error) {
	const op = "storage.New"

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.TimeoutMongo).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s := &Storage{
		Client: client,
		Db:     client.Database(cfg.Database),
	}
	if err = s.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s, nil
}

// EnsureIndexes создаёт уникальный индекс по email пользователей.
// Конфликт вставки дубликата приходит из хранилища как duplicate key error,
// а не через гонкоопасную проверку перед вставкой.
func (s *Storage) EnsureIndexes(ctx context.Context) error {
	const op = "storage.EnsureIndexes"

	_, err := s.Db.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Close закрывает соединение с MongoDB.
func (s *Storage) Close(ctx context.Context) error {
	return s.Client.Disconnect(ctx)
}
