package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/magabrotheeeer/bistro-backend/internal/config"
	"github.com/magabrotheeeer/bistro-backend/internal/models"
	"github.com/magabrotheeeer/bistro-backend/internal/storage"
)

// setupTestStorage поднимает контейнер MongoDB и возвращает хранилище.
// Replica set обязателен: транзакция чекаута не работает на одиночном mongod.
func setupTestStorage(t *testing.T) (*storage.Storage, func()) {
	ctx := context.Background()

	mongoContainer, err := mongodb.Run(ctx, "mongo:7", mongodb.WithReplicaSet("rs0"))
	testcontainers.CleanupContainer(t, mongoContainer)
	require.NoError(t, err, "failed to start container")

	uri, err := mongoContainer.ConnectionString(ctx)
	require.NoError(t, err, "failed to get connection string")

	// Пробуем подключиться несколько раз с ретраями
	var st *storage.Storage
	for range 10 {
		st, err = storage.New(ctx, config.MongoConnection{
			URI:          uri,
			Database:     "bistro_test",
			TimeoutMongo: 10 * time.Second,
		})
		if err == nil {
			break
		}
		time.Sleep(1 * time.Second)
	}
	require.NoError(t, err, "failed to create storage after retries")

	cleanup := func() {
		if st != nil {
			_ = st.Close(ctx)
		}
	}
	return st, cleanup
}

// seedMenuItem вставляет позицию меню и возвращает её hex ID.
func seedMenuItem(t *testing.T, st *storage.Storage, name, category string, price float64) string {
	t.Helper()
	res, err := st.Db.Collection(storage.MenusCollection).InsertOne(context.Background(), models.MenuItem{
		Name:     name,
		Category: category,
		Price:    price,
	})
	require.NoError(t, err)
	return res.InsertedID.(primitive.ObjectID).Hex()
}

// seedCartEntry вставляет запись корзины и возвращает её hex ID.
func seedCartEntry(t *testing.T, st *storage.Storage, email, name string, price float64) string {
	t.Helper()
	res, err := st.Db.Collection(storage.CartsCollection).InsertOne(context.Background(), models.CartEntry{
		Email:   email,
		Name:    name,
		Price:   price,
		AddedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	return res.InsertedID.(primitive.ObjectID).Hex()
}

// seedPayment вставляет платёж напрямую, минуя чекаут.
func seedPayment(t *testing.T, st *storage.Storage, email string, price float64, menuItemIDs []string) {
	t.Helper()
	_, err := st.Db.Collection(storage.PaymentsCollection).InsertOne(context.Background(), models.Payment{
		Email:       email,
		Price:       price,
		Currency:    "usd",
		MenuItemIDs: menuItemIDs,
		Status:      "pending",
		Date:        time.Now().UTC(),
	})
	require.NoError(t, err)
}

func countDocs(t *testing.T, st *storage.Storage, collection string, filter bson.M) int64 {
	t.Helper()
	count, err := st.Db.Collection(collection).CountDocuments(context.Background(), filter)
	require.NoError(t, err)
	return count
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	st, cleanup := setupTestStorage(t)
	defer cleanup()

	repo := NewUserRepository(st)
	ctx := context.Background()

	id, err := repo.Create(ctx, models.User{
		Email:     "alice@example.com",
		Name:      "Alice",
		Role:      models.RoleUser,
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	// Уникальный индекс по email, а не проверка перед вставкой
	_, err = repo.Create(ctx, models.User{
		Email:     "alice@example.com",
		Name:      "Alice Again",
		Role:      models.RoleUser,
		CreatedAt: time.Now().UTC(),
	})
	require.ErrorIs(t, err, ErrUserExists)

	assert.Equal(t, int64(1), countDocs(t, st, storage.UsersCollection, bson.M{"email": "alice@example.com"}))
}

func TestPaymentRepository_RecordCheckout(t *testing.T) {
	st, cleanup := setupTestStorage(t)
	defer cleanup()

	repo := NewPaymentRepository(st)
	ctx := context.Background()

	c1 := seedCartEntry(t, st, "alice@example.com", "Tomato Soup", 7.5)
	c2 := seedCartEntry(t, st, "alice@example.com", "Tiramisu", 8.99)
	seedCartEntry(t, st, "bob@example.com", "Tomato Soup", 7.5)

	result, err := repo.RecordCheckout(ctx, models.Payment{
		Email:         "alice@example.com",
		Price:         16.49,
		Currency:      "usd",
		TransactionID: "pi_123",
		CartIDs:       []string{c1, c2},
		Status:        "pending",
		Date:          time.Now().UTC(),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.PaymentID)
	assert.Equal(t, int64(2), result.DeletedCarts)

	// Удалены ровно c1 и c2, запись другого пользователя не тронута
	assert.Equal(t, int64(0), countDocs(t, st, storage.CartsCollection, bson.M{"email": "alice@example.com"}))
	assert.Equal(t, int64(1), countDocs(t, st, storage.CartsCollection, bson.M{"email": "bob@example.com"}))
	assert.Equal(t, int64(1), countDocs(t, st, storage.PaymentsCollection, bson.M{"email": "alice@example.com"}))
}

func TestPaymentRepository_RecordCheckout_InvalidCartID(t *testing.T) {
	st, cleanup := setupTestStorage(t)
	defer cleanup()

	repo := NewPaymentRepository(st)

	_, err := repo.RecordCheckout(context.Background(), models.Payment{
		Email:   "alice@example.com",
		Price:   10,
		CartIDs: []string{"not-an-object-id"},
	})
	require.ErrorIs(t, err, ErrInvalidID)

	// Платёж не записан
	assert.Equal(t, int64(0), countDocs(t, st, storage.PaymentsCollection, bson.M{}))
}

func TestStatsRepository_TotalRevenue(t *testing.T) {
	st, cleanup := setupTestStorage(t)
	defer cleanup()

	repo := NewStatsRepository(st)
	ctx := context.Background()

	// Пустая коллекция платежей
	revenue, err := repo.TotalRevenue(ctx)
	require.NoError(t, err)
	assert.Zero(t, revenue)

	seedPayment(t, st, "alice@example.com", 10.5, nil)
	seedPayment(t, st, "bob@example.com", 2, nil)

	revenue, err = repo.TotalRevenue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12.5, revenue)
}

func TestStatsRepository_SalesByCategory(t *testing.T) {
	st, cleanup := setupTestStorage(t)
	defer cleanup()

	repo := NewStatsRepository(st)
	ctx := context.Background()

	soupA := seedMenuItem(t, st, "Tomato Soup", "Soup", 5)
	soupB := seedMenuItem(t, st, "Onion Soup", "Soup", 7)
	dessert := seedMenuItem(t, st, "Tiramisu", "Dessert", 3)
	deleted := primitive.NewObjectID().Hex()

	seedPayment(t, st, "alice@example.com", 12, []string{soupA, soupB})
	seedPayment(t, st, "bob@example.com", 3, []string{dessert, deleted})

	rows, err := repo.SalesByCategory(ctx)
	require.NoError(t, err)

	// Две категории; строка для удалённой позиции выпадает из $lookup
	require.Len(t, rows, 2)
	byCategory := make(map[string]*models.CategorySales, len(rows))
	for _, row := range rows {
		byCategory[row.Category] = row
	}

	require.Contains(t, byCategory, "Soup")
	assert.Equal(t, int64(2), byCategory["Soup"].Quantity)
	assert.Equal(t, float64(12), byCategory["Soup"].TotalRevenue)

	require.Contains(t, byCategory, "Dessert")
	assert.Equal(t, int64(1), byCategory["Dessert"].Quantity)
	assert.Equal(t, float64(3), byCategory["Dessert"].TotalRevenue)
}

func TestStatsRepository_Counts(t *testing.T) {
	st, cleanup := setupTestStorage(t)
	defer cleanup()

	repo := NewStatsRepository(st)
	ctx := context.Background()

	userRepo := NewUserRepository(st)
	_, err := userRepo.Create(ctx, models.User{
		Email:     "alice@example.com",
		Role:      models.RoleUser,
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	seedMenuItem(t, st, "Tomato Soup", "Soup", 5)
	seedMenuItem(t, st, "Tiramisu", "Dessert", 3)
	seedPayment(t, st, "alice@example.com", 5, nil)

	users, menus, payments, err := repo.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), users)
	assert.Equal(t, int64(2), menus)
	assert.Equal(t, int64(1), payments)
}
