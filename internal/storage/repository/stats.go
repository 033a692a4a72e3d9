package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/magabrotheeeer/bistro-backend/internal/models"
	"github.com/magabrotheeeer/bistro-backend/internal/storage"
)

// StatsRepository выполняет агрегирующие запросы по нескольким коллекциям.
type StatsRepository struct {
	users    *mongo.Collection
	menus    *mongo.Collection
	payments *mongo.Collection
}

// NewStatsRepository создаёт репозиторий статистики поверх базы данных.
func NewStatsRepository(s *storage.Storage) *StatsRepository {
	return &StatsRepository{
		users:    s.Db.Collection(storage.UsersCollection),
		menus:    s.Db.Collection(storage.MenusCollection),
		payments: s.Db.Collection(storage.PaymentsCollection),
	}
}

// Counts возвращает приблизительные размеры коллекций пользователей,
// меню и платежей. Счётчики не согласованы транзакционно
// с конкурентными записями.
func (r *StatsRepository) Counts(ctx context.Context) (users, menus, payments int64, err error) {
	const op = "repository.stats.Counts"

	if users, err = r.users.EstimatedDocumentCount(ctx); err != nil {
		return 0, 0, 0, fmt.Errorf("%s: %w", op, err)
	}
	if menus, err = r.menus.EstimatedDocumentCount(ctx); err != nil {
		return 0, 0, 0, fmt.Errorf("%s: %w", op, err)
	}
	if payments, err = r.payments.EstimatedDocumentCount(ctx); err != nil {
		return 0, 0, 0, fmt.Errorf("%s: %w", op, err)
	}
	return users, menus, payments, nil
}

// TotalRevenue суммирует поле price по всем платежам, 0 при пустой коллекции.
func (r *StatsRepository) TotalRevenue(ctx context.Context) (float64, error) {
	const op = "repository.stats.TotalRevenue"

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalRevenue", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
	}
	cur, err := r.payments.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	var rows []struct {
		TotalRevenue float64 `bson:"totalRevenue"`
	}
	if err = cur.All(ctx, &rows); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].TotalRevenue, nil
}

// SalesByCategory разворачивает списки купленных позиций всех платежей,
// джойнит каждую позицию с коллекцией меню по ID и группирует по категории,
// возвращая количество проданных позиций и сумму их цен.
//
// Идентификаторы удалённых позиций меню не разрешаются $lookup-ом и молча
// выпадают из отчёта, занижая историческую выручку. Поведение сохранено
// намеренно: снапшота цены на момент продажи в платеже нет, корректно
// восстановить строку для удалённой позиции нечем.
func (r *StatsRepository) SalesByCategory(ctx context.Context) ([]*models.CategorySales, error) {
	const op = "repository.stats.SalesByCategory"

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$unwind", Value: "$menu_item_ids"}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: storage.MenusCollection},
			{Key: "let", Value: bson.D{
				{Key: "menuItemId", Value: bson.D{{Key: "$toObjectId", Value: "$menu_item_ids"}}},
			}},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$match", Value: bson.D{
					{Key: "$expr", Value: bson.D{{Key: "$eq", Value: bson.A{"$_id", "$$menuItemId"}}}},
				}}},
			}},
			{Key: "as", Value: "menuItem"},
		}}},
		bson.D{{Key: "$unwind", Value: "$menuItem"}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$menuItem.category"},
			{Key: "quantity", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "totalRevenue", Value: bson.D{{Key: "$sum", Value: "$menuItem.price"}}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "category", Value: "$_id"},
			{Key: "quantity", Value: "$quantity"},
			{Key: "totalRevenue", Value: "$totalRevenue"},
		}}},
	}
	cur, err := r.payments.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var result []*models.CategorySales
	if err = cur.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
