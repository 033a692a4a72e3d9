// Package services содержит бизнес-логику статистики для административной панели.
package services

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/bistro-backend/internal/models"
)

// StatsRepository определяет агрегирующие запросы к хранилищу.
type StatsRepository interface {
	// Counts возвращает приблизительные размеры коллекций users, menus, payments.
	Counts(ctx context.Context) (users, menus, payments int64, err error)
	// TotalRevenue суммирует поле price по всем платежам.
	TotalRevenue(ctx context.Context) (float64, error)
	// SalesByCategory возвращает продажи в разрезе категорий меню.
	SalesByCategory(ctx context.Context) ([]*models.CategorySales, error)
}

// StatsService реализует бизнес-логику статистики.
type StatsService struct {
	repo StatsRepository
	log  *slog.Logger
}

// NewStatsService создает новый экземпляр StatsService.
func NewStatsService(repo StatsRepository, log *slog.Logger) *StatsService {
	return &StatsService{
		repo: repo,
		log:  log,
	}
}

// AdminStats возвращает сводку: размеры коллекций и общую выручку.
func (s *StatsService) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	users, menus, payments, err := s.repo.Counts(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.repo.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}
	return &models.AdminStats{
		Users:        users,
		MenuItems:    menus,
		Orders:       payments,
		TotalRevenue: revenue,
	}, nil
}

// OrderStats возвращает продажи по категориям меню. Категории без продаж
// в отчёт не попадают.
func (s *StatsService) OrderStats(ctx context.Context) ([]*models.CategorySales, error) {
	return s.repo.SalesByCategory(ctx)
}
