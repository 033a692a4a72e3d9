// Package services содержит бизнес-логику работы с корзиной.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/bistro-backend/internal/models"
)

// CartRepository определяет методы для работы с записями корзины в хранилище.
type CartRepository interface {
	// List возвращает записи корзины, при непустом email — только этого пользователя.
	List(ctx context.Context, email string) ([]*models.CartEntry, error)
	// Create добавляет запись корзины и возвращает её ID.
	Create(ctx context.Context, entry models.CartEntry) (string, error)
	// Remove удаляет запись корзины по ID.
	Remove(ctx context.Context, id string) (int64, error)
}

// CartService реализует бизнес-логику работы с корзиной.
type CartService struct {
	repo CartRepository
	log  *slog.Logger
}

// NewCartService создает новый экземпляр CartService.
func NewCartService(repo CartRepository, log *slog.Logger) *CartService {
	return &CartService{
		repo: repo,
		log:  log,
	}
}

// List возвращает записи корзины по email владельца.
func (s *CartService) List(ctx context.Context, email string) ([]*models.CartEntry, error) {
	return s.repo.List(ctx, email)
}

// Add добавляет позицию меню в корзину с фиксацией цены на момент добавления.
func (s *CartService) Add(ctx context.Context, req models.DummyCartEntry) (string, error) {
	entry := models.CartEntry{
		Email:      req.Email,
		MenuItemID: req.MenuItemID,
		Name:       req.Name,
		Image:      req.Image,
		Price:      req.Price,
		AddedAt:    time.Now().UTC(),
	}
	id, err := s.repo.Create(ctx, entry)
	if err != nil {
		return "", err
	}
	s.log.Info("added cart entry", slog.String("id", id), slog.String("email", req.Email))
	return id, nil
}

// Remove удаляет ровно одну запись корзины по ID.
func (s *CartService) Remove(ctx context.Context, id string) (int64, error) {
	return s.repo.Remove(ctx, id)
}
