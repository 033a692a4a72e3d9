// Package services содержит бизнес-логику работы с меню, включая кеширование
// полного списка позиций.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/bistro-backend/internal/models"
)

// кеш-ключ и время жизни списка меню
const (
	menuListCacheKey = "menu:list"
	menuListCacheTTL = time.Hour
)

// MenuRepository определяет методы для работы с позициями меню в хранилище.
type MenuRepository interface {
	// ListAll возвращает все позиции меню.
	ListAll(ctx context.Context) ([]*models.MenuItem, error)
	// Read возвращает позицию меню по ID.
	Read(ctx context.Context, id string) (*models.MenuItem, error)
	// Create добавляет новую позицию меню и возвращает её ID.
	Create(ctx context.Context, item models.MenuItem) (string, error)
	// Update обновляет поля позиции меню по ID.
	Update(ctx context.Context, id string, item models.DummyMenuItem) (int64, error)
	// Remove удаляет позицию меню по ID.
	Remove(ctx context.Context, id string) (int64, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// MenuService реализует бизнес-логику работы с меню.
// Чтение списка идёт через кеш, любая административная запись его инвалидирует.
type MenuService struct {
	repo  MenuRepository
	cache Cache
	log   *slog.Logger
}

// NewMenuService создает новый экземпляр MenuService.
func NewMenuService(repo MenuRepository, cache Cache, log *slog.Logger) *MenuService {
	return &MenuService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// List возвращает все позиции меню, используя кеш или репозиторий.
func (s *MenuService) List(ctx context.Context) ([]*models.MenuItem, error) {
	var result []*models.MenuItem
	found, err := s.cache.Get(menuListCacheKey, &result)
	if err != nil {
		s.log.Warn("failed to read menu list from cache", slog.Any("err", err))
	}
	if found {
		return result, nil
	}

	result, err = s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(menuListCacheKey, result, menuListCacheTTL); err != nil {
		s.log.Warn("failed to cache menu list", slog.Any("err", err))
	}
	return result, nil
}

// Read возвращает позицию меню по ID.
func (s *MenuService) Read(ctx context.Context, id string) (*models.MenuItem, error) {
	return s.repo.Read(ctx, id)
}

// Create добавляет новую позицию меню и возвращает её ID.
func (s *MenuService) Create(ctx context.Context, req models.DummyMenuItem) (string, error) {
	item := models.MenuItem{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Recipe:   req.Recipe,
		Image:    req.Image,
	}
	id, err := s.repo.Create(ctx, item)
	if err != nil {
		return "", err
	}
	s.log.Info("created new menu item", slog.String("id", id))
	s.invalidateList()
	return id, nil
}

// Update обновляет поля позиции меню по ID,
// возвращает количество изменённых документов.
func (s *MenuService) Update(ctx context.Context, id string, req models.DummyMenuItem) (int64, error) {
	count, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return 0, err
	}
	s.invalidateList()
	return count, nil
}

// Remove удаляет позицию меню по ID,
// возвращает количество удалённых документов.
func (s *MenuService) Remove(ctx context.Context, id string) (int64, error) {
	count, err := s.repo.Remove(ctx, id)
	if err != nil {
		return 0, err
	}
	s.invalidateList()
	return count, nil
}

func (s *MenuService) invalidateList() {
	if err := s.cache.Invalidate(menuListCacheKey); err != nil {
		s.log.Warn("failed to invalidate menu list cache", slog.Any("err", err))
	}
}
