// Package services содержит бизнес-логику работы с пользователями и их ролями.
package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/bistro-backend/internal/models"
	"github.com/magabrotheeeer/bistro-backend/internal/storage/repository"
)

// UserRepository определяет методы для работы с пользователями в хранилище.
type UserRepository interface {
	// Create добавляет нового пользователя и возвращает его ID.
	Create(ctx context.Context, user models.User) (string, error)
	// ListAll возвращает всех пользователей.
	ListAll(ctx context.Context) ([]*models.User, error)
	// GetByEmail возвращает пользователя по email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// PromoteToAdmin выставляет пользователю роль admin.
	PromoteToAdmin(ctx context.Context, id string) (int64, error)
	// Remove удаляет пользователя по ID.
	Remove(ctx context.Context, id string) (int64, error)
}

// UserService реализует бизнес-логику работы с пользователями.
type UserService struct {
	repo UserRepository
	log  *slog.Logger
}

// NewUserService создает новый экземпляр UserService.
func NewUserService(repo UserRepository, log *slog.Logger) *UserService {
	return &UserService{
		repo: repo,
		log:  log,
	}
}

// Create сохраняет нового пользователя с ролью user.
// Конфликт по email возвращается как repository.ErrUserExists:
// идемпотентная регистрация при первом входе опирается на уникальный
// индекс хранилища, а не на проверку перед вставкой.
func (s *UserService) Create(ctx context.Context, req models.DummyUser) (string, error) {
	user := models.User{
		Email:     req.Email,
		Name:      req.Name,
		Role:      models.RoleUser,
		CreatedAt: time.Now().UTC(),
	}
	id, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", err
	}
	s.log.Info("created new user", slog.String("id", id))
	return id, nil
}

// List возвращает всех пользователей.
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.repo.ListAll(ctx)
}

// IsAdmin возвращает true, если у пользователя с указанным email роль admin.
// Отсутствие записи — не ошибка: такой пользователь не администратор.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.Role == models.RoleAdmin, nil
}

// Promote выставляет пользователю роль admin по ID,
// возвращает количество изменённых документов.
func (s *UserService) Promote(ctx context.Context, id string) (int64, error) {
	count, err := s.repo.PromoteToAdmin(ctx, id)
	if err != nil {
		return 0, err
	}
	s.log.Info("promoted user to admin", slog.String("id", id))
	return count, nil
}

// Remove удаляет ровно одного пользователя по ID.
func (s *UserService) Remove(ctx context.Context, id string) (int64, error) {
	return s.repo.Remove(ctx, id)
}
