package services

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/bistro-backend/internal/models"
)

// MockRepo реализует интерфейс CartRepository
type MockRepo struct {
	mock.Mock
}

func (m *MockRepo) List(ctx context.Context, email string) ([]*models.CartEntry, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.CartEntry), args.Error(1)
}

func (m *MockRepo) Create(ctx context.Context, entry models.CartEntry) (string, error) {
	args := m.Called(ctx, entry)
	return args.String(0), args.Error(1)
}

func (m *MockRepo) Remove(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestCartService_Add(t *testing.T) {
	repo := new(MockRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(e models.CartEntry) bool {
		return e.Email == "alice@example.com" &&
			e.MenuItemID == "68aa1b2c3d4e5f6a7b8c9d0e" &&
			e.Price == 7.5 &&
			!e.AddedAt.IsZero()
	})).Return("68aa1b2c3d4e5f6a7b8c9d10", nil)

	svc := NewCartService(repo, newTestLogger())

	id, err := svc.Add(context.Background(), models.DummyCartEntry{
		Email:      "alice@example.com",
		MenuItemID: "68aa1b2c3d4e5f6a7b8c9d0e",
		Name:       "Tomato Soup",
		Price:      7.5,
	})
	require.NoError(t, err)
	assert.Equal(t, "68aa1b2c3d4e5f6a7b8c9d10", id)
	repo.AssertExpectations(t)
}

func TestCartService_List_FilteredByEmail(t *testing.T) {
	repo := new(MockRepo)
	repo.On("List", mock.Anything, "alice@example.com").Return([]*models.CartEntry{
		{Email: "alice@example.com", Name: "Tomato Soup", Price: 7.5},
	}, nil)

	svc := NewCartService(repo, newTestLogger())

	entries, err := svc.List(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "alice@example.com", entries[0].Email)
}

func TestCartService_Remove(t *testing.T) {
	repo := new(MockRepo)
	repo.On("Remove", mock.Anything, "68aa1b2c3d4e5f6a7b8c9d10").Return(int64(1), nil)

	svc := NewCartService(repo, newTestLogger())

	count, err := svc.Remove(context.Background(), "68aa1b2c3d4e5f6a7b8c9d10")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCartService_Remove_Error(t *testing.T) {
	repo := new(MockRepo)
	repo.On("Remove", mock.Anything, "abc").Return(int64(0), errors.New("db error"))

	svc := NewCartService(repo, newTestLogger())

	_, err := svc.Remove(context.Background(), "abc")
	assert.Error(t, err)
}
