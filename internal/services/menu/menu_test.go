package services

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/bistro-backend/internal/models"
)

// MockRepo реализует интерфейс MenuRepository
type MockRepo struct {
	mock.Mock
}

func (m *MockRepo) ListAll(ctx context.Context) ([]*models.MenuItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MenuItem), args.Error(1)
}

func (m *MockRepo) Read(ctx context.Context, id string) (*models.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MenuItem), args.Error(1)
}

func (m *MockRepo) Create(ctx context.Context, item models.MenuItem) (string, error) {
	args := m.Called(ctx, item)
	return args.String(0), args.Error(1)
}

func (m *MockRepo) Update(ctx context.Context, id string, item models.DummyMenuItem) (int64, error) {
	args := m.Called(ctx, id, item)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepo) Remove(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockCache реализует интерфейс Cache
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) Set(key string, value any, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Invalidate(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestMenuService_List_CacheMiss(t *testing.T) {
	repo := new(MockRepo)
	cache := new(MockCache)

	items := []*models.MenuItem{
		{Name: "Tomato Soup", Category: "soup", Price: 5},
	}
	cache.On("Get", menuListCacheKey, mock.Anything).Return(false, nil)
	repo.On("ListAll", mock.Anything).Return(items, nil)
	cache.On("Set", menuListCacheKey, items, menuListCacheTTL).Return(nil)

	svc := NewMenuService(repo, cache, newTestLogger())

	result, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, result, 1)

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestMenuService_List_CacheHit(t *testing.T) {
	repo := new(MockRepo)
	cache := new(MockCache)

	cache.On("Get", menuListCacheKey, mock.Anything).Return(true, nil)

	svc := NewMenuService(repo, cache, newTestLogger())

	_, err := svc.List(context.Background())
	require.NoError(t, err)

	repo.AssertNotCalled(t, "ListAll", mock.Anything)
}

func TestMenuService_Create_InvalidatesCache(t *testing.T) {
	repo := new(MockRepo)
	cache := new(MockCache)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(item models.MenuItem) bool {
		return item.Name == "Onion Soup" && item.Category == "soup" && item.Price == 7
	})).Return("651fa0b1c2d3e4f5a6b7c8d9", nil)
	cache.On("Invalidate", menuListCacheKey).Return(nil)

	svc := NewMenuService(repo, cache, newTestLogger())

	id, err := svc.Create(context.Background(), models.DummyMenuItem{
		Name:     "Onion Soup",
		Category: "soup",
		Price:    7,
	})
	require.NoError(t, err)
	assert.Equal(t, "651fa0b1c2d3e4f5a6b7c8d9", id)

	cache.AssertExpectations(t)
}

func TestMenuService_Remove_InvalidatesCache(t *testing.T) {
	repo := new(MockRepo)
	cache := new(MockCache)

	repo.On("Remove", mock.Anything, "651fa0b1c2d3e4f5a6b7c8d9").Return(int64(1), nil)
	cache.On("Invalidate", menuListCacheKey).Return(nil)

	svc := NewMenuService(repo, cache, newTestLogger())

	count, err := svc.Remove(context.Background(), "651fa0b1c2d3e4f5a6b7c8d9")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	cache.AssertExpectations(t)
}
