package adminstats

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/bistro-backend/internal/models"
)

// MockService реализует интерфейс adminstats.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.(*models.AdminStats), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestAdminStatsHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное чтение статистики",
			setupMock: func(m *MockService) {
				m.On("AdminStats", mock.Anything).Return(&models.AdminStats{
					Users:        10,
					MenuItems:    25,
					Orders:       40,
					TotalRevenue: 1234.5,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"total_revenue":1234.5`,
		},
		{
			name: "пустая коллекция платежей",
			setupMock: func(m *MockService) {
				m.On("AdminStats", mock.Anything).Return(&models.AdminStats{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"total_revenue":0`,
		},
		{
			name: "ошибка хранилища",
			setupMock: func(m *MockService) {
				m.On("AdminStats", mock.Anything).Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"could not collect stats"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/admin-stats", nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
