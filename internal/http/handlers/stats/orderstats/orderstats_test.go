package orderstats

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

// MockService реализует интерфейс orderstats.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) OrderStats(ctx context.Context) ([]*models.CategorySales, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]*models.CategorySales), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestOrderStatsHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное чтение статистики по категориям",
			setupMock: func(m *MockService) {
				rows := []*models.CategorySales{
					{Category: "soup", Quantity: 12, TotalRevenue: 90},
					{Category: "dessert", Quantity: 7, TotalRevenue: 62.93},
				}
				m.On("OrderStats", mock.Anything).Return(rows, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"category":"soup"`,
		},
		{
			name: "нет ни одного платежа",
			setupMock: func(m *MockService) {
				m.On("OrderStats", mock.Anything).Return([]*models.CategorySales{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"OK"`,
		},
		{
			name: "ошибка агрегации",
			setupMock: func(m *MockService) {
				m.On("OrderStats", mock.Anything).Return(nil, errors.New("aggregation error"))
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

			req := httptest.NewRequest(http.MethodGet, "/order-stats", nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
