package middlewarectx

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	applibjwt "github.com/magabrotheeeer/bistro-backend/internal/lib/jwt"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestJWTMiddleware(t *testing.T) {
	maker := applibjwt.NewJWTMaker("test_secret", time.Hour)

	validToken, err := maker.GenerateToken("user@example.com", "User")
	require.NoError(t, err)

	expiredMaker := applibjwt.NewJWTMaker("test_secret", -time.Hour)
	expiredToken, err := expiredMaker.GenerateToken("user@example.com", "User")
	require.NoError(t, err)

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectNext     bool
	}{
		{
			name:           "валидный токен",
			authHeader:     "Bearer " + validToken,
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "заголовок отсутствует",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "нет префикса Bearer",
			authHeader:     validToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "мусор вместо токена",
			authHeader:     "Bearer not.a.token",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "истёкший токен",
			authHeader:     "Bearer " + expiredToken,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			var gotEmail string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotEmail, _ = r.Context().Value(UserEmail).(string)
				w.WriteHeader(http.StatusOK)
			})

			handler := JWTMiddleware(maker, newTestLogger())(next)

			req := httptest.NewRequest(http.MethodGet, "/payments/user@example.com", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectNext, nextCalled)
			if tt.expectNext {
				assert.Equal(t, "user@example.com", gotEmail)
			}
		})
	}
}
