package middlewarectx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func doLimitedRequest(t *testing.T, handler http.Handler, email string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/payments/"+email, nil)
	req = req.WithContext(context.WithValue(req.Context(), UserEmail, email))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RateLimitMiddleware(newTestLogger())(next)

	t.Run("лимит исчерпывается отдельным клиентом", func(t *testing.T) {
		for i := 0; i < limitBurst; i++ {
			assert.Equal(t, http.StatusOK, doLimitedRequest(t, handler, "alice@example.com"))
		}
		assert.Equal(t, http.StatusTooManyRequests, doLimitedRequest(t, handler, "alice@example.com"))
	})

	t.Run("лимит одного клиента не задевает другого", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, doLimitedRequest(t, handler, "bob@example.com"))
	})
}

func TestRateLimitMiddleware_NoEmailFallsBackToAddr(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RateLimitMiddleware(newTestLogger())(next)

	req := httptest.NewRequest(http.MethodGet, "/payments/someone", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
