package middlewarectx

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/render"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/bistro-backend/internal/http/response"
)

// Лимиты на одного клиента.
const (
	limitPerSecond = 20
	limitBurst     = 40
)

// clientLimiters хранит отдельный limiter на каждого клиента.
// Записи не вытесняются: ключей столько, сколько активных пользователей.
type clientLimiters struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func newClientLimiters() *clientLimiters {
	return &clientLimiters{limiters: make(map[string]*rate.Limiter)}
}

func (c *clientLimiters) get(key string) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()
	lim, ok := c.limiters[key]
	if !ok {
		lim = rate.NewLimiter(limitPerSecond, limitBurst)
		c.limiters[key] = lim
	}
	return lim
}

// RateLimitMiddleware ограничивает частоту запросов отдельно для каждого
// клиента. Ключ — email из проверенного токена, поэтому middleware стоит
// после JWTMiddleware; без email в контексте ключом служит адрес клиента.
// Лишние запросы получают 429.
func RateLimitMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	limiters := newClientLimiters()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key, ok := r.Context().Value(UserEmail).(string)
			if !ok || key == "" {
				key = r.RemoteAddr
			}
			if !limiters.get(key).Allow() {
				log.Error("too many requests", slog.String("client", key))
				w.WriteHeader(http.StatusTooManyRequests)
				render.JSON(w, r, response.Error("too many requests"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
