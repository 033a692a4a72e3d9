package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/bistro-backend/internal/http/response"
	"github.com/magabrotheeeer/bistro-backend/internal/lib/sl"
)

// RoleService определяет интерфейс проверки роли пользователя.
type RoleService interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// AdminMiddleware создает middleware, пропускающий только администраторов.
// Роль проверяется одним обращением к хранилищу на каждый запрос,
// между запросами не кешируется.
func AdminMiddleware(log *slog.Logger, roleService RoleService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.AdminMiddleware"

			email, ok := r.Context().Value(UserEmail).(string)
			if !ok || email == "" {
				log.Error("user identification missing", slog.String("op", op))
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("unauthorized"))
				return
			}

			isAdmin, err := roleService.IsAdmin(r.Context(), email)
			if err != nil {
				log.Error("failed to check user role", slog.String("op", op), sl.Err(err))
				w.WriteHeader(http.StatusInternalServerError)
				render.JSON(w, r, response.Error("internal service error"))
				return
			}
			if !isAdmin {
				log.Error("forbidden access", slog.String("op", op), slog.String("email", email))
				w.WriteHeader(http.StatusForbidden)
				render.JSON(w, r, response.Error("forbidden access"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
