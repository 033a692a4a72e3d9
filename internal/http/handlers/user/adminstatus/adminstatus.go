// Package adminstatus реализует HTTP-обработчик проверки роли пользователя.
//
// Пользователь может спросить о роли только самого себя: email в пути
// сверяется с email из проверенного токена, несовпадение — 403.
package adminstatus

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/bistro-backend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/bistro-backend/internal/http/response"
	"github.com/magabrotheeeer/bistro-backend/internal/lib/sl"
)

// Handler обрабатывает запросы на проверку роли пользователя.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики пользователей
}

// Service описывает интерфейс проверки роли пользователя.
type Service interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Проверить, является ли пользователь администратором
// @Description Доступно только самому пользователю: email в пути должен совпадать с email токена.
// @Tags Users
// @Produce  json
// @Param email path string true "Email пользователя"
// @Success 200 {object} map[string]any "Флаг admin"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Чужой email"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /users/admin/{email} [get]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.adminstatus"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	email := chi.URLParam(r, "email")

	tokenEmail, ok := r.Context().Value(middlewarectx.UserEmail).(string)
	if !ok || tokenEmail == "" {
		log.Error("email not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}
	if email != tokenEmail {
		log.Error("email mismatch", slog.String("path_email", email))
		w.WriteHeader(http.StatusForbidden)
		render.JSON(w, r, response.Error("forbidden access"))
		return
	}

	isAdmin, err := h.service.IsAdmin(r.Context(), email)
	if err != nil {
		log.Error("failed to check admin status", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not check admin status"))
		return
	}

	log.Info("checked admin status", slog.String("email", email), slog.Bool("admin", isAdmin))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"admin": isAdmin,
	}))
}
