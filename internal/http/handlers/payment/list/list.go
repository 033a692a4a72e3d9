// Package list реализует HTTP-обработчик чтения истории платежей пользователя.
//
// Пользователь видит только собственную историю: email в пути сверяется
// с email из проверенного токена, несовпадение — 403.
package list

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
	"github.com/magabrotheeeer/bistro-backend/internal/models"
)

// Handler обрабатывает запросы на чтение истории платежей.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики платежей
}

// Service описывает интерфейс бизнес-логики чтения платежей.
type Service interface {
	ListByEmail(ctx context.Context, email string) ([]*models.Payment, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить историю платежей пользователя
// @Description Доступно только самому пользователю: email в пути должен совпадать с email токена.
// @Tags Payments
// @Produce  json
// @Param email path string true "Email владельца платежей"
// @Success 200 {object} map[string]any "История платежей"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Чужой email"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /payments/{email} [get]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.list"
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

	res, err := h.service.ListByEmail(r.Context(), email)
	if err != nil {
		log.Error("failed to list payments", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list payments"))
		return
	}

	log.Info("list payments", slog.Int("count", len(res)), slog.String("email", email))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"count":    len(res),
		"payments": res,
	}))
}
