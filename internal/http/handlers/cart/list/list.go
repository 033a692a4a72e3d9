// Package list реализует HTTP-обработчик для получения записей корзины.
// Query-параметр email ограничивает выборку корзиной одного пользователя.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/bistro-backend/internal/http/response"
	"github.com/magabrotheeeer/bistro-backend/internal/lib/sl"
	"github.com/magabrotheeeer/bistro-backend/internal/models"
)

// Handler обрабатывает запросы на получение записей корзины.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики корзины
}

// Service описывает интерфейс бизнес-логики чтения корзины.
type Service interface {
	List(ctx context.Context, email string) ([]*models.CartEntry, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить записи корзины
// @Tags Carts
// @Produce  json
// @Param email query string false "Email владельца корзины"
// @Success 200 {object} map[string]any "Записи корзины"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /carts [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.cart.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	email := r.URL.Query().Get("email")

	res, err := h.service.List(r.Context(), email)
	if err != nil {
		log.Error("failed to list cart entries", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list cart entries"))
		return
	}

	log.Info("list cart entries", slog.Int("count", len(res)), slog.String("email", email))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"count":   len(res),
		"entries": res,
	}))
}
