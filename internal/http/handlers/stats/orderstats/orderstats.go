// Package orderstats реализует HTTP-обработчик статистики продаж
// по категориям меню.
package orderstats

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

// Handler обрабатывает запросы статистики продаж по категориям.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики статистики
}

// Service описывает интерфейс бизнес-логики статистики продаж.
type Service interface {
	OrderStats(ctx context.Context) ([]*models.CategorySales, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Статистика продаж по категориям
// @Description Возвращает количество проданных позиций и выручку в разрезе категорий меню. Доступно только администраторам.
// @Tags Stats
// @Produce  json
// @Success 200 {array} models.CategorySales "Статистика по категориям"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /order-stats [get]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.stats.orderstats"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	rows, err := h.service.OrderStats(r.Context())
	if err != nil {
		log.Error("failed to collect order stats", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not collect stats"))
		return
	}

	log.Info("collected order stats", slog.Int("categories", len(rows)))
	render.JSON(w, r, response.OKWithData(rows))
}
