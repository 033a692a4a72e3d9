// Package list реализует HTTP-обработчик для получения всех позиций меню.
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

// Handler обрабатывает запросы на получение списка меню.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики меню
}

// Service описывает интерфейс бизнес-логики чтения меню.
type Service interface {
	List(ctx context.Context) ([]*models.MenuItem, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить все позиции меню
// @Tags Menus
// @Produce  json
// @Success 200 {object} map[string]any "Список позиций меню"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /menus [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.menu.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	res, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list menu items", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list menu items"))
		return
	}

	log.Info("list menu items", slog.Int("count", len(res)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"count":      len(res),
		"menu_items": res,
	}))
}
