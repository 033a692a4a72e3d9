// Package read реализует HTTP-обработчик для получения позиции меню по ID.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/bistro-backend/internal/http/response"
	"github.com/magabrotheeeer/bistro-backend/internal/lib/sl"
	"github.com/magabrotheeeer/bistro-backend/internal/models"
	"github.com/magabrotheeeer/bistro-backend/internal/storage/repository"
)

// Handler обрабатывает запросы на получение позиции меню по ID.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики меню
}

// Service описывает интерфейс бизнес-логики чтения позиции меню.
type Service interface {
	Read(ctx context.Context, id string) (*models.MenuItem, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить позицию меню по ID
// @Tags Menus
// @Produce  json
// @Param id path string true "ID позиции меню"
// @Success 200 {object} map[string]any "Позиция меню"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Позиция не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /menus/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.menu.read"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	res, err := h.service.Read(r.Context(), id)
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		log.Error("invalid menu item id", slog.String("id", id))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid id"))
		return
	case errors.Is(err, repository.ErrNotFound):
		log.Error("menu item not found", slog.String("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("menu item not found"))
		return
	case err != nil:
		log.Error("failed to read menu item", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read menu item"))
		return
	}

	log.Info("read menu item", slog.String("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"menu_item": res,
	}))
}
