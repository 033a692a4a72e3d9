// Package remove реализует HTTP-обработчик для удаления записи корзины по ID.
package remove

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
	"github.com/magabrotheeeer/bistro-backend/internal/storage/repository"
)

// Handler обрабатывает запросы на удаление записи корзины.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики корзины
}

// Service описывает интерфейс бизнес-логики удаления записи корзины.
type Service interface {
	Remove(ctx context.Context, id string) (int64, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить запись корзины
// @Tags Carts
// @Produce  json
// @Param id path string true "ID записи корзины"
// @Success 200 {object} map[string]any "Количество удалённых документов"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /carts/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.cart.remove"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	count, err := h.service.Remove(r.Context(), id)
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		log.Error("invalid cart entry id", slog.String("id", id))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid id"))
		return
	case err != nil:
		log.Error("failed to delete cart entry", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not delete cart entry"))
		return
	}

	log.Info("deleted cart entry", slog.String("id", id), slog.Int64("deleted_count", count))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"deleted_count": count,
	}))
}
