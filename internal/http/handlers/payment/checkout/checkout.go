// Package checkout реализует HTTP-обработчик завершения заказа.
//
// Платёж записывается, перечисленные записи корзины удаляются одной
// транзакцией хранилища, оба результата возвращаются вместе.
// Пользователь может оформить чекаут только на собственный email.
package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/bistro-backend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/bistro-backend/internal/http/response"
	"github.com/magabrotheeeer/bistro-backend/internal/lib/sl"
	"github.com/magabrotheeeer/bistro-backend/internal/models"
	"github.com/magabrotheeeer/bistro-backend/internal/storage/repository"
)

// Handler управляет HTTP-запросами завершения заказа.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики платежей
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики записи чекаута.
type Service interface {
	Checkout(ctx context.Context, req models.DummyPayment) (*models.CheckoutResult, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Завершить заказ
// @Description Записывает платёж и очищает перечисленные записи корзины одной транзакцией.
// @Tags Payments
// @Accept  json
// @Produce  json
// @Param request body models.DummyPayment true "Данные платежа"
// @Success 200 {object} map[string]any "ID платежа и количество удалённых записей корзины"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или ID корзины"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Чужой email"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /payments [post]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.checkout"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyPayment
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	tokenEmail, ok := r.Context().Value(middlewarectx.UserEmail).(string)
	if !ok || tokenEmail == "" {
		log.Error("email not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}
	if req.Email != tokenEmail {
		log.Error("email mismatch", slog.String("payment_email", req.Email))
		w.WriteHeader(http.StatusForbidden)
		render.JSON(w, r, response.Error("forbidden access"))
		return
	}

	result, err := h.service.Checkout(r.Context(), req)
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		log.Error("invalid cart entry id in checkout")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid cart id"))
		return
	case err != nil:
		log.Error("failed to record checkout", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not record payment"))
		return
	}

	log.Info("recorded checkout",
		slog.String("payment_id", result.PaymentID),
		slog.Int64("deleted_carts", result.DeletedCarts))
	render.JSON(w, r, response.OKWithData(result))
}
