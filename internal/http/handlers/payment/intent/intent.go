// Package intent реализует HTTP-обработчик создания платёжного намерения.
//
// Сумма конвертируется в центы с округлением к ближайшему целому,
// client_secret шлюза возвращается клиенту как есть. Намерение
// на сервере не сохраняется.
package intent

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/bistro-backend/internal/http/response"
	"github.com/magabrotheeeer/bistro-backend/internal/lib/sl"
)

// Request — параметры создания платёжного намерения.
type Request struct {
	Price float64 `json:"price" validate:"required,gt=0"` // Сумма заказа в валюте
}

// Service описывает интерфейс бизнес-логики создания платёжного намерения.
type Service interface {
	CreateIntent(ctx context.Context, price float64) (string, error)
}

// Handler обрабатывает запросы на создание платёжных намерений.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики платежей
	validate *validator.Validate // Валидатор структуры входящих данных
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
// @Summary Создать платёжное намерение
// @Description Создает платёжное намерение в Stripe и возвращает client_secret для завершения оплаты.
// @Tags Payments
// @Accept  json
// @Produce  json
// @Param request body Request true "Сумма заказа"
// @Success 200 {object} map[string]any "client_secret платёжного намерения"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка платёжного шлюза"
// @Router /create-payment-intent [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.intent"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
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

	secret, err := h.service.CreateIntent(r.Context(), req.Price)
	if err != nil {
		log.Error("failed to create payment intent", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("payment provider error"))
		return
	}

	log.Info("created payment intent")
	render.JSON(w, r, response.OKWithData(map[string]any{
		"client_secret": secret,
	}))
}
