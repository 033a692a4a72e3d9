// Package token реализует HTTP-обработчик выпуска JWT токена.
//
// Токен подписывает ровно тот identity, который прислал клиент, серверной
// проверки учётных данных нет: контракт унаследован от фронтенд-провайдера
// аутентификации. Срок действия токена — один час.
package token

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/bistro-backend/internal/http/response"
	"github.com/magabrotheeeer/bistro-backend/internal/lib/sl"
)

// Request — identity claims, которые попадут в токен.
type Request struct {
	Email string `json:"email" validate:"required,email"` // Электронная почта субъекта
	Name  string `json:"name"`                            // Отображаемое имя
}

// TokenMaker описывает интерфейс генерации подписанного токена.
type TokenMaker interface {
	GenerateToken(email, name string) (string, error)
}

// Handler обрабатывает запросы на выпуск токена.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	maker    TokenMaker          // Генератор подписанных токенов
	validate *validator.Validate // Валидатор структуры входящих данных
}

// New создает новый Handler с переданными логгером и генератором токенов.
func New(log *slog.Logger, maker TokenMaker) *Handler {
	return &Handler{
		log:      log,
		maker:    maker,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Выпустить JWT токен
// @Description Подписывает identity claims клиента в токен со сроком действия один час.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Identity claims"
// @Success 200 {object} map[string]any "Подписанный токен"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка подписи токена"
// @Router /jwt [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.token"
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

	token, err := h.maker.GenerateToken(req.Email, req.Name)
	if err != nil {
		log.Error("failed to sign token", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not issue token"))
		return
	}

	log.Info("issued token", slog.String("email", req.Email))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"token": token,
	}))
}
