// Package bistro собирает приложение ресторанного бэкенда: хранилище,
// кэш, сервисы и маршруты HTTP.
package bistro

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/bistro-backend/internal/http/handlers/auth/token"
	cartcreate "github.com/magabrotheeeer/bistro-backend/internal/http/handlers/cart/create"
	cartlist "github.com/magabrotheeeer/bistro-backend/internal/http/handlers/cart/list"
	cartremove "github.com/magabrotheeeer/bistro-backend/internal/http/handlers/cart/remove"
	"github.com/magabrotheeeer/bistro-backend/internal/http/handlers/health"
	menucreate "github.com/magabrotheeeer/bistro-backend/internal/http/handlers/menu/create"
	menulist "github.com/magabrotheeeer/bistro-backend/internal/http/handlers/menu/list"
	menuread "github.com/magabrotheeeer/bistro-backend/internal/http/handlers/menu/read"
	menuremove "github.com/magabrotheeeer/bistro-backend/internal/http/handlers/menu/remove"
	menuupdate "github.com/magabrotheeeer/bistro-backend/internal/http/handlers/menu/update"
	"github.com/magabrotheeeer/bistro-backend/internal/http/handlers/payment/checkout"
	"github.com/magabrotheeeer/bistro-backend/internal/http/handlers/payment/intent"
	paymentlist "github.com/magabrotheeeer/bistro-backend/internal/http/handlers/payment/list"
	"github.com/magabrotheeeer/bistro-backend/internal/http/handlers/stats/adminstats"
	"github.com/magabrotheeeer/bistro-backend/internal/http/handlers/stats/orderstats"
	"github.com/magabrotheeeer/bistro-backend/internal/http/handlers/user/adminstatus"
	usercreate "github.com/magabrotheeeer/bistro-backend/internal/http/handlers/user/create"
	userlist "github.com/magabrotheeeer/bistro-backend/internal/http/handlers/user/list"
	userpromote "github.com/magabrotheeeer/bistro-backend/internal/http/handlers/user/promote"
	userremove "github.com/magabrotheeeer/bistro-backend/internal/http/handlers/user/remove"
	"github.com/magabrotheeeer/bistro-backend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/bistro-backend/internal/lib/jwt"
	cartservice "github.com/magabrotheeeer/bistro-backend/internal/services/cart"
	menuservice "github.com/magabrotheeeer/bistro-backend/internal/services/menu"
	paymentservice "github.com/magabrotheeeer/bistro-backend/internal/services/payment"
	statsservice "github.com/magabrotheeeer/bistro-backend/internal/services/stats"
	userservice "github.com/magabrotheeeer/bistro-backend/internal/services/user"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger,
	tokenMaker jwt.Maker,
	menuService *menuservice.MenuService,
	userService *userservice.UserService,
	cartService *cartservice.CartService,
	paymentService *paymentservice.PaymentService,
	statsService *statsservice.StatsService,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	// Открытые конечные точки
	r.Post("/jwt", token.New(logger, tokenMaker).ServeHTTP)
	r.Get("/menus", menulist.New(logger, menuService).ServeHTTP)
	r.Get("/menus/{id}", menuread.New(logger, menuService).ServeHTTP)
	r.Post("/users", usercreate.New(logger, userService).ServeHTTP)
	r.Get("/carts", cartlist.New(logger, cartService).ServeHTTP)
	r.Post("/carts", cartcreate.New(logger, cartService).ServeHTTP)
	r.Delete("/carts/{id}", cartremove.New(logger, cartService).ServeHTTP)
	r.Post("/create-payment-intent", intent.New(logger, paymentService).ServeHTTP)
	r.Get("/health", health.New(logger).ServeHTTP)

	// Группа с JWT аутентификацией: пользователь работает только со своими данными
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.JWTMiddleware(tokenMaker, logger))
		r.Use(middlewarectx.RateLimitMiddleware(logger))
		r.Get("/users/admin/{email}", adminstatus.New(logger, userService).ServeHTTP)
		r.Get("/payments/{email}", paymentlist.New(logger, paymentService).ServeHTTP)
		r.Post("/payments", checkout.New(logger, paymentService).ServeHTTP)
	})

	// Группа администратора
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.JWTMiddleware(tokenMaker, logger))
		r.Use(middlewarectx.AdminMiddleware(logger, userService))
		r.Use(middlewarectx.RateLimitMiddleware(logger))
		r.Post("/menus", menucreate.New(logger, menuService).ServeHTTP)
		r.Patch("/menus/{id}", menuupdate.New(logger, menuService).ServeHTTP)
		r.Delete("/menus/{id}", menuremove.New(logger, menuService).ServeHTTP)
		r.Get("/users", userlist.New(logger, userService).ServeHTTP)
		r.Patch("/users/admin/{id}", userpromote.New(logger, userService).ServeHTTP)
		r.Delete("/users/{id}", userremove.New(logger, userService).ServeHTTP)
		r.Get("/admin-stats", adminstats.New(logger, statsService).ServeHTTP)
		r.Get("/order-stats", orderstats.New(logger, statsService).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
