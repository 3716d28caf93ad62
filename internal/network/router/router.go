package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/jwtauth/v5"
	"github.com/levushkin/orders-backend/internal/client"
	"github.com/levushkin/orders-backend/internal/config"
	"github.com/levushkin/orders-backend/internal/network/handlers"
	"github.com/levushkin/orders-backend/internal/network/middleware"
	"github.com/levushkin/orders-backend/internal/services"
	"github.com/levushkin/orders-backend/internal/storage"
)

type Router struct {
	Config      config.Config
	Submissions services.SubmissionsService
	Identity    services.IdentityService
	Limiter     *middleware.RateLimiter
}

func NewRouter(config config.Config, store storage.SubmissionsStorage) *Router {
	httpClient := client.NewHTTPClient()
	notify := services.NewNotify(config.Telegram, client.NewTelegramClient(client.TelegramAPIURL, httpClient))
	payment := services.NewPayment(config.Payment, client.NewYookassaClient(
		client.YookassaAPIURL, config.Payment.ShopID, config.Payment.SecretKey, httpClient))

	return &Router{
		Config: config,
		Submissions: services.NewSubmissions(store, notify, payment,
			config.Server.BaseURL, config.Payment.Description),
		Identity: services.NewIdentity(config.Admin),
		Limiter:  middleware.NewRateLimiter(config.Server.OrderRateLimit),
	}
}

func (router *Router) HandleRouter() chi.Router {
	ja := router.Identity.GetTokenAuth()
	r := chi.NewRouter()
	r.Use(middleware.LogHandle)
	if len(router.Config.Server.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: router.Config.Server.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			MaxAge:         300,
		}))
	}
	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(router.Limiter.Handle)
			r.Post("/order", handlers.OrderHandler(router.Submissions))
		})
		// серверный колбэк провайдера, без лимитера
		r.Post("/payment-webhook", handlers.PaymentWebhookHandler(router.Submissions))
		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", handlers.AdminLoginHandler(router.Identity))
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(ja))
				r.Use(jwtauth.Authenticator(ja))
				r.Get("/submissions", handlers.GetSubmissionsHandler(router.Submissions))
				r.Post("/submissions/{uid}", handlers.UpdateSubmissionHandler(router.Submissions))
			})
		})
	})
	return r
}
