package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nammaelampillai-official/namma-elampillai/api/controllers"
	"github.com/nammaelampillai-official/namma-elampillai/api/middleware"
	authsvc "github.com/nammaelampillai-official/namma-elampillai/internal/auth"
	"github.com/nammaelampillai-official/namma-elampillai/internal/catalog"
	"github.com/nammaelampillai-official/namma-elampillai/internal/content"
	"github.com/nammaelampillai-official/namma-elampillai/internal/mailer"
	ordersvc "github.com/nammaelampillai-official/namma-elampillai/internal/orders"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/config"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/db"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/enums"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/logger"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/redis"
)

// Deps bundles everything the router wires into handlers.
type Deps struct {
	Config     *config.Config
	Logger     *logger.Logger
	DB         db.Pinger
	Redis      *redis.Client
	Registry   *prometheus.Registry
	Tokens     *authsvc.TokenIssuer
	Auth       *authsvc.Service
	Catalog    *catalog.Service
	Content    *content.Service
	Orders     *ordersvc.Service
	Dispatcher *mailer.Dispatcher
}

func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	logg := deps.Logger

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(deps.Config))
		var redisPinger redis.Pinger
		if deps.Redis != nil {
			redisPinger = deps.Redis
		}
		r.Get("/ready", controllers.HealthReady(deps.Config, logg, deps.DB, redisPinger))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductsList(deps.Catalog, logg))
			r.Get("/{productId}", controllers.ProductsGet(deps.Catalog, logg))

			r.Group(func(r chi.Router) {
				r.Use(middleware.Session(deps.Tokens, logg))
				r.Post("/", controllers.ProductsCreate(deps.Catalog, logg))
				r.Patch("/{productId}", controllers.ProductsUpdate(deps.Catalog, logg))
				r.Delete("/{productId}", controllers.ProductsDelete(deps.Catalog, logg))
			})
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.OrdersList(deps.Orders, logg))
			r.With(middleware.Idempotency(idempotencyStore(deps.Redis), logg)).
				Post("/", controllers.OrdersCreate(deps.Orders, logg))
			r.Patch("/", controllers.OrdersUpdateStatus(deps.Orders, logg))
		})

		r.Post("/checkout/quote", controllers.CheckoutQuote(deps.Content, logg))

		r.Route("/content", func(r chi.Router) {
			r.Get("/", controllers.ContentGet(deps.Content, logg))
			r.With(
				middleware.Session(deps.Tokens, logg),
				middleware.RequireRole(enums.RoleAdmin, logg),
			).Post("/", controllers.ContentSave(deps.Content, logg))
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", controllers.AuthLogin(deps.Auth, logg))
			r.Post("/signup", controllers.AuthSignup(deps.Dispatcher, logg))
		})

		r.Post("/enquiry", controllers.Enquiry(deps.Dispatcher, logg))

		r.With(
			middleware.Session(deps.Tokens, logg),
		).Get("/admin/stats", controllers.AdminStats(deps.Orders, logg))
	})

	return r
}

func idempotencyStore(client *redis.Client) redis.IdempotencyStore {
	if client == nil {
		return nil
	}
	return client
}
