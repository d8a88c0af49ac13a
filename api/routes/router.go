package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shopori/cart-service/api/controllers"
	"github.com/shopori/cart-service/api/middleware"
	"github.com/shopori/cart-service/internal/cart"
	"github.com/shopori/cart-service/internal/catalog"
	checkoutsvc "github.com/shopori/cart-service/internal/checkout"
	"github.com/shopori/cart-service/internal/profile"
	"github.com/shopori/cart-service/pkg/config"
	"github.com/shopori/cart-service/pkg/db"
	"github.com/shopori/cart-service/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	store db.Pinger,
	gatherer prometheus.Gatherer,
	catalogClient *catalog.Client,
	cartService cart.Service,
	checkoutService checkoutsvc.Service,
	profileRepo profile.Repository,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, store))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))

		r.Get("/products/{productID}", controllers.ProductDetail(catalogClient, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartList(cartService, logg))
			r.Delete("/", controllers.CartClear(cartService, logg))
			r.Post("/items", controllers.CartAdd(cartService, logg))
			r.Patch("/items/{productID}/quantity", controllers.CartAdjustQuantity(cartService, logg))
			r.Delete("/items/{productID}", controllers.CartRemove(cartService, logg))
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Get("/quote", controllers.CheckoutQuote(checkoutService, logg))
			r.Post("/", controllers.CheckoutSubmit(checkoutService, logg))
			r.Get("/first-order", controllers.CheckoutFirstOrder(checkoutService, logg))
		})

		r.Route("/profile", func(r chi.Router) {
			r.Get("/", controllers.ProfileGet(profileRepo, logg))
			r.Put("/", controllers.ProfileUpsert(profileRepo, logg))
		})
	})

	return r
}
