package routes

import (
	"net/http"

	"github.com/NYTimes/gziphandler"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/panier-backend/api/controllers"
	cartcontrollers "github.com/angelmondragon/panier-backend/api/controllers/cart"
	"github.com/angelmondragon/panier-backend/api/middleware"
	"github.com/angelmondragon/panier-backend/internal/cart"
	"github.com/angelmondragon/panier-backend/internal/palette"
	"github.com/angelmondragon/panier-backend/internal/preferences"
	"github.com/angelmondragon/panier-backend/pkg/config"
	"github.com/angelmondragon/panier-backend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	gatherer prometheus.Gatherer,
	readiness map[string]controllers.Pinger,
	rateLimiter *middleware.RateLimiter,
	cartService cart.Service,
	preferencesService preferences.Service,
	colors *palette.Generator,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, readiness))
	})
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	currency := cfg.Cart.CurrencySuffix

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(
			rateLimiter.Middleware(),
			middleware.CartSession(cfg.Session, logg),
		)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartcontrollers.CartFetch(cartService, currency, logg))
			r.With(middleware.RequireConfirmation(logg)).Delete("/", cartcontrollers.CartClear(cartService, currency, logg))
			r.Post("/checkout", cartcontrollers.CartCheckout(cartService, currency, logg))

			r.Route("/items/{itemId}", func(r chi.Router) {
				r.Put("/quantity", cartcontrollers.CartSetQuantity(cartService, currency, logg))
				r.Post("/increment", cartcontrollers.CartIncrement(cartService, currency, logg))
				r.Post("/decrement", cartcontrollers.CartDecrement(cartService, currency, logg))
				r.Post("/like", cartcontrollers.CartToggleLiked(cartService, currency, logg))
				r.With(middleware.RequireConfirmation(logg)).Delete("/", cartcontrollers.CartRemoveItem(cartService, currency, logg))
			})
		})

		r.Route("/preferences/theme", func(r chi.Router) {
			r.Get("/", controllers.ThemeFetch(preferencesService, logg))
			r.Post("/toggle", controllers.ThemeToggle(preferencesService, logg))
		})

		r.Get("/palette/random", controllers.PaletteRandom(colors, logg))
	})

	return gziphandler.GzipHandler(r)
}
