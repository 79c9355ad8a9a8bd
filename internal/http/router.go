package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"perfume-shop/internal/http/handlers"
	"perfume-shop/pkg/metrics"
)

type Handlers struct {
	Perfumes *handlers.PerfumesHandler
	Orders   *handlers.OrdersHandler
	Checkout *handlers.CheckoutHandler
}

func NewRouter(h *Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(metrics.Middleware())
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/health", handlers.Health)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/perfumes", h.Perfumes.List)
		r.Post("/perfumes", h.Perfumes.Save)
		r.Post("/perfumes/search", h.Perfumes.Search)
		r.Get("/perfumes/perfumer/{perfumer}", h.Perfumes.ByPerfumer)
		r.Get("/perfumes/gender/{gender}", h.Perfumes.ByGender)
		r.Get("/perfumes/{id}", h.Perfumes.Get)
		r.Put("/perfumes/{id}", h.Perfumes.Update)

		r.Get("/orders", h.Orders.List)
		r.Get("/orders/user", h.Orders.ByUser)
		r.Post("/order", h.Checkout.ServeHTTP)
	})
	return r
}
