package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/stockroom/services/inventory/application/handlers"
	appsvcs "github.com/ghuser/stockroom/services/inventory/application/services"
)

// InventoryRoutes registers inventory endpoints on the provided chi router.
// The router is expected to already carry the auth middleware.
func InventoryRoutes(r chi.Router, svcs *appsvcs.Services) {
	r.Group(func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Get("/", handlers.NewListItemsHandler(svcs).Execute)
			r.Post("/", handlers.NewPostItemHandler(svcs).Execute)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", handlers.NewGetItemHandler(svcs).Execute)
				r.Put("/", handlers.NewPutItemHandler(svcs).Execute)
				r.Delete("/", handlers.NewDeleteItemHandler(svcs).Execute)
				r.Post("/adjustments", handlers.NewPostAdjustmentHandler(svcs).Execute)
				r.Get("/adjustments", handlers.NewGetAdjustmentsHandler(svcs).Execute)
			})
		})
		r.Get("/analytics/summary", handlers.NewGetAnalyticsHandler(svcs).Execute)
	})
}
