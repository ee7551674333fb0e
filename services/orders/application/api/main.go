package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/stockroom/services/orders/application/handlers"
	"github.com/ghuser/stockroom/services/orders/domain/models"
)

// OrderRoutes registers order endpoints on the provided chi router.
func OrderRoutes(r chi.Router) {
	r.Get("/orders", handlers.NewListOrdersHandler(models.SeedOrders()).Execute)
}
