package handlers

import (
	"net/http"

	"github.com/ghuser/stockroom/pkg/httpx"
	"github.com/ghuser/stockroom/services/orders/domain/models"
)

// OrderResponse is the wire shape of one purchase order.
type OrderResponse struct {
	ID       string   `json:"id"`
	Supplier string   `json:"supplier"`
	Items    []string `json:"items"`
	Status   string   `json:"status"`
	Date     string   `json:"date"`
}

// ListOrdersHandler handles GET /orders requests. ?status= filters by
// lifecycle state; an unknown status is rejected rather than silently
// matching nothing.
type ListOrdersHandler struct {
	orders []models.Order
}

// NewListOrdersHandler returns a handler serving the given order set.
func NewListOrdersHandler(orders []models.Order) *ListOrdersHandler {
	return &ListOrdersHandler{orders: orders}
}

// Execute lists purchase orders, optionally filtered by status.
func (h *ListOrdersHandler) Execute(w http.ResponseWriter, r *http.Request) {
	status := models.OrderStatus(r.URL.Query().Get("status"))
	if status != "" && !status.Valid() {
		httpx.JSONError(w, http.StatusBadRequest, "status must be one of: pending, processing, delivered")
		return
	}

	out := make([]OrderResponse, 0, len(h.orders))
	for _, o := range h.orders {
		if status != "" && o.Status != status {
			continue
		}
		out = append(out, OrderResponse{
			ID:       o.ID,
			Supplier: o.Supplier,
			Items:    o.Items,
			Status:   o.Status.String(),
			Date:     o.Date,
		})
	}
	httpx.JSON(w, http.StatusOK, out)
}
