package handlers

import (
	"net/http"

	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	appsvcs "github.com/ghuser/stockroom/services/inventory/application/services"
)

// AnalyticsSummaryResponse is the aggregate view behind the analytics
// screen. Everything here is derived from the current item list on each
// request.
type AnalyticsSummaryResponse struct {
	TotalItems    int            `json:"totalItems"`
	TotalUnits    float64        `json:"totalUnits"`
	LowStockCount int            `json:"lowStockCount"`
	LowStockIDs   []string       `json:"lowStockIds"`
	ByCategory    map[string]int `json:"byCategory"`
}

// GetAnalyticsHandler handles GET /analytics/summary requests.
type GetAnalyticsHandler struct {
	svc *appsvcs.Services
}

// NewGetAnalyticsHandler returns a GetAnalyticsHandler backed by the given services.
func NewGetAnalyticsHandler(svc *appsvcs.Services) *GetAnalyticsHandler {
	return &GetAnalyticsHandler{svc: svc}
}

// Execute computes inventory aggregates from the current list snapshot.
func (h *GetAnalyticsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Inventory.ListItems(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := AnalyticsSummaryResponse{
		LowStockIDs: []string{},
		ByCategory:  make(map[string]int),
	}
	for _, it := range items {
		resp.TotalItems++
		resp.TotalUnits += it.Quantity
		resp.ByCategory[it.Category.String()]++
		if it.LowStock() {
			resp.LowStockCount++
			resp.LowStockIDs = append(resp.LowStockIDs, it.ID)
		}
	}

	httpx.JSON(w, http.StatusOK, resp)
}
