package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	appsvcs "github.com/ghuser/stockroom/services/inventory/application/services"
)

// GetAdjustmentsHandler handles GET /items/{id}/adjustments requests.
// ?limit= caps the number of entries (default 20). An unknown item yields
// an empty list, never 404 — the detail screen renders history
// opportunistically.
type GetAdjustmentsHandler struct {
	svc *appsvcs.Services
}

// NewGetAdjustmentsHandler returns a GetAdjustmentsHandler backed by the given services.
func NewGetAdjustmentsHandler(svc *appsvcs.Services) *GetAdjustmentsHandler {
	return &GetAdjustmentsHandler{svc: svc}
}

// Execute lists an item's adjustment history, newest first.
func (h *GetAdjustmentsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			httpx.JSONError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	logs, err := h.svc.Inventory.LogsForItem(r.Context(), chi.URLParam(r, "id"), limit)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toLogResponses(logs))
}
