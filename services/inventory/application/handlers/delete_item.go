package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	appsvcs "github.com/ghuser/stockroom/services/inventory/application/services"
)

// DeleteItemResponse reports whether anything was actually removed.
type DeleteItemResponse struct {
	Removed bool `json:"removed"`
}

// DeleteItemHandler handles DELETE /items/{id} requests.
type DeleteItemHandler struct {
	svc *appsvcs.Services
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc}
}

// Execute removes an item and its adjustment history. Idempotent: deleting
// an unknown ID responds 200 with removed=false.
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	removed, err := h.svc.Inventory.DeleteItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, DeleteItemResponse{Removed: removed})
}
