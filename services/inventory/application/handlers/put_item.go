package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	pkgvalidator "github.com/ghuser/stockroom/pkg/validator"
	appsvcs "github.com/ghuser/stockroom/services/inventory/application/services"
	"github.com/ghuser/stockroom/services/inventory/domain/models"
)

// UpdateItemRequest is the request body for PUT /items/{id}. All fields are
// optional; absent fields leave the stored value unchanged. The merged
// result is re-validated by the store.
type UpdateItemRequest struct {
	Name         *string  `json:"name" validate:"omitempty,min=2,max=255"`
	Category     *string  `json:"category" validate:"omitempty,oneof=ingredient packaging beverage other"`
	Quantity     *float64 `json:"quantity" validate:"omitempty,gte=0"`
	Unit         *string  `json:"unit" validate:"omitempty,min=1"`
	ReorderPoint *float64 `json:"reorderPoint" validate:"omitempty,gte=0"`
	Supplier     *string  `json:"supplier" validate:"omitempty,max=255"`
}

// PutItemHandler handles PUT /items/{id} requests.
type PutItemHandler struct {
	svc *appsvcs.Services
}

// NewPutItemHandler returns a PutItemHandler backed by the given services.
func NewPutItemHandler(svc *appsvcs.Services) *PutItemHandler {
	return &PutItemHandler{svc: svc}
}

// Execute merges a partial update onto an existing item.
func (h *PutItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[UpdateItemRequest](w, r)
	if !ok {
		return
	}

	patch := models.Patch{
		Name:         req.Name,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		ReorderPoint: req.ReorderPoint,
		Supplier:     req.Supplier,
	}
	if req.Category != nil {
		c := models.Category(*req.Category)
		patch.Category = &c
	}

	item, err := h.svc.Inventory.UpdateItem(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}
