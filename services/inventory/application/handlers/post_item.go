package handlers

import (
	"net/http"

	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	pkgvalidator "github.com/ghuser/stockroom/pkg/validator"
	appsvcs "github.com/ghuser/stockroom/services/inventory/application/services"
	"github.com/ghuser/stockroom/services/inventory/domain/models"
)

// CreateItemRequest is the request body for POST /items. The tags are a
// transport-level guard; the domain validation rules are re-checked by the
// store and remain authoritative.
type CreateItemRequest struct {
	Name         string  `json:"name" validate:"required,min=2,max=255"`
	Category     string  `json:"category" validate:"required,oneof=ingredient packaging beverage other"`
	Quantity     float64 `json:"quantity" validate:"gte=0"`
	Unit         string  `json:"unit" validate:"required"`
	ReorderPoint float64 `json:"reorderPoint" validate:"gte=0"`
	Supplier     string  `json:"supplier" validate:"omitempty,max=255"`
}

// PostItemHandler handles POST /items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute creates a new item from a draft. The store assigns id and
// lastUpdated.
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Inventory.CreateItem(r.Context(), models.Draft{
		Name:         req.Name,
		Category:     models.Category(req.Category),
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		ReorderPoint: req.ReorderPoint,
		Supplier:     req.Supplier,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toItemResponse(item))
}
