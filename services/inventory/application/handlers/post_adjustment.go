package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/stockroom/pkg/auth"
	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	pkgvalidator "github.com/ghuser/stockroom/pkg/validator"
	appsvcs "github.com/ghuser/stockroom/services/inventory/application/services"
	"github.com/ghuser/stockroom/services/inventory/domain/models"
)

// AdjustStockRequest is the request body for POST /items/{id}/adjustments.
// The acting user is taken from the session, never from the body.
type AdjustStockRequest struct {
	Type   string  `json:"type" validate:"required,oneof=add remove"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Reason string  `json:"reason" validate:"required,min=5"`
}

// AdjustStockResponse carries the updated item together with the ledger
// entry the adjustment created.
type AdjustStockResponse struct {
	Item ItemResponse `json:"item"`
	Log  LogResponse  `json:"log"`
}

// PostAdjustmentHandler handles POST /items/{id}/adjustments requests.
type PostAdjustmentHandler struct {
	svc *appsvcs.Services
}

// NewPostAdjustmentHandler returns a PostAdjustmentHandler backed by the given services.
func NewPostAdjustmentHandler(svc *appsvcs.Services) *PostAdjustmentHandler {
	return &PostAdjustmentHandler{svc: svc}
}

// Execute applies one stock adjustment. A remove that would drive the
// quantity negative responds 409 with the store untouched.
func (h *PostAdjustmentHandler) Execute(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.UserFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[AdjustStockRequest](w, r)
	if !ok {
		return
	}

	item, entry, err := h.svc.Inventory.AdjustItem(
		r.Context(),
		chi.URLParam(r, "id"),
		models.AdjustmentType(req.Type),
		req.Amount,
		req.Reason,
		actor.Name,
	)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, AdjustStockResponse{
		Item: toItemResponse(item),
		Log:  toLogResponse(entry),
	})
}
