package handlers

import (
	"net/http"
	"strings"

	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	appsvcs "github.com/ghuser/stockroom/services/inventory/application/services"
	"github.com/ghuser/stockroom/services/inventory/domain/models"
)

// ListItemsHandler handles GET /items requests. Query params mirror the
// list screen's filter bar: ?search= (case-insensitive name match),
// ?category=, ?low=true (low-stock only). Filtering is read-side only and
// applied over the facade's snapshot.
type ListItemsHandler struct {
	svc *appsvcs.Services
}

// NewListItemsHandler returns a ListItemsHandler backed by the given services.
func NewListItemsHandler(svc *appsvcs.Services) *ListItemsHandler {
	return &ListItemsHandler{svc: svc}
}

// Execute lists items, optionally filtered.
func (h *ListItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Inventory.ListItems(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	q := r.URL.Query()
	search := strings.ToLower(strings.TrimSpace(q.Get("search")))
	category := q.Get("category")
	lowOnly := q.Get("low") == "true"

	filtered := make([]models.Item, 0, len(items))
	for _, it := range items {
		if search != "" && !strings.Contains(strings.ToLower(it.Name), search) {
			continue
		}
		if category != "" && it.Category.String() != category {
			continue
		}
		if lowOnly && !it.LowStock() {
			continue
		}
		filtered = append(filtered, it)
	}

	httpx.JSON(w, http.StatusOK, toItemResponses(filtered))
}
