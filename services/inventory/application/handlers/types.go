package handlers

import (
	"time"

	"github.com/ghuser/stockroom/services/inventory/domain/models"
)

// ItemResponse is the wire shape of an item. Field names follow the mobile
// client's camelCase convention; lastUpdated is RFC 3339 UTC. lowStock is
// derived on read, never stored.
type ItemResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Quantity     float64   `json:"quantity"`
	Unit         string    `json:"unit"`
	ReorderPoint float64   `json:"reorderPoint"`
	Supplier     string    `json:"supplier,omitempty"`
	LastUpdated  time.Time `json:"lastUpdated"`
	LowStock     bool      `json:"lowStock"`
}

// LogResponse is the wire shape of one adjustment-ledger entry.
type LogResponse struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"itemId"`
	Type      string    `json:"type"`
	Amount    float64   `json:"amount"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
	User      string    `json:"user"`
}

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func toItemResponse(item models.Item) ItemResponse {
	return ItemResponse{
		ID:           item.ID,
		Name:         item.Name,
		Category:     item.Category.String(),
		Quantity:     item.Quantity,
		Unit:         item.Unit,
		ReorderPoint: item.ReorderPoint,
		Supplier:     item.Supplier,
		LastUpdated:  item.LastUpdated,
		LowStock:     item.LowStock(),
	}
}

func toItemResponses(items []models.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(it))
	}
	return out
}

func toLogResponse(l models.AdjustmentLog) LogResponse {
	return LogResponse{
		ID:        l.ID,
		ItemID:    l.ItemID,
		Type:      l.Type.String(),
		Amount:    l.Amount,
		Reason:    l.Reason,
		Timestamp: l.Timestamp,
		User:      l.User,
	}
}

func toLogResponses(logs []models.AdjustmentLog) []LogResponse {
	out := make([]LogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, toLogResponse(l))
	}
	return out
}
