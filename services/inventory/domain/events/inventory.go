package events

import "time"

// Topics published by the inventory store and adjustment ledger. The query
// facade subscribes to all of them to invalidate its cached views after any
// committed mutation.
const (
	TopicItemCreated   = "inventory.item.created"
	TopicItemUpdated   = "inventory.item.updated"
	TopicItemDeleted   = "inventory.item.deleted"
	TopicStockAdjusted = "inventory.stock.adjusted"
)

// MutationTopics lists every topic that represents a committed mutation.
func MutationTopics() []string {
	return []string{TopicItemCreated, TopicItemUpdated, TopicItemDeleted, TopicStockAdjusted}
}

// ItemEvent is published after an item create, update, or delete commits.
type ItemEvent struct {
	EventID    string    `json:"event_id"` // unique publish-time identifier
	ItemID     string    `json:"item_id"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"`
}

// StockAdjustedEvent is published after an adjustment commits. Quantity is
// the item's quantity after the change was applied.
type StockAdjustedEvent struct {
	EventID    string    `json:"event_id"`
	ItemID     string    `json:"item_id"`
	LogID      string    `json:"log_id"`
	Type       string    `json:"type"`
	Amount     float64   `json:"amount"`
	Quantity   float64   `json:"quantity"`
	User       string    `json:"user"`
	OccurredAt time.Time `json:"occurred_at"`
}
