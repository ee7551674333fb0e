package repositories

import (
	"context"

	"github.com/ghuser/stockroom/services/inventory/domain/models"
)

// DefaultLogLimit is the number of log entries returned when a caller does
// not ask for a specific limit.
const DefaultLogLimit = 20

// ItemStore is the persistence interface for the Item aggregate.
// The domain layer owns this interface; infrastructure implements it.
//
// Every method that mutates state is atomic: on any error the store is left
// exactly as it was before the call.
type ItemStore interface {
	// List returns a defensive copy of all items in insertion order.
	List(ctx context.Context) ([]models.Item, error)

	// Get returns a copy of the item with the given ID, or ErrItemNotFound.
	Get(ctx context.Context, id string) (models.Item, error)

	// Create validates the draft, assigns a fresh ID and LastUpdated, and
	// appends the item. Returns the stored item, or a *ValidationError with
	// nothing stored.
	Create(ctx context.Context, draft models.Draft) (models.Item, error)

	// Update merges patch onto the existing item, re-validates the merged
	// result, and refreshes LastUpdated. Returns ErrItemNotFound or a
	// *ValidationError; the store is unchanged on failure.
	Update(ctx context.Context, id string, patch models.Patch) (models.Item, error)

	// Delete removes the item and cascades deletion of its adjustment logs.
	// Idempotent: returns removed=false (not an error) for an unknown ID.
	Delete(ctx context.Context, id string) (removed bool, err error)
}

// AdjustmentLedger applies stock-quantity changes atomically and records
// history. The ledger is append-only: entries are never edited, only created
// or cascade-deleted with their parent item.
type AdjustmentLedger interface {
	// Adjust applies one stock change. Either both the item quantity and the
	// new log entry commit, or neither does. Fails with ErrItemNotFound, a
	// *ValidationError, or ErrInsufficientStock.
	Adjust(ctx context.Context, itemID string, typ models.AdjustmentType, amount float64, reason, user string) (models.Item, models.AdjustmentLog, error)

	// LogsFor returns up to limit most-recent entries for the item, newest
	// first. limit <= 0 means DefaultLogLimit. Never errors for an unknown
	// item; it returns an empty slice.
	LogsFor(ctx context.Context, itemID string, limit int) ([]models.AdjustmentLog, error)
}
