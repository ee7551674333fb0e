// Package memory implements the inventory repositories against plain
// process memory. It is the system of record for this deployment: the spec
// calls for no persistence, so the store is constructed with seed data and
// lives for the process lifetime.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/ghuser/stockroom/services/inventory/domain"
	domainevents "github.com/ghuser/stockroom/services/inventory/domain/events"
	"github.com/ghuser/stockroom/services/inventory/domain/models"
	"github.com/ghuser/stockroom/services/inventory/domain/repositories"
	domainsvcs "github.com/ghuser/stockroom/services/inventory/domain/services"
)

// Publisher is the slice of the event bus the store needs. A nil Publisher
// disables event publication (useful in unit tests).
type Publisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}

// Store holds the authoritative item list and the append-only adjustment
// ledger. A single mutex serializes mutations so no operation is ever
// observably partially applied.
//
// Items keep insertion order. Logs are kept newest-first per the ledger
// ordering invariant.
type Store struct {
	mu    sync.RWMutex
	items []models.Item
	logs  []models.AdjustmentLog

	ids   models.IDGenerator
	clock models.Clock
	bus   Publisher
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithIDGenerator replaces the default UUID generator; tests inject
// deterministic sequences.
func WithIDGenerator(g models.IDGenerator) Option {
	return func(s *Store) { s.ids = g }
}

// WithClock replaces the default UTC clock.
func WithClock(c models.Clock) Option {
	return func(s *Store) { s.clock = c }
}

// WithPublisher wires the store to an event bus. Mutation events are
// published after the mutation commits.
func WithPublisher(p Publisher) Option {
	return func(s *Store) { s.bus = p }
}

// NewStore returns a Store seeded with the given items. Seed items are
// copied in as-is; they are assumed valid (use SeedItems for the standard
// fixture set).
func NewStore(seed []models.Item, opts ...Option) *Store {
	s := &Store{
		items: slices.Clone(seed),
		ids:   models.UUIDGenerator{},
		clock: models.UTCClock{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	_ repositories.ItemStore        = (*Store)(nil)
	_ repositories.AdjustmentLedger = (*Store)(nil)
)

// List returns a defensive copy of all items in insertion order.
func (s *Store) List(ctx context.Context) ([]models.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items), nil
}

// Get returns a copy of the item with the given ID.
func (s *Store) Get(ctx context.Context, id string) (models.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.Item{}, domain.ErrItemNotFound
	}
	return s.items[idx], nil
}

// Create validates the draft, assigns identity, and appends the item.
// Nothing is stored when validation fails.
func (s *Store) Create(ctx context.Context, draft models.Draft) (models.Item, error) {
	if err := domainsvcs.ValidateDraft(draft); err != nil {
		return models.Item{}, err
	}

	s.mu.Lock()
	item := models.Item{
		ID:           s.ids.NewID(),
		Name:         draft.Name,
		Category:     draft.Category,
		Quantity:     draft.Quantity,
		Unit:         draft.Unit,
		ReorderPoint: draft.ReorderPoint,
		Supplier:     draft.Supplier,
		LastUpdated:  s.clock.Now(),
	}
	s.items = append(s.items, item)
	s.mu.Unlock()

	s.publishItemEvent(ctx, domainevents.TopicItemCreated, item)
	return item, nil
}

// Update merges patch onto the stored item and re-validates the merged
// result before swapping it in. The store is unchanged on any failure.
func (s *Store) Update(ctx context.Context, id string, patch models.Patch) (models.Item, error) {
	s.mu.Lock()

	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return models.Item{}, domain.ErrItemNotFound
	}

	merged := patch.Apply(s.items[idx])
	if err := domainsvcs.ValidateItem(merged); err != nil {
		s.mu.Unlock()
		return models.Item{}, err
	}

	merged.LastUpdated = s.clock.Now()
	s.items[idx] = merged
	s.mu.Unlock()

	s.publishItemEvent(ctx, domainevents.TopicItemUpdated, merged)
	return merged, nil
}

// Delete removes the item and every ledger entry referencing it. Removing an
// unknown ID is a no-op, not an error.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()

	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return false, nil
	}

	removed := s.items[idx]
	s.items = slices.Delete(s.items, idx, idx+1)
	s.logs = slices.DeleteFunc(s.logs, func(l models.AdjustmentLog) bool {
		return l.ItemID == id
	})
	s.mu.Unlock()

	s.publishItemEvent(ctx, domainevents.TopicItemDeleted, removed)
	return true, nil
}

// Adjust applies one stock change atomically: the item quantity and the new
// ledger entry commit together, or neither does.
func (s *Store) Adjust(ctx context.Context, itemID string, typ models.AdjustmentType, amount float64, reason, user string) (models.Item, models.AdjustmentLog, error) {
	if err := domainsvcs.ValidateAdjustment(typ, amount, reason); err != nil {
		return models.Item{}, models.AdjustmentLog{}, err
	}

	s.mu.Lock()

	idx := s.indexOf(itemID)
	if idx < 0 {
		s.mu.Unlock()
		return models.Item{}, models.AdjustmentLog{}, domain.ErrItemNotFound
	}

	newQuantity := s.items[idx].Quantity + amount
	if typ == models.AdjustmentRemove {
		newQuantity = s.items[idx].Quantity - amount
	}
	// Removing exactly the full quantity is allowed; any excess is rejected.
	if newQuantity < 0 {
		s.mu.Unlock()
		return models.Item{}, models.AdjustmentLog{}, domain.ErrInsufficientStock
	}

	now := s.clock.Now()
	s.items[idx].Quantity = newQuantity
	s.items[idx].LastUpdated = now
	item := s.items[idx]

	entry := models.AdjustmentLog{
		ID:        s.ids.NewID(),
		ItemID:    itemID,
		Type:      typ,
		Amount:    amount,
		Reason:    reason,
		Timestamp: now,
		User:      user,
	}
	s.logs = slices.Insert(s.logs, 0, entry)
	s.mu.Unlock()

	if s.bus != nil {
		_ = s.bus.Publish(ctx, domainevents.TopicStockAdjusted, domainevents.StockAdjustedEvent{
			EventID:    s.ids.NewID(),
			ItemID:     item.ID,
			LogID:      entry.ID,
			Type:       typ.String(),
			Amount:     amount,
			Quantity:   item.Quantity,
			User:       user,
			OccurredAt: now,
		})
	}
	return item, entry, nil
}

// LogsFor returns up to limit most-recent entries for the item, newest
// first. Unknown items yield an empty slice, never an error.
func (s *Store) LogsFor(ctx context.Context, itemID string, limit int) ([]models.AdjustmentLog, error) {
	if limit <= 0 {
		limit = repositories.DefaultLogLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.AdjustmentLog, 0, limit)
	for _, l := range s.logs {
		if l.ItemID != itemID {
			continue
		}
		out = append(out, l)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// Ping satisfies the health-check interface. The in-process store is
// healthy whenever it is reachable.
func (s *Store) Ping(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return nil
}

// indexOf returns the position of the item with the given ID, or -1.
// Callers must hold s.mu.
func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.items, func(i models.Item) bool { return i.ID == id })
}

func (s *Store) publishItemEvent(ctx context.Context, topic string, item models.Item) {
	if s.bus == nil {
		return
	}
	_ = s.bus.Publish(ctx, topic, domainevents.ItemEvent{
		EventID:    s.ids.NewID(),
		ItemID:     item.ID,
		Name:       item.Name,
		OccurredAt: s.clock.Now(),
	})
}
