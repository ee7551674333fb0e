package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	pkgcache "github.com/ghuser/stockroom/pkg/cache"
	"github.com/ghuser/stockroom/pkg/logger"
	domainevents "github.com/ghuser/stockroom/services/inventory/domain/events"
	"github.com/ghuser/stockroom/services/inventory/domain/models"
	"github.com/ghuser/stockroom/services/inventory/domain/repositories"
)

const listViewKey = "items"

// Subscriber is the slice of the event bus the facade needs for
// event-driven cache invalidation.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string, handler func(context.Context, *message.Message) error) (<-chan error, error)
}

// Inventory is the query facade over the item store and adjustment ledger.
// Every method is asynchronous in contract: it may suspend at the call
// boundary (simulated latency standing in for a future networked backend)
// and honors context cancellation there. Once a mutation begins it runs to
// completion or fails cleanly.
//
// Reads of the item list and per-item logs are served from expirable view
// caches. Any successful mutation invalidates both views before returning,
// so a caller never observes a stale read across its own mutation boundary;
// a bus subscription (StartInvalidation) additionally busts the views when
// some other component publishes a mutation event.
type Inventory struct {
	store  repositories.ItemStore
	ledger repositories.AdjustmentLedger

	listView *pkgcache.View[[]models.Item]
	logsView *pkgcache.View[[]models.AdjustmentLog]

	latency time.Duration
	log     logger.Logger
}

// InventoryConfig holds the knobs for NewInventory.
type InventoryConfig struct {
	// SimulatedLatency is waited at each call boundary. Zero disables it.
	SimulatedLatency time.Duration
	// ViewCacheSize and ViewCacheTTL size the read-view caches.
	ViewCacheSize int
	ViewCacheTTL  time.Duration
}

// NewInventory returns a facade wired with the given store and ledger.
func NewInventory(store repositories.ItemStore, ledger repositories.AdjustmentLedger, cfg InventoryConfig, log logger.Logger) *Inventory {
	size := cfg.ViewCacheSize
	if size <= 0 {
		size = 128
	}
	ttl := cfg.ViewCacheTTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &Inventory{
		store:    store,
		ledger:   ledger,
		listView: pkgcache.NewView[[]models.Item](size, ttl),
		logsView: pkgcache.NewView[[]models.AdjustmentLog](size, ttl),
		latency:  cfg.SimulatedLatency,
		log:      log,
	}
}

// StartInvalidation subscribes the facade to every mutation topic so cached
// views are also busted when a mutation event arrives from outside this
// facade. Subscriber error channels are drained into the logger.
func (s *Inventory) StartInvalidation(ctx context.Context, bus Subscriber) error {
	for _, topic := range domainevents.MutationTopics() {
		errCh, err := bus.Subscribe(ctx, topic, func(ctx context.Context, _ *message.Message) error {
			s.invalidate()
			return nil
		})
		if err != nil {
			return fmt.Errorf("facade: subscribe %s: %w", topic, err)
		}
		go func(topic string) {
			for err := range errCh {
				s.log.ErrorContext(ctx, "facade: invalidation subscriber error", "topic", topic, "error", err)
			}
		}(topic)
	}
	return nil
}

// ListItems returns a snapshot of all items, served from the view cache
// when warm.
func (s *Inventory) ListItems(ctx context.Context) ([]models.Item, error) {
	if err := s.await(ctx); err != nil {
		return nil, err
	}

	if cached, ok := s.listView.Get(listViewKey); ok {
		return slices.Clone(cached), nil
	}

	items, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	s.listView.Set(listViewKey, slices.Clone(items))
	return items, nil
}

// GetItem returns one item by ID. Single-item reads go straight to the
// store; only the list and log views are cached.
func (s *Inventory) GetItem(ctx context.Context, id string) (models.Item, error) {
	if err := s.await(ctx); err != nil {
		return models.Item{}, err
	}
	return s.store.Get(ctx, id)
}

// CreateItem validates and stores a new item, then invalidates cached views.
func (s *Inventory) CreateItem(ctx context.Context, draft models.Draft) (models.Item, error) {
	if err := s.await(ctx); err != nil {
		return models.Item{}, err
	}

	item, err := s.store.Create(ctx, draft)
	if err != nil {
		return models.Item{}, err
	}
	s.invalidate()
	return item, nil
}

// UpdateItem merges a patch onto an existing item, then invalidates cached views.
func (s *Inventory) UpdateItem(ctx context.Context, id string, patch models.Patch) (models.Item, error) {
	if err := s.await(ctx); err != nil {
		return models.Item{}, err
	}

	item, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return models.Item{}, err
	}
	s.invalidate()
	return item, nil
}

// DeleteItem removes an item and its ledger history. Idempotent: deleting an
// unknown ID reports removed=false without error. The views are invalidated
// only when something was actually removed.
func (s *Inventory) DeleteItem(ctx context.Context, id string) (bool, error) {
	if err := s.await(ctx); err != nil {
		return false, err
	}

	removed, err := s.store.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if removed {
		s.invalidate()
	}
	return removed, nil
}

// AdjustItem applies a stock change through the ledger, then invalidates
// cached views.
func (s *Inventory) AdjustItem(ctx context.Context, itemID string, typ models.AdjustmentType, amount float64, reason, user string) (models.Item, models.AdjustmentLog, error) {
	if err := s.await(ctx); err != nil {
		return models.Item{}, models.AdjustmentLog{}, err
	}

	item, entry, err := s.ledger.Adjust(ctx, itemID, typ, amount, reason, user)
	if err != nil {
		return models.Item{}, models.AdjustmentLog{}, err
	}
	s.invalidate()
	return item, entry, nil
}

// LogsForItem returns up to limit most-recent ledger entries for the item,
// newest first, served from the view cache when warm. limit <= 0 means the
// ledger default.
func (s *Inventory) LogsForItem(ctx context.Context, itemID string, limit int) ([]models.AdjustmentLog, error) {
	if err := s.await(ctx); err != nil {
		return nil, err
	}

	key := logsViewKey(itemID, limit)
	if cached, ok := s.logsView.Get(key); ok {
		return slices.Clone(cached), nil
	}

	logs, err := s.ledger.LogsFor(ctx, itemID, limit)
	if err != nil {
		return nil, fmt.Errorf("logs for item: %w", err)
	}
	s.logsView.Set(key, slices.Clone(logs))
	return logs, nil
}

// invalidate drops every cached view. Mutations are rare and the views are
// cheap to rebuild, so a full purge is simpler than per-key accounting.
func (s *Inventory) invalidate() {
	s.listView.Invalidate(listViewKey)
	s.logsView.Purge()
}

// await suspends at the call boundary for the configured simulated latency,
// honoring cancellation. Cancellation is only observed here: once a mutation
// begins it runs to completion.
func (s *Inventory) await(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.latency):
		return nil
	}
}

func logsViewKey(itemID string, limit int) string {
	if limit <= 0 {
		limit = repositories.DefaultLogLimit
	}
	return fmt.Sprintf("logs:%s:%d", itemID, limit)
}
