package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ghuser/stockroom/pkg/config"
	"github.com/ghuser/stockroom/pkg/events"
	"github.com/ghuser/stockroom/pkg/logger"
	domainevents "github.com/ghuser/stockroom/services/inventory/domain/events"
	"github.com/ghuser/stockroom/services/inventory/domain/models"
	"github.com/ghuser/stockroom/services/inventory/domain/repositories"
	"github.com/ghuser/stockroom/services/inventory/infrastructure/persistence/memory"
)

// countingStore wraps the in-memory store so cache hits are observable as
// the absence of a pass-through call.
type countingStore struct {
	*memory.Store
	listCalls int
	logsCalls int
}

func (c *countingStore) List(ctx context.Context) ([]models.Item, error) {
	c.listCalls++
	return c.Store.List(ctx)
}

func (c *countingStore) LogsFor(ctx context.Context, itemID string, limit int) ([]models.AdjustmentLog, error) {
	c.logsCalls++
	return c.Store.LogsFor(ctx, itemID, limit)
}

var _ repositories.ItemStore = (*countingStore)(nil)
var _ repositories.AdjustmentLedger = (*countingStore)(nil)

func testLogger() logger.Logger {
	return logger.New(&config.Config{LogLevel: "error"})
}

func newTestFacade(t *testing.T, latency time.Duration) (*Inventory, *countingStore) {
	t.Helper()
	cs := &countingStore{Store: memory.NewStore(nil)}
	svc := NewInventory(cs, cs, InventoryConfig{SimulatedLatency: latency}, testLogger())
	return svc, cs
}

func mustCreate(t *testing.T, svc *Inventory) models.Item {
	t.Helper()
	item, err := svc.CreateItem(context.Background(), models.Draft{
		Name:         "Olive Oil",
		Category:     models.CategoryIngredient,
		Quantity:     12,
		Unit:         "bottles",
		ReorderPoint: 4,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return item
}

func TestListItemsCaching(t *testing.T) {
	svc, cs := newTestFacade(t, 0)
	mustCreate(t, svc)

	if _, err := svc.ListItems(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	if _, err := svc.ListItems(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	if cs.listCalls != 1 {
		t.Fatalf("expected second list to hit the view cache, store saw %d calls", cs.listCalls)
	}
}

func TestMutationsInvalidateListView(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		svc, _ := newTestFacade(t, 0)
		mustCreate(t, svc)

		before, _ := svc.ListItems(context.Background())
		mustCreate(t, svc)
		after, _ := svc.ListItems(context.Background())

		if len(after) != len(before)+1 {
			t.Fatalf("stale list after create: before %d, after %d", len(before), len(after))
		}
	})

	t.Run("update", func(t *testing.T) {
		svc, _ := newTestFacade(t, 0)
		item := mustCreate(t, svc)
		_, _ = svc.ListItems(context.Background())

		name := "Extra Virgin Olive Oil"
		if _, err := svc.UpdateItem(context.Background(), item.ID, models.Patch{Name: &name}); err != nil {
			t.Fatalf("update: %v", err)
		}

		items, _ := svc.ListItems(context.Background())
		if items[0].Name != name {
			t.Fatalf("stale list after update: %q", items[0].Name)
		}
	})

	t.Run("adjust", func(t *testing.T) {
		svc, _ := newTestFacade(t, 0)
		item := mustCreate(t, svc)
		_, _ = svc.ListItems(context.Background())

		if _, _, err := svc.AdjustItem(context.Background(), item.ID, models.AdjustmentRemove, 2, "used in dressing", "Joe Manager"); err != nil {
			t.Fatalf("adjust: %v", err)
		}

		items, _ := svc.ListItems(context.Background())
		if items[0].Quantity != 10 {
			t.Fatalf("stale list after adjust: quantity %v", items[0].Quantity)
		}
	})

	t.Run("delete", func(t *testing.T) {
		svc, _ := newTestFacade(t, 0)
		item := mustCreate(t, svc)
		_, _ = svc.ListItems(context.Background())

		removed, err := svc.DeleteItem(context.Background(), item.ID)
		if err != nil || !removed {
			t.Fatalf("delete: removed=%v err=%v", removed, err)
		}

		items, _ := svc.ListItems(context.Background())
		if len(items) != 0 {
			t.Fatalf("stale list after delete: %v", items)
		}
	})
}

func TestDeleteUnknownKeepsViewWarm(t *testing.T) {
	svc, cs := newTestFacade(t, 0)
	mustCreate(t, svc)
	_, _ = svc.ListItems(context.Background())

	removed, err := svc.DeleteItem(context.Background(), "missing")
	if err != nil || removed {
		t.Fatalf("expected no-op delete, got removed=%v err=%v", removed, err)
	}

	_, _ = svc.ListItems(context.Background())
	if cs.listCalls != 1 {
		t.Fatalf("no-op delete must not bust the view, store saw %d list calls", cs.listCalls)
	}
}

func TestLogsViewBustAfterAdjust(t *testing.T) {
	svc, _ := newTestFacade(t, 0)
	item := mustCreate(t, svc)

	_, _, _ = svc.AdjustItem(context.Background(), item.ID, models.AdjustmentAdd, 1, "delivery arrived", "Joe Manager")
	logs, _ := svc.LogsForItem(context.Background(), item.ID, 0)
	if len(logs) != 1 {
		t.Fatalf("expected 1 log, got %d", len(logs))
	}

	_, _, _ = svc.AdjustItem(context.Background(), item.ID, models.AdjustmentAdd, 1, "delivery arrived", "Joe Manager")
	logs, _ = svc.LogsForItem(context.Background(), item.ID, 0)
	if len(logs) != 2 {
		t.Fatalf("stale logs view after adjust: got %d entries", len(logs))
	}
}

func TestSimulatedLatency(t *testing.T) {
	t.Run("calls wait at the boundary", func(t *testing.T) {
		svc, _ := newTestFacade(t, 30*time.Millisecond)

		start := time.Now()
		if _, err := svc.ListItems(context.Background()); err != nil {
			t.Fatalf("list: %v", err)
		}
		if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
			t.Fatalf("expected at least 30ms latency, took %v", elapsed)
		}
	})

	t.Run("cancellation observed at the boundary", func(t *testing.T) {
		svc, cs := newTestFacade(t, time.Second)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := svc.ListItems(ctx)
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if cs.listCalls != 0 {
			t.Fatal("cancelled call must not reach the store")
		}
	})

	t.Run("already-cancelled context fails even with zero latency", func(t *testing.T) {
		svc, _ := newTestFacade(t, 0)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := svc.ListItems(ctx); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})
}

func TestStartInvalidation(t *testing.T) {
	svc, cs := newTestFacade(t, 0)
	mustCreate(t, svc)

	bus := events.NewEventBus(testLogger())
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := svc.StartInvalidation(ctx, bus); err != nil {
		t.Fatalf("start invalidation: %v", err)
	}

	// Warm the view, then bust it through the bus as an outside publisher would.
	_, _ = svc.ListItems(context.Background())
	warm := cs.listCalls

	err := bus.Publish(context.Background(), domainevents.TopicStockAdjusted, domainevents.StockAdjustedEvent{ItemID: "ext-1"})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		_, _ = svc.ListItems(context.Background())
		if cs.listCalls > warm {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("list view was not invalidated by the bus event")
}
