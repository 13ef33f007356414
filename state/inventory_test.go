package state

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/harisharnamm/rasoi-v1-sub000/entity"
)

func newTestContainer(t *testing.T) *Container {
	t.Helper()
	c, err := New(NewMemorySlot(), "test", zap.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func addTestItem(t *testing.T, c *Container, stock, min float64) string {
	t.Helper()
	id, err := c.AddInventoryItem(entity.InventoryItem{
		Name:         "Tomatoes",
		SKU:          "VEG-001",
		Category:     "vegetables",
		Unit:         "kg",
		Price:        2.5,
		MinimumStock: min,
		CurrentStock: stock,
	}, "tester")
	if err != nil {
		t.Fatalf("AddInventoryItem: %v", err)
	}
	return id
}

func TestRecordUsageDecrementsStock(t *testing.T) {
	c := newTestContainer(t)
	id := addTestItem(t, c, 10, 2)

	if err := c.RecordUsage(id, 4, entity.UsageProduction, "lunch prep"); err != nil {
		t.Fatalf("RecordUsage: %v", err)
	}

	item, err := c.InventoryItem(id)
	if err != nil {
		t.Fatalf("InventoryItem: %v", err)
	}
	if item.CurrentStock != 6 {
		t.Errorf("currentStock = %g, want 6", item.CurrentStock)
	}

	records := c.UsageRecords()
	if len(records) != 1 {
		t.Fatalf("got %d usage records, want 1", len(records))
	}
	if records[0].Quantity != 4 || records[0].Reason != entity.UsageProduction {
		t.Errorf("usage record = %+v", records[0])
	}
	if records[0].CreatedAt.IsZero() {
		t.Error("usage record has no timestamp")
	}

	history := c.InventoryHistory()
	last := history[len(history)-1]
	if last.Action != entity.HistoryStockUpdate {
		t.Errorf("history action = %s, want stock_update", last.Action)
	}
	if last.PreviousValue != "10" || last.NewValue != "6" {
		t.Errorf("history values = %q -> %q, want 10 -> 6", last.PreviousValue, last.NewValue)
	}
}

func TestRecordUsageInsufficientStock(t *testing.T) {
	c := newTestContainer(t)
	id := addTestItem(t, c, 10, 2)
	if err := c.RecordUsage(id, 4, entity.UsageProduction, ""); err != nil {
		t.Fatalf("RecordUsage: %v", err)
	}

	records := len(c.UsageRecords())
	entries := len(c.InventoryHistory())

	err := c.RecordUsage(id, 20, entity.UsageWastage, "")
	var insufficient *InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("got %v, want InsufficientStockError", err)
	}
	if insufficient.Available != 6 || insufficient.Requested != 20 {
		t.Errorf("error carries %g/%g, want available 6 requested 20", insufficient.Available, insufficient.Requested)
	}

	// Failure must be non-partial.
	item, _ := c.InventoryItem(id)
	if item.CurrentStock != 6 {
		t.Errorf("currentStock = %g after failed usage, want 6", item.CurrentStock)
	}
	if len(c.UsageRecords()) != records {
		t.Error("failed usage appended a usage record")
	}
	if len(c.InventoryHistory()) != entries {
		t.Error("failed usage appended a history entry")
	}
}

func TestRecordUsageMissingItem(t *testing.T) {
	c := newTestContainer(t)
	err := c.RecordUsage("nope", 1, entity.UsageOther, "")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("got %v, want NotFoundError", err)
	}
}

// Stock never goes negative across any sequence of usage calls.
func TestStockInvariantOverSequence(t *testing.T) {
	c := newTestContainer(t)
	id := addTestItem(t, c, 5, 0)

	for _, qty := range []float64{2, 2, 2, 1, 3} {
		err := c.RecordUsage(id, qty, entity.UsageProduction, "")
		item, _ := c.InventoryItem(id)
		if item.CurrentStock < 0 {
			t.Fatalf("stock went negative: %g", item.CurrentStock)
		}
		if err != nil {
			var insufficient *InsufficientStockError
			if !errors.As(err, &insufficient) {
				t.Fatalf("unexpected error: %v", err)
			}
		}
	}

	item, _ := c.InventoryItem(id)
	if item.CurrentStock != 1 {
		t.Errorf("final stock = %g, want 1", item.CurrentStock)
	}
}

// Every successful inventory mutation appends exactly one history entry.
func TestHistoryAppendOnly(t *testing.T) {
	c := newTestContainer(t)

	id := addTestItem(t, c, 10, 2)
	if n := len(c.InventoryHistory()); n != 1 {
		t.Fatalf("after create: %d entries, want 1", n)
	}

	name := "Cherry Tomatoes"
	if err := c.UpdateInventoryItem(id, InventoryItemPatch{Name: &name}); err != nil {
		t.Fatalf("update: %v", err)
	}
	history := c.InventoryHistory()
	if len(history) != 2 {
		t.Fatalf("after update: %d entries, want 2", len(history))
	}
	if history[1].Action != entity.HistoryUpdate {
		t.Errorf("action = %s, want update", history[1].Action)
	}

	stock := 25.0
	if err := c.UpdateInventoryItem(id, InventoryItemPatch{CurrentStock: &stock}); err != nil {
		t.Fatalf("stock update: %v", err)
	}
	history = c.InventoryHistory()
	if len(history) != 3 {
		t.Fatalf("after stock update: %d entries, want 3", len(history))
	}
	if history[2].Action != entity.HistoryStockUpdate {
		t.Errorf("action = %s, want stock_update", history[2].Action)
	}
	if history[2].PreviousValue != "10" || history[2].NewValue != "25" {
		t.Errorf("values = %q -> %q, want 10 -> 25", history[2].PreviousValue, history[2].NewValue)
	}

	if err := c.DeleteInventoryItem(id, "tester"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	history = c.InventoryHistory()
	if len(history) != 4 {
		t.Fatalf("after delete: %d entries, want 4", len(history))
	}
	if history[3].Action != entity.HistoryDelete {
		t.Errorf("action = %s, want delete", history[3].Action)
	}
}

func TestDuplicateSKURejected(t *testing.T) {
	c := newTestContainer(t)
	addTestItem(t, c, 10, 2)

	_, err := c.AddInventoryItem(entity.InventoryItem{Name: "Other", SKU: "VEG-001"}, "tester")
	var invalid *ValidationError
	if !errors.As(err, &invalid) {
		t.Fatalf("got %v, want ValidationError", err)
	}

	id2, err := c.AddInventoryItem(entity.InventoryItem{Name: "Onions", SKU: "VEG-002"}, "tester")
	if err != nil {
		t.Fatalf("second item: %v", err)
	}
	sku := "VEG-001"
	err = c.UpdateInventoryItem(id2, InventoryItemPatch{SKU: &sku})
	if !errors.As(err, &invalid) {
		t.Fatalf("update to taken sku: got %v, want ValidationError", err)
	}
}

func TestUpdateMissingItemFails(t *testing.T) {
	c := newTestContainer(t)
	name := "x"
	err := c.UpdateInventoryItem("missing", InventoryItemPatch{Name: &name})
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("got %v, want NotFoundError", err)
	}
	if err := c.DeleteInventoryItem("missing", ""); !errors.As(err, &notFound) {
		t.Fatalf("delete missing: got %v, want NotFoundError", err)
	}
}

func TestLowStock(t *testing.T) {
	c := newTestContainer(t)
	addTestItem(t, c, 10, 2)
	id, err := c.AddInventoryItem(entity.InventoryItem{
		Name: "Flour", SKU: "DRY-001", CurrentStock: 1, MinimumStock: 5,
	}, "tester")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	low := c.LowStock()
	if len(low) != 1 || low[0].ID != id {
		t.Errorf("LowStock = %+v, want just the flour item", low)
	}
}
