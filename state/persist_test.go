package state

import (
	"encoding/json"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/harisharnamm/rasoi-v1-sub000/entity"
)

// Rehydrating from the slot reproduces the state: same entities, same
// values, dates equal after parse.
func TestSnapshotRoundTrip(t *testing.T) {
	slot := NewMemorySlot()
	c, err := New(slot, "cloud-kitchen", zap.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	menuID := c.AddMenuItem(entity.MenuItem{Name: "Thali", Price: 180, Available: true})
	invID, err := c.AddInventoryItem(entity.InventoryItem{Name: "Rice", SKU: "DRY-002", CurrentStock: 50}, "tester")
	if err != nil {
		t.Fatalf("inventory add: %v", err)
	}
	tableID := c.AddTable(entity.Table{Number: 1, Capacity: 2})
	c.AddToCart(menuID, "Thali", 180)

	reloaded, err := New(slot, "cloud-kitchen", zap.NewNop())
	if err != nil {
		t.Fatalf("reload: %v", err)
	}

	items := reloaded.MenuItems()
	if len(items) != 1 || items[0].ID != menuID || items[0].Price != 180 {
		t.Errorf("menu items = %+v", items)
	}
	orig, _ := c.MenuItem(menuID)
	if !items[0].CreatedAt.Equal(orig.CreatedAt) {
		t.Errorf("createdAt %v != %v after round trip", items[0].CreatedAt, orig.CreatedAt)
	}

	inv, err := reloaded.InventoryItem(invID)
	if err != nil || inv.CurrentStock != 50 {
		t.Errorf("inventory after reload: %+v, %v", inv, err)
	}
	if _, err := reloaded.Table(tableID); err != nil {
		t.Errorf("table after reload: %v", err)
	}
	if len(reloaded.Cart()) != 1 {
		t.Errorf("cart after reload = %+v", reloaded.Cart())
	}
	if len(reloaded.InventoryHistory()) != len(c.InventoryHistory()) {
		t.Error("history length changed across round trip")
	}
}

// A snapshot written before a slice existed rehydrates that slice empty.
func TestMissingSlicesDefaultToEmpty(t *testing.T) {
	slot := NewMemorySlot()
	partial := map[string]any{
		"version":   entity.SnapshotVersion,
		"menuItems": []map[string]any{{"id": "m1", "name": "Idli", "price": 60.0}},
	}
	data, err := json.Marshal(partial)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := slot.Save("restaurant", data); err != nil {
		t.Fatalf("save: %v", err)
	}

	c, err := New(slot, "restaurant", zap.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if len(c.MenuItems()) != 1 {
		t.Errorf("menu items = %+v", c.MenuItems())
	}
	if c.Cart() == nil || c.Tables() == nil || c.Vendors() == nil {
		t.Error("missing slices should rehydrate as empty, not nil")
	}
	if len(c.Orders()) != 0 || len(c.Customers()) != 0 {
		t.Error("absent slices should be empty")
	}
}

func TestNewerSnapshotVersionRejected(t *testing.T) {
	slot := NewMemorySlot()
	data, _ := json.Marshal(map[string]any{"version": entity.SnapshotVersion + 1})
	slot.Save("restaurant", data)

	if _, err := New(slot, "restaurant", zap.NewNop()); err == nil {
		t.Fatal("accepted a snapshot from the future")
	}
}

type failingSlot struct{ fails bool }

func (s *failingSlot) Load(string) ([]byte, bool, error) { return nil, false, nil }
func (s *failingSlot) Save(string, []byte) error {
	if s.fails {
		return errors.New("disk full")
	}
	return nil
}

// A failed durable write keeps the in-memory update; the store stays
// usable.
func TestWriteFailureKeepsInMemoryState(t *testing.T) {
	slot := &failingSlot{fails: true}
	c, err := New(slot, "cloud-kitchen", zap.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	id := c.AddMenuItem(entity.MenuItem{Name: "Vada", Price: 40})
	if _, err := c.MenuItem(id); err != nil {
		t.Errorf("item lost after failed write: %v", err)
	}

	// And the next mutation still works.
	c.AddToCart(id, "Vada", 40)
	if len(c.Cart()) != 1 {
		t.Error("container unusable after write failure")
	}
}

// Each namespace holds its own document.
func TestNamespacesAreIndependent(t *testing.T) {
	slot := NewMemorySlot()
	kitchen, _ := New(slot, "cloud-kitchen", zap.NewNop())
	restaurant, _ := New(slot, "restaurant", zap.NewNop())

	kitchen.AddMenuItem(entity.MenuItem{Name: "Thali", Price: 180})
	if len(restaurant.MenuItems()) != 0 {
		t.Error("namespaces share state")
	}

	reloaded, _ := New(slot, "restaurant", zap.NewNop())
	if len(reloaded.MenuItems()) != 0 {
		t.Error("restaurant namespace picked up cloud-kitchen writes")
	}
}

type recordingPublisher struct{ events []Event }

func (p *recordingPublisher) Publish(e Event) { p.events = append(p.events, e) }

func TestMutationsPublishEvents(t *testing.T) {
	c := newTestContainer(t)
	pub := &recordingPublisher{}
	c.SetPublisher(pub)

	id := c.AddMenuItem(entity.MenuItem{Name: "Vada", Price: 40})
	c.AddToCart(id, "Vada", 40)

	if len(pub.events) != 2 {
		t.Fatalf("got %d events, want 2", len(pub.events))
	}
	if pub.events[0].Slice != "menuItems" || pub.events[0].Op != "add" || pub.events[0].ID != id {
		t.Errorf("event = %+v", pub.events[0])
	}
	if pub.events[1].Slice != "cart" {
		t.Errorf("event = %+v", pub.events[1])
	}
}
