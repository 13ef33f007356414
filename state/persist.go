package state

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/harisharnamm/rasoi-v1-sub000/entity"
)

// Slot is the durable key-value slot the composed state is snapshotted
// into, one JSON document per namespace.
type Slot interface {
	// Load returns the stored snapshot for the namespace, or ok=false when
	// nothing has been written yet.
	Load(namespace string) (data []byte, ok bool, err error)
	Save(namespace string, data []byte) error
}

// MemorySlot keeps snapshots in process memory. Used by tests and as a
// stand-in when no durable backend is configured.
type MemorySlot struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemorySlot() *MemorySlot {
	return &MemorySlot{data: make(map[string][]byte)}
}

func (s *MemorySlot) Load(namespace string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.data[namespace]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, true, nil
}

func (s *MemorySlot) Save(namespace string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	s.data[namespace] = cp
	return nil
}

func encodeSnapshot(snap *entity.Snapshot) ([]byte, error) {
	snap.Version = entity.SnapshotVersion
	snap.SavedAt = time.Now().UTC()
	return json.Marshal(snap)
}

// migrations maps a snapshot version to the step that lifts it one
// version forward. Every persisted shape change adds an entry here.
var migrations = map[int]func(*entity.Snapshot) error{}

func decodeSnapshot(data []byte) (*entity.Snapshot, error) {
	var snap entity.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if snap.Version > entity.SnapshotVersion {
		return nil, fmt.Errorf("snapshot version %d is newer than supported version %d", snap.Version, entity.SnapshotVersion)
	}
	for v := snap.Version; v < entity.SnapshotVersion; v++ {
		step, ok := migrations[v]
		if !ok {
			return nil, fmt.Errorf("no migration from snapshot version %d", v)
		}
		if err := step(&snap); err != nil {
			return nil, fmt.Errorf("migrate snapshot from version %d: %w", v, err)
		}
		snap.Version = v + 1
	}
	normalize(&snap)
	return &snap, nil
}

// normalize defaults any slice missing from the stored document to its
// empty initial value.
func normalize(snap *entity.Snapshot) {
	if snap.MenuItems == nil {
		snap.MenuItems = []entity.MenuItem{}
	}
	if snap.Categories == nil {
		snap.Categories = []entity.MenuCategory{}
	}
	if snap.InventoryItems == nil {
		snap.InventoryItems = []entity.InventoryItem{}
	}
	if snap.UsageRecords == nil {
		snap.UsageRecords = []entity.InventoryUsageRecord{}
	}
	if snap.History == nil {
		snap.History = []entity.InventoryHistoryEntry{}
	}
	if snap.Vendors == nil {
		snap.Vendors = []entity.Vendor{}
	}
	if snap.PurchaseOrders == nil {
		snap.PurchaseOrders = []entity.PurchaseOrder{}
	}
	if snap.Orders == nil {
		snap.Orders = []entity.Order{}
	}
	if snap.Tables == nil {
		snap.Tables = []entity.Table{}
	}
	if snap.DineInOrders == nil {
		snap.DineInOrders = []entity.DineInOrder{}
	}
	if snap.Waiters == nil {
		snap.Waiters = []entity.Waiter{}
	}
	if snap.Stores == nil {
		snap.Stores = []entity.Store{}
	}
	if snap.Customers == nil {
		snap.Customers = []entity.Customer{}
	}
	if snap.Cart == nil {
		snap.Cart = []entity.CartItem{}
	}
}
