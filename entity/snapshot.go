package entity

import "time"

// SnapshotVersion is bumped whenever the persisted shape changes; the
// loader migrates older snapshots forward.
const SnapshotVersion = 1

// Snapshot is the full composed state as written to the durable slot.
// Timestamps serialize as RFC3339 through encoding/json; that is the one
// canonical date representation across every slice.
type Snapshot struct {
	Version        int                     `json:"version"`
	SavedAt        time.Time               `json:"savedAt"`
	MenuItems      []MenuItem              `json:"menuItems"`
	Categories     []MenuCategory          `json:"categories"`
	InventoryItems []InventoryItem         `json:"inventoryItems"`
	UsageRecords   []InventoryUsageRecord  `json:"usageRecords"`
	History        []InventoryHistoryEntry `json:"history"`
	Vendors        []Vendor                `json:"vendors"`
	PurchaseOrders []PurchaseOrder         `json:"purchaseOrders"`
	Orders         []Order                 `json:"orders"`
	Tables         []Table                 `json:"tables"`
	DineInOrders   []DineInOrder           `json:"dineInOrders"`
	Waiters        []Waiter                `json:"waiters"`
	Stores         []Store                 `json:"stores"`
	Customers      []Customer              `json:"customers"`
	Cart           []CartItem              `json:"cart"`
}
