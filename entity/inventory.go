package entity

import "time"

type InventoryItem struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	SKU          string    `json:"sku"`
	Category     string    `json:"category"`
	Unit         string    `json:"unit"`
	Price        float64   `json:"price"`
	VendorID     string    `json:"vendorId"`
	MinimumStock float64   `json:"minimumStock"`
	CurrentStock float64   `json:"currentStock"` // never negative
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type UsageReason string

const (
	UsageProduction UsageReason = "production"
	UsageWastage    UsageReason = "wastage"
	UsageDamage     UsageReason = "damage"
	UsageOther      UsageReason = "other"
)

// InventoryUsageRecord is written as a side effect of recording usage,
// together with the stock decrement.
type InventoryUsageRecord struct {
	ID        string      `json:"id"`
	ItemID    string      `json:"itemId"`
	Quantity  float64     `json:"quantity"`
	Reason    UsageReason `json:"reason"`
	Notes     string      `json:"notes"`
	CreatedAt time.Time   `json:"createdAt"`
}

type HistoryAction string

const (
	HistoryCreate      HistoryAction = "create"
	HistoryUpdate      HistoryAction = "update"
	HistoryDelete      HistoryAction = "delete"
	HistoryStockUpdate HistoryAction = "stock_update"
)

// InventoryHistoryEntry is an append-only audit row; one entry per
// successful inventory mutation.
type InventoryHistoryEntry struct {
	ID            string        `json:"id"`
	Action        HistoryAction `json:"action"`
	ItemName      string        `json:"itemName"`
	SKU           string        `json:"sku"`
	PreviousValue string        `json:"previousValue"`
	NewValue      string        `json:"newValue"`
	User          string        `json:"user"`
	Notes         string        `json:"notes"`
	CreatedAt     time.Time     `json:"createdAt"`
}
