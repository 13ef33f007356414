package state

import (
	"fmt"
	"strconv"

	"github.com/harisharnamm/rasoi-v1-sub000/entity"
)

type InventoryItemPatch struct {
	Name         *string  `json:"name"`
	SKU          *string  `json:"sku"`
	Category     *string  `json:"category"`
	Unit         *string  `json:"unit"`
	Price        *float64 `json:"price"`
	VendorID     *string  `json:"vendorId"`
	MinimumStock *float64 `json:"minimumStock"`
	CurrentStock *float64 `json:"currentStock"`
	User         string   `json:"user"`
	Notes        string   `json:"notes"`
}

// AddInventoryItem appends the item and writes a create entry to the
// history log. SKUs are unique across the catalog.
func (c *Container) AddInventoryItem(item entity.InventoryItem, user string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var problems []string
	if item.Name == "" {
		problems = append(problems, "name is required")
	}
	if item.SKU == "" {
		problems = append(problems, "sku is required")
	}
	if item.CurrentStock < 0 {
		problems = append(problems, "currentStock cannot be negative")
	}
	if c.skuTaken(item.SKU, "") {
		problems = append(problems, fmt.Sprintf("sku %q already exists", item.SKU))
	}
	if len(problems) > 0 {
		return "", &ValidationError{Problems: problems}
	}

	item.ID = newID()
	item.CreatedAt = now()
	item.UpdatedAt = item.CreatedAt

	items := append([]entity.InventoryItem(nil), c.snap.InventoryItems...)
	c.snap.InventoryItems = append(items, item)
	c.appendHistory(entity.InventoryHistoryEntry{
		Action:   entity.HistoryCreate,
		ItemName: item.Name,
		SKU:      item.SKU,
		NewValue: formatStock(item.CurrentStock),
		User:     user,
		Notes:    "item created",
	})

	c.commit("inventory", "add", item.ID)
	return item.ID, nil
}

// UpdateInventoryItem merges the patch and writes one history entry:
// stock_update when the patch touches currentStock, update otherwise.
func (c *Container) UpdateInventoryItem(id string, patch InventoryItemPatch) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.inventoryIndex(id)
	if idx < 0 {
		return &NotFoundError{Entity: "inventory item", ID: id}
	}
	if patch.SKU != nil && c.skuTaken(*patch.SKU, id) {
		return validationf("sku %q already exists", *patch.SKU)
	}
	if patch.CurrentStock != nil && *patch.CurrentStock < 0 {
		return validationf("currentStock cannot be negative")
	}

	items := append([]entity.InventoryItem(nil), c.snap.InventoryItems...)
	it := &items[idx]
	prevStock := it.CurrentStock

	if patch.Name != nil {
		it.Name = *patch.Name
	}
	if patch.SKU != nil {
		it.SKU = *patch.SKU
	}
	if patch.Category != nil {
		it.Category = *patch.Category
	}
	if patch.Unit != nil {
		it.Unit = *patch.Unit
	}
	if patch.Price != nil {
		it.Price = *patch.Price
	}
	if patch.VendorID != nil {
		it.VendorID = *patch.VendorID
	}
	if patch.MinimumStock != nil {
		it.MinimumStock = *patch.MinimumStock
	}
	if patch.CurrentStock != nil {
		it.CurrentStock = *patch.CurrentStock
	}
	it.UpdatedAt = now()
	c.snap.InventoryItems = items

	entry := entity.InventoryHistoryEntry{
		Action:   entity.HistoryUpdate,
		ItemName: it.Name,
		SKU:      it.SKU,
		User:     patch.User,
		Notes:    patch.Notes,
	}
	if patch.CurrentStock != nil {
		entry.Action = entity.HistoryStockUpdate
		entry.PreviousValue = formatStock(prevStock)
		entry.NewValue = formatStock(it.CurrentStock)
	}
	c.appendHistory(entry)

	c.commit("inventory", "update", id)
	return nil
}

func (c *Container) DeleteInventoryItem(id, user string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.inventoryIndex(id)
	if idx < 0 {
		return &NotFoundError{Entity: "inventory item", ID: id}
	}
	removed := c.snap.InventoryItems[idx]

	items := make([]entity.InventoryItem, 0, len(c.snap.InventoryItems)-1)
	items = append(items, c.snap.InventoryItems[:idx]...)
	items = append(items, c.snap.InventoryItems[idx+1:]...)
	c.snap.InventoryItems = items
	c.appendHistory(entity.InventoryHistoryEntry{
		Action:        entity.HistoryDelete,
		ItemName:      removed.Name,
		SKU:           removed.SKU,
		PreviousValue: formatStock(removed.CurrentStock),
		User:          user,
		Notes:         "item deleted",
	})

	c.commit("inventory", "delete", id)
	return nil
}

// RecordUsage consumes stock for a non-sale reason. It appends a usage
// record, decrements the item's stock and appends a stock_update history
// entry, all together or not at all.
func (c *Container) RecordUsage(itemID string, quantity float64, reason entity.UsageReason, notes string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		return validationf("quantity must be positive")
	}
	idx := c.inventoryIndex(itemID)
	if idx < 0 {
		return &NotFoundError{Entity: "inventory item", ID: itemID}
	}
	item := c.snap.InventoryItems[idx]
	if item.CurrentStock < quantity {
		return &InsufficientStockError{Item: item.Name, Requested: quantity, Available: item.CurrentStock}
	}

	items := append([]entity.InventoryItem(nil), c.snap.InventoryItems...)
	items[idx].CurrentStock -= quantity
	items[idx].UpdatedAt = now()
	c.snap.InventoryItems = items

	rec := entity.InventoryUsageRecord{
		ID:        newID(),
		ItemID:    itemID,
		Quantity:  quantity,
		Reason:    reason,
		Notes:     notes,
		CreatedAt: now(),
	}
	c.snap.UsageRecords = append(append([]entity.InventoryUsageRecord(nil), c.snap.UsageRecords...), rec)

	c.appendHistory(entity.InventoryHistoryEntry{
		Action:        entity.HistoryStockUpdate,
		ItemName:      item.Name,
		SKU:           item.SKU,
		PreviousValue: formatStock(item.CurrentStock),
		NewValue:      formatStock(items[idx].CurrentStock),
		Notes:         fmt.Sprintf("usage recorded: %g %s (%s)", quantity, item.Unit, reason),
	})

	c.commit("inventory", "usage", itemID)
	return nil
}

// LowStock lists items at or below their minimum stock level.
func (c *Container) LowStock() []entity.InventoryItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	var low []entity.InventoryItem
	for _, it := range c.snap.InventoryItems {
		if it.CurrentStock <= it.MinimumStock {
			low = append(low, it)
		}
	}
	return low
}

func (c *Container) InventoryItems() []entity.InventoryItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]entity.InventoryItem(nil), c.snap.InventoryItems...)
}

func (c *Container) InventoryItem(id string) (entity.InventoryItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.inventoryIndex(id)
	if idx < 0 {
		return entity.InventoryItem{}, &NotFoundError{Entity: "inventory item", ID: id}
	}
	return c.snap.InventoryItems[idx], nil
}

func (c *Container) UsageRecords() []entity.InventoryUsageRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]entity.InventoryUsageRecord(nil), c.snap.UsageRecords...)
}

func (c *Container) InventoryHistory() []entity.InventoryHistoryEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]entity.InventoryHistoryEntry(nil), c.snap.History...)
}

// appendHistory stamps and appends an audit entry. The log only grows.
func (c *Container) appendHistory(entry entity.InventoryHistoryEntry) {
	entry.ID = newID()
	entry.CreatedAt = now()
	c.snap.History = append(append([]entity.InventoryHistoryEntry(nil), c.snap.History...), entry)
}

func (c *Container) inventoryIndex(id string) int {
	for i := range c.snap.InventoryItems {
		if c.snap.InventoryItems[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *Container) skuTaken(sku, exceptID string) bool {
	for i := range c.snap.InventoryItems {
		if c.snap.InventoryItems[i].SKU == sku && c.snap.InventoryItems[i].ID != exceptID {
			return true
		}
	}
	return false
}

func formatStock(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
