package entity

import "time"

type MenuItem struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       float64      `json:"price"`
	Image       string       `json:"image"`
	Available   bool         `json:"available"`
	CategoryID  string       `json:"categoryId"`
	Ingredients []Ingredient `json:"ingredients"`
	PrepTime    int          `json:"prepTime"` // minutes
	PrepNotes   string       `json:"prepNotes"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// Ingredient links a menu item to the inventory item it consumes.
type Ingredient struct {
	InventoryItemID string  `json:"inventoryItemId"`
	Quantity        float64 `json:"quantity"`
	Unit            string  `json:"unit"`
	WastagePercent  float64 `json:"wastagePercent"`
}
