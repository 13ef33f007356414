package entity

import "time"

// MenuCategory groups menu items. DisplayOrder is a dense 1-based index
// recomputed on every reorder.
type MenuCategory struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	DisplayOrder int       `json:"displayOrder"`
	Active       bool      `json:"active"`
	ParentID     string    `json:"parentId,omitempty"`
	ItemIDs      []string  `json:"itemIds"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
