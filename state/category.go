package state

import (
	"sort"

	"github.com/harisharnamm/rasoi-v1-sub000/entity"
)

type CategoryPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
	ParentID    *string `json:"parentId"`
}

// AddCategory appends the category at the end of the display order.
func (c *Container) AddCategory(cat entity.MenuCategory) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	cat.ID = newID()
	cat.CreatedAt = now()
	cat.UpdatedAt = cat.CreatedAt
	cat.DisplayOrder = len(c.snap.Categories) + 1
	if cat.ItemIDs == nil {
		cat.ItemIDs = []string{}
	}

	cats := append([]entity.MenuCategory(nil), c.snap.Categories...)
	c.snap.Categories = append(cats, cat)

	c.commit("categories", "add", cat.ID)
	return cat.ID
}

func (c *Container) UpdateCategory(id string, patch CategoryPatch) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.categoryIndex(id)
	if idx < 0 {
		return &NotFoundError{Entity: "category", ID: id}
	}

	cats := append([]entity.MenuCategory(nil), c.snap.Categories...)
	cat := &cats[idx]
	if patch.Name != nil {
		cat.Name = *patch.Name
	}
	if patch.Description != nil {
		cat.Description = *patch.Description
	}
	if patch.Active != nil {
		cat.Active = *patch.Active
	}
	if patch.ParentID != nil {
		cat.ParentID = *patch.ParentID
	}
	cat.UpdatedAt = now()
	c.snap.Categories = cats

	c.commit("categories", "update", id)
	return nil
}

// DeleteCategory removes the category and renumbers the rest so the
// display order stays dense.
func (c *Container) DeleteCategory(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.categoryIndex(id)
	if idx < 0 {
		return &NotFoundError{Entity: "category", ID: id}
	}

	cats := make([]entity.MenuCategory, 0, len(c.snap.Categories)-1)
	cats = append(cats, c.snap.Categories[:idx]...)
	cats = append(cats, c.snap.Categories[idx+1:]...)
	renumber(cats)
	c.snap.Categories = cats

	c.commit("categories", "delete", id)
	return nil
}

// ReorderCategories moves source to where target currently sits, shifting
// everything between, then renumbers every category to its dense 1-based
// position. Every sibling's order field changes; that is deliberate.
func (c *Container) ReorderCategories(sourceID, targetID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	src := c.categoryIndex(sourceID)
	if src < 0 {
		return &NotFoundError{Entity: "category", ID: sourceID}
	}
	dst := c.categoryIndex(targetID)
	if dst < 0 {
		return &NotFoundError{Entity: "category", ID: targetID}
	}
	if src == dst {
		return nil
	}

	cats := append([]entity.MenuCategory(nil), c.snap.Categories...)
	moved := cats[src]
	cats = append(cats[:src], cats[src+1:]...)
	rest := append([]entity.MenuCategory(nil), cats[dst:]...)
	cats = append(append(cats[:dst:dst], moved), rest...)
	renumber(cats)
	c.snap.Categories = cats

	c.commit("categories", "reorder", sourceID)
	return nil
}

// AssignMenuItem adds the menu item id to the category's list. Adding an
// id that is already assigned is a no-op.
func (c *Container) AssignMenuItem(categoryID, itemID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.categoryIndex(categoryID)
	if idx < 0 {
		return &NotFoundError{Entity: "category", ID: categoryID}
	}

	cats := append([]entity.MenuCategory(nil), c.snap.Categories...)
	cat := &cats[idx]
	for _, id := range cat.ItemIDs {
		if id == itemID {
			return nil
		}
	}
	cat.ItemIDs = append(append([]string(nil), cat.ItemIDs...), itemID)
	cat.UpdatedAt = now()
	c.snap.Categories = cats

	c.commit("categories", "assign", categoryID)
	return nil
}

func (c *Container) UnassignMenuItem(categoryID, itemID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.categoryIndex(categoryID)
	if idx < 0 {
		return &NotFoundError{Entity: "category", ID: categoryID}
	}

	cats := append([]entity.MenuCategory(nil), c.snap.Categories...)
	cat := &cats[idx]
	ids := make([]string, 0, len(cat.ItemIDs))
	for _, id := range cat.ItemIDs {
		if id != itemID {
			ids = append(ids, id)
		}
	}
	cat.ItemIDs = ids
	cat.UpdatedAt = now()
	c.snap.Categories = cats

	c.commit("categories", "unassign", categoryID)
	return nil
}

// Categories returns a copy sorted by display order.
func (c *Container) Categories() []entity.MenuCategory {
	c.mu.Lock()
	defer c.mu.Unlock()
	cats := append([]entity.MenuCategory(nil), c.snap.Categories...)
	sort.SliceStable(cats, func(i, j int) bool {
		return cats[i].DisplayOrder < cats[j].DisplayOrder
	})
	return cats
}

func (c *Container) Category(id string) (entity.MenuCategory, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.categoryIndex(id)
	if idx < 0 {
		return entity.MenuCategory{}, &NotFoundError{Entity: "category", ID: id}
	}
	return c.snap.Categories[idx], nil
}

func (c *Container) categoryIndex(id string) int {
	for i := range c.snap.Categories {
		if c.snap.Categories[i].ID == id {
			return i
		}
	}
	return -1
}

func renumber(cats []entity.MenuCategory) {
	for i := range cats {
		cats[i].DisplayOrder = i + 1
	}
}
