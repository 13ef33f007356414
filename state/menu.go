package state

import (
	"github.com/harisharnamm/rasoi-v1-sub000/entity"
)

// MenuItemPatch carries the fields an update may change; nil means leave
// the field as is.
type MenuItemPatch struct {
	Name        *string              `json:"name"`
	Description *string              `json:"description"`
	Price       *float64             `json:"price"`
	Image       *string              `json:"image"`
	Available   *bool                `json:"available"`
	CategoryID  *string              `json:"categoryId"`
	Ingredients *[]entity.Ingredient `json:"ingredients"`
	PrepTime    *int                 `json:"prepTime"`
	PrepNotes   *string              `json:"prepNotes"`
}

// AddMenuItem assigns a fresh id and appends the item.
func (c *Container) AddMenuItem(item entity.MenuItem) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	item.ID = newID()
	item.CreatedAt = now()
	item.UpdatedAt = item.CreatedAt
	if item.Ingredients == nil {
		item.Ingredients = []entity.Ingredient{}
	}

	items := make([]entity.MenuItem, 0, len(c.snap.MenuItems)+1)
	items = append(items, c.snap.MenuItems...)
	items = append(items, item)
	c.snap.MenuItems = items

	c.commit("menuItems", "add", item.ID)
	return item.ID
}

func (c *Container) UpdateMenuItem(id string, patch MenuItemPatch) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.menuItemIndex(id)
	if idx < 0 {
		return &NotFoundError{Entity: "menu item", ID: id}
	}

	items := append([]entity.MenuItem(nil), c.snap.MenuItems...)
	it := &items[idx]
	if patch.Name != nil {
		it.Name = *patch.Name
	}
	if patch.Description != nil {
		it.Description = *patch.Description
	}
	if patch.Price != nil {
		it.Price = *patch.Price
	}
	if patch.Image != nil {
		it.Image = *patch.Image
	}
	if patch.Available != nil {
		it.Available = *patch.Available
	}
	if patch.CategoryID != nil {
		it.CategoryID = *patch.CategoryID
	}
	if patch.Ingredients != nil {
		it.Ingredients = append([]entity.Ingredient(nil), (*patch.Ingredients)...)
	}
	if patch.PrepTime != nil {
		it.PrepTime = *patch.PrepTime
	}
	if patch.PrepNotes != nil {
		it.PrepNotes = *patch.PrepNotes
	}
	it.UpdatedAt = now()
	c.snap.MenuItems = items

	c.commit("menuItems", "update", id)
	return nil
}

func (c *Container) DeleteMenuItem(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.menuItemIndex(id)
	if idx < 0 {
		return &NotFoundError{Entity: "menu item", ID: id}
	}

	items := make([]entity.MenuItem, 0, len(c.snap.MenuItems)-1)
	items = append(items, c.snap.MenuItems[:idx]...)
	items = append(items, c.snap.MenuItems[idx+1:]...)
	c.snap.MenuItems = items

	c.commit("menuItems", "delete", id)
	return nil
}

// SetMenuItemAvailability toggles the availability flag on its own, the
// way the menu page does it.
func (c *Container) SetMenuItemAvailability(id string, available bool) error {
	return c.UpdateMenuItem(id, MenuItemPatch{Available: &available})
}

func (c *Container) MenuItems() []entity.MenuItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]entity.MenuItem(nil), c.snap.MenuItems...)
}

func (c *Container) MenuItem(id string) (entity.MenuItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.menuItemIndex(id)
	if idx < 0 {
		return entity.MenuItem{}, &NotFoundError{Entity: "menu item", ID: id}
	}
	return c.snap.MenuItems[idx], nil
}

func (c *Container) menuItemIndex(id string) int {
	for i := range c.snap.MenuItems {
		if c.snap.MenuItems[i].ID == id {
			return i
		}
	}
	return -1
}
