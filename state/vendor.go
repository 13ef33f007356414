package state

import (
	"github.com/harisharnamm/rasoi-v1-sub000/entity"
)

type VendorPatch struct {
	Name     *string `json:"name"`
	Contact  *string `json:"contact"`
	Email    *string `json:"email"`
	Category *string `json:"category"`
}

func (c *Container) AddVendor(v entity.Vendor) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	v.ID = newID()
	v.CreatedAt = now()
	v.UpdatedAt = v.CreatedAt
	c.snap.Vendors = append(append([]entity.Vendor(nil), c.snap.Vendors...), v)

	c.commit("vendors", "add", v.ID)
	return v.ID
}

func (c *Container) UpdateVendor(id string, patch VendorPatch) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.vendorIndex(id)
	if idx < 0 {
		return &NotFoundError{Entity: "vendor", ID: id}
	}

	vendors := append([]entity.Vendor(nil), c.snap.Vendors...)
	v := &vendors[idx]
	if patch.Name != nil {
		v.Name = *patch.Name
	}
	if patch.Contact != nil {
		v.Contact = *patch.Contact
	}
	if patch.Email != nil {
		v.Email = *patch.Email
	}
	if patch.Category != nil {
		v.Category = *patch.Category
	}
	v.UpdatedAt = now()
	c.snap.Vendors = vendors

	c.commit("vendors", "update", id)
	return nil
}

func (c *Container) DeleteVendor(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.vendorIndex(id)
	if idx < 0 {
		return &NotFoundError{Entity: "vendor", ID: id}
	}

	vendors := make([]entity.Vendor, 0, len(c.snap.Vendors)-1)
	vendors = append(vendors, c.snap.Vendors[:idx]...)
	vendors = append(vendors, c.snap.Vendors[idx+1:]...)
	c.snap.Vendors = vendors

	c.commit("vendors", "delete", id)
	return nil
}

func (c *Container) Vendors() []entity.Vendor {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]entity.Vendor(nil), c.snap.Vendors...)
}

func (c *Container) Vendor(id string) (entity.Vendor, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.vendorIndex(id)
	if idx < 0 {
		return entity.Vendor{}, &NotFoundError{Entity: "vendor", ID: id}
	}
	return c.snap.Vendors[idx], nil
}

func (c *Container) vendorIndex(id string) int {
	for i := range c.snap.Vendors {
		if c.snap.Vendors[i].ID == id {
			return i
		}
	}
	return -1
}
