package state

import (
	"github.com/harisharnamm/rasoi-v1-sub000/entity"
)

type CustomerPatch struct {
	Name                *string                 `json:"name"`
	Phone               *string                 `json:"phone"`
	Email               *string                 `json:"email"`
	TotalOrders         *int                    `json:"totalOrders"`
	LifetimeValue       *float64                `json:"lifetimeValue"`
	AverageOrderValue   *float64                `json:"averageOrderValue"`
	Segment             *entity.CustomerSegment `json:"segment"`
	PreferredCategories *[]string               `json:"preferredCategories"`
	Tags                *[]string               `json:"tags"`
	Notes               *string                 `json:"notes"`
}

func (c *Container) AddCustomer(cu entity.Customer) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	cu.ID = newID()
	cu.CreatedAt = now()
	cu.UpdatedAt = cu.CreatedAt
	if cu.Segment == "" {
		cu.Segment = entity.SegmentOneTime
	}
	if cu.PreferredCategories == nil {
		cu.PreferredCategories = []string{}
	}
	if cu.Tags == nil {
		cu.Tags = []string{}
	}
	c.snap.Customers = append(append([]entity.Customer(nil), c.snap.Customers...), cu)

	c.commit("customers", "add", cu.ID)
	return cu.ID
}

func (c *Container) UpdateCustomer(id string, patch CustomerPatch) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.customerIndex(id)
	if idx < 0 {
		return &NotFoundError{Entity: "customer", ID: id}
	}

	customers := append([]entity.Customer(nil), c.snap.Customers...)
	cu := &customers[idx]
	if patch.Name != nil {
		cu.Name = *patch.Name
	}
	if patch.Phone != nil {
		cu.Phone = *patch.Phone
	}
	if patch.Email != nil {
		cu.Email = *patch.Email
	}
	if patch.TotalOrders != nil {
		cu.TotalOrders = *patch.TotalOrders
	}
	if patch.LifetimeValue != nil {
		cu.LifetimeValue = *patch.LifetimeValue
	}
	if patch.AverageOrderValue != nil {
		cu.AverageOrderValue = *patch.AverageOrderValue
	}
	if patch.Segment != nil {
		cu.Segment = *patch.Segment
	}
	if patch.PreferredCategories != nil {
		cu.PreferredCategories = append([]string(nil), (*patch.PreferredCategories)...)
	}
	if patch.Tags != nil {
		cu.Tags = append([]string(nil), (*patch.Tags)...)
	}
	if patch.Notes != nil {
		cu.Notes = *patch.Notes
	}
	cu.UpdatedAt = now()
	c.snap.Customers = customers

	c.commit("customers", "update", id)
	return nil
}

func (c *Container) DeleteCustomer(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.customerIndex(id)
	if idx < 0 {
		return &NotFoundError{Entity: "customer", ID: id}
	}

	customers := make([]entity.Customer, 0, len(c.snap.Customers)-1)
	customers = append(customers, c.snap.Customers[:idx]...)
	customers = append(customers, c.snap.Customers[idx+1:]...)
	c.snap.Customers = customers

	c.commit("customers", "delete", id)
	return nil
}

func (c *Container) Customers() []entity.Customer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]entity.Customer(nil), c.snap.Customers...)
}

func (c *Container) Customer(id string) (entity.Customer, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.customerIndex(id)
	if idx < 0 {
		return entity.Customer{}, &NotFoundError{Entity: "customer", ID: id}
	}
	return c.snap.Customers[idx], nil
}

func (c *Container) customerIndex(id string) int {
	for i := range c.snap.Customers {
		if c.snap.Customers[i].ID == id {
			return i
		}
	}
	return -1
}
