package state

import (
	"github.com/harisharnamm/rasoi-v1-sub000/entity"
)

// AddOrder records a channel order. The total is computed from the line
// items.
func (c *Container) AddOrder(o entity.Order) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(o.Items) == 0 {
		return "", validationf("order needs at least one line item")
	}
	if o.Source == "" {
		o.Source = entity.SourceOnline
	}
	if o.Status == "" {
		o.Status = entity.OrderPending
	}

	o.ID = newID()
	o.CreatedAt = now()
	o.Items = append([]entity.OrderItem(nil), o.Items...)
	o.Total = 0
	for _, it := range o.Items {
		o.Total += it.Price * float64(it.Quantity)
	}
	c.snap.Orders = append(append([]entity.Order(nil), c.snap.Orders...), o)

	c.commit("orders", "add", o.ID)
	return o.ID, nil
}

func (c *Container) UpdateOrderStatus(id string, status entity.OrderStatus) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.orderIndex(id)
	if idx < 0 {
		return &NotFoundError{Entity: "order", ID: id}
	}
	switch status {
	case entity.OrderPending, entity.OrderPreparing, entity.OrderReady, entity.OrderDelivered, entity.OrderCancelled:
	default:
		return validationf("unknown order status %q", status)
	}

	orders := append([]entity.Order(nil), c.snap.Orders...)
	orders[idx].Status = status
	c.snap.Orders = orders

	c.commit("orders", "status", id)
	return nil
}

func (c *Container) DeleteOrder(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.orderIndex(id)
	if idx < 0 {
		return &NotFoundError{Entity: "order", ID: id}
	}

	orders := make([]entity.Order, 0, len(c.snap.Orders)-1)
	orders = append(orders, c.snap.Orders[:idx]...)
	orders = append(orders, c.snap.Orders[idx+1:]...)
	c.snap.Orders = orders

	c.commit("orders", "delete", id)
	return nil
}

func (c *Container) Orders() []entity.Order {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]entity.Order(nil), c.snap.Orders...)
}

func (c *Container) Order(id string) (entity.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.orderIndex(id)
	if idx < 0 {
		return entity.Order{}, &NotFoundError{Entity: "order", ID: id}
	}
	return c.snap.Orders[idx], nil
}

func (c *Container) orderIndex(id string) int {
	for i := range c.snap.Orders {
		if c.snap.Orders[i].ID == id {
			return i
		}
	}
	return -1
}
