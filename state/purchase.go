package state

import (
	"time"

	"github.com/harisharnamm/rasoi-v1-sub000/entity"
)

// poTransitions is the allowed status graph. Writes are caller-driven;
// anything off the graph is rejected.
var poTransitions = map[entity.PurchaseOrderStatus][]entity.PurchaseOrderStatus{
	entity.PORequested:  {entity.POProcessing, entity.POCancelled},
	entity.POProcessing: {entity.POCompleted, entity.POCancelled},
}

// CreatePurchaseOrder computes the total from the line items; callers
// cannot set it.
func (c *Container) CreatePurchaseOrder(vendorID string, items []entity.PurchaseOrderItem, expectedDelivery *time.Time) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(items) == 0 {
		return "", validationf("purchase order needs at least one line item")
	}
	for _, it := range items {
		if it.Quantity <= 0 {
			return "", validationf("line item %q: quantity must be positive", it.ItemID)
		}
	}

	po := entity.PurchaseOrder{
		ID:               newID(),
		VendorID:         vendorID,
		Items:            append([]entity.PurchaseOrderItem(nil), items...),
		Status:           entity.PORequested,
		PaymentStatus:    entity.PaymentPending,
		TotalAmount:      purchaseTotal(items),
		ExpectedDelivery: expectedDelivery,
		CreatedAt:        now(),
	}
	c.snap.PurchaseOrders = append(append([]entity.PurchaseOrder(nil), c.snap.PurchaseOrders...), po)

	c.commit("purchaseOrders", "add", po.ID)
	return po.ID, nil
}

// UpdatePurchaseOrderItems replaces the line items and recomputes the
// total. Orders past processing are frozen.
func (c *Container) UpdatePurchaseOrderItems(id string, items []entity.PurchaseOrderItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.purchaseOrderIndex(id)
	if idx < 0 {
		return &NotFoundError{Entity: "purchase order", ID: id}
	}
	po := c.snap.PurchaseOrders[idx]
	if po.Status == entity.POCompleted || po.Status == entity.POCancelled {
		return validationf("purchase order is %s and cannot be edited", po.Status)
	}
	if len(items) == 0 {
		return validationf("purchase order needs at least one line item")
	}

	orders := append([]entity.PurchaseOrder(nil), c.snap.PurchaseOrders...)
	orders[idx].Items = append([]entity.PurchaseOrderItem(nil), items...)
	orders[idx].TotalAmount = purchaseTotal(items)
	c.snap.PurchaseOrders = orders

	c.commit("purchaseOrders", "update", id)
	return nil
}

func (c *Container) UpdatePurchaseOrderStatus(id string, to entity.PurchaseOrderStatus) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.purchaseOrderIndex(id)
	if idx < 0 {
		return &NotFoundError{Entity: "purchase order", ID: id}
	}
	from := c.snap.PurchaseOrders[idx].Status
	if !transitionAllowed(from, to) {
		return validationf("cannot move purchase order from %s to %s", from, to)
	}

	orders := append([]entity.PurchaseOrder(nil), c.snap.PurchaseOrders...)
	orders[idx].Status = to
	c.snap.PurchaseOrders = orders

	c.commit("purchaseOrders", "status", id)
	return nil
}

func (c *Container) UpdatePurchaseOrderPayment(id string, to entity.PaymentProgress) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.purchaseOrderIndex(id)
	if idx < 0 {
		return &NotFoundError{Entity: "purchase order", ID: id}
	}
	switch to {
	case entity.PaymentPending, entity.PaymentProcessing, entity.PaymentCompleted:
	default:
		return validationf("unknown payment status %q", to)
	}

	orders := append([]entity.PurchaseOrder(nil), c.snap.PurchaseOrders...)
	orders[idx].PaymentStatus = to
	c.snap.PurchaseOrders = orders

	c.commit("purchaseOrders", "payment", id)
	return nil
}

func (c *Container) PurchaseOrders() []entity.PurchaseOrder {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]entity.PurchaseOrder(nil), c.snap.PurchaseOrders...)
}

func (c *Container) PurchaseOrder(id string) (entity.PurchaseOrder, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.purchaseOrderIndex(id)
	if idx < 0 {
		return entity.PurchaseOrder{}, &NotFoundError{Entity: "purchase order", ID: id}
	}
	return c.snap.PurchaseOrders[idx], nil
}

func (c *Container) purchaseOrderIndex(id string) int {
	for i := range c.snap.PurchaseOrders {
		if c.snap.PurchaseOrders[i].ID == id {
			return i
		}
	}
	return -1
}

func transitionAllowed(from, to entity.PurchaseOrderStatus) bool {
	for _, next := range poTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func purchaseTotal(items []entity.PurchaseOrderItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Quantity * it.PricePerUnit
	}
	return total
}
