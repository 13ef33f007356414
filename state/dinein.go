package state

import (
	"github.com/harisharnamm/rasoi-v1-sub000/entity"
)

type TablePatch struct {
	Number   *int     `json:"number"`
	Capacity *int     `json:"capacity"`
	Shape    *string  `json:"shape"`
	X        *float64 `json:"x"`
	Y        *float64 `json:"y"`
	Section  *string  `json:"section"`
}

func (c *Container) AddTable(t entity.Table) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	t.ID = newID()
	t.Status = entity.TableVacant
	t.CurrentOrderID = ""
	c.snap.Tables = append(append([]entity.Table(nil), c.snap.Tables...), t)

	c.commit("tables", "add", t.ID)
	return t.ID
}

// UpdateTable changes layout properties only; status moves through the
// reserve/seat/complete operations.
func (c *Container) UpdateTable(id string, patch TablePatch) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.tableIndex(id)
	if idx < 0 {
		return &NotFoundError{Entity: "table", ID: id}
	}

	tables := append([]entity.Table(nil), c.snap.Tables...)
	t := &tables[idx]
	if patch.Number != nil {
		t.Number = *patch.Number
	}
	if patch.Capacity != nil {
		t.Capacity = *patch.Capacity
	}
	if patch.Shape != nil {
		t.Shape = *patch.Shape
	}
	if patch.X != nil {
		t.X = *patch.X
	}
	if patch.Y != nil {
		t.Y = *patch.Y
	}
	if patch.Section != nil {
		t.Section = *patch.Section
	}
	c.snap.Tables = tables

	c.commit("tables", "update", id)
	return nil
}

func (c *Container) DeleteTable(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.tableIndex(id)
	if idx < 0 {
		return &NotFoundError{Entity: "table", ID: id}
	}
	if c.snap.Tables[idx].Status == entity.TableOccupied {
		return validationf("table is occupied and cannot be removed")
	}

	tables := make([]entity.Table, 0, len(c.snap.Tables)-1)
	tables = append(tables, c.snap.Tables[:idx]...)
	tables = append(tables, c.snap.Tables[idx+1:]...)
	c.snap.Tables = tables

	c.commit("tables", "delete", id)
	return nil
}

// ReserveTable holds a vacant table.
func (c *Container) ReserveTable(id string) error {
	return c.setTableStatus(id, entity.TableVacant, entity.TableReserved)
}

// FreeTable releases a reservation.
func (c *Container) FreeTable(id string) error {
	return c.setTableStatus(id, entity.TableReserved, entity.TableVacant)
}

func (c *Container) setTableStatus(id string, from, to entity.TableStatus) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.tableIndex(id)
	if idx < 0 {
		return &NotFoundError{Entity: "table", ID: id}
	}
	if c.snap.Tables[idx].Status != from {
		return validationf("table is %s, expected %s", c.snap.Tables[idx].Status, from)
	}

	tables := append([]entity.Table(nil), c.snap.Tables...)
	tables[idx].Status = to
	c.snap.Tables = tables

	c.commit("tables", "status", id)
	return nil
}

func (c *Container) Tables() []entity.Table {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]entity.Table(nil), c.snap.Tables...)
}

func (c *Container) Table(id string) (entity.Table, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.tableIndex(id)
	if idx < 0 {
		return entity.Table{}, &NotFoundError{Entity: "table", ID: id}
	}
	return c.snap.Tables[idx], nil
}

func (c *Container) AddWaiter(w entity.Waiter) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	w.ID = newID()
	if w.TableIDs == nil {
		w.TableIDs = []string{}
	}
	w.ActiveOrderIDs = []string{}
	c.snap.Waiters = append(append([]entity.Waiter(nil), c.snap.Waiters...), w)

	c.commit("waiters", "add", w.ID)
	return w.ID
}

func (c *Container) AssignTableToWaiter(waiterID, tableID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.waiterIndex(waiterID)
	if idx < 0 {
		return &NotFoundError{Entity: "waiter", ID: waiterID}
	}
	if c.tableIndex(tableID) < 0 {
		return &NotFoundError{Entity: "table", ID: tableID}
	}

	waiters := append([]entity.Waiter(nil), c.snap.Waiters...)
	w := &waiters[idx]
	for _, id := range w.TableIDs {
		if id == tableID {
			return nil
		}
	}
	w.TableIDs = append(append([]string(nil), w.TableIDs...), tableID)
	c.snap.Waiters = waiters

	c.commit("waiters", "assign", waiterID)
	return nil
}

func (c *Container) Waiters() []entity.Waiter {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]entity.Waiter(nil), c.snap.Waiters...)
}

// CreateDineInOrder seats a party: the table must be vacant; it becomes
// occupied with the new pending order attached. Table status and
// currentOrder move together, always.
func (c *Container) CreateDineInOrder(tableID, waiterID string, customerCount int, total float64) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	tIdx := c.tableIndex(tableID)
	if tIdx < 0 {
		return "", &NotFoundError{Entity: "table", ID: tableID}
	}
	if c.snap.Tables[tIdx].Status != entity.TableVacant {
		return "", validationf("table %d is %s", c.snap.Tables[tIdx].Number, c.snap.Tables[tIdx].Status)
	}

	o := entity.DineInOrder{
		ID:            newID(),
		TableID:       tableID,
		WaiterID:      waiterID,
		Items:         []entity.DineInOrderItem{},
		CustomerCount: customerCount,
		Total:         total,
		Status:        entity.DineInPending,
		PaymentStatus: entity.DineInUnpaid,
		StartedAt:     now(),
	}
	c.snap.DineInOrders = append(append([]entity.DineInOrder(nil), c.snap.DineInOrders...), o)

	tables := append([]entity.Table(nil), c.snap.Tables...)
	tables[tIdx].Status = entity.TableOccupied
	tables[tIdx].CurrentOrderID = o.ID
	c.snap.Tables = tables

	if wIdx := c.waiterIndex(waiterID); wIdx >= 0 {
		waiters := append([]entity.Waiter(nil), c.snap.Waiters...)
		waiters[wIdx].ActiveOrderIDs = append(append([]string(nil), waiters[wIdx].ActiveOrderIDs...), o.ID)
		c.snap.Waiters = waiters
	}

	c.commit("dineInOrders", "add", o.ID)
	return o.ID, nil
}

// AddDineInOrderItem appends the item as pending and bumps the running
// total. Completed orders are frozen.
func (c *Container) AddDineInOrderItem(orderID string, item entity.DineInOrderItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.dineInIndex(orderID)
	if idx < 0 {
		return &NotFoundError{Entity: "dine-in order", ID: orderID}
	}
	if c.snap.DineInOrders[idx].Status == entity.DineInCompleted {
		return validationf("order is completed and cannot be changed")
	}
	if item.Quantity <= 0 {
		return validationf("quantity must be positive")
	}

	item.Status = entity.ItemPending
	orders := append([]entity.DineInOrder(nil), c.snap.DineInOrders...)
	o := &orders[idx]
	o.Items = append(append([]entity.DineInOrderItem(nil), o.Items...), item)
	o.Total += item.Price * float64(item.Quantity)
	c.snap.DineInOrders = orders

	c.commit("dineInOrders", "item_add", orderID)
	return nil
}

// RemoveDineInOrderItem removes the item at index and takes back its
// contribution to the total.
func (c *Container) RemoveDineInOrderItem(orderID string, index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.dineInIndex(orderID)
	if idx < 0 {
		return &NotFoundError{Entity: "dine-in order", ID: orderID}
	}
	o := c.snap.DineInOrders[idx]
	if o.Status == entity.DineInCompleted {
		return validationf("order is completed and cannot be changed")
	}
	if index < 0 || index >= len(o.Items) {
		return &IndexOutOfRangeError{Index: index, Length: len(o.Items)}
	}

	orders := append([]entity.DineInOrder(nil), c.snap.DineInOrders...)
	removed := o.Items[index]
	items := make([]entity.DineInOrderItem, 0, len(o.Items)-1)
	items = append(items, o.Items[:index]...)
	items = append(items, o.Items[index+1:]...)
	orders[idx].Items = items
	orders[idx].Total -= removed.Price * float64(removed.Quantity)
	c.snap.DineInOrders = orders

	c.commit("dineInOrders", "item_remove", orderID)
	return nil
}

// UpdateDineInItemStatus moves one item through its kitchen sub-statuses.
func (c *Container) UpdateDineInItemStatus(orderID string, index int, status entity.DineInItemStatus) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.dineInIndex(orderID)
	if idx < 0 {
		return &NotFoundError{Entity: "dine-in order", ID: orderID}
	}
	o := c.snap.DineInOrders[idx]
	if o.Status == entity.DineInCompleted {
		return validationf("order is completed and cannot be changed")
	}
	if index < 0 || index >= len(o.Items) {
		return &IndexOutOfRangeError{Index: index, Length: len(o.Items)}
	}
	switch status {
	case entity.ItemPending, entity.ItemPreparing, entity.ItemReady, entity.ItemServed:
	default:
		return validationf("unknown item status %q", status)
	}

	orders := append([]entity.DineInOrder(nil), c.snap.DineInOrders...)
	items := append([]entity.DineInOrderItem(nil), o.Items...)
	items[index].Status = status
	orders[idx].Items = items
	c.snap.DineInOrders = orders

	c.commit("dineInOrders", "item_status", orderID)
	return nil
}

// CompleteDineInOrder settles the order, vacates its table and detaches
// it from the waiter's active list.
func (c *Container) CompleteDineInOrder(orderID, paymentMethod string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.dineInIndex(orderID)
	if idx < 0 {
		return &NotFoundError{Entity: "dine-in order", ID: orderID}
	}
	if c.snap.DineInOrders[idx].Status == entity.DineInCompleted {
		return validationf("order is already completed")
	}

	orders := append([]entity.DineInOrder(nil), c.snap.DineInOrders...)
	o := &orders[idx]
	completed := now()
	o.Status = entity.DineInCompleted
	o.CompletedAt = &completed
	o.PaymentStatus = entity.DineInPaid
	o.PaymentMethod = paymentMethod
	c.snap.DineInOrders = orders

	if tIdx := c.tableIndex(o.TableID); tIdx >= 0 {
		tables := append([]entity.Table(nil), c.snap.Tables...)
		tables[tIdx].Status = entity.TableVacant
		tables[tIdx].CurrentOrderID = ""
		c.snap.Tables = tables
	}

	if wIdx := c.waiterIndex(o.WaiterID); wIdx >= 0 {
		waiters := append([]entity.Waiter(nil), c.snap.Waiters...)
		active := make([]string, 0, len(waiters[wIdx].ActiveOrderIDs))
		for _, id := range waiters[wIdx].ActiveOrderIDs {
			if id != orderID {
				active = append(active, id)
			}
		}
		waiters[wIdx].ActiveOrderIDs = active
		c.snap.Waiters = waiters
	}

	c.commit("dineInOrders", "complete", orderID)
	return nil
}

func (c *Container) DineInOrders() []entity.DineInOrder {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]entity.DineInOrder(nil), c.snap.DineInOrders...)
}

func (c *Container) DineInOrder(id string) (entity.DineInOrder, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.dineInIndex(id)
	if idx < 0 {
		return entity.DineInOrder{}, &NotFoundError{Entity: "dine-in order", ID: id}
	}
	return c.snap.DineInOrders[idx], nil
}

func (c *Container) tableIndex(id string) int {
	for i := range c.snap.Tables {
		if c.snap.Tables[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *Container) waiterIndex(id string) int {
	for i := range c.snap.Waiters {
		if c.snap.Waiters[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *Container) dineInIndex(id string) int {
	for i := range c.snap.DineInOrders {
		if c.snap.DineInOrders[i].ID == id {
			return i
		}
	}
	return -1
}
