package state

import (
	"errors"
	"testing"

	"github.com/harisharnamm/rasoi-v1-sub000/entity"
)

func seatParty(t *testing.T, c *Container) (tableID, waiterID, orderID string) {
	t.Helper()
	tableID = c.AddTable(entity.Table{Number: 4, Capacity: 4, Shape: "square", Section: "main"})
	waiterID = c.AddWaiter(entity.Waiter{Name: "Priya"})
	orderID, err := c.CreateDineInOrder(tableID, waiterID, 2, 0)
	if err != nil {
		t.Fatalf("CreateDineInOrder: %v", err)
	}
	return tableID, waiterID, orderID
}

func TestDineInLifecycle(t *testing.T) {
	c := newTestContainer(t)
	tableID, waiterID, orderID := seatParty(t, c)

	table, _ := c.Table(tableID)
	if table.Status != entity.TableOccupied {
		t.Errorf("table status = %s, want occupied", table.Status)
	}
	if table.CurrentOrderID != orderID {
		t.Errorf("currentOrderId = %q, want %q", table.CurrentOrderID, orderID)
	}
	order, _ := c.DineInOrder(orderID)
	if order.Status != entity.DineInPending {
		t.Errorf("order status = %s, want pending", order.Status)
	}

	err := c.AddDineInOrderItem(orderID, entity.DineInOrderItem{MenuItemID: "x", Name: "Dal", Quantity: 2, Price: 5})
	if err != nil {
		t.Fatalf("AddDineInOrderItem: %v", err)
	}
	order, _ = c.DineInOrder(orderID)
	if order.Total != 10 {
		t.Errorf("total = %g, want 10", order.Total)
	}
	if len(order.Items) != 1 || order.Items[0].Status != entity.ItemPending {
		t.Errorf("items = %+v, want one pending item", order.Items)
	}

	if err := c.CompleteDineInOrder(orderID, "cash"); err != nil {
		t.Fatalf("CompleteDineInOrder: %v", err)
	}
	table, _ = c.Table(tableID)
	if table.Status != entity.TableVacant || table.CurrentOrderID != "" {
		t.Errorf("table after complete = %+v, want vacant with no order", table)
	}
	order, _ = c.DineInOrder(orderID)
	if order.Status != entity.DineInCompleted {
		t.Errorf("order status = %s, want completed", order.Status)
	}
	if order.PaymentStatus != entity.DineInPaid || order.PaymentMethod != "cash" {
		t.Errorf("payment = %s/%s, want paid/cash", order.PaymentStatus, order.PaymentMethod)
	}
	if order.CompletedAt == nil {
		t.Error("completedAt not stamped")
	}

	for _, w := range c.Waiters() {
		if w.ID == waiterID && len(w.ActiveOrderIDs) != 0 {
			t.Errorf("waiter still holds active orders: %v", w.ActiveOrderIDs)
		}
	}
}

// Table status and currentOrder always move together.
func TestTableOrderConsistency(t *testing.T) {
	c := newTestContainer(t)
	tableID, _, orderID := seatParty(t, c)
	c.AddTable(entity.Table{Number: 5, Capacity: 2})

	check := func() {
		for _, table := range c.Tables() {
			occupied := table.Status == entity.TableOccupied
			hasOrder := table.CurrentOrderID != ""
			if occupied != hasOrder {
				t.Fatalf("table %d: status %s with currentOrderId %q", table.Number, table.Status, table.CurrentOrderID)
			}
		}
	}

	check()
	if err := c.CompleteDineInOrder(orderID, "card"); err != nil {
		t.Fatalf("complete: %v", err)
	}
	check()

	// Table is reusable after completion.
	if _, err := c.CreateDineInOrder(tableID, "", 4, 0); err != nil {
		t.Fatalf("reseat: %v", err)
	}
	check()
}

func TestCreateOrderRequiresVacantTable(t *testing.T) {
	c := newTestContainer(t)
	tableID, _, _ := seatParty(t, c)

	_, err := c.CreateDineInOrder(tableID, "", 2, 0)
	var invalid *ValidationError
	if !errors.As(err, &invalid) {
		t.Fatalf("seating occupied table: got %v, want ValidationError", err)
	}

	_, err = c.CreateDineInOrder("missing", "", 2, 0)
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("seating missing table: got %v, want NotFoundError", err)
	}
}

func TestRemoveItemByIndex(t *testing.T) {
	c := newTestContainer(t)
	_, _, orderID := seatParty(t, c)

	c.AddDineInOrderItem(orderID, entity.DineInOrderItem{MenuItemID: "a", Quantity: 1, Price: 3})
	c.AddDineInOrderItem(orderID, entity.DineInOrderItem{MenuItemID: "b", Quantity: 2, Price: 4})

	err := c.RemoveDineInOrderItem(orderID, 5)
	var outOfRange *IndexOutOfRangeError
	if !errors.As(err, &outOfRange) {
		t.Fatalf("got %v, want IndexOutOfRangeError", err)
	}

	if err := c.RemoveDineInOrderItem(orderID, 0); err != nil {
		t.Fatalf("remove: %v", err)
	}
	order, _ := c.DineInOrder(orderID)
	if order.Total != 8 {
		t.Errorf("total = %g, want 8", order.Total)
	}
	if len(order.Items) != 1 || order.Items[0].MenuItemID != "b" {
		t.Errorf("items = %+v, want just item b", order.Items)
	}
}

func TestCompletedOrderIsFrozen(t *testing.T) {
	c := newTestContainer(t)
	_, _, orderID := seatParty(t, c)
	c.AddDineInOrderItem(orderID, entity.DineInOrderItem{MenuItemID: "a", Quantity: 1, Price: 3})
	if err := c.CompleteDineInOrder(orderID, "upi"); err != nil {
		t.Fatalf("complete: %v", err)
	}

	var invalid *ValidationError
	if err := c.AddDineInOrderItem(orderID, entity.DineInOrderItem{MenuItemID: "b", Quantity: 1, Price: 1}); !errors.As(err, &invalid) {
		t.Errorf("add item on completed order: got %v, want ValidationError", err)
	}
	if err := c.RemoveDineInOrderItem(orderID, 0); !errors.As(err, &invalid) {
		t.Errorf("remove item on completed order: got %v, want ValidationError", err)
	}
	if err := c.UpdateDineInItemStatus(orderID, 0, entity.ItemServed); !errors.As(err, &invalid) {
		t.Errorf("item status on completed order: got %v, want ValidationError", err)
	}
	if err := c.CompleteDineInOrder(orderID, "cash"); !errors.As(err, &invalid) {
		t.Errorf("double complete: got %v, want ValidationError", err)
	}
}

func TestReservationFlow(t *testing.T) {
	c := newTestContainer(t)
	tableID := c.AddTable(entity.Table{Number: 9, Capacity: 6})

	if err := c.ReserveTable(tableID); err != nil {
		t.Fatalf("reserve: %v", err)
	}
	table, _ := c.Table(tableID)
	if table.Status != entity.TableReserved {
		t.Errorf("status = %s, want reserved", table.Status)
	}

	// A reserved table cannot be seated directly.
	if _, err := c.CreateDineInOrder(tableID, "", 2, 0); err == nil {
		t.Error("seated a reserved table")
	}

	if err := c.FreeTable(tableID); err != nil {
		t.Fatalf("free: %v", err)
	}
	if _, err := c.CreateDineInOrder(tableID, "", 2, 0); err != nil {
		t.Errorf("seat after free: %v", err)
	}
}

func TestItemSubStatus(t *testing.T) {
	c := newTestContainer(t)
	_, _, orderID := seatParty(t, c)
	c.AddDineInOrderItem(orderID, entity.DineInOrderItem{MenuItemID: "a", Quantity: 1, Price: 3})

	if err := c.UpdateDineInItemStatus(orderID, 0, entity.ItemReady); err != nil {
		t.Fatalf("item status: %v", err)
	}
	order, _ := c.DineInOrder(orderID)
	if order.Items[0].Status != entity.ItemReady {
		t.Errorf("status = %s, want ready", order.Items[0].Status)
	}

	if err := c.UpdateDineInItemStatus(orderID, 0, "burnt"); err == nil {
		t.Error("accepted unknown item status")
	}
}
