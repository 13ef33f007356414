package state

import (
	"errors"
	"testing"

	"github.com/harisharnamm/rasoi-v1-sub000/entity"
)

func createPO(t *testing.T, c *Container) string {
	t.Helper()
	id, err := c.CreatePurchaseOrder("vendor-1", []entity.PurchaseOrderItem{
		{ItemID: "i1", Name: "Rice", Quantity: 10, PricePerUnit: 60},
		{ItemID: "i2", Name: "Oil", Quantity: 5, PricePerUnit: 140},
	}, nil)
	if err != nil {
		t.Fatalf("CreatePurchaseOrder: %v", err)
	}
	return id
}

func TestPurchaseOrderTotalIsDerived(t *testing.T) {
	c := newTestContainer(t)
	id := createPO(t, c)

	po, _ := c.PurchaseOrder(id)
	if po.TotalAmount != 1300 {
		t.Errorf("total = %g, want 1300", po.TotalAmount)
	}
	if po.Status != entity.PORequested || po.PaymentStatus != entity.PaymentPending {
		t.Errorf("new order = %s/%s, want requested/pending", po.Status, po.PaymentStatus)
	}

	// Editing line items recomputes the total; no drift.
	err := c.UpdatePurchaseOrderItems(id, []entity.PurchaseOrderItem{
		{ItemID: "i1", Name: "Rice", Quantity: 20, PricePerUnit: 60},
	})
	if err != nil {
		t.Fatalf("UpdatePurchaseOrderItems: %v", err)
	}
	po, _ = c.PurchaseOrder(id)
	if po.TotalAmount != 1200 {
		t.Errorf("total after edit = %g, want 1200", po.TotalAmount)
	}
}

func TestPurchaseOrderTransitions(t *testing.T) {
	c := newTestContainer(t)
	id := createPO(t, c)

	// requested -> completed skips processing.
	var invalid *ValidationError
	if err := c.UpdatePurchaseOrderStatus(id, entity.POCompleted); !errors.As(err, &invalid) {
		t.Errorf("requested->completed: got %v, want ValidationError", err)
	}

	if err := c.UpdatePurchaseOrderStatus(id, entity.POProcessing); err != nil {
		t.Fatalf("requested->processing: %v", err)
	}
	if err := c.UpdatePurchaseOrderStatus(id, entity.POCompleted); err != nil {
		t.Fatalf("processing->completed: %v", err)
	}

	// Completed is terminal.
	if err := c.UpdatePurchaseOrderStatus(id, entity.POCancelled); !errors.As(err, &invalid) {
		t.Errorf("completed->cancelled: got %v, want ValidationError", err)
	}
	if err := c.UpdatePurchaseOrderItems(id, []entity.PurchaseOrderItem{{ItemID: "i1", Quantity: 1, PricePerUnit: 1}}); !errors.As(err, &invalid) {
		t.Errorf("edit completed order: got %v, want ValidationError", err)
	}
}

func TestPurchaseOrderCancelFromProcessing(t *testing.T) {
	c := newTestContainer(t)
	id := createPO(t, c)
	if err := c.UpdatePurchaseOrderStatus(id, entity.POProcessing); err != nil {
		t.Fatalf("to processing: %v", err)
	}
	if err := c.UpdatePurchaseOrderStatus(id, entity.POCancelled); err != nil {
		t.Fatalf("cancel from processing: %v", err)
	}
}

func TestPurchaseOrderPayment(t *testing.T) {
	c := newTestContainer(t)
	id := createPO(t, c)

	if err := c.UpdatePurchaseOrderPayment(id, entity.PaymentCompleted); err != nil {
		t.Fatalf("payment: %v", err)
	}
	po, _ := c.PurchaseOrder(id)
	if po.PaymentStatus != entity.PaymentCompleted {
		t.Errorf("payment = %s, want completed", po.PaymentStatus)
	}

	if err := c.UpdatePurchaseOrderPayment(id, "iou"); err == nil {
		t.Error("accepted unknown payment status")
	}

	var notFound *NotFoundError
	if err := c.UpdatePurchaseOrderPayment("missing", entity.PaymentPending); !errors.As(err, &notFound) {
		t.Errorf("got %v, want NotFoundError", err)
	}
}
