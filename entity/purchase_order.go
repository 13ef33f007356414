package entity

import "time"

type PurchaseOrderStatus string

const (
	PORequested  PurchaseOrderStatus = "requested"
	POProcessing PurchaseOrderStatus = "processing"
	POCompleted  PurchaseOrderStatus = "completed"
	POCancelled  PurchaseOrderStatus = "cancelled"
)

type PaymentProgress string

const (
	PaymentPending    PaymentProgress = "pending"
	PaymentProcessing PaymentProgress = "processing"
	PaymentCompleted  PaymentProgress = "completed"
)

type PurchaseOrderItem struct {
	ItemID       string  `json:"itemId"`
	Name         string  `json:"name"`
	Quantity     float64 `json:"quantity"`
	PricePerUnit float64 `json:"pricePerUnit"`
}

type PurchaseOrder struct {
	ID               string              `json:"id"`
	VendorID         string              `json:"vendorId"`
	Items            []PurchaseOrderItem `json:"items"`
	Status           PurchaseOrderStatus `json:"status"`
	PaymentStatus    PaymentProgress     `json:"paymentStatus"`
	TotalAmount      float64             `json:"totalAmount"` // derived from Items
	ExpectedDelivery *time.Time          `json:"expectedDelivery,omitempty"`
	CreatedAt        time.Time           `json:"createdAt"`
}
