package entity

import "time"

type TableStatus string

const (
	TableVacant   TableStatus = "vacant"
	TableOccupied TableStatus = "occupied"
	TableReserved TableStatus = "reserved"
)

// Table is a physical table on the floor layout. Status and CurrentOrderID
// move together: occupied iff an order is attached.
type Table struct {
	ID             string      `json:"id"`
	Number         int         `json:"number"`
	Capacity       int         `json:"capacity"`
	Shape          string      `json:"shape"` // square, circle, rectangle
	X              float64     `json:"x"`
	Y              float64     `json:"y"`
	Section        string      `json:"section"`
	Status         TableStatus `json:"status"`
	CurrentOrderID string      `json:"currentOrderId,omitempty"`
}

type DineInItemStatus string

const (
	ItemPending   DineInItemStatus = "pending"
	ItemPreparing DineInItemStatus = "preparing"
	ItemReady     DineInItemStatus = "ready"
	ItemServed    DineInItemStatus = "served"
)

type DineInOrderItem struct {
	MenuItemID string           `json:"menuItemId"`
	Name       string           `json:"name"`
	Quantity   int              `json:"quantity"`
	Price      float64          `json:"price"`
	Status     DineInItemStatus `json:"status"`
}

type DineInOrderStatus string

const (
	DineInPending   DineInOrderStatus = "pending"
	DineInCompleted DineInOrderStatus = "completed"
)

type DineInPayment string

const (
	DineInUnpaid DineInPayment = "unpaid"
	DineInPaid   DineInPayment = "paid"
)

type DineInOrder struct {
	ID            string            `json:"id"`
	TableID       string            `json:"tableId"`
	WaiterID      string            `json:"waiterId"`
	Items         []DineInOrderItem `json:"items"`
	CustomerCount int               `json:"customerCount"`
	Total         float64           `json:"total"`
	Status        DineInOrderStatus `json:"status"`
	PaymentStatus DineInPayment     `json:"paymentStatus"`
	PaymentMethod string            `json:"paymentMethod,omitempty"`
	StartedAt     time.Time         `json:"startedAt"`
	CompletedAt   *time.Time        `json:"completedAt,omitempty"`
}

type Waiter struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	TableIDs       []string `json:"tableIds"`
	ActiveOrderIDs []string `json:"activeOrderIds"`
}
