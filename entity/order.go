package entity

import "time"

// OrderSource is the channel a customer order arrived through.
type OrderSource string

const (
	SourceOnline     OrderSource = "online"
	SourcePhone      OrderSource = "phone"
	SourceWalkIn     OrderSource = "walkin"
	SourceAggregator OrderSource = "aggregator"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

type OrderItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type Order struct {
	ID              string      `json:"id"`
	Source          OrderSource `json:"source"`
	Status          OrderStatus `json:"status"`
	Items           []OrderItem `json:"items"`
	Total           float64     `json:"total"`
	CustomerName    string      `json:"customerName"`
	CustomerPhone   string      `json:"customerPhone"`
	DeliveryAddress string      `json:"deliveryAddress,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
}
