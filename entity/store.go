package entity

import "time"

type StoreStatus string

const (
	StoreActive      StoreStatus = "active"
	StoreInactive    StoreStatus = "inactive"
	StoreMaintenance StoreStatus = "maintenance"
)

// OperatingHours is one weekday entry; a store carries seven, Monday first.
type OperatingHours struct {
	Day    string `json:"day"`
	Open   string `json:"open"`  // HH:MM, 24h
	Close  string `json:"close"` // HH:MM, 24h
	Closed bool   `json:"closed"`
}

type StoreManager struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type Store struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Address   string           `json:"address"`
	Latitude  float64          `json:"latitude"`
	Longitude float64          `json:"longitude"`
	Hours     []OperatingHours `json:"hours"`
	Manager   StoreManager     `json:"manager"`
	Phone     string           `json:"phone"`
	Email     string           `json:"email"`
	Images    []string         `json:"images"`
	Documents []string         `json:"documents"`
	Status    StoreStatus      `json:"status"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}
