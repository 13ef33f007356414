package entity

// CartItem is one session-scoped cart line. The cart is cleared on checkout.
type CartItem struct {
	ItemID   string  `json:"itemId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}
