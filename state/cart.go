package state

import (
	"math"

	"github.com/harisharnamm/rasoi-v1-sub000/entity"
)

// AddToCart inserts a line with quantity 1, or bumps the existing line's
// quantity by 1 when the item is already in the cart. A price that is not
// a usable number is coerced to 0 rather than rejected.
func (c *Container) AddToCart(itemID, name string, price float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		price = 0
	}

	cart := append([]entity.CartItem(nil), c.snap.Cart...)
	for i := range cart {
		if cart[i].ItemID == itemID {
			cart[i].Quantity++
			c.snap.Cart = cart
			c.commit("cart", "add", itemID)
			return
		}
	}
	cart = append(cart, entity.CartItem{ItemID: itemID, Name: name, Price: price, Quantity: 1})
	c.snap.Cart = cart

	c.commit("cart", "add", itemID)
}

// UpdateCartQuantity sets the line's quantity; zero or less removes the
// line.
func (c *Container) UpdateCartQuantity(itemID string, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := -1
	for i := range c.snap.Cart {
		if c.snap.Cart[i].ItemID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return &NotFoundError{Entity: "cart item", ID: itemID}
	}

	cart := append([]entity.CartItem(nil), c.snap.Cart...)
	if quantity <= 0 {
		cart = append(cart[:idx], cart[idx+1:]...)
	} else {
		cart[idx].Quantity = quantity
	}
	c.snap.Cart = cart

	c.commit("cart", "update", itemID)
	return nil
}

func (c *Container) RemoveFromCart(itemID string) error {
	return c.UpdateCartQuantity(itemID, 0)
}

func (c *Container) ClearCart() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap.Cart = []entity.CartItem{}
	c.commit("cart", "clear", "")
}

// Checkout turns the cart into a pending channel order and empties the
// cart.
func (c *Container) Checkout(customerName, customerPhone, deliveryAddress string, source entity.OrderSource) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.snap.Cart) == 0 {
		return "", validationf("cart is empty")
	}
	if source == "" {
		source = entity.SourceOnline
	}

	o := entity.Order{
		ID:              newID(),
		Source:          source,
		Status:          entity.OrderPending,
		Items:           make([]entity.OrderItem, 0, len(c.snap.Cart)),
		CustomerName:    customerName,
		CustomerPhone:   customerPhone,
		DeliveryAddress: deliveryAddress,
		CreatedAt:       now(),
	}
	for _, line := range c.snap.Cart {
		o.Items = append(o.Items, entity.OrderItem{
			ID:       line.ItemID,
			Name:     line.Name,
			Quantity: line.Quantity,
			Price:    line.Price,
		})
		o.Total += line.Price * float64(line.Quantity)
	}
	c.snap.Orders = append(append([]entity.Order(nil), c.snap.Orders...), o)
	c.snap.Cart = []entity.CartItem{}

	c.commit("orders", "checkout", o.ID)
	return o.ID, nil
}

func (c *Container) Cart() []entity.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]entity.CartItem(nil), c.snap.Cart...)
}
