package state

import (
	"errors"
	"math"
	"testing"

	"github.com/harisharnamm/rasoi-v1-sub000/entity"
)

func TestAddToCartIsIdempotentPerLine(t *testing.T) {
	c := newTestContainer(t)

	c.AddToCart("m1", "Masala Dosa", 120)
	c.AddToCart("m1", "Masala Dosa", 120)

	cart := c.Cart()
	if len(cart) != 1 {
		t.Fatalf("got %d lines, want 1", len(cart))
	}
	if cart[0].Quantity != 2 {
		t.Errorf("quantity = %d, want 2", cart[0].Quantity)
	}
}

func TestAddToCartCoercesBadPrice(t *testing.T) {
	c := newTestContainer(t)
	c.AddToCart("m1", "Mystery Special", math.NaN())
	c.AddToCart("m2", "Refund Curry", -5)

	for _, line := range c.Cart() {
		if line.Price != 0 {
			t.Errorf("line %q price = %g, want 0", line.Name, line.Price)
		}
	}
}

func TestUpdateCartQuantity(t *testing.T) {
	c := newTestContainer(t)
	c.AddToCart("m1", "Dosa", 120)

	if err := c.UpdateCartQuantity("m1", 5); err != nil {
		t.Fatalf("update: %v", err)
	}
	if got := c.Cart()[0].Quantity; got != 5 {
		t.Errorf("quantity = %d, want 5", got)
	}

	// Zero or less removes the line.
	if err := c.UpdateCartQuantity("m1", 0); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(c.Cart()) != 0 {
		t.Error("line not removed")
	}

	var notFound *NotFoundError
	if err := c.UpdateCartQuantity("m1", 1); !errors.As(err, &notFound) {
		t.Errorf("got %v, want NotFoundError", err)
	}
}

func TestCheckout(t *testing.T) {
	c := newTestContainer(t)
	c.AddToCart("m1", "Dosa", 120)
	c.AddToCart("m1", "Dosa", 120)
	c.AddToCart("m2", "Filter Coffee", 40)

	orderID, err := c.Checkout("Asha", "+91 98765 43210", "12 MG Road", entity.SourceOnline)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	if len(c.Cart()) != 0 {
		t.Error("cart not cleared on checkout")
	}
	order, err := c.Order(orderID)
	if err != nil {
		t.Fatalf("order: %v", err)
	}
	if order.Total != 280 {
		t.Errorf("total = %g, want 280", order.Total)
	}
	if order.Status != entity.OrderPending || order.Source != entity.SourceOnline {
		t.Errorf("order = %s/%s, want pending/online", order.Status, order.Source)
	}
	if len(order.Items) != 2 {
		t.Errorf("got %d items, want 2", len(order.Items))
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	c := newTestContainer(t)
	_, err := c.Checkout("Asha", "", "", entity.SourceOnline)
	var invalid *ValidationError
	if !errors.As(err, &invalid) {
		t.Fatalf("got %v, want ValidationError", err)
	}
}

func TestClearCart(t *testing.T) {
	c := newTestContainer(t)
	c.AddToCart("m1", "Dosa", 120)
	c.ClearCart()
	if len(c.Cart()) != 0 {
		t.Error("cart not empty after clear")
	}
}
