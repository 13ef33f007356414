package utils

import (
	"strings"
	"testing"
	"time"
)

func TestRenderInvoiceTotals(t *testing.T) {
	out := RenderInvoice(Invoice{
		OrderNumber:   "ORD-1042",
		OrderType:     "delivery",
		CustomerName:  "Asha",
		Lines:         []InvoiceLine{{Name: "Biryani", Quantity: 2, Price: 220}, {Name: "Raita", Quantity: 1, Price: 40}},
		TaxRate:       0.05,
		PaymentStatus: "paid",
		IssuedAt:      time.Date(2024, 3, 1, 19, 30, 0, 0, time.UTC),
	})

	for _, want := range []string{"ORD-1042", "Asha", "480.00", "24.00", "504.00", "paid"} {
		if !strings.Contains(out, want) {
			t.Errorf("invoice missing %q:\n%s", want, out)
		}
	}
}

func TestRenderKitchenTicketHasNoPrices(t *testing.T) {
	out := RenderKitchenTicket(Ticket{
		OrderNumber: "ORD-7",
		OrderType:   "dine-in",
		Table:       "4",
		Lines:       []TicketLine{{Name: "Dal Tadka", Quantity: 1, Notes: "less spicy"}},
		PlacedAt:    time.Date(2024, 3, 1, 20, 15, 0, 0, time.UTC),
	})

	for _, want := range []string{"KITCHEN ORDER", "ORD-7", "Table: 4", "1 x Dal Tadka", "less spicy"} {
		if !strings.Contains(out, want) {
			t.Errorf("ticket missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, ".00") {
		t.Error("kitchen ticket should not show prices")
	}
}
