package utils

import (
	"fmt"
	"strings"
	"time"
)

// InvoiceLine is one billed line on a printable invoice.
type InvoiceLine struct {
	Name     string
	Quantity int
	Price    float64
}

// Invoice is the snapshot of order/bill data an invoice is printed from.
type Invoice struct {
	OrderNumber   string
	OrderType     string
	CustomerName  string
	Lines         []InvoiceLine
	TaxRate       float64 // e.g. 0.05
	PaymentStatus string
	IssuedAt      time.Time
}

const docWidth = 42

// RenderInvoice produces a printable retail invoice as monospace text.
func RenderInvoice(in Invoice) string {
	var b strings.Builder
	rule := strings.Repeat("-", docWidth) + "\n"

	b.WriteString(center("TAX INVOICE") + "\n")
	b.WriteString(rule)
	fmt.Fprintf(&b, "Order:    %s\n", in.OrderNumber)
	fmt.Fprintf(&b, "Type:     %s\n", in.OrderType)
	if in.CustomerName != "" {
		fmt.Fprintf(&b, "Customer: %s\n", in.CustomerName)
	}
	fmt.Fprintf(&b, "Date:     %s\n", in.IssuedAt.Format("02 Jan 2006 15:04"))
	b.WriteString(rule)

	var subtotal float64
	for _, line := range in.Lines {
		amount := line.Price * float64(line.Quantity)
		subtotal += amount
		left := fmt.Sprintf("%dx %s", line.Quantity, line.Name)
		b.WriteString(row(left, fmt.Sprintf("%.2f", amount)))
	}
	b.WriteString(rule)
	b.WriteString(row("Subtotal", fmt.Sprintf("%.2f", subtotal)))
	tax := subtotal * in.TaxRate
	b.WriteString(row(fmt.Sprintf("Tax (%.1f%%)", in.TaxRate*100), fmt.Sprintf("%.2f", tax)))
	b.WriteString(row("TOTAL", fmt.Sprintf("%.2f", subtotal+tax)))
	b.WriteString(rule)
	fmt.Fprintf(&b, "Payment: %s\n", in.PaymentStatus)
	return b.String()
}

// TicketLine is one dish on a kitchen order ticket.
type TicketLine struct {
	Name     string
	Quantity int
	Notes    string
}

// Ticket is the kitchen-facing order slip; no prices.
type Ticket struct {
	OrderNumber string
	OrderType   string
	Table       string
	Lines       []TicketLine
	PlacedAt    time.Time
}

// RenderKitchenTicket produces the kitchen order ticket as monospace
// text.
func RenderKitchenTicket(tk Ticket) string {
	var b strings.Builder
	rule := strings.Repeat("=", docWidth) + "\n"

	b.WriteString(rule)
	b.WriteString(center("KITCHEN ORDER") + "\n")
	fmt.Fprintf(&b, "Order: %s  (%s)\n", tk.OrderNumber, tk.OrderType)
	if tk.Table != "" {
		fmt.Fprintf(&b, "Table: %s\n", tk.Table)
	}
	fmt.Fprintf(&b, "Time:  %s\n", tk.PlacedAt.Format("15:04"))
	b.WriteString(rule)
	for _, line := range tk.Lines {
		fmt.Fprintf(&b, "  %d x %s\n", line.Quantity, line.Name)
		if line.Notes != "" {
			fmt.Fprintf(&b, "      * %s\n", line.Notes)
		}
	}
	b.WriteString(rule)
	return b.String()
}

func center(s string) string {
	if len(s) >= docWidth {
		return s
	}
	pad := (docWidth - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}

func row(left, right string) string {
	gap := docWidth - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right + "\n"
}
