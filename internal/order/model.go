package order

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Item is one line of an order. Quantity and price live as plain numbers on
// the wire (the normalization endpoint speaks the same shape); money math is
// done with decimals to keep totals exact.
type Item struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Price    float64 `json:"price"`
}

// LineAmount returns quantity * price for this item.
func (it Item) LineAmount() decimal.Decimal {
	return decimal.NewFromFloat(it.Quantity).Mul(decimal.NewFromFloat(it.Price))
}

// Valid reports whether the item has a usable name.
func (it Item) Valid() bool {
	return strings.TrimSpace(it.Name) != ""
}

type Order struct {
	ID         string    `json:"id"`
	Date       time.Time `json:"date"`
	CustomerID string    `json:"customer_id"`
	Items      []Item    `json:"items"`
	// GrandTotal is derived from Items; recomputed after every mutation,
	// never settable on its own.
	GrandTotal float64 `json:"grand_total"`
}

// Total sums the line amounts of the given items.
func Total(items []Item) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.LineAmount())
	}
	return sum
}

func (o *Order) recalcTotal() {
	o.GrandTotal = Total(o.Items).Round(2).InexactFloat64()
}
