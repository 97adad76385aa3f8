// Package report filters committed orders and renders them into summaries
// and a standalone printable document.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/zengzengppp/Voice-order-generator/internal/order"
)

const dayLayout = "2006-01-02"

// Filter narrows orders by customer and an inclusive YYYY-MM-DD date range.
// Empty parameters mean "no constraint".
func Filter(orders []order.Order, customerID, start, end string) []order.Order {
	out := make([]order.Order, 0, len(orders))
	for _, o := range orders {
		if customerID != "" && o.CustomerID != customerID {
			continue
		}
		day := o.Date.Format(dayLayout)
		if start != "" && day < start {
			continue
		}
		if end != "" && day > end {
			continue
		}
		out = append(out, o)
	}
	return out
}

// Today returns the orders created on the same calendar day as now.
func Today(orders []order.Order, now time.Time) []order.Order {
	day := now.Format(dayLayout)
	return Filter(orders, "", day, day)
}

// OrdersTotal sums the grand totals of the given orders.
func OrdersTotal(orders []order.Order) decimal.Decimal {
	sum := decimal.Zero
	for _, o := range orders {
		sum = sum.Add(decimal.NewFromFloat(o.GrandTotal))
	}
	return sum
}

// FormatCurrency renders an amount as ¥ with two decimal places.
func FormatCurrency(amount float64) string {
	return "¥" + decimal.NewFromFloat(amount).StringFixed(2)
}

// Stats is the dashboard summary.
type Stats struct {
	TodayOrders  int     `json:"today_orders"`
	TodayRevenue float64 `json:"today_revenue"`
	MonthOrders  int     `json:"month_orders"`
	MonthRevenue float64 `json:"month_revenue"`
	TotalOrders  int     `json:"total_orders"`
	Customers    int     `json:"customers"`
}

// Compute derives today's and the current month's order counts and revenue.
func Compute(orders []order.Order, customers int, now time.Time) Stats {
	day := now.Format(dayLayout)
	month := now.Format("2006-01")
	s := Stats{TotalOrders: len(orders), Customers: customers}
	todayRev, monthRev := decimal.Zero, decimal.Zero
	for _, o := range orders {
		d := o.Date.Format(dayLayout)
		if d == day {
			s.TodayOrders++
			todayRev = todayRev.Add(decimal.NewFromFloat(o.GrandTotal))
		}
		if o.Date.Format("2006-01") == month {
			s.MonthOrders++
			monthRev = monthRev.Add(decimal.NewFromFloat(o.GrandTotal))
		}
	}
	s.TodayRevenue = todayRev.Round(2).InexactFloat64()
	s.MonthRevenue = monthRev.Round(2).InexactFloat64()
	return s
}
