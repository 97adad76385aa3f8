package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zengzengppp/Voice-order-generator/internal/order"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func sampleOrders() []order.Order {
	return []order.Order{
		{ID: "o1", Date: day("2025-03-01"), CustomerID: "c1", GrandTotal: 10,
			Items: []order.Item{{Name: "番茄", Quantity: 2, Unit: "斤", Price: 5}}},
		{ID: "o2", Date: day("2025-03-05"), CustomerID: "c2", GrandTotal: 24,
			Items: []order.Item{{Name: "鸡肉", Quantity: 1.5, Unit: "斤", Price: 16}}},
		{ID: "o3", Date: day("2025-04-01"), CustomerID: "c1", GrandTotal: 3.6,
			Items: []order.Item{{Name: "土豆", Quantity: 3, Unit: "斤", Price: 1.2}}},
	}
}

func TestFilterByDateRangeInclusive(t *testing.T) {
	got := Filter(sampleOrders(), "", "2025-03-01", "2025-03-05")
	require.Len(t, got, 2)
	assert.Equal(t, "o1", got[0].ID)
	assert.Equal(t, "o2", got[1].ID)
}

func TestFilterByCustomer(t *testing.T) {
	got := Filter(sampleOrders(), "c1", "", "")
	require.Len(t, got, 2)
	for _, o := range got {
		assert.Equal(t, "c1", o.CustomerID)
	}
}

func TestFilterNoConstraints(t *testing.T) {
	assert.Len(t, Filter(sampleOrders(), "", "", ""), 3)
}

func TestToday(t *testing.T) {
	now := day("2025-03-05").Add(15 * time.Hour)
	got := Today(sampleOrders(), now)
	require.Len(t, got, 1)
	assert.Equal(t, "o2", got[0].ID)
}

func TestOrdersTotalAndCurrency(t *testing.T) {
	total := OrdersTotal(sampleOrders())
	assert.Equal(t, "37.60", total.StringFixed(2))
	assert.Equal(t, "¥37.60", FormatCurrency(total.InexactFloat64()))
	assert.Equal(t, "¥0.00", FormatCurrency(0))
}

func TestComputeStats(t *testing.T) {
	now := day("2025-03-05").Add(9 * time.Hour)
	s := Compute(sampleOrders(), 2, now)
	assert.Equal(t, 1, s.TodayOrders)
	assert.Equal(t, 24.0, s.TodayRevenue)
	assert.Equal(t, 2, s.MonthOrders)
	assert.Equal(t, 34.0, s.MonthRevenue)
	assert.Equal(t, 3, s.TotalOrders)
	assert.Equal(t, 2, s.Customers)
}

func TestPrintableHTML(t *testing.T) {
	names := map[string]string{"c1": "厂家A", "c2": "厂家B"}
	html, err := PrintableHTML(sampleOrders(), names, "三月报表", day("2025-04-02"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "三月报表")
	assert.Contains(t, html, "厂家A")
	assert.Contains(t, html, "厂家B")
	assert.Contains(t, html, "番茄")
	assert.Contains(t, html, "¥10.00") // per-order total
	assert.Contains(t, html, "¥37.60") // report grand total
}

func TestPrintableHTMLUnknownCustomer(t *testing.T) {
	orders := []order.Order{{ID: "o", Date: day("2025-03-01"), CustomerID: "ghost", GrandTotal: 1,
		Items: []order.Item{{Name: "葱", Quantity: 1, Price: 1}}}}
	html, err := PrintableHTML(orders, nil, "报表", day("2025-03-02"))
	require.NoError(t, err)
	assert.Contains(t, html, "未知客户")
}

func TestPrintableHTMLEscapesItemNames(t *testing.T) {
	orders := []order.Order{{ID: "o", Date: day("2025-03-01"), CustomerID: "c", GrandTotal: 1,
		Items: []order.Item{{Name: "<script>alert(1)</script>", Quantity: 1, Price: 1}}}}
	html, err := PrintableHTML(orders, map[string]string{"c": "厂家"}, "报表", day("2025-03-02"))
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert(1)</script>")
}
