package report

import (
	"bytes"
	"html/template"
	"time"

	"github.com/zengzengppp/Voice-order-generator/internal/order"
)

// printTemplate produces a self-contained document: header, one section per
// order with a line per item, a per-order total and a report grand total.
var printTemplate = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html lang="zh-CN">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<style>
  * { box-sizing: border-box; }
  body { font-family: -apple-system, 'PingFang SC', 'Microsoft YaHei', sans-serif; margin: 0; padding: 20px; font-size: 14px; color: #333; }
  .print-header { text-align: center; margin-bottom: 30px; border-bottom: 2px solid #44bba4; padding-bottom: 15px; }
  .print-header h1 { margin: 0 0 10px 0; color: #44bba4; font-size: 24px; }
  .print-date { color: #666; }
  .order { border: 1px solid #e5e7eb; margin-bottom: 15px; padding: 15px; border-radius: 8px; page-break-inside: avoid; }
  .order-header { display: flex; justify-content: space-between; font-weight: bold; margin-bottom: 10px; }
  .item { font-size: 14px; color: #666; }
  .order-total { text-align: right; font-weight: bold; margin-top: 8px; }
  .total { text-align: right; font-size: 20px; font-weight: bold; margin-top: 30px; color: #44bba4; border-top: 2px solid #44bba4; padding-top: 10px; }
</style>
</head>
<body>
<div class="print-header">
  <h1>智能开单助手 - 订单报表</h1>
  <p>{{.Title}}</p>
  <p class="print-date">打印时间: {{.PrintedAt}}</p>
</div>
{{range .Orders}}
<div class="order">
  <div class="order-header">
    <span>客户: {{.Customer}}</span>
    <span>日期: {{.Date}}</span>
  </div>
  {{range .Items}}<div class="item">{{.Name}} {{.Quantity}}{{.Unit}} × {{.Price}} = {{.Amount}}</div>
  {{end}}<div class="order-total">小计: {{.Total}}</div>
</div>
{{end}}
<div class="total">总计: {{.GrandTotal}}</div>
</body>
</html>
`))

type printItem struct {
	Name     string
	Quantity float64
	Unit     string
	Price    string
	Amount   string
}

type printOrder struct {
	Customer string
	Date     string
	Items    []printItem
	Total    string
}

type printPage struct {
	Title      string
	PrintedAt  string
	Orders     []printOrder
	GrandTotal string
}

// PrintableHTML renders the orders into a standalone printable document.
// customerNames maps customer ids to display names; unknown ids render a
// placeholder rather than failing the whole report.
func PrintableHTML(orders []order.Order, customerNames map[string]string, title string, now time.Time) (string, error) {
	page := printPage{
		Title:      title,
		PrintedAt:  now.Format("2006-01-02 15:04:05"),
		GrandTotal: FormatCurrency(OrdersTotal(orders).Round(2).InexactFloat64()),
	}
	for _, o := range orders {
		name, ok := customerNames[o.CustomerID]
		if !ok {
			name = "未知客户"
		}
		po := printOrder{
			Customer: name,
			Date:     o.Date.Format("2006-01-02"),
			Total:    FormatCurrency(o.GrandTotal),
		}
		for _, it := range o.Items {
			po.Items = append(po.Items, printItem{
				Name:     it.Name,
				Quantity: it.Quantity,
				Unit:     it.Unit,
				Price:    FormatCurrency(it.Price),
				Amount:   FormatCurrency(it.LineAmount().Round(2).InexactFloat64()),
			})
		}
		page.Orders = append(page.Orders, po)
	}

	var buf bytes.Buffer
	if err := printTemplate.Execute(&buf, page); err != nil {
		return "", err
	}
	return buf.String(), nil
}
