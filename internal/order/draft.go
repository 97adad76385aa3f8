// Package order holds the order domain model and the edit operations that
// drive a draft: manual row edits and bulk replacement from the normalizer.
package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoValidItems = errors.New("no valid items")
	ErrBadIndex     = errors.New("item index out of range")
)

// NewDraft creates an editable order with a single blank row.
func NewDraft(customerID string) Order {
	return Order{
		ID:         uuid.NewString(),
		Date:       time.Now().UTC(),
		CustomerID: customerID,
		Items:      []Item{{Quantity: 1}},
	}
}

// AddRow appends a blank item row (quantity defaults to 1).
func (o *Order) AddRow() {
	o.Items = append(o.Items, Item{Quantity: 1})
	o.recalcTotal()
}

// SetField sets one field of the item at index and recomputes the total.
// Field names mirror the JSON item shape: name, quantity, unit, price.
func (o *Order) SetField(index int, field string, value any) error {
	if index < 0 || index >= len(o.Items) {
		return ErrBadIndex
	}
	it := &o.Items[index]
	switch field {
	case "name":
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("field %s expects a string", field)
		}
		it.Name = s
	case "unit":
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("field %s expects a string", field)
		}
		it.Unit = s
	case "quantity":
		n, ok := toNumber(value)
		if !ok || n < 0 {
			return fmt.Errorf("field %s expects a non-negative number", field)
		}
		it.Quantity = n
	case "price":
		n, ok := toNumber(value)
		if !ok || n < 0 {
			return fmt.Errorf("field %s expects a non-negative number", field)
		}
		it.Price = n
	default:
		return fmt.Errorf("unknown item field %q", field)
	}
	o.recalcTotal()
	return nil
}

// RemoveRow deletes the item at index. Removing the last remaining row is
// allowed and leaves an empty item list.
func (o *Order) RemoveRow(index int) error {
	if index < 0 || index >= len(o.Items) {
		return ErrBadIndex
	}
	o.Items = append(o.Items[:index], o.Items[index+1:]...)
	o.recalcTotal()
	return nil
}

// ValidItems returns the items whose trimmed name is non-empty, preserving
// order.
func (o *Order) ValidItems() []Item {
	out := make([]Item, 0, len(o.Items))
	for _, it := range o.Items {
		if it.Valid() {
			out = append(out, it)
		}
	}
	return out
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}
