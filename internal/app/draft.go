package app

import (
	"context"

	"github.com/zengzengppp/Voice-order-generator/internal/customer"
	"github.com/zengzengppp/Voice-order-generator/internal/order"
)

// StartDraft opens a new draft for the given customer. Only one draft can be
// open at a time.
func (a *App) StartDraft(customerID string) (order.Order, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.draft != nil {
		return order.Order{}, ErrDraftOpen
	}
	if !a.hasCustomer(customerID) {
		return order.Order{}, customer.ErrNotFound
	}
	d := order.NewDraft(customerID)
	a.draft = &d
	a.gen++
	return copyOrder(d), nil
}

// Draft returns the open draft.
func (a *App) Draft() (order.Order, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.draft == nil {
		return order.Order{}, ErrNoDraft
	}
	return copyOrder(*a.draft), nil
}

// AddRow appends a blank row to the draft.
func (a *App) AddRow() (order.Order, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.draft == nil {
		return order.Order{}, ErrNoDraft
	}
	a.draft.AddRow()
	return copyOrder(*a.draft), nil
}

// EditItem sets one field of one draft item by position.
func (a *App) EditItem(index int, field string, value any) (order.Order, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.draft == nil {
		return order.Order{}, ErrNoDraft
	}
	if err := a.draft.SetField(index, field, value); err != nil {
		return order.Order{}, err
	}
	return copyOrder(*a.draft), nil
}

// RemoveRow deletes the draft item at the given position.
func (a *App) RemoveRow(index int) (order.Order, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.draft == nil {
		return order.Order{}, ErrNoDraft
	}
	if err := a.draft.RemoveRow(index); err != nil {
		return order.Order{}, err
	}
	return copyOrder(*a.draft), nil
}

// Normalize runs the utterance through the model and replaces the draft's
// items with the result. At most one call is in flight at a time; if the
// draft is cancelled or saved while the call is outstanding, the response is
// discarded and ErrStale is returned.
func (a *App) Normalize(ctx context.Context, text string) (order.Order, error) {
	a.mu.Lock()
	if a.draft == nil {
		a.mu.Unlock()
		return order.Order{}, ErrNoDraft
	}
	if a.busy {
		a.mu.Unlock()
		return order.Order{}, ErrBusy
	}
	a.busy = true
	gen := a.gen
	current := append([]order.Item(nil), a.draft.Items...)
	a.mu.Unlock()

	items, err := a.normalizer.Normalize(ctx, current, text)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.busy = false
	if err != nil {
		return order.Order{}, err
	}
	if a.draft == nil || gen != a.gen {
		return order.Order{}, ErrStale
	}
	if err := a.draft.ReplaceItems(items); err != nil {
		return order.Order{}, err
	}
	return copyOrder(*a.draft), nil
}

// SaveDraft commits the draft to the order history. The draft must reference
// an existing customer and contain at least one item with a usable name;
// otherwise nothing changes. Only the named items are committed.
func (a *App) SaveDraft() (order.Order, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.draft == nil {
		return order.Order{}, ErrNoDraft
	}
	if a.draft.CustomerID == "" || !a.hasCustomer(a.draft.CustomerID) {
		return order.Order{}, ErrValidation
	}
	valid := a.draft.ValidItems()
	if len(valid) == 0 {
		return order.Order{}, ErrValidation
	}
	o := *a.draft
	o.Items = valid
	o.GrandTotal = order.Total(valid).Round(2).InexactFloat64()
	a.orders = append(a.orders, o)
	a.draft = nil
	a.gen++
	a.markDirty()
	return copyOrder(o), nil
}

// CancelDraft discards the draft unconditionally.
func (a *App) CancelDraft() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.draft = nil
	a.gen++
}
