package app

import (
	"github.com/zengzengppp/Voice-order-generator/internal/customer"
	"github.com/zengzengppp/Voice-order-generator/internal/order"
)

func (a *App) hasCustomer(id string) bool {
	for _, c := range a.customers {
		if c.ID == id {
			return true
		}
	}
	return false
}

// Customers returns the customer list.
func (a *App) Customers() []customer.Customer {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]customer.Customer(nil), a.customers...)
}

// CustomerNames returns an id → name lookup for report rendering.
func (a *App) CustomerNames() map[string]string {
	a.mu.Lock()
	defer a.mu.Unlock()
	names := make(map[string]string, len(a.customers))
	for _, c := range a.customers {
		names[c.ID] = c.Name
	}
	return names
}

// AddCustomer registers a new customer.
func (a *App) AddCustomer(name string) (customer.Customer, error) {
	c, err := customer.New(name)
	if err != nil {
		return customer.Customer{}, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.customers = append(a.customers, c)
	a.markDirty()
	return c, nil
}

// DeleteCustomer removes the customer and, cascading, every order that
// references it. Hard delete, no tombstones.
func (a *App) DeleteCustomer(id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	idx := -1
	for i, c := range a.customers {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return customer.ErrNotFound
	}
	a.customers = append(a.customers[:idx], a.customers[idx+1:]...)
	kept := a.orders[:0]
	for _, o := range a.orders {
		if o.CustomerID != id {
			kept = append(kept, o)
		}
	}
	a.orders = kept
	a.markDirty()
	return nil
}

// Orders returns the committed order history in insertion order.
func (a *App) Orders() []order.Order {
	a.mu.Lock()
	defer a.mu.Unlock()
	return copyOrders(a.orders)
}
