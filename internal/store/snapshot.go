package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/zengzengppp/Voice-order-generator/internal/customer"
	"github.com/zengzengppp/Voice-order-generator/internal/order"
)

// Snapshot is everything the application persists: the committed order
// history and the customer list. The open draft is deliberately not part of
// it.
type Snapshot struct {
	Orders    []order.Order
	Customers []customer.Customer
}

// Load reads both blobs. A missing blob yields an empty collection, so a
// fresh database or a bumped key version starts the app clean.
func Load(ctx context.Context, b Blobs) (Snapshot, error) {
	var s Snapshot
	if err := loadJSON(ctx, b, OrdersKey, &s.Orders); err != nil {
		return Snapshot{}, err
	}
	if err := loadJSON(ctx, b, CustomersKey, &s.Customers); err != nil {
		return Snapshot{}, err
	}
	return s, nil
}

// Save writes both blobs. Last write wins; there is no partial-write
// recovery beyond the two keys being independent.
func Save(ctx context.Context, b Blobs, s Snapshot) error {
	if err := putJSON(ctx, b, OrdersKey, s.Orders); err != nil {
		return err
	}
	return putJSON(ctx, b, CustomersKey, s.Customers)
}

func loadJSON(ctx context.Context, b Blobs, key string, out any) error {
	data, err := b.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func putJSON(ctx context.Context, b Blobs, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return b.Put(ctx, key, data)
}
