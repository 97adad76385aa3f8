// Package store persists the application's two collections as named JSON
// blobs. Keys carry a version suffix so incompatible historical formats are
// never silently loaded; an unknown version simply reads as absent.
package store

import (
	"context"
	"errors"
)

const (
	OrdersKey    = "orders_v13"
	CustomersKey = "customers_v13"
)

var ErrNotFound = errors.New("blob not found")

type Blobs interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
}
