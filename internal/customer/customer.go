package customer

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("customer not found")
	ErrEmptyName = errors.New("customer name must not be empty")
)

// Customer is a buyer the business invoices. Deleting one cascades to every
// order that references it.
type Customer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// New creates a customer with a fresh id. The name must be non-empty after
// trimming.
func New(name string) (Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Customer{}, ErrEmptyName
	}
	return Customer{ID: uuid.NewString(), Name: name}, nil
}
