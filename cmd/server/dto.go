package main

import "github.com/zengzengppp/Voice-order-generator/internal/order"

// ProcessOrderRequest relay payload: the utterance plus the items it should
// be applied to.
// swagger:model ProcessOrderRequest
type ProcessOrderRequest struct {
	Text         string       `json:"text" example:"西红柿 2斤 5块钱"`
	CurrentItems []order.Item `json:"currentItems"`
}

// StartDraftRequest opens a new draft for a customer.
// swagger:model StartDraftRequest
type StartDraftRequest struct {
	CustomerID string `json:"customer_id" example:"b2f5ff47-2b1e-4f22-8a96-5f3c1f2f2e7b"`
}

// EditItemRequest sets one field of one draft item.
// swagger:model EditItemRequest
type EditItemRequest struct {
	Field string `json:"field" example:"quantity"`
	Value any    `json:"value"`
}

// NormalizeRequest runs an utterance against the open draft.
// swagger:model NormalizeRequest
type NormalizeRequest struct {
	Text string `json:"text" example:"西红柿改成3斤"`
}

// CreateCustomerRequest registers a customer.
// swagger:model CreateCustomerRequest
type CreateCustomerRequest struct {
	Name string `json:"name" example:"默认厂家"`
}
