// Package payment decides how a provider confirmation changes an order.
package payment

import "github.com/polkiloo/ecomlite/internal/domain/model"

// Confirmation carries what the client reported after checkout. Which
// fields are meaningful depends on the strategy resolving it.
type Confirmation struct {
	OrderID         int64
	ProviderOrderID string
	PaymentID       string
	Signature       string
	Status          string
}

// Strategy turns a confirmation into the transition to apply to the order.
// Implementations never touch storage.
type Strategy interface {
	Name() string
	Resolve(c Confirmation) (model.PaymentOutcome, error)
}
