package model

import (
	"encoding/json"
	"math"
)

// DefaultCurrency is used when a checkout does not name one.
const DefaultCurrency = "INR"

// ProviderOrderRequest is what the shop asks the payment provider to open.
// Notes are free-form and forwarded as received.
// Amount is expressed in minor units (paise for INR).
type ProviderOrderRequest struct {
	Amount   int64          `json:"amount"`
	Currency string         `json:"currency"`
	Receipt  string         `json:"receipt"`
	Notes    map[string]any `json:"notes,omitempty"`
}

// ProviderOrder is the provider's order object, passed through untouched.
type ProviderOrder = json.RawMessage

// ToMinorUnits converts a decimal amount in major units into integer minor units.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
