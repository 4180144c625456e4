package model

import "time"

// Payment result statuses recorded on an order.
const (
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// OrderItem is a single purchased line.
type OrderItem struct {
	ProductID int64   `json:"product"`
	Name      string  `json:"name"`
	Quantity  int     `json:"qty"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
}

// ShippingAddress is the delivery destination captured at checkout.
type ShippingAddress struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// PaymentResult mirrors what the payment provider reported for an order.
type PaymentResult struct {
	ID                string    `json:"id"`
	Status            string    `json:"status"`
	UpdateTime        time.Time `json:"update_time"`
	RazorpayOrderID   string    `json:"razorpay_order_id,omitempty"`
	RazorpayPaymentID string    `json:"razorpay_payment_id,omitempty"`
	RazorpaySignature string    `json:"razorpay_signature,omitempty"`
}

// PaymentOutcome is the transition a payment strategy decided to apply.
type PaymentOutcome struct {
	Paid   bool
	Result PaymentResult
}

// Order describes a checkout placed by a user.
type Order struct {
	ID              int64
	UserID          int64
	Items           []OrderItem
	ShippingAddress ShippingAddress
	PaymentMethod   string
	ItemsPrice      float64
	TaxPrice        float64
	ShippingPrice   float64
	TotalPrice      float64
	IsPaid          bool
	PaidAt          *time.Time
	PaymentResult   *PaymentResult
	IsDelivered     bool
	DeliveredAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ApplyPayment records the outcome on the order. paidAt and update_time are
// stamped with now for successful and failed outcomes alike on unpaid orders.
// A paid order ignores failed outcomes so its payment details keep describing
// the payment that settled it.
func (o *Order) ApplyPayment(outcome PaymentOutcome, now time.Time) {
	if o.IsPaid && !outcome.Paid {
		return
	}

	paidAt := now
	result := outcome.Result
	result.UpdateTime = now

	o.IsPaid = outcome.Paid
	o.PaidAt = &paidAt
	o.PaymentResult = &result
}

// MarkDelivered flags the order as handed over to the customer.
func (o *Order) MarkDelivered(now time.Time) {
	deliveredAt := now
	o.IsDelivered = true
	o.DeliveredAt = &deliveredAt
}
