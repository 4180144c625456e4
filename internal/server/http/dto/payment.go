package dto

// CreatePaymentOrderRequest opens an order with the payment provider.
// Amount is in major currency units.
type CreatePaymentOrderRequest struct {
	Amount   float64        `json:"amount"`
	Currency string         `json:"currency"`
	Receipt  string         `json:"receipt"`
	Notes    map[string]any `json:"notes"`
}

// VerifyPaymentRequest is what the checkout widget returns after payment.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
	OrderID           int64  `json:"orderId"`
}

// UpdatePaymentStatusRequest is the unsigned status callback.
type UpdatePaymentStatusRequest struct {
	OrderID   int64  `json:"orderId"`
	PaymentID string `json:"paymentId"`
	Status    string `json:"status"`
}

type PaymentKeyResponse struct {
	Key string `json:"key"`
}

type PaymentLinkResponse struct {
	PaymentLink string `json:"paymentLink"`
}
