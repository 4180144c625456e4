package payment

import "github.com/polkiloo/ecomlite/internal/domain/model"

// StatusSuccess is the only status that marks an order paid.
const StatusSuccess = "success"

// StatusCallbackStrategy trusts the status reported by the client.
//
// SECURITY: nothing here is authenticated. Any logged-in user can mark any
// order paid by posting status "success". Disable it with
// PAYMENT_STATUS_CALLBACK=false when the signature flow is in use.
type StatusCallbackStrategy struct{}

func NewStatusCallbackStrategy() *StatusCallbackStrategy {
	return &StatusCallbackStrategy{}
}

func (s *StatusCallbackStrategy) Name() string { return "status-callback" }

func (s *StatusCallbackStrategy) Resolve(c Confirmation) (model.PaymentOutcome, error) {
	paid := c.Status == StatusSuccess
	status := model.PaymentStatusFailed
	if paid {
		status = model.PaymentStatusCompleted
	}

	return model.PaymentOutcome{
		Paid:   paid,
		Result: model.PaymentResult{ID: c.PaymentID, Status: status},
	}, nil
}
