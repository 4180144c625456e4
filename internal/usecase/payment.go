package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/polkiloo/ecomlite/internal/adapter/razorpay"
	"github.com/polkiloo/ecomlite/internal/config"
	domainErrors "github.com/polkiloo/ecomlite/internal/domain/errors"
	"github.com/polkiloo/ecomlite/internal/domain/model"
	"github.com/polkiloo/ecomlite/internal/domain/repository"
	"github.com/polkiloo/ecomlite/internal/pkg/payment"
)

// PaymentUseCase opens provider orders and applies payment confirmations.
type PaymentUseCase struct {
	provider  razorpay.Client
	orders    repository.OrderRepository
	signature payment.Strategy
	callback  payment.Strategy
	keyID     string
	link      string
	now       func() time.Time
}

// NewPaymentUseCase constructs PaymentUseCase.
func NewPaymentUseCase(provider razorpay.Client, orders repository.OrderRepository, signature *payment.SignatureStrategy, callback *payment.StatusCallbackStrategy, cfg *config.Config) *PaymentUseCase {
	return &PaymentUseCase{
		provider:  provider,
		orders:    orders,
		signature: signature,
		callback:  callback,
		keyID:     cfg.RazorpayKeyID,
		link:      cfg.PaymentLink,
		now:       time.Now,
	}
}

// CreateProviderOrder converts amount to minor units and opens the order
// with the provider.
func (u *PaymentUseCase) CreateProviderOrder(ctx context.Context, amount float64, currency, receipt string, notes map[string]any) (model.ProviderOrder, error) {
	if u.keyID == "" {
		return nil, domainErrors.ErrFeatureMissing
	}
	minor := model.ToMinorUnits(amount)
	if minor <= 0 {
		return nil, domainErrors.ErrInvalidAmount
	}

	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = model.DefaultCurrency
	}

	return u.provider.CreateOrder(ctx, model.ProviderOrderRequest{
		Amount:   minor,
		Currency: currency,
		Receipt:  receipt,
		Notes:    notes,
	})
}

// Verify applies a signed provider confirmation.
func (u *PaymentUseCase) Verify(ctx context.Context, c payment.Confirmation) (*model.Order, error) {
	return u.confirm(ctx, u.signature, c)
}

// UpdateStatus applies a client reported status without verification.
func (u *PaymentUseCase) UpdateStatus(ctx context.Context, c payment.Confirmation) (*model.Order, error) {
	return u.confirm(ctx, u.callback, c)
}

// confirm resolves before reading so a rejected confirmation touches no order.
func (u *PaymentUseCase) confirm(ctx context.Context, strategy payment.Strategy, c payment.Confirmation) (*model.Order, error) {
	outcome, err := strategy.Resolve(c)
	if err != nil {
		return nil, err
	}

	order, err := u.orders.GetByID(ctx, c.OrderID)
	if err != nil {
		return nil, err
	}

	order.ApplyPayment(outcome, u.now())
	return u.orders.Save(ctx, order)
}

// Key returns the public provider key id for the checkout widget.
func (u *PaymentUseCase) Key() string {
	return u.keyID
}

// Link returns the configured hosted payment page.
func (u *PaymentUseCase) Link() string {
	return u.link
}
