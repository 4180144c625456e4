package usecase

import (
	"context"
	"time"

	domainErrors "github.com/polkiloo/ecomlite/internal/domain/errors"
	"github.com/polkiloo/ecomlite/internal/domain/model"
	"github.com/polkiloo/ecomlite/internal/domain/repository"
)

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders repository.OrderRepository
	now    func() time.Time
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, now: time.Now}
}

// Place stores a new unpaid order for the user.
func (u *OrderUseCase) Place(ctx context.Context, userID int64, order model.Order) (*model.Order, error) {
	if err := ValidateOrder(&order); err != nil {
		return nil, err
	}

	order.ID = 0
	order.UserID = userID
	order.IsPaid, order.PaidAt, order.PaymentResult = false, nil, nil
	order.IsDelivered, order.DeliveredAt = false, nil

	return u.orders.Create(ctx, &order)
}

// Get returns the order when the requester owns it or is an administrator.
// Foreign orders are reported as missing.
func (u *OrderUseCase) Get(ctx context.Context, requester *model.User, id int64) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.UserID != requester.ID && !requester.IsAdmin {
		return nil, domainErrors.ErrNotFound
	}
	return order, nil
}

// ListByUser returns the user's orders, newest first.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// ListAll returns every order for administrators.
func (u *OrderUseCase) ListAll(ctx context.Context) ([]model.Order, error) {
	return u.orders.ListAll(ctx)
}

// MarkDelivered flags an order as delivered.
func (u *OrderUseCase) MarkDelivered(ctx context.Context, id int64) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	order.MarkDelivered(u.now())
	return u.orders.Save(ctx, order)
}
