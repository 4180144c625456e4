package repository

import (
	"context"

	"github.com/polkiloo/ecomlite/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	// Save persists payment and delivery state of an existing order.
	Save(ctx context.Context, order *model.Order) (*model.Order, error)
}
