package repository

import (
	"context"

	"github.com/polkiloo/ecomlite/internal/domain/model"
)

// ProductRepository describes catalogue persistence.
type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	Update(ctx context.Context, product *model.Product) (*model.Product, error)
	Delete(ctx context.Context, id int64) error
}
