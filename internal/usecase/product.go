package usecase

import (
	"context"

	"github.com/polkiloo/ecomlite/internal/domain/model"
	"github.com/polkiloo/ecomlite/internal/domain/repository"
)

// ProductUseCase manages the catalogue.
type ProductUseCase struct {
	products repository.ProductRepository
}

// NewProductUseCase constructs ProductUseCase.
func NewProductUseCase(products repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{products: products}
}

func (u *ProductUseCase) List(ctx context.Context) ([]model.Product, error) {
	return u.products.List(ctx)
}

func (u *ProductUseCase) Get(ctx context.Context, id int64) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

// Create stores a product on behalf of the administrator adminID.
func (u *ProductUseCase) Create(ctx context.Context, adminID int64, p model.Product) (*model.Product, error) {
	if err := ValidateProduct(&p); err != nil {
		return nil, err
	}
	p.UserID = adminID
	return u.products.Create(ctx, &p)
}

// Update replaces the editable fields of an existing product.
func (u *ProductUseCase) Update(ctx context.Context, id int64, p model.Product) (*model.Product, error) {
	if err := ValidateProduct(&p); err != nil {
		return nil, err
	}

	current, err := u.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	current.Name = p.Name
	current.Image = p.Image
	current.Brand = p.Brand
	current.Category = p.Category
	current.Description = p.Description
	current.Price = p.Price
	current.CountInStock = p.CountInStock

	return u.products.Update(ctx, current)
}

func (u *ProductUseCase) Delete(ctx context.Context, id int64) error {
	return u.products.Delete(ctx, id)
}
