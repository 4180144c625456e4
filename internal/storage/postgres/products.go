package postgres

import (
	"context"

	domainErrors "github.com/polkiloo/ecomlite/internal/domain/errors"
	"github.com/polkiloo/ecomlite/internal/domain/model"
)

type productRepository struct {
	storage *Storage
}

const productColumns = `id, user_id, name, image, brand, category, description, price, count_in_stock, created_at, updated_at`

func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products WHERE id=$1`
	return scanProduct(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	const query = `INSERT INTO products (user_id, name, image, brand, category, description, price, count_in_stock)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
                   RETURNING id, created_at, updated_at`
	p := *product
	err := r.storage.pool.QueryRow(ctx, query,
		p.UserID, p.Name, p.Image, p.Brand, p.Category, p.Description, p.Price, p.CountInStock,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

func (r *productRepository) Update(ctx context.Context, product *model.Product) (*model.Product, error) {
	const query = `UPDATE products SET name=$1, image=$2, brand=$3, category=$4, description=$5,
                   price=$6, count_in_stock=$7, updated_at=NOW()
                   WHERE id=$8 RETURNING updated_at`
	p := *product
	err := r.storage.pool.QueryRow(ctx, query,
		p.Name, p.Image, p.Brand, p.Category, p.Description, p.Price, p.CountInStock, p.ID,
	).Scan(&p.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func scanProduct(row rowScanner) (*model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Image, &p.Brand, &p.Category, &p.Description,
		&p.Price, &p.CountInStock, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}
