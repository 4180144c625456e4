package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/polkiloo/ecomlite/internal/domain/model"
)

type orderRepository struct {
	storage *Storage
}

const orderColumns = `id, user_id, items, shipping_address, payment_method, items_price, tax_price,
                      shipping_price, total_price, is_paid, paid_at, payment_result, is_delivered,
                      delivered_at, created_at, updated_at`

func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	const query = `INSERT INTO orders (user_id, items, shipping_address, payment_method,
                       items_price, tax_price, shipping_price, total_price)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
                   RETURNING id, created_at, updated_at`
	o := *order
	items, err := json.Marshal(o.Items)
	if err != nil {
		return nil, fmt.Errorf("encode items: %w", err)
	}
	shipping, err := json.Marshal(o.ShippingAddress)
	if err != nil {
		return nil, fmt.Errorf("encode shipping address: %w", err)
	}

	err = r.storage.pool.QueryRow(ctx, query,
		o.UserID, items, shipping, o.PaymentMethod, o.ItemsPrice, o.TaxPrice, o.ShippingPrice, o.TotalPrice,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &o, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	return scanOrder(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 ORDER BY created_at DESC`
	return r.list(ctx, query, userID)
}

func (r *orderRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	return r.list(ctx, query)
}

// Save persists payment and delivery state. Concurrent saves of the same
// order resolve last write wins.
func (r *orderRepository) Save(ctx context.Context, order *model.Order) (*model.Order, error) {
	const query = `UPDATE orders SET is_paid=$1, paid_at=$2, payment_result=$3, is_delivered=$4,
                   delivered_at=$5, updated_at=NOW()
                   WHERE id=$6 RETURNING updated_at`
	o := *order
	var result any
	if o.PaymentResult != nil {
		encoded, err := json.Marshal(o.PaymentResult)
		if err != nil {
			return nil, fmt.Errorf("encode payment result: %w", err)
		}
		result = encoded
	}

	err := r.storage.pool.QueryRow(ctx, query, o.IsPaid, o.PaidAt, result, o.IsDelivered, o.DeliveredAt, o.ID).Scan(&o.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &o, nil
}

func (r *orderRepository) list(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanOrder(row rowScanner) (*model.Order, error) {
	var (
		o                       model.Order
		items, shipping, result []byte
		paidAt, deliveredAt     *time.Time
	)
	err := row.Scan(&o.ID, &o.UserID, &items, &shipping, &o.PaymentMethod, &o.ItemsPrice, &o.TaxPrice,
		&o.ShippingPrice, &o.TotalPrice, &o.IsPaid, &paidAt, &result, &o.IsDelivered,
		&deliveredAt, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}

	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	if err := json.Unmarshal(shipping, &o.ShippingAddress); err != nil {
		return nil, fmt.Errorf("decode shipping address: %w", err)
	}
	if len(result) > 0 {
		o.PaymentResult = &model.PaymentResult{}
		if err := json.Unmarshal(result, o.PaymentResult); err != nil {
			return nil, fmt.Errorf("decode payment result: %w", err)
		}
	}
	o.PaidAt, o.DeliveredAt = paidAt, deliveredAt
	return &o, nil
}
