package dto

import (
	"time"

	"github.com/polkiloo/ecomlite/internal/domain/model"
)

// OrderRequest is the checkout payload.
type OrderRequest struct {
	OrderItems      []model.OrderItem     `json:"orderItems"`
	ShippingAddress model.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                `json:"paymentMethod"`
	ItemsPrice      float64               `json:"itemsPrice"`
	TaxPrice        float64               `json:"taxPrice"`
	ShippingPrice   float64               `json:"shippingPrice"`
	TotalPrice      float64               `json:"totalPrice"`
}

// OrderResponse represents an order with its payment and delivery state.
type OrderResponse struct {
	ID              int64                 `json:"_id"`
	UserID          int64                 `json:"user"`
	OrderItems      []model.OrderItem     `json:"orderItems"`
	ShippingAddress model.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                `json:"paymentMethod"`
	ItemsPrice      float64               `json:"itemsPrice"`
	TaxPrice        float64               `json:"taxPrice"`
	ShippingPrice   float64               `json:"shippingPrice"`
	TotalPrice      float64               `json:"totalPrice"`
	IsPaid          bool                  `json:"isPaid"`
	PaidAt          *time.Time            `json:"paidAt,omitempty"`
	PaymentResult   *model.PaymentResult  `json:"paymentResult,omitempty"`
	IsDelivered     bool                  `json:"isDelivered"`
	DeliveredAt     *time.Time            `json:"deliveredAt,omitempty"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
}
