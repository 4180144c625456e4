package handlers

import (
	"context"

	"github.com/polkiloo/ecomlite/internal/domain/model"
	"github.com/polkiloo/ecomlite/internal/pkg/payment"
)

// AuthFacade describes account capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, name, email, password string) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (int64, error)
	Profile(ctx context.Context, userID int64) (*model.User, error)
	UpdateProfile(ctx context.Context, userID int64, changes model.ProfileUpdate) (*model.User, string, error)
}

// ProductFacade exposes the catalogue.
type ProductFacade interface {
	Products(ctx context.Context) ([]model.Product, error)
	Product(ctx context.Context, id int64) (*model.Product, error)
	CreateProduct(ctx context.Context, adminID int64, p model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, id int64, p model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, userID int64, order model.Order) (*model.Order, error)
	MyOrders(ctx context.Context, userID int64) ([]model.Order, error)
	Order(ctx context.Context, requester *model.User, id int64) (*model.Order, error)
	AllOrders(ctx context.Context) ([]model.Order, error)
	DeliverOrder(ctx context.Context, id int64) (*model.Order, error)
}

// PaymentFacade provides payment provider operations.
type PaymentFacade interface {
	CreatePaymentOrder(ctx context.Context, amount float64, currency, receipt string, notes map[string]any) (model.ProviderOrder, error)
	VerifyPayment(ctx context.Context, c payment.Confirmation) (*model.Order, error)
	UpdatePaymentStatus(ctx context.Context, c payment.Confirmation) (*model.Order, error)
	PaymentKey() string
	PaymentLink() string
}

// MediaFacade uploads and removes product images.
type MediaFacade interface {
	UploadImage(ctx context.Context, img model.ImageUpload) (*model.StoredImage, error)
	DeleteImage(ctx context.Context, publicID string) error
}

// ShopFacade aggregates the full set of operations used across handlers.
type ShopFacade interface {
	AuthFacade
	ProductFacade
	OrderFacade
	PaymentFacade
	MediaFacade
}
