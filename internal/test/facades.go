package test

import (
	"context"
	"encoding/json"

	"github.com/polkiloo/ecomlite/internal/domain/model"
	"github.com/polkiloo/ecomlite/internal/pkg/payment"
)

// ProductFacadeStub provides controllable behaviour for catalogue endpoints.
type ProductFacadeStub struct {
	ListFn   func(context.Context) ([]model.Product, error)
	GetFn    func(context.Context, int64) (*model.Product, error)
	CreateFn func(context.Context, int64, model.Product) (*model.Product, error)
	UpdateFn func(context.Context, int64, model.Product) (*model.Product, error)
	DeleteFn func(context.Context, int64) error
}

func (s ProductFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return []model.Product{{ID: 1, Name: "Phone", Price: 10}}, nil
}

func (s ProductFacadeStub) Product(ctx context.Context, id int64) (*model.Product, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return &model.Product{ID: id, Name: "Phone", Price: 10}, nil
}

func (s ProductFacadeStub) CreateProduct(ctx context.Context, adminID int64, p model.Product) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, adminID, p)
	}
	p.ID, p.UserID = 1, adminID
	return &p, nil
}

func (s ProductFacadeStub) UpdateProduct(ctx context.Context, id int64, p model.Product) (*model.Product, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, p)
	}
	p.ID = id
	return &p, nil
}

func (s ProductFacadeStub) DeleteProduct(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceFn   func(context.Context, int64, model.Order) (*model.Order, error)
	MineFn    func(context.Context, int64) ([]model.Order, error)
	GetFn     func(context.Context, *model.User, int64) (*model.Order, error)
	AllFn     func(context.Context) ([]model.Order, error)
	DeliverFn func(context.Context, int64) (*model.Order, error)
}

func (s OrderFacadeStub) PlaceOrder(ctx context.Context, userID int64, order model.Order) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, userID, order)
	}
	order.ID, order.UserID = 1, userID
	return &order, nil
}

func (s OrderFacadeStub) MyOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.MineFn != nil {
		return s.MineFn(ctx, userID)
	}
	return []model.Order{{ID: 1, UserID: userID}}, nil
}

func (s OrderFacadeStub) Order(ctx context.Context, requester *model.User, id int64) (*model.Order, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, requester, id)
	}
	return &model.Order{ID: id, UserID: requester.ID}, nil
}

func (s OrderFacadeStub) AllOrders(ctx context.Context) ([]model.Order, error) {
	if s.AllFn != nil {
		return s.AllFn(ctx)
	}
	return []model.Order{{ID: 1}, {ID: 2}}, nil
}

func (s OrderFacadeStub) DeliverOrder(ctx context.Context, id int64) (*model.Order, error) {
	if s.DeliverFn != nil {
		return s.DeliverFn(ctx, id)
	}
	return &model.Order{ID: id, IsDelivered: true}, nil
}

// PaymentFacadeStub simulates the payment provider surface.
type PaymentFacadeStub struct {
	CreateFn func(context.Context, float64, string, string, map[string]any) (model.ProviderOrder, error)
	VerifyFn func(context.Context, payment.Confirmation) (*model.Order, error)
	StatusFn func(context.Context, payment.Confirmation) (*model.Order, error)
	Key      string
	Link     string
}

func (s PaymentFacadeStub) CreatePaymentOrder(ctx context.Context, amount float64, currency, receipt string, notes map[string]any) (model.ProviderOrder, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, amount, currency, receipt, notes)
	}
	return json.RawMessage(`{"id":"order_1","amount":100,"currency":"INR"}`), nil
}

func (s PaymentFacadeStub) VerifyPayment(ctx context.Context, c payment.Confirmation) (*model.Order, error) {
	if s.VerifyFn != nil {
		return s.VerifyFn(ctx, c)
	}
	return &model.Order{ID: c.OrderID, IsPaid: true}, nil
}

func (s PaymentFacadeStub) UpdatePaymentStatus(ctx context.Context, c payment.Confirmation) (*model.Order, error) {
	if s.StatusFn != nil {
		return s.StatusFn(ctx, c)
	}
	return &model.Order{ID: c.OrderID, IsPaid: c.Status == payment.StatusSuccess}, nil
}

func (s PaymentFacadeStub) PaymentKey() string { return s.Key }

func (s PaymentFacadeStub) PaymentLink() string { return s.Link }

// MediaFacadeStub simulates image uploads.
type MediaFacadeStub struct {
	UploadFn func(context.Context, model.ImageUpload) (*model.StoredImage, error)
	DeleteFn func(context.Context, string) error
}

func (s MediaFacadeStub) UploadImage(ctx context.Context, img model.ImageUpload) (*model.StoredImage, error) {
	if s.UploadFn != nil {
		return s.UploadFn(ctx, img)
	}
	return &model.StoredImage{URL: "https://cdn.example.com/ecomlite/1.png", PublicID: "ecomlite/1.png"}, nil
}

func (s MediaFacadeStub) DeleteImage(ctx context.Context, publicID string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, publicID)
	}
	return nil
}

// ShopFacadeStub aggregates facade dependencies for HTTP layer tests.
type ShopFacadeStub struct {
	AuthFacadeStub
	ProductFacadeStub
	OrderFacadeStub
	PaymentFacadeStub
	MediaFacadeStub
}

// ProviderClientStub stands in for the payment provider client.
type ProviderClientStub struct {
	CreateFn func(context.Context, model.ProviderOrderRequest) (model.ProviderOrder, error)
	Requests []model.ProviderOrderRequest
}

func (s *ProviderClientStub) CreateOrder(ctx context.Context, req model.ProviderOrderRequest) (model.ProviderOrder, error) {
	s.Requests = append(s.Requests, req)
	if s.CreateFn != nil {
		return s.CreateFn(ctx, req)
	}
	return json.RawMessage(`{"id":"order_stub"}`), nil
}

// MediaStoreStub records calls that reached the media host.
type MediaStoreStub struct {
	UploadFn func(context.Context, model.ImageUpload) (*model.StoredImage, error)
	DeleteFn func(context.Context, string) error
	Uploads  int
	Deletes  []string
}

func (s *MediaStoreStub) Upload(ctx context.Context, img model.ImageUpload) (*model.StoredImage, error) {
	s.Uploads++
	if s.UploadFn != nil {
		return s.UploadFn(ctx, img)
	}
	return &model.StoredImage{URL: "https://cdn.example.com/ecomlite/" + img.Filename, PublicID: "ecomlite/" + img.Filename}, nil
}

func (s *MediaStoreStub) Delete(ctx context.Context, publicID string) error {
	s.Deletes = append(s.Deletes, publicID)
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, publicID)
	}
	return nil
}
