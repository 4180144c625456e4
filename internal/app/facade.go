package app

import (
	"context"

	"github.com/polkiloo/ecomlite/internal/domain/model"
	"github.com/polkiloo/ecomlite/internal/pkg/payment"
	"github.com/polkiloo/ecomlite/internal/usecase"
)

// ShopFacade is the single entry point the HTTP layer talks to.
type ShopFacade struct {
	auth     *usecase.AuthUseCase
	products *usecase.ProductUseCase
	orders   *usecase.OrderUseCase
	payments *usecase.PaymentUseCase
	media    *usecase.MediaUseCase
}

func NewShopFacade(auth *usecase.AuthUseCase, products *usecase.ProductUseCase, orders *usecase.OrderUseCase, payments *usecase.PaymentUseCase, media *usecase.MediaUseCase) *ShopFacade {
	return &ShopFacade{auth: auth, products: products, orders: orders, payments: payments, media: media}
}

func (f *ShopFacade) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	return f.auth.Register(ctx, name, email, password)
}

func (f *ShopFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *ShopFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *ShopFacade) Profile(ctx context.Context, userID int64) (*model.User, error) {
	return f.auth.GetByID(ctx, userID)
}

func (f *ShopFacade) UpdateProfile(ctx context.Context, userID int64, changes model.ProfileUpdate) (*model.User, string, error) {
	return f.auth.UpdateProfile(ctx, userID, changes)
}

func (f *ShopFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.products.List(ctx)
}

func (f *ShopFacade) Product(ctx context.Context, id int64) (*model.Product, error) {
	return f.products.Get(ctx, id)
}

func (f *ShopFacade) CreateProduct(ctx context.Context, adminID int64, p model.Product) (*model.Product, error) {
	return f.products.Create(ctx, adminID, p)
}

func (f *ShopFacade) UpdateProduct(ctx context.Context, id int64, p model.Product) (*model.Product, error) {
	return f.products.Update(ctx, id, p)
}

func (f *ShopFacade) DeleteProduct(ctx context.Context, id int64) error {
	return f.products.Delete(ctx, id)
}

func (f *ShopFacade) PlaceOrder(ctx context.Context, userID int64, order model.Order) (*model.Order, error) {
	return f.orders.Place(ctx, userID, order)
}

func (f *ShopFacade) MyOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *ShopFacade) Order(ctx context.Context, requester *model.User, id int64) (*model.Order, error) {
	return f.orders.Get(ctx, requester, id)
}

func (f *ShopFacade) AllOrders(ctx context.Context) ([]model.Order, error) {
	return f.orders.ListAll(ctx)
}

func (f *ShopFacade) DeliverOrder(ctx context.Context, id int64) (*model.Order, error) {
	return f.orders.MarkDelivered(ctx, id)
}

func (f *ShopFacade) CreatePaymentOrder(ctx context.Context, amount float64, currency, receipt string, notes map[string]any) (model.ProviderOrder, error) {
	return f.payments.CreateProviderOrder(ctx, amount, currency, receipt, notes)
}

func (f *ShopFacade) VerifyPayment(ctx context.Context, c payment.Confirmation) (*model.Order, error) {
	return f.payments.Verify(ctx, c)
}

func (f *ShopFacade) UpdatePaymentStatus(ctx context.Context, c payment.Confirmation) (*model.Order, error) {
	return f.payments.UpdateStatus(ctx, c)
}

func (f *ShopFacade) PaymentKey() string {
	return f.payments.Key()
}

func (f *ShopFacade) PaymentLink() string {
	return f.payments.Link()
}

func (f *ShopFacade) UploadImage(ctx context.Context, img model.ImageUpload) (*model.StoredImage, error) {
	return f.media.Upload(ctx, img)
}

func (f *ShopFacade) DeleteImage(ctx context.Context, publicID string) error {
	return f.media.Delete(ctx, publicID)
}
