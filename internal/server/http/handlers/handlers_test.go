package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"reflect"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/ecomlite/internal/domain/errors"
	"github.com/polkiloo/ecomlite/internal/domain/model"
	"github.com/polkiloo/ecomlite/internal/pkg/payment"
	"github.com/polkiloo/ecomlite/internal/server/http/dto"
	"github.com/polkiloo/ecomlite/internal/server/http/middleware"
	testhelpers "github.com/polkiloo/ecomlite/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

func performRequest(t *testing.T, method, route, path string, handler gin.HandlerFunc, user *model.User, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Use(middleware.ErrorResponder(slog.New(slog.NewTextHandler(io.Discard, nil)), false))
	router.Handle(method, route, func(c *gin.Context) {
		if user != nil {
			c.Set(middleware.UserContextKey, user)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error body %q: %v", w.Body.String(), err)
	}
	return resp
}

func customer() *model.User {
	return &model.User{ID: 2, Name: "Ann", Email: "ann@example.com"}
}

func admin() *model.User {
	return &model.User{ID: 1, Name: "Root", Email: "root@example.com", IsAdmin: true}
}

func TestCurrentUser(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentUser(c); got != nil {
		t.Fatalf("expected nil when not set, got %+v", got)
	}

	c.Set(middleware.UserContextKey, customer())
	if got := CurrentUser(c); got == nil || got.ID != 2 {
		t.Fatalf("unexpected user %+v", got)
	}
}

func TestUserHandlerRegister(t *testing.T) {
	name := "Ann"
	email := testhelpers.RandomEmail()
	password := testhelpers.RandomASCIIString(16, 32)
	body, _ := json.Marshal(dto.RegisterRequest{Name: name, Email: email, Password: password})

	handler := NewUserHandler(testhelpers.AuthFacadeStub{RegisterFn: func(_ context.Context, gotName, gotEmail, gotPassword string) (*model.User, string, error) {
		if gotName != name || gotEmail != email || gotPassword != password {
			t.Fatalf("unexpected data passed to facade: %q %q %q", gotName, gotEmail, gotPassword)
		}
		return &model.User{ID: 9, Name: name, Email: email}, "session-token", nil
	}})

	resp := performRequest(t, http.MethodPost, "/api/users", "/api/users", handler.Register, nil, body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}

	var decoded dto.UserResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.ID != 9 || decoded.Token != "session-token" || decoded.IsAdmin {
		t.Fatalf("unexpected response %+v", decoded)
	}

	result := resp.Result()
	t.Cleanup(func() {
		_ = result.Body.Close()
	})
	foundCookie := false
	for _, cookie := range result.Cookies() {
		if cookie.Name == "ecomlite_token" && cookie.Value == "session-token" {
			foundCookie = true
		}
	}
	if !foundCookie {
		t.Fatal("expected auth cookie named ecomlite_token")
	}
}

func TestUserHandlerRegisterFailures(t *testing.T) {
	tests := []struct {
		name    string
		facade  testhelpers.AuthFacadeStub
		body    []byte
		status  int
		message string
	}{
		{name: "bad json", body: []byte("not json"), status: http.StatusBadRequest, message: "Invalid request body"},
		{name: "invalid", body: []byte(`{"name":"","email":"x","password":""}`), facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string, string) (*model.User, string, error) {
			return nil, "", domainErrors.ErrInvalidInput
		}}, status: http.StatusBadRequest, message: "Invalid user data"},
		{name: "already exists", body: []byte(`{"name":"a","email":"a@b.io","password":"b"}`), facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string, string) (*model.User, string, error) {
			return nil, "", domainErrors.ErrAlreadyExists
		}}, status: http.StatusConflict, message: "User already exists"},
		{name: "internal", body: []byte(`{"name":"a","email":"a@b.io","password":"b"}`), facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string, string) (*model.User, string, error) {
			return nil, "", errors.New("boom")
		}}, status: http.StatusInternalServerError, message: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/api/users", "/api/users", NewUserHandler(tt.facade).Register, nil, tt.body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
			if got := decodeError(t, resp).Message; got != tt.message {
				t.Fatalf("expected message %q, got %q", tt.message, got)
			}
		})
	}
}

func TestUserHandlerLogin(t *testing.T) {
	body, _ := json.Marshal(dto.LoginRequest{Email: "ann@example.com", Password: "pass"})
	resp := performRequest(t, http.MethodPost, "/login", "/login", NewUserHandler(testhelpers.AuthFacadeStub{}).Login, nil, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if resp.Header().Get("Authorization") != "Bearer token" {
		t.Fatalf("unexpected authorization header %q", resp.Header().Get("Authorization"))
	}

	handler := NewUserHandler(testhelpers.AuthFacadeStub{AuthenticateFn: func(context.Context, string, string) (*model.User, string, error) {
		return nil, "", domainErrors.ErrInvalidCredentials
	}})
	resp = performRequest(t, http.MethodPost, "/login", "/login", handler.Login, nil, body, jsonHeaders)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
	if got := decodeError(t, resp).Message; got != "Invalid email or password" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestUserHandlerProfile(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/profile", "/profile", NewUserHandler(testhelpers.AuthFacadeStub{}).Profile, customer(), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded dto.UserResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.Email != "ann@example.com" || decoded.Token != "" {
		t.Fatalf("unexpected profile %+v", decoded)
	}

	resp = performRequest(t, http.MethodGet, "/profile", "/profile", NewUserHandler(testhelpers.AuthFacadeStub{}).Profile, nil, nil, nil)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
}

func TestUserHandlerUpdateProfile(t *testing.T) {
	var got model.ProfileUpdate
	handler := NewUserHandler(testhelpers.AuthFacadeStub{UpdateProfileFn: func(_ context.Context, id int64, changes model.ProfileUpdate) (*model.User, string, error) {
		got = changes
		return &model.User{ID: id, Name: *changes.Name, Email: "ann@example.com"}, "fresh", nil
	}})

	resp := performRequest(t, http.MethodPut, "/profile", "/profile", handler.UpdateProfile, customer(), []byte(`{"name":"Anna"}`), jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if got.Name == nil || *got.Name != "Anna" || got.Email != nil || got.Password != nil {
		t.Fatalf("unexpected changes passed to facade: %+v", got)
	}
	var decoded dto.UserResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.Name != "Anna" || decoded.Token != "fresh" {
		t.Fatalf("unexpected response %+v", decoded)
	}

	handler = NewUserHandler(testhelpers.AuthFacadeStub{UpdateProfileFn: func(context.Context, int64, model.ProfileUpdate) (*model.User, string, error) {
		return nil, "", domainErrors.ErrAlreadyExists
	}})
	resp = performRequest(t, http.MethodPut, "/profile", "/profile", handler.UpdateProfile, customer(), []byte(`{"email":"taken@example.com"}`), jsonHeaders)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", resp.Code)
	}
}

func TestProductHandlerList(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/products", "/products", NewProductHandler(testhelpers.ProductFacadeStub{}).List, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded []dto.ProductResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(decoded) != 1 || decoded[0].Name != "Phone" {
		t.Fatalf("unexpected products %+v", decoded)
	}
}

func TestProductHandlerGet(t *testing.T) {
	handler := NewProductHandler(testhelpers.ProductFacadeStub{GetFn: func(_ context.Context, id int64) (*model.Product, error) {
		if id == 5 {
			return &model.Product{ID: 5, Name: "Lamp"}, nil
		}
		return nil, domainErrors.ErrNotFound
	}})

	resp := performRequest(t, http.MethodGet, "/products/:id", "/products/5", handler.Get, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodGet, "/products/:id", "/products/6", handler.Get, nil, nil, nil)
	if resp.Code != http.StatusNotFound || decodeError(t, resp).Message != "Product not found" {
		t.Fatalf("unexpected response %d %s", resp.Code, resp.Body.String())
	}

	resp = performRequest(t, http.MethodGet, "/products/:id", "/products/abc", handler.Get, nil, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for malformed id, got %d", resp.Code)
	}
}

func TestProductHandlerCreateUpdateDelete(t *testing.T) {
	handler := NewProductHandler(testhelpers.ProductFacadeStub{})
	body := []byte(`{"name":"Lamp","price":12.5,"countInStock":3}`)

	resp := performRequest(t, http.MethodPost, "/products", "/products", handler.Create, admin(), body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	var created dto.ProductResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if created.UserID != 1 || created.Price != 12.5 || created.CountInStock != 3 {
		t.Fatalf("unexpected product %+v", created)
	}

	resp = performRequest(t, http.MethodPut, "/products/:id", "/products/4", handler.Update, admin(), body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodDelete, "/products/:id", "/products/4", handler.Delete, admin(), nil, nil)
	if resp.Code != http.StatusOK || !bytes.Contains(resp.Body.Bytes(), []byte("Product removed")) {
		t.Fatalf("unexpected delete response %d %s", resp.Code, resp.Body.String())
	}

	failing := NewProductHandler(testhelpers.ProductFacadeStub{CreateFn: func(context.Context, int64, model.Product) (*model.Product, error) {
		return nil, domainErrors.ErrInvalidInput
	}})
	resp = performRequest(t, http.MethodPost, "/products", "/products", failing.Create, admin(), []byte(`{"name":"x","price":-1}`), jsonHeaders)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestOrderHandlerCreate(t *testing.T) {
	body := []byte(`{"orderItems":[{"product":1,"name":"Phone","qty":2,"image":"/p.png","price":10}],"shippingAddress":{"address":"1 Main","city":"Pune","postalCode":"411001","country":"IN"},"paymentMethod":"Razorpay","itemsPrice":20,"taxPrice":0,"shippingPrice":0,"totalPrice":20}`)
	var placed model.Order
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{PlaceFn: func(_ context.Context, userID int64, order model.Order) (*model.Order, error) {
		placed = order
		order.ID, order.UserID = 11, userID
		return &order, nil
	}})

	resp := performRequest(t, http.MethodPost, "/orders", "/orders", handler.Create, customer(), body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	if len(placed.Items) != 1 || placed.Items[0].Quantity != 2 || placed.ShippingAddress.City != "Pune" {
		t.Fatalf("unexpected order passed to facade %+v", placed)
	}
	var decoded dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.ID != 11 || decoded.UserID != 2 || decoded.IsPaid {
		t.Fatalf("unexpected response %+v", decoded)
	}

	failing := NewOrderHandler(testhelpers.OrderFacadeStub{PlaceFn: func(context.Context, int64, model.Order) (*model.Order, error) {
		return nil, domainErrors.ErrNoOrderItems
	}})
	resp = performRequest(t, http.MethodPost, "/orders", "/orders", failing.Create, customer(), []byte(`{"orderItems":[]}`), jsonHeaders)
	if resp.Code != http.StatusBadRequest || decodeError(t, resp).Message != "No order items" {
		t.Fatalf("unexpected response %d %s", resp.Code, resp.Body.String())
	}
}

func TestOrderHandlerReads(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{GetFn: func(_ context.Context, requester *model.User, id int64) (*model.Order, error) {
		if requester.ID != 2 {
			t.Fatalf("unexpected requester %+v", requester)
		}
		if id == 3 {
			return &model.Order{ID: 3, UserID: 2}, nil
		}
		return nil, domainErrors.ErrNotFound
	}})

	resp := performRequest(t, http.MethodGet, "/orders/:id", "/orders/3", handler.Get, customer(), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	resp = performRequest(t, http.MethodGet, "/orders/:id", "/orders/4", handler.Get, customer(), nil, nil)
	if resp.Code != http.StatusNotFound || decodeError(t, resp).Message != "Order not found" {
		t.Fatalf("unexpected response %d %s", resp.Code, resp.Body.String())
	}

	resp = performRequest(t, http.MethodGet, "/orders/myorders", "/orders/myorders", handler.Mine, customer(), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodGet, "/orders", "/orders", handler.List, admin(), nil, nil)
	var all []dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &all); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(all))
	}
}

func TestOrderHandlerDeliver(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{})
	resp := performRequest(t, http.MethodPut, "/orders/:id/deliver", "/orders/8/deliver", handler.Deliver, admin(), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.ID != 8 || !decoded.IsDelivered {
		t.Fatalf("unexpected response %+v", decoded)
	}
}

func TestPaymentHandlerCreateOrder(t *testing.T) {
	var gotAmount float64
	var gotCurrency string
	handler := NewPaymentHandler(testhelpers.PaymentFacadeStub{CreateFn: func(_ context.Context, amount float64, currency, _ string, _ map[string]any) (model.ProviderOrder, error) {
		gotAmount, gotCurrency = amount, currency
		return json.RawMessage(`{"id":"order_9","amount":49950,"currency":"INR","status":"created"}`), nil
	}})

	resp := performRequest(t, http.MethodPost, "/create-order", "/create-order", handler.CreateOrder, customer(), []byte(`{"amount":499.50,"receipt":"r1"}`), jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if resp.Body.String() != `{"id":"order_9","amount":49950,"currency":"INR","status":"created"}` {
		t.Fatalf("provider order must be relayed verbatim, got %s", resp.Body.String())
	}
	if gotAmount != 499.50 || gotCurrency != "" {
		t.Fatalf("unexpected facade input %v %q", gotAmount, gotCurrency)
	}

	failing := NewPaymentHandler(testhelpers.PaymentFacadeStub{CreateFn: func(context.Context, float64, string, string, map[string]any) (model.ProviderOrder, error) {
		return nil, fmt.Errorf("create order: %w", domainErrors.ErrUpstream)
	}})
	resp = performRequest(t, http.MethodPost, "/create-order", "/create-order", failing.CreateOrder, customer(), []byte(`{"amount":10}`), jsonHeaders)
	if resp.Code != http.StatusInternalServerError || decodeError(t, resp).Message != "Error creating payment order" {
		t.Fatalf("unexpected response %d %s", resp.Code, resp.Body.String())
	}
}

func TestPaymentHandlerCreateOrderForwardsFreeFormNotes(t *testing.T) {
	var gotNotes map[string]any
	handler := NewPaymentHandler(testhelpers.PaymentFacadeStub{CreateFn: func(_ context.Context, _ float64, _, _ string, notes map[string]any) (model.ProviderOrder, error) {
		gotNotes = notes
		return json.RawMessage(`{"id":"order_10"}`), nil
	}})

	body := []byte(`{"amount":20,"receipt":"r2","notes":{"orderId":"7","qty":2,"gift":true,"meta":{"source":"web"}}}`)
	resp := performRequest(t, http.MethodPost, "/create-order", "/create-order", handler.CreateOrder, customer(), body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d (%s)", resp.Code, resp.Body.String())
	}

	want := map[string]any{"orderId": "7", "qty": float64(2), "gift": true, "meta": map[string]any{"source": "web"}}
	if !reflect.DeepEqual(gotNotes, want) {
		t.Fatalf("unexpected notes %#v", gotNotes)
	}
}

func TestPaymentHandlerVerify(t *testing.T) {
	var got payment.Confirmation
	handler := NewPaymentHandler(testhelpers.PaymentFacadeStub{VerifyFn: func(_ context.Context, c payment.Confirmation) (*model.Order, error) {
		got = c
		switch c.OrderID {
		case 7:
			return &model.Order{ID: 7, IsPaid: true}, nil
		case 8:
			return nil, domainErrors.ErrNotFound
		}
		return nil, domainErrors.ErrPaymentVerification
	}})

	body := []byte(`{"razorpay_order_id":"order_A","razorpay_payment_id":"pay_B","razorpay_signature":"sig","orderId":7}`)
	resp := performRequest(t, http.MethodPost, "/verify", "/verify", handler.Verify, customer(), body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	want := payment.Confirmation{OrderID: 7, ProviderOrderID: "order_A", PaymentID: "pay_B", Signature: "sig"}
	if got != want {
		t.Fatalf("unexpected confirmation %+v", got)
	}

	resp = performRequest(t, http.MethodPost, "/verify", "/verify", handler.Verify, customer(), []byte(`{"orderId":8}`), jsonHeaders)
	if resp.Code != http.StatusNotFound || decodeError(t, resp).Message != "Order not found" {
		t.Fatalf("unexpected response %d %s", resp.Code, resp.Body.String())
	}

	resp = performRequest(t, http.MethodPost, "/verify", "/verify", handler.Verify, customer(), []byte(`{"orderId":9}`), jsonHeaders)
	if resp.Code != http.StatusBadRequest || decodeError(t, resp).Message != "Payment verification failed" {
		t.Fatalf("unexpected response %d %s", resp.Code, resp.Body.String())
	}
}

func TestPaymentHandlerUpdateStatus(t *testing.T) {
	handler := NewPaymentHandler(testhelpers.PaymentFacadeStub{})
	resp := performRequest(t, http.MethodPost, "/update-status", "/update-status", handler.UpdateStatus, customer(), []byte(`{"orderId":3,"paymentId":"pay_1","status":"success"}`), jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.ID != 3 || !decoded.IsPaid {
		t.Fatalf("unexpected response %+v", decoded)
	}
}

func TestPaymentHandlerKeyAndLink(t *testing.T) {
	handler := NewPaymentHandler(testhelpers.PaymentFacadeStub{Key: "rzp_key", Link: "https://pay.example.com"})

	resp := performRequest(t, http.MethodGet, "/key", "/key", handler.Key, nil, nil, nil)
	if resp.Body.String() != `{"key":"rzp_key"}` {
		t.Fatalf("unexpected key body %s", resp.Body.String())
	}
	resp = performRequest(t, http.MethodGet, "/link", "/link", handler.Link, customer(), nil, nil)
	if resp.Body.String() != `{"paymentLink":"https://pay.example.com"}` {
		t.Fatalf("unexpected link body %s", resp.Body.String())
	}
}

func multipartImage(t *testing.T, field, filename, contentType string, data []byte) ([]byte, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return buf.Bytes(), w.FormDataContentType()
}

func TestUploadHandlerUpload(t *testing.T) {
	var got model.ImageUpload
	handler := NewUploadHandler(testhelpers.MediaFacadeStub{UploadFn: func(_ context.Context, img model.ImageUpload) (*model.StoredImage, error) {
		got = img
		return &model.StoredImage{URL: "https://cdn.example.com/ecomlite/a.png", PublicID: "ecomlite/a.png"}, nil
	}})

	body, contentType := multipartImage(t, "image", "a.png", "image/png", []byte("png-bytes"))
	resp := performRequest(t, http.MethodPost, "/upload", "/upload", handler.Upload, admin(), body, map[string]string{"Content-Type": contentType})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var decoded dto.UploadResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.PublicID != "ecomlite/a.png" || decoded.Message != "Image uploaded successfully" {
		t.Fatalf("unexpected response %+v", decoded)
	}
	if got.Filename != "a.png" || got.ContentType != "image/png" || string(got.Data) != "png-bytes" {
		t.Fatalf("unexpected upload passed to facade %+v", got)
	}
}

func TestUploadHandlerRejections(t *testing.T) {
	calls := 0
	handler := NewUploadHandler(testhelpers.MediaFacadeStub{UploadFn: func(context.Context, model.ImageUpload) (*model.StoredImage, error) {
		calls++
		return &model.StoredImage{}, nil
	}})

	pdf, pdfType := multipartImage(t, "image", "a.pdf", "application/pdf", []byte("%PDF"))
	big, bigType := multipartImage(t, "image", "big.png", "image/png", bytes.Repeat([]byte{1}, model.MaxImageSize+1))
	wrongField, wrongType := multipartImage(t, "file", "a.png", "image/png", []byte("png"))

	tests := []struct {
		name        string
		body        []byte
		contentType string
		message     string
	}{
		{name: "missing", body: wrongField, contentType: wrongType, message: "Please upload a file"},
		{name: "not multipart", body: []byte("{}"), contentType: "application/json", message: "Please upload a file"},
		{name: "pdf", body: pdf, contentType: pdfType, message: "Not an image! Please upload only images."},
		{name: "too large", body: big, contentType: bigType, message: "File too large"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/upload", "/upload", handler.Upload, admin(), tt.body, map[string]string{"Content-Type": tt.contentType})
			if resp.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", resp.Code)
			}
			if got := decodeError(t, resp).Message; got != tt.message {
				t.Fatalf("expected message %q, got %q", tt.message, got)
			}
		})
	}
	if calls != 0 {
		t.Fatalf("rejected uploads must not reach the facade, got %d calls", calls)
	}
}

func TestUploadHandlerDelete(t *testing.T) {
	var deleted string
	handler := NewUploadHandler(testhelpers.MediaFacadeStub{DeleteFn: func(_ context.Context, publicID string) error {
		deleted = publicID
		if publicID == "/ecomlite/missing.png" {
			return domainErrors.ErrMediaNotFound
		}
		return nil
	}})

	resp := performRequest(t, http.MethodDelete, "/upload/*publicId", "/upload/ecomlite/a.png", handler.Delete, admin(), nil, nil)
	if resp.Code != http.StatusOK || !bytes.Contains(resp.Body.Bytes(), []byte("Image deleted successfully")) {
		t.Fatalf("unexpected response %d %s", resp.Code, resp.Body.String())
	}
	if deleted != "/ecomlite/a.png" {
		t.Fatalf("unexpected public id %q", deleted)
	}

	resp = performRequest(t, http.MethodDelete, "/upload/*publicId", "/upload/ecomlite/missing.png", handler.Delete, admin(), nil, nil)
	if resp.Code != http.StatusBadRequest || decodeError(t, resp).Message != "Failed to delete image" {
		t.Fatalf("unexpected response %d %s", resp.Code, resp.Body.String())
	}

	failing := NewUploadHandler(testhelpers.MediaFacadeStub{DeleteFn: func(context.Context, string) error {
		return fmt.Errorf("delete object: %w", domainErrors.ErrUpstream)
	}})
	resp = performRequest(t, http.MethodDelete, "/upload/*publicId", "/upload/ecomlite/a.png", failing.Delete, admin(), nil, nil)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.Code)
	}
}

func TestHealth(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/health", "/health", Health, nil, nil, nil)
	if resp.Code != http.StatusOK || resp.Body.String() != `{"status":"ok","message":"Server is running"}` {
		t.Fatalf("unexpected response %d %s", resp.Code, resp.Body.String())
	}
}
