package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/ecomlite/internal/domain/model"
	"github.com/polkiloo/ecomlite/internal/server/http/dto"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.OrderRequest
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), CurrentUser(c).ID, model.Order{
		Items:           req.OrderItems,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		ItemsPrice:      req.ItemsPrice,
		TaxPrice:        req.TaxPrice,
		ShippingPrice:   req.ShippingPrice,
		TotalPrice:      req.TotalPrice,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(order))
}

// Mine handles GET /api/orders/myorders.
func (h *OrderHandler) Mine(c *gin.Context) {
	orders, err := h.facade.MyOrders(c.Request.Context(), CurrentUser(c).ID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	order, err := h.facade.Order(c.Request.Context(), CurrentUser(c), id)
	if err != nil {
		_ = c.Error(notFoundAs(err, "Order not found"))
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

// List handles GET /api/orders for administrators.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.AllOrders(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// Deliver handles PUT /api/orders/:id/deliver.
func (h *OrderHandler) Deliver(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	order, err := h.facade.DeliverOrder(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(notFoundAs(err, "Order not found"))
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

func toOrderResponses(orders []model.Order) []dto.OrderResponse {
	response := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		response = append(response, toOrderResponse(&orders[i]))
	}
	return response
}

func toOrderResponse(order *model.Order) dto.OrderResponse {
	items := order.Items
	if items == nil {
		items = []model.OrderItem{}
	}
	return dto.OrderResponse{
		ID:              order.ID,
		UserID:          order.UserID,
		OrderItems:      items,
		ShippingAddress: order.ShippingAddress,
		PaymentMethod:   order.PaymentMethod,
		ItemsPrice:      order.ItemsPrice,
		TaxPrice:        order.TaxPrice,
		ShippingPrice:   order.ShippingPrice,
		TotalPrice:      order.TotalPrice,
		IsPaid:          order.IsPaid,
		PaidAt:          order.PaidAt,
		PaymentResult:   order.PaymentResult,
		IsDelivered:     order.IsDelivered,
		DeliveredAt:     order.DeliveredAt,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}
