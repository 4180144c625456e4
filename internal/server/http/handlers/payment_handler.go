package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/ecomlite/internal/domain/errors"
	"github.com/polkiloo/ecomlite/internal/pkg/payment"
	"github.com/polkiloo/ecomlite/internal/server/http/dto"
	"github.com/polkiloo/ecomlite/internal/server/http/middleware"
)

// PaymentHandler exposes the payment provider flows.
type PaymentHandler struct {
	facade PaymentFacade
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(facade PaymentFacade) *PaymentHandler {
	return &PaymentHandler{facade: facade}
}

// CreateOrder handles POST /api/payment/create-order. The provider's order
// object is relayed unchanged.
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var req dto.CreatePaymentOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.facade.CreatePaymentOrder(c.Request.Context(), req.Amount, req.Currency, req.Receipt, req.Notes)
	if err != nil {
		if errors.Is(err, domainErrors.ErrUpstream) {
			err = middleware.WithMessage(err, "Error creating payment order")
		}
		_ = c.Error(err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", order)
}

// Verify handles POST /api/payment/verify.
func (h *PaymentHandler) Verify(c *gin.Context) {
	var req dto.VerifyPaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.facade.VerifyPayment(c.Request.Context(), payment.Confirmation{
		OrderID:         req.OrderID,
		ProviderOrderID: req.RazorpayOrderID,
		PaymentID:       req.RazorpayPaymentID,
		Signature:       req.RazorpaySignature,
	})
	if err != nil {
		_ = c.Error(notFoundAs(err, "Order not found"))
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

// UpdateStatus handles POST /api/payment/update-status.
func (h *PaymentHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdatePaymentStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.facade.UpdatePaymentStatus(c.Request.Context(), payment.Confirmation{
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Status:    req.Status,
	})
	if err != nil {
		_ = c.Error(notFoundAs(err, "Order not found"))
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

// Key handles GET /api/payment/key.
func (h *PaymentHandler) Key(c *gin.Context) {
	c.JSON(http.StatusOK, dto.PaymentKeyResponse{Key: h.facade.PaymentKey()})
}

// Link handles GET /api/payment/link.
func (h *PaymentHandler) Link(c *gin.Context) {
	c.JSON(http.StatusOK, dto.PaymentLinkResponse{PaymentLink: h.facade.PaymentLink()})
}
