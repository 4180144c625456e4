package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/ecomlite/internal/domain/model"
	"github.com/polkiloo/ecomlite/internal/server/http/dto"
)

// ProductHandler serves the catalogue.
type ProductHandler struct {
	facade ProductFacade
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(facade ProductFacade) *ProductHandler {
	return &ProductHandler{facade: facade}
}

// List handles GET /api/products.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.facade.Products(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	response := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		response = append(response, toProductResponse(&products[i]))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	product, err := h.facade.Product(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(productError(err))
		return
	}
	c.JSON(http.StatusOK, toProductResponse(product))
}

// Create handles POST /api/products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.ProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.facade.CreateProduct(c.Request.Context(), CurrentUser(c).ID, fromProductRequest(req))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, toProductResponse(product))
}

// Update handles PUT /api/products/:id.
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.ProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.facade.UpdateProduct(c.Request.Context(), id, fromProductRequest(req))
	if err != nil {
		_ = c.Error(productError(err))
		return
	}
	c.JSON(http.StatusOK, toProductResponse(product))
}

// Delete handles DELETE /api/products/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.facade.DeleteProduct(c.Request.Context(), id); err != nil {
		_ = c.Error(productError(err))
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Product removed"})
}

func productError(err error) error {
	return notFoundAs(err, "Product not found")
}

func fromProductRequest(req dto.ProductRequest) model.Product {
	return model.Product{
		Name:         req.Name,
		Image:        req.Image,
		Brand:        req.Brand,
		Category:     req.Category,
		Description:  req.Description,
		Price:        req.Price,
		CountInStock: req.CountInStock,
	}
}

func toProductResponse(p *model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:           p.ID,
		UserID:       p.UserID,
		Name:         p.Name,
		Image:        p.Image,
		Brand:        p.Brand,
		Category:     p.Category,
		Description:  p.Description,
		Price:        p.Price,
		CountInStock: p.CountInStock,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
