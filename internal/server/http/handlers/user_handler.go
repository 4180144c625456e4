package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/ecomlite/internal/domain/errors"
	"github.com/polkiloo/ecomlite/internal/domain/model"
	"github.com/polkiloo/ecomlite/internal/server/http/dto"
	"github.com/polkiloo/ecomlite/internal/server/http/middleware"
)

// UserHandler processes registration, login and profile management.
type UserHandler struct {
	facade AuthFacade
}

// NewUserHandler creates UserHandler instance.
func NewUserHandler(facade AuthFacade) *UserHandler {
	return &UserHandler{facade: facade}
}

// Register handles POST /api/users.
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	user, token, err := h.facade.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			_ = c.Error(middleware.WithMessage(err, "User already exists"))
		case errors.Is(err, domainErrors.ErrInvalidInput):
			_ = c.Error(middleware.WithMessage(err, "Invalid user data"))
		default:
			_ = c.Error(err)
		}
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusCreated, toUserResponse(user, token))
}

// Login handles POST /api/users/login.
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, token, err := h.facade.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, toUserResponse(user, token))
}

// Profile handles GET /api/users/profile.
func (h *UserHandler) Profile(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		_ = c.Error(domainErrors.ErrUnauthorized)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user, ""))
}

// UpdateProfile handles PUT /api/users/profile.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	current := CurrentUser(c)
	if current == nil {
		_ = c.Error(domainErrors.ErrUnauthorized)
		return
	}

	var req dto.ProfileUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	user, token, err := h.facade.UpdateProfile(c.Request.Context(), current.ID, model.ProfileUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			err = middleware.WithMessage(err, "Email already in use")
		}
		_ = c.Error(err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, toUserResponse(user, token))
}
