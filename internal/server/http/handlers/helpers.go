package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/ecomlite/internal/domain/errors"
	"github.com/polkiloo/ecomlite/internal/domain/model"
	"github.com/polkiloo/ecomlite/internal/server/http/dto"
	"github.com/polkiloo/ecomlite/internal/server/http/middleware"
)

// CurrentUser extracts the authenticated user from context.
func CurrentUser(c *gin.Context) *model.User {
	val, ok := c.Get(middleware.UserContextKey)
	if !ok {
		return nil
	}
	user, _ := val.(*model.User)
	return user
}

// bindJSON decodes the request body and reports a 400 on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		_ = c.Error(middleware.WithMessage(domainErrors.ErrInvalidInput, "Invalid request body"))
		return false
	}
	return true
}

// pathID parses the :id route parameter. Malformed ids are reported as missing resources.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		_ = c.Error(middleware.WithMessage(domainErrors.ErrNotFound, "Resource not found"))
		return 0, false
	}
	return id, true
}

// notFoundAs replaces the generic not found message with a resource specific one.
func notFoundAs(err error, message string) error {
	if errors.Is(err, domainErrors.ErrNotFound) {
		return middleware.WithMessage(err, message)
	}
	return err
}

func toUserResponse(u *model.User, token string) dto.UserResponse {
	return dto.UserResponse{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		IsAdmin: u.IsAdmin,
		Token:   token,
	}
}
