package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/ecomlite/internal/domain/errors"
	"github.com/polkiloo/ecomlite/internal/domain/model"
	pkgAuth "github.com/polkiloo/ecomlite/internal/pkg/auth"
)

const (
	// UserContextKey is a gin context key for the authenticated *model.User.
	UserContextKey = "user"
	authCookieName = "ecomlite_token"
)

// Authenticator resolves a bearer token to the user it was issued for.
type Authenticator interface {
	ParseToken(token string) (int64, error)
	Profile(ctx context.Context, userID int64) (*model.User, error)
}

// AuthRequired ensures user is authenticated before accessing handler.
func AuthRequired(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			abortWithError(c, WithMessage(domainErrors.ErrUnauthorized, "Not authorized, no token"))
			return
		}

		userID, err := auth.ParseToken(token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				abortWithError(c, WithMessage(domainErrors.ErrUnauthorized, "Not authorized, token failed"))
				return
			}
			abortWithError(c, err)
			return
		}

		user, err := auth.Profile(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				abortWithError(c, WithMessage(domainErrors.ErrUnauthorized, "Not authorized, token failed"))
				return
			}
			abortWithError(c, err)
			return
		}

		c.Set(UserContextKey, user)
		c.Next()
	}
}

// AdminOnly lets through users carrying the admin flag. It must run after AuthRequired.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		val, _ := c.Get(UserContextKey)
		user, _ := val.(*model.User)
		if user == nil || !user.IsAdmin {
			abortWithError(c, domainErrors.ErrForbidden)
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes auth token cookie to response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}

func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
