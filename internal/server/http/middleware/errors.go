package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/ecomlite/internal/domain/errors"
	"github.com/polkiloo/ecomlite/internal/server/http/dto"
)

type publicError struct {
	err     error
	message string
}

func (e *publicError) Error() string { return e.message + ": " + e.err.Error() }

func (e *publicError) Unwrap() error { return e.err }

// WithMessage attaches the message shown to clients while keeping err matchable.
func WithMessage(err error, message string) error {
	return &publicError{err: err, message: message}
}

type errorClass struct {
	target  error
	status  int
	message string
}

var errorClasses = []errorClass{
	{domainErrors.ErrUnauthorized, http.StatusUnauthorized, "Not authorized"},
	{domainErrors.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{domainErrors.ErrForbidden, http.StatusForbidden, "Not authorized as an admin"},
	{domainErrors.ErrNotFound, http.StatusNotFound, "Not found"},
	{domainErrors.ErrAlreadyExists, http.StatusConflict, "Already exists"},
	{domainErrors.ErrInvalidInput, http.StatusBadRequest, "Invalid input"},
	{domainErrors.ErrInvalidAmount, http.StatusBadRequest, "Invalid amount"},
	{domainErrors.ErrNoOrderItems, http.StatusBadRequest, "No order items"},
	{domainErrors.ErrPaymentVerification, http.StatusBadRequest, "Payment verification failed"},
	{domainErrors.ErrNoFile, http.StatusBadRequest, "Please upload a file"},
	{domainErrors.ErrNotAnImage, http.StatusBadRequest, "Not an image! Please upload only images."},
	{domainErrors.ErrFileTooLarge, http.StatusBadRequest, "File too large"},
	{domainErrors.ErrMediaNotFound, http.StatusBadRequest, "Failed to delete image"},
	{domainErrors.ErrRateLimited, http.StatusTooManyRequests, "Too many requests, please slow down"},
	{domainErrors.ErrFeatureMissing, http.StatusServiceUnavailable, "Feature is not configured"},
	{domainErrors.ErrUpstream, http.StatusInternalServerError, "Upstream service failure"},
}

// ErrorResponder turns the last error a handler pushed with c.Error into a
// JSON body. The error chain is exposed as stack outside production.
func ErrorResponder(logger *slog.Logger, production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, message := classify(err, production)

		if status >= http.StatusInternalServerError {
			logger.Error("request failed",
				slog.String("method", c.Request.Method),
				slog.String("path", c.Request.URL.Path),
				slog.String("error", err.Error()),
			)
		}

		resp := dto.ErrorResponse{Message: message}
		if !production {
			resp.Stack = errorChain(err)
		}
		c.JSON(status, resp)
	}
}

func classify(err error, production bool) (int, string) {
	status := http.StatusInternalServerError
	message := ""
	for _, class := range errorClasses {
		if errors.Is(err, class.target) {
			status, message = class.status, class.message
			break
		}
	}

	var pub *publicError
	if errors.As(err, &pub) {
		message = pub.message
	}

	if message == "" {
		message = "Server Error"
		if !production {
			message = err.Error()
		}
	}
	return status, message
}

func errorChain(err error) string {
	var b strings.Builder
	for e := err; e != nil; e = errors.Unwrap(e) {
		if b.Len() > 0 {
			b.WriteString("\n    caused by: ")
		}
		b.WriteString(e.Error())
	}
	return b.String()
}
