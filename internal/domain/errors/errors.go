package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("not authorized")
	ErrForbidden          = errors.New("not authorized as an admin")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrNoOrderItems       = errors.New("no order items")

	ErrPaymentVerification = errors.New("payment verification failed")
	ErrUpstream            = errors.New("upstream provider failure")

	ErrNoFile         = errors.New("please upload a file")
	ErrNotAnImage     = errors.New("not an image! please upload only images")
	ErrFileTooLarge   = errors.New("file too large")
	ErrMediaNotFound  = errors.New("media not found")
	ErrFeatureMissing = errors.New("feature is not configured")

	ErrRateLimited = errors.New("too many requests")
)
