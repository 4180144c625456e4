package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	domainErrors "github.com/polkiloo/ecomlite/internal/domain/errors"
)

// MinCost is the lowest bcrypt work factor accepted for stored passwords.
const MinCost = 10

// PasswordHasher turns account passwords into one-way digests and checks them.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

// BcryptHasher salts every digest on its own, so equal passwords never share a hash.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	return &BcryptHasher{cost: max(cost, MinCost)}
}

// Hash rejects passwords bcrypt cannot represent (over 72 bytes) as invalid input.
func (h *BcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	switch {
	case errors.Is(err, bcrypt.ErrPasswordTooLong):
		return "", fmt.Errorf("password: %w", domainErrors.ErrInvalidInput)
	case err != nil:
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

// Compare returns ErrInvalidCredentials when the password does not match.
func (h *BcryptHasher) Compare(hash string, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return domainErrors.ErrInvalidCredentials
	}
	return err
}
