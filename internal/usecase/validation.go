package usecase

import (
	"net/mail"
	"strings"

	domainErrors "github.com/polkiloo/ecomlite/internal/domain/errors"
	"github.com/polkiloo/ecomlite/internal/domain/model"
)

// NormalizeEmail lowercases and trims an address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail accepts bare addresses only, without display names.
func ValidateEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Address == email && strings.Contains(email[strings.LastIndex(email, "@"):], ".")
}

// ValidateProduct checks catalogue fields an administrator submits.
func ValidateProduct(p *model.Product) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" || p.Price < 0 || p.CountInStock < 0 {
		return domainErrors.ErrInvalidInput
	}
	return nil
}

// ValidateOrder checks a checkout before it is stored.
func ValidateOrder(o *model.Order) error {
	if len(o.Items) == 0 {
		return domainErrors.ErrNoOrderItems
	}
	for _, item := range o.Items {
		if item.ProductID <= 0 || item.Quantity <= 0 || item.Price < 0 {
			return domainErrors.ErrInvalidInput
		}
	}
	if o.ItemsPrice < 0 || o.TaxPrice < 0 || o.ShippingPrice < 0 || o.TotalPrice < 0 {
		return domainErrors.ErrInvalidAmount
	}
	return nil
}
