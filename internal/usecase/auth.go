package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/polkiloo/ecomlite/internal/domain/errors"
	"github.com/polkiloo/ecomlite/internal/domain/model"
	"github.com/polkiloo/ecomlite/internal/domain/repository"
	pkgAuth "github.com/polkiloo/ecomlite/internal/pkg/auth"
)

// AuthUseCase handles user lifecycle and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Register creates a customer account and returns auth token.
func (u *AuthUseCase) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	if name == "" || password == "" || !ValidateEmail(email) {
		return nil, "", domainErrors.ErrInvalidInput
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, &model.User{Name: name, Email: email, PasswordHash: hash})
	if err != nil {
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Authenticate validates credentials and returns auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// UpdateProfile applies the supplied changes. The stored hash is replaced
// only when a new non-empty password is given.
func (u *AuthUseCase) UpdateProfile(ctx context.Context, userID int64, changes model.ProfileUpdate) (*model.User, string, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	updated := *usr
	if changes.Name != nil {
		if name := strings.TrimSpace(*changes.Name); name != "" {
			updated.Name = name
		}
	}
	if changes.Email != nil && strings.TrimSpace(*changes.Email) != "" {
		email := NormalizeEmail(*changes.Email)
		if !ValidateEmail(email) {
			return nil, "", domainErrors.ErrInvalidInput
		}
		updated.Email = email
	}
	if changes.Password != nil && *changes.Password != "" {
		hash, err := u.hasher.Hash(*changes.Password)
		if err != nil {
			return nil, "", err
		}
		updated.PasswordHash = hash
	}

	saved, err := u.users.Update(ctx, &updated)
	if err != nil {
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(saved.ID)
	if err != nil {
		return nil, "", err
	}

	return saved, token, nil
}

// ParseToken extracts user ID from provided token.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}
