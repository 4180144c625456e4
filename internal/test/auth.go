package test

import (
	"context"

	domainErrors "github.com/polkiloo/ecomlite/internal/domain/errors"
	"github.com/polkiloo/ecomlite/internal/domain/model"
	pkgAuth "github.com/polkiloo/ecomlite/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return domainErrors.ErrInvalidCredentials
	}
	return nil
}

// StrategyStub issues and parses tokens via function overrides.
type StrategyStub struct {
	IssueFn func(int64) (string, error)
	ParseFn func(string) (int64, error)
	NameVal string
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(userID int64) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(userID)
	}
	return "token", nil
}

// ParseToken parses previously issued token strings.
func (s StrategyStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// AuthFacadeStub simulates account operations. Profile resolves to a
// customer with the requested id unless overridden.
type AuthFacadeStub struct {
	RegisterFn      func(context.Context, string, string, string) (*model.User, string, error)
	AuthenticateFn  func(context.Context, string, string) (*model.User, string, error)
	ParseFn         func(string) (int64, error)
	ProfileFn       func(context.Context, int64) (*model.User, error)
	UpdateProfileFn func(context.Context, int64, model.ProfileUpdate) (*model.User, string, error)
}

func (s AuthFacadeStub) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, name, email, password)
	}
	return &model.User{ID: 1, Name: name, Email: email}, "token", nil
}

func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: 1, Name: "user", Email: email}, "token", nil
}

func (s AuthFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

func (s AuthFacadeStub) Profile(ctx context.Context, userID int64) (*model.User, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, userID)
	}
	return &model.User{ID: userID, Name: "user", Email: "user@example.com"}, nil
}

func (s AuthFacadeStub) UpdateProfile(ctx context.Context, userID int64, changes model.ProfileUpdate) (*model.User, string, error) {
	if s.UpdateProfileFn != nil {
		return s.UpdateProfileFn(ctx, userID, changes)
	}
	return &model.User{ID: userID}, "token", nil
}

// AdminTokens returns an AuthFacadeStub whose tokens "admin" and "user"
// resolve to an administrator (id 1) and a customer (id 2).
func AdminTokens() AuthFacadeStub {
	return AuthFacadeStub{
		ParseFn: func(token string) (int64, error) {
			switch token {
			case "admin":
				return 1, nil
			case "user":
				return 2, nil
			}
			return 0, pkgAuth.ErrInvalidToken
		},
		ProfileFn: func(_ context.Context, id int64) (*model.User, error) {
			return &model.User{ID: id, Name: "user", Email: "user@example.com", IsAdmin: id == 1}, nil
		},
	}
}

var _ pkgAuth.PasswordHasher = HasherStub{}
var _ pkgAuth.Strategy = StrategyStub{}
