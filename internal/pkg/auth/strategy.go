package auth

import (
	"errors"
	"time"
)

// ErrInvalidToken is returned for malformed, forged or expired tokens.
var ErrInvalidToken = errors.New("invalid auth token")

// Strategy issues and verifies bearer tokens carrying a user identifier.
type Strategy interface {
	IssueToken(userID int64) (string, error)
	ParseToken(token string) (int64, error)
	Name() string
}

// Options tune token strategies.
type Options struct {
	TTL time.Duration
	// Now overrides the clock, used by tests.
	Now func() time.Time
}

const defaultTokenTTL = 30 * 24 * time.Hour

func (o Options) normalize() Options {
	if o.TTL <= 0 {
		o.TTL = defaultTokenTTL
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}
