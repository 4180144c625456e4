package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestJWTStrategy_IssueAndParse(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{TTL: time.Hour})
	token, err := strategy.IssueToken(99)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	userID, err := strategy.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if userID != 99 {
		t.Fatalf("unexpected user id: %d", userID)
	}
}

func TestJWTStrategy_RejectsOtherSecret(t *testing.T) {
	token, err := NewJWTStrategy("one", Options{}).IssueToken(1)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, err := NewJWTStrategy("two", Options{}).ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTStrategy_RejectsExpired(t *testing.T) {
	issuedAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	token, err := NewJWTStrategy("secret", Options{TTL: time.Minute, Now: fixedClock(issuedAt)}).IssueToken(1)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	later := NewJWTStrategy("secret", Options{Now: fixedClock(issuedAt.Add(time.Hour))})
	if _, err := later.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTStrategy_RejectsUnsignedToken(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Issuer:    jwtIssuer,
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := NewJWTStrategy("secret", Options{}).ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTStrategy_RejectsNonNumericSubject(t *testing.T) {
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    jwtIssuer,
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token, err := raw.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := NewJWTStrategy("secret", Options{}).ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTStrategy_Name(t *testing.T) {
	if name := NewJWTStrategy("secret", Options{}).Name(); name != "jwt" {
		t.Fatalf("unexpected name: %s", name)
	}
}
