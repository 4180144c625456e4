package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// HMACStrategy is a compact alternative to JWTStrategy. Tokens look like
// base64("ecomlite:<userID>:<expiry>") + "." + base64(HMAC-SHA256(first segment)).
type HMACStrategy struct {
	secret []byte
	opts   Options
}

func NewHMACStrategy(secret string, opts Options) *HMACStrategy {
	return &HMACStrategy{secret: []byte(secret), opts: opts.normalize()}
}

func (s *HMACStrategy) IssueToken(userID int64) (string, error) {
	expires := s.opts.Now().Add(s.opts.TTL).Unix()
	body := fmt.Sprintf("%s:%d:%d", jwtIssuer, userID, expires)
	segment := base64.RawURLEncoding.EncodeToString([]byte(body))
	return segment + "." + s.sign(segment), nil
}

// ParseToken checks the signature before looking at the claims.
func (s *HMACStrategy) ParseToken(token string) (int64, error) {
	segment, sig, ok := strings.Cut(token, ".")
	if !ok || !hmac.Equal([]byte(s.sign(segment)), []byte(sig)) {
		return 0, ErrInvalidToken
	}

	body, err := base64.RawURLEncoding.DecodeString(segment)
	if err != nil {
		return 0, ErrInvalidToken
	}

	fields := strings.Split(string(body), ":")
	if len(fields) != 3 || fields[0] != jwtIssuer {
		return 0, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil || userID <= 0 {
		return 0, ErrInvalidToken
	}
	expires, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil || !time.Unix(expires, 0).After(s.opts.Now()) {
		return 0, ErrInvalidToken
	}

	return userID, nil
}

func (s *HMACStrategy) Name() string {
	return "hmac"
}

func (s *HMACStrategy) sign(segment string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(segment))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
