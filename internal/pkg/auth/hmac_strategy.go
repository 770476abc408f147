package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidToken   = errors.New("invalid auth token")
	ErrInvalidSubject = errors.New("invalid token subject")
)

const defaultTTL = 7 * 24 * time.Hour

// HMACStrategy implements auth token creation/verification using HMAC signatures.
// Tokens are base64(subject:expiry:signature) and carry no server side state.
type HMACStrategy struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewHMACStrategy builds HMACStrategy with provided secret and options.
func NewHMACStrategy(secret string, opts Options) *HMACStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &HMACStrategy{secret: []byte(secret), ttl: ttl, now: now}
}

// IssueToken generates a signed token for subject and reports when it expires.
func (s *HMACStrategy) IssueToken(subject string) (string, time.Time, error) {
	if subject == "" || strings.Contains(subject, ":") {
		return "", time.Time{}, ErrInvalidSubject
	}
	expiresAt := s.now().Add(s.ttl).Truncate(time.Second)
	payload := fmt.Sprintf("%s:%d", subject, expiresAt.Unix())
	token := fmt.Sprintf("%s:%s", payload, s.sign(payload))
	return base64.StdEncoding.EncodeToString([]byte(token)), expiresAt, nil
}

// ParseToken validates signature and expiry and returns the embedded claims.
func (s *HMACStrategy) ParseToken(token string) (Claims, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return Claims{}, ErrInvalidToken
	}

	parts := strings.Split(string(raw), ":")
	if len(parts) != 3 || parts[0] == "" {
		return Claims{}, ErrInvalidToken
	}

	payload := strings.Join(parts[:2], ":")
	expectedSig := s.sign(payload)
	if !hmac.Equal([]byte(expectedSig), []byte(parts[2])) {
		return Claims{}, ErrInvalidToken
	}

	expires, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return Claims{}, ErrInvalidToken
	}

	expiresAt := time.Unix(expires, 0)
	if !expiresAt.After(s.now()) {
		return Claims{}, ErrInvalidToken
	}

	return Claims{Subject: parts[0], ExpiresAt: expiresAt}, nil
}

func (s *HMACStrategy) Name() string {
	return "hmac"
}

func (s *HMACStrategy) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
