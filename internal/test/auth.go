package test

import (
	"errors"
	"time"

	"github.com/vertexinvest/checkout/internal/domain/model"
	pkgAuth "github.com/vertexinvest/checkout/internal/pkg/auth"
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
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues and parses tokens via function overrides.
type StrategyStub struct {
	IssueFn   func(string) (string, time.Time, error)
	ParseFn   func(string) (pkgAuth.Claims, error)
	ExpiresAt time.Time
}

// IssueToken returns "token-<subject>" unless overridden.
func (s StrategyStub) IssueToken(subject string) (string, time.Time, error) {
	if s.IssueFn != nil {
		return s.IssueFn(subject)
	}
	return "token-" + subject, s.ExpiresAt, nil
}

// ParseToken accepts tokens produced by IssueToken.
func (s StrategyStub) ParseToken(token string) (pkgAuth.Claims, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	const prefix = "token-"
	if len(token) <= len(prefix) || token[:len(prefix)] != prefix {
		return pkgAuth.Claims{}, pkgAuth.ErrInvalidToken
	}
	return pkgAuth.Claims{Subject: token[len(prefix):], ExpiresAt: s.ExpiresAt}, nil
}

func (s StrategyStub) Name() string {
	return "stub"
}

// TokenVerifierStub returns a fixed identity or error.
type TokenVerifierStub struct {
	Identity model.AdminIdentity
	Err      error
}

// VerifyToken implements middleware.TokenVerifier.
func (s TokenVerifierStub) VerifyToken(string) (model.AdminIdentity, error) {
	return s.Identity, s.Err
}
