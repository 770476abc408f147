package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	domainErrors "github.com/vertexinvest/checkout/internal/domain/errors"
	"github.com/vertexinvest/checkout/internal/domain/model"
	pkgAuth "github.com/vertexinvest/checkout/internal/pkg/auth"
)

// AdminSubject identifies the single administrator in issued tokens.
const AdminSubject = "admin"

// AttemptLimiter counts login attempts per client. Attempt reports a positive
// retry-after when the attempt is over the limit.
type AttemptLimiter interface {
	Attempt(ctx context.Context, key string) (time.Duration, error)
	Reset(ctx context.Context, key string) error
}

// AdminCredentials holds the bcrypt hash of the admin password.
type AdminCredentials struct {
	PasswordHash string
}

// AdminAuthUseCase guards the admin API.
type AdminAuthUseCase struct {
	creds   AdminCredentials
	hasher  pkgAuth.PasswordHasher
	tokens  pkgAuth.Strategy
	limiter AttemptLimiter
	logger  *slog.Logger
}

// NewAdminAuthUseCase constructs AdminAuthUseCase.
func NewAdminAuthUseCase(creds AdminCredentials, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy, limiter AttemptLimiter, logger *slog.Logger) *AdminAuthUseCase {
	return &AdminAuthUseCase{creds: creds, hasher: hasher, tokens: strategy, limiter: limiter, logger: logger}
}

// Authenticate checks the admin password for clientKey and issues a token.
func (u *AdminAuthUseCase) Authenticate(ctx context.Context, password, clientKey string) (model.AdminSession, error) {
	retryAfter, err := u.limiter.Attempt(ctx, clientKey)
	if err != nil {
		return model.AdminSession{}, fmt.Errorf("count login attempt: %w", err)
	}
	if retryAfter > 0 {
		u.logger.Warn("admin login locked out", slog.String("client", clientKey), slog.Duration("retry_after", retryAfter))
		return model.AdminSession{}, &domainErrors.TooManyAttemptsError{RetryAfter: retryAfter}
	}

	if password == "" || u.hasher.Compare(u.creds.PasswordHash, password) != nil {
		u.logger.Warn("admin login rejected", slog.String("client", clientKey))
		return model.AdminSession{}, domainErrors.ErrInvalidCredentials
	}

	if err := u.limiter.Reset(ctx, clientKey); err != nil {
		u.logger.Error("failed to reset login attempts", slog.String("client", clientKey), slog.Any("error", err))
	}

	token, expiresAt, err := u.tokens.IssueToken(AdminSubject)
	if err != nil {
		return model.AdminSession{}, fmt.Errorf("issue token: %w", err)
	}

	u.logger.Info("admin logged in", slog.String("client", clientKey))
	return model.AdminSession{Token: token, ExpiresAt: expiresAt}, nil
}

// Verify validates token and returns the identity it was issued to.
func (u *AdminAuthUseCase) Verify(token string) (model.AdminIdentity, error) {
	if token == "" {
		return model.AdminIdentity{}, pkgAuth.ErrInvalidToken
	}
	claims, err := u.tokens.ParseToken(token)
	if err != nil {
		return model.AdminIdentity{}, err
	}
	if claims.Subject != AdminSubject {
		return model.AdminIdentity{}, pkgAuth.ErrInvalidToken
	}
	return model.AdminIdentity{Subject: claims.Subject, ExpiresAt: claims.ExpiresAt}, nil
}
