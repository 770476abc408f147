package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vertexinvest/checkout/internal/adapter/attempts"
	"github.com/vertexinvest/checkout/internal/config"
	domainErrors "github.com/vertexinvest/checkout/internal/domain/errors"
	pkgAuth "github.com/vertexinvest/checkout/internal/pkg/auth"
	testhelpers "github.com/vertexinvest/checkout/internal/test"
)

func newAdminAuth(limiter *testhelpers.LimiterStub) *AdminAuthUseCase {
	strategy := testhelpers.StrategyStub{ExpiresAt: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)}
	return NewAdminAuthUseCase(AdminCredentials{PasswordHash: "hash:s3cret"}, testhelpers.HasherStub{}, strategy, limiter, discardLogger())
}

func TestAdminAuthenticateSuccess(t *testing.T) {
	limiter := &testhelpers.LimiterStub{}
	uc := newAdminAuth(limiter)

	session, err := uc.Authenticate(context.Background(), "s3cret", "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "token-admin", session.Token)
	assert.Equal(t, 2030, session.ExpiresAt.Year())
	assert.Equal(t, 1, limiter.Resets)
}

func TestAdminAuthenticateRejectsWrongPassword(t *testing.T) {
	limiter := &testhelpers.LimiterStub{}
	uc := newAdminAuth(limiter)

	for _, password := range []string{"", "guess"} {
		_, err := uc.Authenticate(context.Background(), password, "10.0.0.1")
		assert.ErrorIs(t, err, domainErrors.ErrInvalidCredentials)
	}
	assert.Equal(t, 2, limiter.Attempts["10.0.0.1"])
	assert.Zero(t, limiter.Resets)
}

func TestAdminAuthenticateLockedOut(t *testing.T) {
	limiter := &testhelpers.LimiterStub{RetryAfter: 90 * time.Second}
	uc := newAdminAuth(limiter)

	_, err := uc.Authenticate(context.Background(), "s3cret", "10.0.0.1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainErrors.ErrTooManyAttempts)

	var tooMany *domainErrors.TooManyAttemptsError
	require.ErrorAs(t, err, &tooMany)
	assert.Equal(t, 90*time.Second, tooMany.RetryAfter)
	assert.Zero(t, limiter.Resets)
}

func TestAdminAuthenticateConcurrentGuessesStopAtLimit(t *testing.T) {
	limiter := attempts.NewMemoryLimiter(attempts.Options{MaxAttempts: 3, Lockout: time.Minute})
	strategy := testhelpers.StrategyStub{}
	uc := NewAdminAuthUseCase(AdminCredentials{PasswordHash: "hash:s3cret"}, testhelpers.HasherStub{}, strategy, limiter, discardLogger())

	const guesses = 20
	errs := make([]error, guesses)
	var wg sync.WaitGroup
	for i := 0; i < guesses; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Authenticate(context.Background(), "guess", "10.0.0.9")
		}(i)
	}
	wg.Wait()

	checked := 0
	for _, err := range errs {
		if errors.Is(err, domainErrors.ErrInvalidCredentials) {
			checked++
			continue
		}
		assert.ErrorIs(t, err, domainErrors.ErrTooManyAttempts)
	}
	assert.Equal(t, 3, checked, "only the allowed number of guesses reach the password check")
}

func TestAdminAuthenticateLimiterFailureClosesLogin(t *testing.T) {
	limiter := &testhelpers.LimiterStub{AttemptErr: errors.New("redis down")}
	uc := newAdminAuth(limiter)

	_, err := uc.Authenticate(context.Background(), "s3cret", "10.0.0.1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis down")
	assert.NotErrorIs(t, err, domainErrors.ErrInvalidCredentials)
}

func TestAdminAuthenticateIgnoresResetErrors(t *testing.T) {
	limiter := &testhelpers.LimiterStub{ResetErr: errors.New("y")}
	uc := newAdminAuth(limiter)

	_, err := uc.Authenticate(context.Background(), "nope", "k")
	assert.ErrorIs(t, err, domainErrors.ErrInvalidCredentials)

	_, err = uc.Authenticate(context.Background(), "s3cret", "k")
	assert.NoError(t, err)
}

func TestAdminAuthenticateTokenError(t *testing.T) {
	strategy := testhelpers.StrategyStub{IssueFn: func(string) (string, time.Time, error) {
		return "", time.Time{}, errors.New("sign failed")
	}}
	uc := NewAdminAuthUseCase(AdminCredentials{PasswordHash: "hash:s3cret"}, testhelpers.HasherStub{}, strategy, &testhelpers.LimiterStub{}, discardLogger())

	_, err := uc.Authenticate(context.Background(), "s3cret", "k")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "issue token")
}

func TestAdminVerify(t *testing.T) {
	uc := newAdminAuth(&testhelpers.LimiterStub{})

	identity, err := uc.Verify("token-admin")
	require.NoError(t, err)
	assert.Equal(t, AdminSubject, identity.Subject)

	for _, token := range []string{"", "garbage", "token-customer"} {
		_, err := uc.Verify(token)
		assert.ErrorIs(t, err, pkgAuth.ErrInvalidToken, token)
	}
}

func TestAdminVerifyWithHMACTokens(t *testing.T) {
	strategy := pkgAuth.NewHMACStrategy("secret", pkgAuth.Options{TTL: time.Hour})
	uc := NewAdminAuthUseCase(AdminCredentials{PasswordHash: "hash:pw"}, testhelpers.HasherStub{}, strategy, &testhelpers.LimiterStub{}, discardLogger())

	session, err := uc.Authenticate(context.Background(), "pw", "k")
	require.NoError(t, err)

	identity, err := uc.Verify(session.Token)
	require.NoError(t, err)
	assert.True(t, session.ExpiresAt.Equal(identity.ExpiresAt))

	other := pkgAuth.NewHMACStrategy("other-secret", pkgAuth.Options{TTL: time.Hour})
	forged, _, err := other.IssueToken(AdminSubject)
	require.NoError(t, err)
	_, err = uc.Verify(forged)
	assert.ErrorIs(t, err, pkgAuth.ErrInvalidToken)
}

func TestNewAdminCredentials(t *testing.T) {
	stored, err := pkgAuth.NewBcryptHasher(4).Hash("pw")
	require.NoError(t, err)
	creds, err := newAdminCredentials(&config.Config{AdminPasswordHash: stored}, testhelpers.HasherStub{})
	require.NoError(t, err)
	assert.Equal(t, stored, creds.PasswordHash)

	_, err = newAdminCredentials(&config.Config{AdminPasswordHash: "not-bcrypt"}, testhelpers.HasherStub{})
	assert.ErrorContains(t, err, "admin password hash")

	creds, err = newAdminCredentials(&config.Config{AdminPassword: "pw"}, testhelpers.HasherStub{})
	require.NoError(t, err)
	assert.Equal(t, "hash:pw", creds.PasswordHash)

	_, err = newAdminCredentials(&config.Config{}, testhelpers.HasherStub{})
	assert.Error(t, err)

	failing := testhelpers.HasherStub{HashFn: func(string) (string, error) { return "", errors.New("boom") }}
	_, err = newAdminCredentials(&config.Config{AdminPassword: "pw"}, failing)
	assert.ErrorContains(t, err, "hash admin password")
}

func TestNewProofOptions(t *testing.T) {
	opts := newProofOptions(&config.Config{MaxProofSize: 42, StorageTimeout: time.Second})
	assert.Equal(t, ProofOptions{MaxSize: 42, StorageTimeout: time.Second}, opts)
}
