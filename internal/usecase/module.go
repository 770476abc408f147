package usecase

import (
	"fmt"

	"go.uber.org/fx"

	"github.com/vertexinvest/checkout/internal/config"
	pkgAuth "github.com/vertexinvest/checkout/internal/pkg/auth"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewOrderUseCase,
	NewProofUseCase,
	NewAdminAuthUseCase,
	newProofOptions,
	newAdminCredentials,
)

func newProofOptions(cfg *config.Config) ProofOptions {
	return ProofOptions{MaxSize: cfg.MaxProofSize, StorageTimeout: cfg.StorageTimeout}
}

// newAdminCredentials prefers a preconfigured hash and otherwise hashes the plain password once at start.
func newAdminCredentials(cfg *config.Config, hasher pkgAuth.PasswordHasher) (AdminCredentials, error) {
	if cfg.AdminPasswordHash != "" {
		if err := pkgAuth.ValidateHash(cfg.AdminPasswordHash); err != nil {
			return AdminCredentials{}, fmt.Errorf("admin password hash: %w", err)
		}
		return AdminCredentials{PasswordHash: cfg.AdminPasswordHash}, nil
	}
	if cfg.AdminPassword == "" {
		return AdminCredentials{}, fmt.Errorf("admin password is not configured")
	}
	hash, err := hasher.Hash(cfg.AdminPassword)
	if err != nil {
		return AdminCredentials{}, fmt.Errorf("hash admin password: %w", err)
	}
	return AdminCredentials{PasswordHash: hash}, nil
}
