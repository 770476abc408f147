package repository

import (
	"context"
	"io"
)

// ProofStore durably keeps uploaded payment proofs.
type ProofStore interface {
	// Save writes the object and returns a reference the admin panel can open.
	Save(ctx context.Context, name, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, name string) error
}
