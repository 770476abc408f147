package proofstore

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"cloud.google.com/go/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"

	"github.com/vertexinvest/checkout/internal/config"
)

func TestNewStoreLocal(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "proofs")
	store, err := newStore(storeParams{
		Ctx:       context.Background(),
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{ProofStorage: config.ProofStorageLocal, UploadDir: dir, UploadURLPrefix: "/uploads"},
		Logger:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	local, ok := store.(*LocalStore)
	require.True(t, ok, "expected *LocalStore, got %T", store)
	assert.Equal(t, dir, local.Dir())
}

func TestNewStoreGCSClientError(t *testing.T) {
	t.Cleanup(func() {
		newGCSClient = func(ctx context.Context) (*storage.Client, error) { return storage.NewClient(ctx) }
	})
	newGCSClient = func(context.Context) (*storage.Client, error) { return nil, errors.New("no credentials") }

	_, err := newStore(storeParams{
		Ctx:       context.Background(),
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{ProofStorage: config.ProofStorageGCS, GCSBucket: "vertex-proofs"},
		Logger:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
	})
	assert.ErrorContains(t, err, "no credentials")
}

func TestGCSStoreURL(t *testing.T) {
	s := &GCSStore{name: "vertex-proofs"}
	assert.Equal(t, "https://storage.googleapis.com/vertex-proofs/proof_o_12345678.pdf", s.URL("proof_o_12345678.pdf"))
}
