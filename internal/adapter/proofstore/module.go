package proofstore

import (
	"context"
	"log/slog"

	"cloud.google.com/go/storage"
	"go.uber.org/fx"

	"github.com/vertexinvest/checkout/internal/config"
	"github.com/vertexinvest/checkout/internal/domain/repository"
)

// Module selects the proof backend from configuration.
var Module = fx.Provide(newStore)

type storeParams struct {
	fx.In

	Ctx       context.Context
	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

var newGCSClient = func(ctx context.Context) (*storage.Client, error) {
	return storage.NewClient(ctx)
}

func newStore(p storeParams) (repository.ProofStore, error) {
	if p.Config.ProofStorage != config.ProofStorageGCS {
		store, err := NewLocalStore(p.Config.UploadDir, p.Config.UploadURLPrefix)
		if err != nil {
			return nil, err
		}
		p.Logger.Info("payment proofs stored on disk", slog.String("dir", store.Dir()))
		return store, nil
	}

	client, err := newGCSClient(p.Ctx)
	if err != nil {
		return nil, err
	}
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})
	p.Logger.Info("payment proofs stored in gcs", slog.String("bucket", p.Config.GCSBucket))
	return NewGCSStore(client, p.Config.GCSBucket), nil
}
