package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	domainErrors "github.com/vertexinvest/checkout/internal/domain/errors"
	"github.com/vertexinvest/checkout/internal/domain/model"
	"github.com/vertexinvest/checkout/internal/domain/repository"
)

// proofTypes maps accepted content types to the stored file extension.
var proofTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/jpg":       ".jpg",
	"image/png":       ".png",
	"application/pdf": ".pdf",
}

// ProofUpload is one multipart file as received from the customer.
type ProofUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ProofOptions bounds proof intake.
type ProofOptions struct {
	MaxSize        int64
	StorageTimeout time.Duration
}

// ProofUseCase accepts payment proofs for pending orders.
type ProofUseCase struct {
	orders *OrderUseCase
	store  repository.ProofStore
	opts   ProofOptions
	logger *slog.Logger
}

// NewProofUseCase constructs ProofUseCase.
func NewProofUseCase(orders *OrderUseCase, store repository.ProofStore, opts ProofOptions, logger *slog.Logger) *ProofUseCase {
	if opts.MaxSize <= 0 {
		opts.MaxSize = 5 << 20
	}
	if opts.StorageTimeout <= 0 {
		opts.StorageTimeout = 15 * time.Second
	}
	return &ProofUseCase{orders: orders, store: store, opts: opts, logger: logger}
}

// MaxSize is the largest accepted proof in bytes.
func (u *ProofUseCase) MaxSize() int64 { return u.opts.MaxSize }

// Submit stores the proof and moves the order to PAYMENT_SENT.
func (u *ProofUseCase) Submit(ctx context.Context, orderID string, upload ProofUpload) (*model.Order, error) {
	current, err := u.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if current.Order.Status != model.OrderStatusPending {
		return nil, fmt.Errorf("order %s is %s: %w", orderID, current.Order.Status, domainErrors.ErrInvalidState)
	}

	if upload.Size > u.opts.MaxSize {
		return nil, fmt.Errorf("proof of %d bytes: %w", upload.Size, domainErrors.ErrPayloadTooLarge)
	}

	declared := baseType(upload.ContentType)
	if _, ok := proofTypes[declared]; !ok {
		return nil, fmt.Errorf("declared %q: %w", upload.ContentType, domainErrors.ErrUnsupportedMedia)
	}

	data, err := io.ReadAll(io.LimitReader(upload.Body, u.opts.MaxSize+1))
	if err != nil {
		return nil, fmt.Errorf("read proof: %w", err)
	}
	if int64(len(data)) > u.opts.MaxSize {
		return nil, fmt.Errorf("proof exceeds %d bytes: %w", u.opts.MaxSize, domainErrors.ErrPayloadTooLarge)
	}
	if len(data) == 0 {
		return nil, domainErrors.Validation("file", "is empty")
	}

	sniffed := baseType(mimetype.Detect(data).String())
	ext, ok := proofTypes[sniffed]
	if !ok {
		return nil, fmt.Errorf("content detected as %q: %w", sniffed, domainErrors.ErrUnsupportedMedia)
	}

	name := objectName(orderID, ext)
	saveCtx, cancel := context.WithTimeout(ctx, u.opts.StorageTimeout)
	url, err := u.store.Save(saveCtx, name, sniffed, bytes.NewReader(data))
	cancel()
	if err != nil {
		u.logger.Error("failed to store payment proof", slog.String("order_id", orderID), slog.Any("error", err))
		return nil, fmt.Errorf("store proof: %w", err)
	}

	updated, err := u.orders.MarkPaymentSent(ctx, orderID, url)
	if err != nil {
		u.discard(ctx, orderID, name)
		return nil, err
	}

	u.logger.Info("payment proof received",
		slog.String("order_id", orderID),
		slog.String("object", name),
		slog.String("content_type", sniffed),
		slog.Int("bytes", len(data)),
	)
	return updated, nil
}

// discard removes a stored blob whose order could not be advanced.
func (u *ProofUseCase) discard(ctx context.Context, orderID, name string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.opts.StorageTimeout)
	defer cancel()
	if err := u.store.Delete(ctx, name); err != nil {
		u.logger.Warn("failed to remove orphaned payment proof",
			slog.String("order_id", orderID), slog.String("object", name), slog.Any("error", err))
	}
}

func objectName(orderID, ext string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("proof_%s_%s%s", orderID, suffix, ext)
}

func baseType(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return mediaType
}
