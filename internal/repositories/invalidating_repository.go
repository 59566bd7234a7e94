package repositories

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fintrack/internal/models"
	"fintrack/internal/query"

	"github.com/google/uuid"
)

var (
	// ErrCacheInvalidation marks a committed mutation whose derived-view
	// invalidation could not be confirmed. The write itself succeeded; the
	// caller must retry so no stale aggregate is served.
	ErrCacheInvalidation = errors.New("derived view invalidation failed")
)

const invalidationAttempts = 3

// invalidatingTransactionRepository decorates a transaction repository so
// that every mutation synchronously invalidates the owner's derived views
// before the caller sees the result. Services only ever receive the decorated
// repository, so no write path can forget the invalidation.
type invalidatingTransactionRepository struct {
	base        TransactionRepositoryInterface
	invalidator Invalidator
}

// NewInvalidatingTransactionRepository wraps base so every mutation triggers
// cache invalidation for the affected owner.
func NewInvalidatingTransactionRepository(base TransactionRepositoryInterface, invalidator Invalidator) TransactionRepositoryInterface {
	return &invalidatingTransactionRepository{
		base:        base,
		invalidator: invalidator,
	}
}

func (r *invalidatingTransactionRepository) Create(transaction *models.Transaction) error {
	if err := r.base.Create(transaction); err != nil {
		return err
	}
	return r.invalidate(transaction.OwnerID)
}

func (r *invalidatingTransactionRepository) Update(transaction *models.Transaction) error {
	if err := r.base.Update(transaction); err != nil {
		return err
	}
	return r.invalidate(transaction.OwnerID)
}

func (r *invalidatingTransactionRepository) SoftDelete(ownerID, id uuid.UUID) error {
	if err := r.base.SoftDelete(ownerID, id); err != nil {
		return err
	}
	return r.invalidate(ownerID)
}

func (r *invalidatingTransactionRepository) GetByOwnerAndID(ownerID, id uuid.UUID) (*models.Transaction, error) {
	return r.base.GetByOwnerAndID(ownerID, id)
}

func (r *invalidatingTransactionRepository) FindPage(ctx context.Context, ownerID uuid.UUID, filter query.Filter, pagination models.Pagination) (*models.TransactionPage, error) {
	return r.base.FindPage(ctx, ownerID, filter, pagination)
}

func (r *invalidatingTransactionRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, kind string) ([]models.Transaction, error) {
	return r.base.FindAllForOwner(ctx, ownerID, kind)
}

func (r *invalidatingTransactionRepository) invalidate(ownerID uuid.UUID) error {
	var err error
	for attempt := 1; attempt <= invalidationAttempts; attempt++ {
		if err = r.invalidator.Invalidate(ownerID); err == nil {
			return nil
		}
		slog.Warn("derived view invalidation failed",
			"owner_id", ownerID,
			"attempt", attempt,
			"error", err)
	}

	return fmt.Errorf("%w for owner %s: %v", ErrCacheInvalidation, ownerID, err)
}
