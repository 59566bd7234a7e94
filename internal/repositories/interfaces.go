package repositories

import (
	"context"

	"fintrack/internal/models"
	"fintrack/internal/query"

	"github.com/google/uuid"
)

// TransactionRepositoryInterface defines the contract for transaction storage.
// Every read is scoped to an owner; soft-deleted rows are invisible to all
// operations.
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	Update(transaction *models.Transaction) error
	SoftDelete(ownerID, id uuid.UUID) error
	GetByOwnerAndID(ownerID, id uuid.UUID) (*models.Transaction, error)
	FindPage(ctx context.Context, ownerID uuid.UUID, filter query.Filter, pagination models.Pagination) (*models.TransactionPage, error)
	FindAllForOwner(ctx context.Context, ownerID uuid.UUID, kind string) ([]models.Transaction, error)
}

// Invalidator drops an owner's cached derived views.
type Invalidator interface {
	Invalidate(ownerID uuid.UUID) error
}
