package repositories

import (
	"context"
	"errors"
	"fmt"

	"fintrack/internal/models"
	"fintrack/internal/query"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrTransactionNotFound covers both a genuinely absent transaction and
	// one owned by a different owner; the two cases are indistinguishable to
	// the caller so existence is never leaked to non-owners.
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface on GORM
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create inserts a transaction together with its tag rows
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// Update overwrites kind, amount, description and tags of an owned
// transaction. Concurrent updates to the same row are last-writer-wins.
func (r *transactionRepository) Update(transaction *models.Transaction) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Transaction
		if err := tx.Where("id = ? AND owner_id = ?", transaction.ID, transaction.OwnerID).
			First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTransactionNotFound
			}
			return fmt.Errorf("failed to load transaction: %w", err)
		}

		existing.Kind = transaction.Kind
		existing.Amount = transaction.Amount
		existing.Description = transaction.Description

		if err := tx.Omit("Tags").Save(&existing).Error; err != nil {
			return fmt.Errorf("failed to update transaction: %w", err)
		}

		if err := tx.Where("transaction_id = ?", existing.ID).
			Delete(&models.TransactionTag{}).Error; err != nil {
			return fmt.Errorf("failed to clear transaction tags: %w", err)
		}

		for i := range transaction.Tags {
			transaction.Tags[i].TransactionID = existing.ID
		}
		if len(transaction.Tags) > 0 {
			if err := tx.Create(&transaction.Tags).Error; err != nil {
				return fmt.Errorf("failed to replace transaction tags: %w", err)
			}
		}

		existing.Tags = transaction.Tags
		*transaction = existing
		return nil
	})
}

// SoftDelete marks an owned transaction as deleted. Deleted transactions are
// excluded from all listings and aggregations.
func (r *transactionRepository) SoftDelete(ownerID, id uuid.UUID) error {
	result := r.db.Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&models.Transaction{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// GetByOwnerAndID retrieves an owned transaction with its tags
func (r *transactionRepository) GetByOwnerAndID(ownerID, id uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.Preload("Tags").
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// FindPage returns one page of a filtered listing together with the total
// count. Both queries run against the same compiled predicate inside one
// database transaction, so stores with snapshot reads return one consistent
// logical read. On stores without snapshot isolation the data and count may
// diverge under concurrent writes; that weak-consistency window is accepted
// and checked for at the service layer.
func (r *transactionRepository) FindPage(ctx context.Context, ownerID uuid.UUID, filter query.Filter, pagination models.Pagination) (*models.TransactionPage, error) {
	normalized := pagination.Normalize()
	clause, args := query.ToSQL(query.Compile(ownerID, filter))

	var transactions []models.Transaction
	var total int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Transaction{}).
			Where(clause, args...).
			Count(&total).Error; err != nil {
			return fmt.Errorf("failed to count transactions: %w", err)
		}

		// created_at ties are broken by id so page boundaries are stable.
		if err := tx.Preload("Tags").
			Where(clause, args...).
			Order("transactions.created_at DESC, transactions.id DESC").
			Offset(normalized.Offset()).
			Limit(normalized.Limit).
			Find(&transactions).Error; err != nil {
			return fmt.Errorf("failed to get transactions: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &models.TransactionPage{
		Items: transactions,
		Meta:  models.NewPageMeta(normalized, total),
	}, nil
}

// FindAllForOwner streams every live transaction of an owner, optionally
// narrowed to one ledger kind. This is the aggregation engine's feed.
func (r *transactionRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, kind string) ([]models.Transaction, error) {
	db := r.db.WithContext(ctx).Preload("Tags").Where("owner_id = ?", ownerID)
	if kind != "" {
		db = db.Where("kind = ?", kind)
	}

	var transactions []models.Transaction
	if err := db.Order("created_at ASC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions for owner: %w", err)
	}
	return transactions, nil
}
