package services

import (
	"context"
	"fmt"
	"log/slog"

	"fintrack/internal/models"
	"fintrack/internal/query"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
)

type transactionService struct {
	// transactionRepo must be the invalidating decorator so every mutation
	// reaches the derived-view cache before the caller sees the result.
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
) TransactionServiceInterface {
	return &transactionService{
		transactionRepo: transactionRepo,
		metrics:         metrics,
	}
}

func (s *transactionService) CreateTransaction(ownerID uuid.UUID, input TransactionInput) (*models.Transaction, error) {
	transaction := &models.Transaction{
		OwnerID:     ownerID,
		Kind:        input.Kind,
		Amount:      input.Amount,
		Description: input.Description,
	}
	transaction.SetTags(input.Tags)

	if err := transaction.Validate(); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		slog.Error("failed to create transaction",
			"owner_id", ownerID,
			"error", err)
		return nil, err
	}

	s.metrics.RecordMutation("create")
	slog.Info("transaction created",
		"transaction_id", transaction.ID,
		"owner_id", ownerID,
		"kind", transaction.Kind,
		"amount", transaction.Amount.String())

	return transaction, nil
}

func (s *transactionService) UpdateTransaction(ownerID, id uuid.UUID, input TransactionInput) (*models.Transaction, error) {
	transaction := &models.Transaction{
		ID:          id,
		OwnerID:     ownerID,
		Kind:        input.Kind,
		Amount:      input.Amount,
		Description: input.Description,
	}
	transaction.SetTags(input.Tags)

	if err := transaction.Validate(); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Update(transaction); err != nil {
		return nil, err
	}

	s.metrics.RecordMutation("update")
	slog.Info("transaction updated",
		"transaction_id", id,
		"owner_id", ownerID)

	return transaction, nil
}

func (s *transactionService) DeleteTransaction(ownerID, id uuid.UUID) error {
	if err := s.transactionRepo.SoftDelete(ownerID, id); err != nil {
		return err
	}

	s.metrics.RecordMutation("delete")
	slog.Info("transaction deleted",
		"transaction_id", id,
		"owner_id", ownerID)

	return nil
}

func (s *transactionService) GetTransaction(ownerID, id uuid.UUID) (*models.Transaction, error) {
	return s.transactionRepo.GetByOwnerAndID(ownerID, id)
}

// ListTransactions serves the filtered, paginated listing. Data and count are
// one logical read at the repository; if the store's isolation still let them
// drift apart under a concurrent write, the drift is logged as a consistency
// warning rather than failing the request.
func (s *transactionService) ListTransactions(ctx context.Context, ownerID uuid.UUID, filter query.Filter, pagination models.Pagination) (*models.TransactionPage, error) {
	page, err := s.transactionRepo.FindPage(ctx, ownerID, filter, pagination)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	if drift := pageDrift(page); drift != "" {
		s.metrics.RecordConsistencyWarning()
		slog.Warn("transaction page and count drifted under concurrent writes",
			"owner_id", ownerID,
			"page", page.Meta.Page,
			"total", page.Meta.Total,
			"items", len(page.Items),
			"drift", drift)
	}

	return page, nil
}

// pageDrift reports an inconsistency between a page's items and its total,
// which can only arise from concurrent writes racing a non-snapshot read.
func pageDrift(page *models.TransactionPage) string {
	offset := int64(page.Meta.Page-1) * int64(page.Meta.Limit)
	remaining := page.Meta.Total - offset

	if remaining < 0 {
		remaining = 0
	}
	if remaining > int64(page.Meta.Limit) {
		remaining = int64(page.Meta.Limit)
	}

	if int64(len(page.Items)) > remaining {
		return "more items than total allows"
	}
	if int64(len(page.Items)) < remaining {
		return "fewer items than total promises"
	}
	return ""
}
