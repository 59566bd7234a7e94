package services

import (
	"context"
	"testing"

	"fintrack/internal/models"
	"fintrack/internal/query"
	"fintrack/internal/repositories"
	"fintrack/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTransactionServiceFixture(t *testing.T) (*gomock.Controller, *repository_mocks.MockTransactionRepositoryInterface, TransactionServiceInterface) {
	ctrl := gomock.NewController(t)
	mockRepo := repository_mocks.NewMockTransactionRepositoryInterface(ctrl)
	service := NewTransactionService(mockRepo, NewNoopMetrics())
	return ctrl, mockRepo, service
}

func validInput() TransactionInput {
	return TransactionInput{
		Kind:        models.LedgerKindExpense,
		Amount:      decimal.RequireFromString("25.50"),
		Description: "weekly groceries",
		Tags:        []string{"Food", "weekly"},
	}
}

func TestCreateTransaction(t *testing.T) {
	ctrl, mockRepo, service := newTransactionServiceFixture(t)
	defer ctrl.Finish()

	ownerID := uuid.New()

	mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(transaction *models.Transaction) error {
			transaction.ID = uuid.New()
			return nil
		})

	transaction, err := service.CreateTransaction(ownerID, validInput())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, transaction.ID)
	assert.Equal(t, ownerID, transaction.OwnerID)
	assert.Equal(t, models.LedgerKindExpense, transaction.Kind)
	// Tags are normalized before the repository sees them
	assert.Equal(t, []string{"food", "weekly"}, transaction.TagNames())
}

func TestCreateTransaction_ValidationStopsBeforeRepository(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(input *TransactionInput)
		wantErr error
	}{
		{
			name:    "invalid kind",
			mutate:  func(input *TransactionInput) { input.Kind = "transfer" },
			wantErr: models.ErrInvalidLedgerKind,
		},
		{
			name:    "zero amount",
			mutate:  func(input *TransactionInput) { input.Amount = decimal.Zero },
			wantErr: models.ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			mutate:  func(input *TransactionInput) { input.Amount = decimal.RequireFromString("-1") },
			wantErr: models.ErrInvalidAmount,
		},
		{
			name: "too many tags",
			mutate: func(input *TransactionInput) {
				input.Tags = []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"}
			},
			wantErr: models.ErrTooManyTags,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl, _, service := newTransactionServiceFixture(t)
			defer ctrl.Finish()

			input := validInput()
			tt.mutate(&input)

			_, err := service.CreateTransaction(uuid.New(), input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUpdateTransaction(t *testing.T) {
	ctrl, mockRepo, service := newTransactionServiceFixture(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	transactionID := uuid.New()

	mockRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(transaction *models.Transaction) error {
			assert.Equal(t, transactionID, transaction.ID)
			assert.Equal(t, ownerID, transaction.OwnerID)
			return nil
		})

	transaction, err := service.UpdateTransaction(ownerID, transactionID, validInput())
	require.NoError(t, err)
	assert.Equal(t, transactionID, transaction.ID)
}

func TestUpdateTransaction_NotFound(t *testing.T) {
	ctrl, mockRepo, service := newTransactionServiceFixture(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().
		Update(gomock.Any()).
		Return(repositories.ErrTransactionNotFound)

	_, err := service.UpdateTransaction(uuid.New(), uuid.New(), validInput())
	assert.ErrorIs(t, err, repositories.ErrTransactionNotFound)
}

func TestDeleteTransaction(t *testing.T) {
	ctrl, mockRepo, service := newTransactionServiceFixture(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	transactionID := uuid.New()

	mockRepo.EXPECT().SoftDelete(ownerID, transactionID).Return(nil)

	assert.NoError(t, service.DeleteTransaction(ownerID, transactionID))
}

func TestDeleteTransaction_NotFound(t *testing.T) {
	ctrl, mockRepo, service := newTransactionServiceFixture(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().
		SoftDelete(gomock.Any(), gomock.Any()).
		Return(repositories.ErrTransactionNotFound)

	err := service.DeleteTransaction(uuid.New(), uuid.New())
	assert.ErrorIs(t, err, repositories.ErrTransactionNotFound)
}

func TestGetTransaction(t *testing.T) {
	ctrl, mockRepo, service := newTransactionServiceFixture(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	transactionID := uuid.New()
	stored := &models.Transaction{ID: transactionID, OwnerID: ownerID}

	mockRepo.EXPECT().GetByOwnerAndID(ownerID, transactionID).Return(stored, nil)

	transaction, err := service.GetTransaction(ownerID, transactionID)
	require.NoError(t, err)
	assert.Equal(t, stored, transaction)
}

func TestListTransactions(t *testing.T) {
	ctrl, mockRepo, service := newTransactionServiceFixture(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	pagination := models.Pagination{Page: 1, Limit: 10}
	filter := query.Filter{SearchText: "grocery"}
	page := &models.TransactionPage{
		Items: []models.Transaction{{ID: uuid.New(), OwnerID: ownerID}},
		Meta:  models.NewPageMeta(pagination, 1),
	}

	mockRepo.EXPECT().
		FindPage(gomock.Any(), ownerID, filter, pagination).
		Return(page, nil)

	got, err := service.ListTransactions(context.Background(), ownerID, filter, pagination)
	require.NoError(t, err)
	assert.Equal(t, page, got)
}

func TestListTransactions_RepositoryError(t *testing.T) {
	ctrl, mockRepo, service := newTransactionServiceFixture(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().
		FindPage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	_, err := service.ListTransactions(context.Background(), uuid.New(), query.Filter{}, models.Pagination{})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestPageDrift(t *testing.T) {
	items := func(n int) []models.Transaction {
		out := make([]models.Transaction, n)
		for i := range out {
			out[i] = models.Transaction{ID: uuid.New()}
		}
		return out
	}

	tests := []struct {
		name  string
		page  *models.TransactionPage
		drift bool
	}{
		{
			name: "full page consistent",
			page: &models.TransactionPage{
				Items: items(10),
				Meta:  models.PageMeta{Page: 1, Limit: 10, Total: 25},
			},
		},
		{
			name: "last partial page consistent",
			page: &models.TransactionPage{
				Items: items(5),
				Meta:  models.PageMeta{Page: 3, Limit: 10, Total: 25},
			},
		},
		{
			name: "past-end page consistent",
			page: &models.TransactionPage{
				Items: items(0),
				Meta:  models.PageMeta{Page: 9, Limit: 10, Total: 25},
			},
		},
		{
			name: "rows deleted between count and read",
			page: &models.TransactionPage{
				Items: items(3),
				Meta:  models.PageMeta{Page: 1, Limit: 10, Total: 5},
			},
			drift: true,
		},
		{
			name: "rows inserted between count and read",
			page: &models.TransactionPage{
				Items: items(10),
				Meta:  models.PageMeta{Page: 1, Limit: 10, Total: 5},
			},
			drift: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pageDrift(tt.page)
			if tt.drift {
				assert.NotEmpty(t, got)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}
