package dto

import (
	"time"

	"github.com/google/uuid"

	"fintrack/internal/models"
)

// Transaction Request DTOs

// CreateTransactionRequest represents the request payload for recording a transaction
type CreateTransactionRequest struct {
	Kind        string   `json:"kind" validate:"required,oneof=inflow expense"`
	Amount      string   `json:"amount" validate:"required"`
	Description string   `json:"description" validate:"omitempty,max=500"`
	Tags        []string `json:"tags" validate:"omitempty,max=10,dive,min=1,max=50"`
}

// UpdateTransactionRequest represents the request payload for replacing a transaction
type UpdateTransactionRequest struct {
	Kind        string   `json:"kind" validate:"required,oneof=inflow expense"`
	Amount      string   `json:"amount" validate:"required"`
	Description string   `json:"description" validate:"omitempty,max=500"`
	Tags        []string `json:"tags" validate:"omitempty,max=10,dive,min=1,max=50"`
}

// ListTransactionsParams contains filtering and pagination query parameters
type ListTransactionsParams struct {
	Search string `query:"search"`
	Tags   string `query:"tags"`
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
}

// Transaction Response DTOs

// TransactionResponse represents a single transaction in API responses
type TransactionResponse struct {
	ID          uuid.UUID `json:"id"`
	Kind        string    `json:"kind"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewTransactionResponse maps a transaction model into its API representation
func NewTransactionResponse(transaction *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          transaction.ID,
		Kind:        transaction.Kind,
		Amount:      transaction.Amount.StringFixed(2),
		Description: transaction.Description,
		Tags:        transaction.TagNames(),
		CreatedAt:   transaction.CreatedAt,
		UpdatedAt:   transaction.UpdatedAt,
	}
}

// PaginationMeta represents pagination metadata
type PaginationMeta struct {
	Page      int   `json:"page"`
	Limit     int   `json:"limit"`
	Total     int64 `json:"total"`
	PageCount int   `json:"pageCount"`
}

// TransactionListResponse represents a paginated list of transactions
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   PaginationMeta        `json:"pagination"`
}

// NewTransactionListResponse maps a repository page into its API representation
func NewTransactionListResponse(page *models.TransactionPage) TransactionListResponse {
	items := make([]TransactionResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, NewTransactionResponse(&page.Items[i]))
	}

	return TransactionListResponse{
		Transactions: items,
		Pagination: PaginationMeta{
			Page:      page.Meta.Page,
			Limit:     page.Meta.Limit,
			Total:     page.Meta.Total,
			PageCount: page.Meta.PageCount,
		},
	}
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
