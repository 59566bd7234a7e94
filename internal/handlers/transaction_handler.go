package handlers

import (
	stderrors "errors"
	"net/http"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/query"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const maxPageLimit = 100

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// CreateTransaction records a new transaction for the authenticated owner
// @Summary Create transaction
// @Description Record a new inflow or expense transaction with optional tags
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse "Created transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request payload"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 422 {object} errors.ErrorResponse "TRANSACTION_005 - Transaction validation failed"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	ownerID, err := getOwnerIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request payload"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	input, err := buildTransactionInput(req.Kind, req.Amount, req.Description, req.Tags)
	if err != nil {
		return SendError(c, errors.TransactionInvalidAmount, errors.WithDetails(err.Error()))
	}

	transaction, err := h.transactionService.CreateTransaction(ownerID, input)
	if err != nil {
		return sendMutationError(c, err)
	}

	response := dto.NewTransactionResponse(transaction)
	return c.JSON(http.StatusCreated, response)
}

// UpdateTransaction replaces an existing transaction's editable fields
// @Summary Update transaction
// @Description Replace the kind, amount, description and tags of an existing transaction
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Param request body dto.UpdateTransactionRequest true "Replacement transaction details"
// @Success 200 {object} dto.TransactionResponse "Updated transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid transaction ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	ownerID, err := getOwnerIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Transaction ID must be a valid UUID"))
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request payload"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	input, err := buildTransactionInput(req.Kind, req.Amount, req.Description, req.Tags)
	if err != nil {
		return SendError(c, errors.TransactionInvalidAmount, errors.WithDetails(err.Error()))
	}

	transaction, err := h.transactionService.UpdateTransaction(ownerID, transactionID, input)
	if err != nil {
		return sendMutationError(c, err)
	}

	response := dto.NewTransactionResponse(transaction)
	return c.JSON(http.StatusOK, response)
}

// DeleteTransaction removes a transaction from the owner's ledger
// @Summary Delete transaction
// @Description Remove a transaction so it no longer contributes to any derived view
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} dto.MessageResponse "Deletion confirmation"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid transaction ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	ownerID, err := getOwnerIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Transaction ID must be a valid UUID"))
	}

	if err := h.transactionService.DeleteTransaction(ownerID, transactionID); err != nil {
		return sendMutationError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Transaction deleted successfully"})
}

// GetTransaction retrieves a specific transaction by ID
// @Summary Get transaction by ID
// @Description Retrieve one transaction belonging to the authenticated owner
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} dto.TransactionResponse "Transaction details"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid transaction ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	ownerID, err := getOwnerIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Transaction ID must be a valid UUID"))
	}

	transaction, err := h.transactionService.GetTransaction(ownerID, transactionID)
	if err != nil {
		if stderrors.Is(err, repositories.ErrTransactionNotFound) {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	response := dto.NewTransactionResponse(transaction)
	return c.JSON(http.StatusOK, response)
}

// ListTransactions retrieves a filtered, paginated page of transactions
// @Summary List transactions
// @Description Retrieve the authenticated owner's transactions, newest first, with optional text search and tag filters
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param search query string false "Case-insensitive text search over descriptions and tags"
// @Param tags query string false "Comma-separated tags; every tag must be present"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Number of results per page (max 100)" default(10)
// @Success 200 {object} dto.TransactionListResponse "Transaction page with pagination metadata"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	ownerID, err := getOwnerIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	filter := query.Filter{
		SearchText: c.QueryParam("search"),
		Tags:       splitTagsParam(c.QueryParam("tags")),
	}

	pagination := models.Pagination{
		Page:  getIntParam(c, "page", models.DefaultPage),
		Limit: getIntParam(c, "limit", models.DefaultLimit),
	}
	if pagination.Limit > maxPageLimit {
		pagination.Limit = maxPageLimit
	}

	page, err := h.transactionService.ListTransactions(c.Request().Context(), ownerID, filter, pagination)
	if err != nil {
		return SendSystemError(c, err)
	}

	response := dto.NewTransactionListResponse(page)
	return c.JSON(http.StatusOK, response)
}

// buildTransactionInput parses request fields into a service input
func buildTransactionInput(kind, amount, description string, tags []string) (services.TransactionInput, error) {
	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return services.TransactionInput{}, err
	}

	return services.TransactionInput{
		Kind:        kind,
		Amount:      parsedAmount,
		Description: description,
		Tags:        tags,
	}, nil
}

// sendMutationError maps service mutation errors onto API error codes
func sendMutationError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, repositories.ErrTransactionNotFound):
		return SendError(c, errors.TransactionNotFound)
	case stderrors.Is(err, repositories.ErrCacheInvalidation):
		return SendError(c, errors.CacheInvalidationFailed)
	case stderrors.Is(err, models.ErrInvalidLedgerKind):
		return SendError(c, errors.TransactionInvalidKind)
	case stderrors.Is(err, models.ErrInvalidAmount):
		return SendError(c, errors.TransactionInvalidAmount)
	case stderrors.Is(err, models.ErrTooManyTags), stderrors.Is(err, models.ErrTagTooLong):
		return SendError(c, errors.TransactionTagsInvalid)
	case stderrors.Is(err, models.ErrDescriptionTooLong):
		return SendError(c, errors.TransactionValidationFailed)
	default:
		return SendSystemError(c, err)
	}
}
