package handlers

import (
	stderrors "errors"
	"net/http"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// ReportsHandler serves derived views over an owner's ledger
type ReportsHandler struct {
	ledgerService services.LedgerServiceInterface
}

// NewReportsHandler creates a new reports handler
func NewReportsHandler(ledgerService services.LedgerServiceInterface) *ReportsHandler {
	return &ReportsHandler{
		ledgerService: ledgerService,
	}
}

// GetBalance returns the owner's current balance
// @Summary Current balance
// @Description Total inflows, total expenses, and net balance for the authenticated owner
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.BalanceResponse "Current balance"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /reports/balance [get]
func (h *ReportsHandler) GetBalance(c echo.Context) error {
	ownerID, err := getOwnerIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	snapshot, err := h.ledgerService.ComputeBalance(c.Request().Context(), ownerID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewBalanceResponse(snapshot))
}

// GetMonthlyBalance returns twelve months of activity for one year
// @Summary Monthly balance
// @Description Per-month inflow, expense, and net totals for every month of the requested year
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param year query int false "Calendar year" default(current year)
// @Success 200 {object} dto.MonthlyBalanceResponse "Twelve monthly buckets"
// @Failure 400 {object} errors.ErrorResponse "REPORT_002 - Invalid year"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /reports/monthly [get]
func (h *ReportsHandler) GetMonthlyBalance(c echo.Context) error {
	ownerID, err := getOwnerIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	year := getIntParam(c, "year", time.Now().UTC().Year())
	if year < 1900 || year > 9999 {
		return SendError(c, errors.ReportInvalidYear)
	}

	buckets, err := h.ledgerService.ComputeMonthlyBalance(c.Request().Context(), ownerID, year)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewMonthlyBalanceResponse(year, buckets))
}

// GetBalanceHistory returns the full month-by-month history with running totals
// @Summary Balance history
// @Description Chronological month buckets from the first active month to the last, with a cumulative running balance
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.BalanceHistoryResponse "Chronological period buckets"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /reports/history [get]
func (h *ReportsHandler) GetBalanceHistory(c echo.Context) error {
	ownerID, err := getOwnerIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	buckets, err := h.ledgerService.ComputeBalanceHistory(c.Request().Context(), ownerID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewBalanceHistoryResponse(buckets))
}

// GetTagStatistics returns tag usage statistics for one ledger kind
// @Summary Tag statistics
// @Description Usage count and total amount per tag within one ledger kind, most used first
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param kind query string true "Ledger kind" Enums(inflow, expense)
// @Success 200 {object} dto.TagStatisticsResponse "Tag statistics"
// @Failure 400 {object} errors.ErrorResponse "REPORT_001 - Invalid ledger kind"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /reports/tags [get]
func (h *ReportsHandler) GetTagStatistics(c echo.Context) error {
	ownerID, err := getOwnerIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	kind := c.QueryParam("kind")
	statistics, err := h.ledgerService.ComputeTagStatistics(c.Request().Context(), ownerID, kind)
	if err != nil {
		if stderrors.Is(err, models.ErrInvalidLedgerKind) {
			return SendError(c, errors.ReportInvalidLedgerKind)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTagStatisticsResponse(kind, statistics))
}

// GetTopTags returns the highest-value tags for both ledger kinds
// @Summary Top tags
// @Description Tags ranked by total amount, separately for inflows and expenses
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.TopTagsResponse "Ranked tags per ledger kind"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /reports/top-tags [get]
func (h *ReportsHandler) GetTopTags(c echo.Context) error {
	ownerID, err := getOwnerIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	topTags, err := h.ledgerService.ComputeTopTags(c.Request().Context(), ownerID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTopTagsResponse(topTags))
}

// GetFinancialSummary returns the combined balance and per-kind statistics
// @Summary Financial summary
// @Description Current balance plus transaction counts and averages for each ledger kind
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.FinancialSummaryResponse "Financial summary"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /reports/summary [get]
func (h *ReportsHandler) GetFinancialSummary(c echo.Context) error {
	ownerID, err := getOwnerIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	summary, err := h.ledgerService.ComputeFinancialSummary(c.Request().Context(), ownerID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewFinancialSummaryResponse(summary))
}
