package handlers

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"sms-ledger/internal/dto"
	"sms-ledger/internal/errors"
	"sms-ledger/internal/models"
	"sms-ledger/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// TransactionHandler serves the ledger: browsing, review, deletion and export
type TransactionHandler struct {
	ledgerService services.LedgerServiceInterface
	exportService services.ExportServiceInterface
	now           func() time.Time
}

// NewTransactionHandler creates a new ledger handler
func NewTransactionHandler(
	ledgerService services.LedgerServiceInterface,
	exportService services.ExportServiceInterface,
) *TransactionHandler {
	return &TransactionHandler{
		ledgerService: ledgerService,
		exportService: exportService,
		now:           time.Now,
	}
}

// ListTransactions returns one page of ledger entries
// @Summary List transactions
// @Description List ledger entries, newest first, with optional filters
// @Tags Transactions
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "Start date (YYYY-MM-DD or RFC3339)"
// @Param end_date query string false "End date (YYYY-MM-DD or RFC3339); a bare date covers the whole day"
// @Param type query string false "income, expense or transfer"
// @Param status query string false "confirmed, needs_review or rejected"
// @Param category query string false "Category"
// @Param source query string false "sms, notification or manual"
// @Param merchant query string false "Merchant name substring"
// @Param min_amount query string false "Minimum amount"
// @Param max_amount query string false "Maximum amount"
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Page size (max 100)" default(20)
// @Success 200 {object} dto.ListTransactionsResponse "Transactions retrieved"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001 or VALIDATION_005"
// @Failure 401 {object} errors.ErrorResponse "Session required - AUTH_002 to AUTH_005"
// @Failure 503 {object} errors.ErrorResponse "Storage unavailable - STORAGE_002"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	filters, err := parseLedgerFilters(c)
	if err != nil {
		return sendFilterError(c, err)
	}

	pagination, err := parsePaginationParams(c)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}
	filters.Offset = pagination.Offset
	filters.Limit = pagination.Limit

	entries, total, err := h.ledgerService.List(c.Request().Context(), filters)
	if err != nil {
		return sendLedgerError(c, err)
	}

	if entries == nil {
		entries = []*models.LedgerEntry{}
	}

	return c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: entries,
		Pagination: dto.PaginationInfo{
			Offset:  pagination.Offset,
			Limit:   pagination.Limit,
			Total:   total,
			HasMore: int64(pagination.Offset+len(entries)) < total,
		},
	})
}

// GetTransaction returns one ledger entry
// @Summary Get transaction
// @Tags Transactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} models.LedgerEntry "Transaction retrieved"
// @Failure 400 {object} errors.ErrorResponse "Invalid ID - VALIDATION_003"
// @Failure 404 {object} errors.ErrorResponse "Not found - TRANSACTION_001"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Transaction ID must be a valid UUID"))
	}

	entry, err := h.ledgerService.Get(c.Request().Context(), id)
	if err != nil {
		return sendLedgerError(c, err)
	}

	return c.JSON(http.StatusOK, entry)
}

// ReviewTransaction corrects fields or confirms/rejects an entry
// @Summary Review transaction
// @Description Correct parsed fields and move a needs_review entry to confirmed or rejected
// @Tags Transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Param request body dto.ReviewEntryRequest true "Changes"
// @Success 200 {object} models.LedgerEntry "Transaction updated"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001 or TRANSACTION_002"
// @Failure 404 {object} errors.ErrorResponse "Not found - TRANSACTION_001"
// @Failure 409 {object} errors.ErrorResponse "Status change not allowed - TRANSACTION_004"
// @Router /transactions/{id} [patch]
func (h *TransactionHandler) ReviewTransaction(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Transaction ID must be a valid UUID"))
	}

	var req dto.ReviewEntryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	if req.IsEmpty() {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("at least one field must be changed"))
	}

	if req.Amount != nil && !isValidAmount(*req.Amount) {
		return SendError(c, errors.TransactionInvalidAmount,
			errors.WithDetails("amount must be positive with at most 2 decimal places"))
	}

	entry, err := h.ledgerService.Review(c.Request().Context(), id, &req, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		return sendLedgerError(c, err)
	}

	return c.JSON(http.StatusOK, entry)
}

// DeleteTransaction removes an entry from the ledger
// @Summary Delete transaction
// @Tags Transactions
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 204 "Transaction deleted"
// @Failure 400 {object} errors.ErrorResponse "Invalid ID - VALIDATION_003"
// @Failure 404 {object} errors.ErrorResponse "Not found - TRANSACTION_001"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Transaction ID must be a valid UUID"))
	}

	if err := h.ledgerService.Delete(c.Request().Context(), id, getClientIP(c), c.Request().UserAgent()); err != nil {
		return sendLedgerError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ExportTransactions downloads the filtered ledger as CSV or JSON
// @Summary Export transactions
// @Description Export every entry matching the filters. Pagination does not apply.
// @Tags Transactions
// @Produce text/csv
// @Produce json
// @Security BearerAuth
// @Param format query string false "csv or json" default(csv)
// @Success 200 {file} file "Export file"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001"
// @Router /transactions/export [get]
func (h *TransactionHandler) ExportTransactions(c echo.Context) error {
	format := strings.ToLower(c.QueryParam("format"))
	if format == "" {
		format = dto.ExportFormatCSV
	}

	filters, err := parseLedgerFilters(c)
	if err != nil {
		return sendFilterError(c, err)
	}

	var buf bytes.Buffer
	if _, err := h.exportService.Export(c.Request().Context(), &buf, format, filters, getClientIP(c), c.Request().UserAgent()); err != nil {
		return sendLedgerError(c, err)
	}

	contentType := "text/csv; charset=utf-8"
	if format == dto.ExportFormatJSON {
		contentType = echo.MIMEApplicationJSONCharsetUTF8
	}
	filename := fmt.Sprintf("ledger-%s.%s", h.now().UTC().Format("20060102-150405"), format)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))

	return c.Blob(http.StatusOK, contentType, buf.Bytes())
}

// Summary totals confirmed entries per category
// @Summary Ledger summary
// @Description Per-category totals over confirmed entries plus status counts
// @Tags Transactions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.LedgerSummary "Summary"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001"
// @Router /transactions/summary [get]
func (h *TransactionHandler) Summary(c echo.Context) error {
	filters, err := parseLedgerFilters(c)
	if err != nil {
		return sendFilterError(c, err)
	}

	summary, err := h.ledgerService.Summary(c.Request().Context(), filters)
	if err != nil {
		return sendLedgerError(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}

var errInvalidQuery = stderrors.New("invalid query parameters")

// parseLedgerFilters reads and validates the filter query
func parseLedgerFilters(c echo.Context) (models.LedgerFilters, error) {
	var query dto.TransactionFilters
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return models.LedgerFilters{}, errInvalidQuery
	}

	if err := c.Validate(query); err != nil {
		return models.LedgerFilters{}, err
	}

	return toLedgerFilters(query)
}

// sendFilterError answers a parseLedgerFilters failure. Validator errors are
// returned as-is for the HTTP error handler to format.
func sendFilterError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, errInvalidQuery):
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	case stderrors.Is(err, errInvalidDate):
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	case stderrors.Is(err, errInvalidAmount):
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	default:
		return err
	}
}

var (
	errInvalidDate   = stderrors.New("invalid date, use YYYY-MM-DD or RFC3339")
	errInvalidAmount = stderrors.New("invalid amount")
)

func toLedgerFilters(query dto.TransactionFilters) (models.LedgerFilters, error) {
	filters := models.LedgerFilters{
		Type:         query.Type,
		Status:       query.Status,
		Category:     query.Category,
		Source:       query.Source,
		MerchantName: query.MerchantName,
	}

	if query.StartDate != "" {
		start, _, err := parseDateParam(query.StartDate)
		if err != nil {
			return filters, fmt.Errorf("%w: start_date", errInvalidDate)
		}
		filters.StartDate = &start
	}

	if query.EndDate != "" {
		end, dateOnly, err := parseDateParam(query.EndDate)
		if err != nil {
			return filters, fmt.Errorf("%w: end_date", errInvalidDate)
		}
		if dateOnly {
			end = end.Add(24*time.Hour - time.Nanosecond)
		}
		filters.EndDate = &end
	}

	if query.MinAmount != "" {
		minAmount, err := decimal.NewFromString(strings.TrimSpace(query.MinAmount))
		if err != nil {
			return filters, fmt.Errorf("%w: min_amount", errInvalidAmount)
		}
		filters.MinAmount = &minAmount
	}
	if query.MaxAmount != "" {
		maxAmount, err := decimal.NewFromString(strings.TrimSpace(query.MaxAmount))
		if err != nil {
			return filters, fmt.Errorf("%w: max_amount", errInvalidAmount)
		}
		filters.MaxAmount = &maxAmount
	}

	return filters, nil
}

// parseDateParam accepts a bare date or a full RFC3339 timestamp
func parseDateParam(value string) (time.Time, bool, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, true, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	return t, false, err
}

// parsePaginationParams parses pagination parameters from query string
func parsePaginationParams(c echo.Context) (dto.PaginationParams, error) {
	params := dto.PaginationParams{
		Offset: getIntParam(c, "offset", 0),
		Limit:  getIntParam(c, "limit", dto.DefaultPageLimit),
	}

	if params.Offset < 0 {
		return params, fmt.Errorf("offset cannot be negative")
	}

	if params.Limit < 1 {
		return params, fmt.Errorf("limit must be at least 1")
	}

	if params.Limit > dto.MaxPageLimit {
		params.Limit = dto.MaxPageLimit
	}

	return params, nil
}

func isValidAmount(amount decimal.Decimal) bool {
	return amount.IsPositive() && amount.Equal(amount.Round(2))
}

func sendLedgerError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrEntryNotFound):
		return SendError(c, errors.TransactionNotFound)
	case stderrors.Is(err, services.ErrEntryNotEditable),
		stderrors.Is(err, services.ErrInvalidStatusTransition):
		return SendError(c, errors.TransactionInvalidTransition, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrEmptyReview):
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrInvalidDateRange):
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrInvalidAmountRange):
		return SendError(c, errors.ValidationOutOfRange, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrInvalidExportFormat):
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("format must be csv or json"))
	case stderrors.Is(err, models.ErrInvalidAmount):
		return SendError(c, errors.TransactionInvalidAmount)
	case stderrors.Is(err, models.ErrInvalidLedgerType):
		return SendError(c, errors.TransactionInvalidType)
	case stderrors.Is(err, models.ErrInvalidLedgerStatus):
		return SendError(c, errors.TransactionInvalidStatus)
	case stderrors.Is(err, models.ErrInvalidSource),
		stderrors.Is(err, models.ErrMissingDescription),
		stderrors.Is(err, models.ErrCategoryTooLong):
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	default:
		return sendStorageError(c, err)
	}
}
