package handlers

import (
	stderrors "errors"
	"net/http"

	"sms-ledger/internal/dto"
	"sms-ledger/internal/errors"
	"sms-ledger/internal/models"
	"sms-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// AuditHandler exposes the persisted security and review trail
type AuditHandler struct {
	auditService services.AuditServiceInterface
}

// NewAuditHandler creates a new audit trail handler
func NewAuditHandler(auditService services.AuditServiceInterface) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// ListActivity returns recent audit entries, newest first
// @Summary List activity
// @Description Page through unlock attempts, PIN changes, reviews, deletions and exports
// @Tags Audit
// @Produce json
// @Security BearerAuth
// @Param action query string false "Filter by action, e.g. unlock_failed"
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Page size (max 100)" default(20)
// @Success 200 {object} dto.AuditLogResponse "Activity retrieved"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001"
// @Failure 401 {object} errors.ErrorResponse "Session required - AUTH_002 to AUTH_005"
// @Router /audit [get]
func (h *AuditHandler) ListActivity(c echo.Context) error {
	pagination, err := parsePaginationParams(c)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	action := c.QueryParam("action")
	logs, total, err := h.auditService.ListActivity(c.Request().Context(), action, pagination.Offset, pagination.Limit)
	if err != nil {
		if stderrors.Is(err, services.ErrInvalidAction) {
			return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	if logs == nil {
		logs = []*models.AuditLog{}
	}

	return c.JSON(http.StatusOK, dto.AuditLogResponse{
		Logs: logs,
		Pagination: dto.PaginationInfo{
			Offset:  pagination.Offset,
			Limit:   pagination.Limit,
			Total:   total,
			HasMore: int64(pagination.Offset+len(logs)) < total,
		},
	})
}
