package handlers

import (
	"net/http"
	"time"

	"sms-ledger/internal/errors"
	"sms-ledger/internal/models"
	"sms-ledger/internal/services"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db      *gorm.DB
	breaker services.CircuitBreakerInterface
}

// NewHealthCheckHandler creates a new health check handler. breaker may be nil.
func NewHealthCheckHandler(db *gorm.DB, breaker services.CircuitBreakerInterface) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, breaker: breaker}
}

// HealthCheck adds the health check endpoint
// @Summary Health check
// @Description Check API, database connectivity and storage guard status
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,storage=string,time=string} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable (database connection failed)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	if err := sqlDB.PingContext(c.Request().Context()); err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	storageState := models.CircuitStateClosed
	if h.breaker != nil {
		storageState = h.breaker.GetState()
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"storage": storageState.String(),
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}
