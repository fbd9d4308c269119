package handlers

import (
	stderrors "errors"
	"fmt"
	"strings"

	"sms-ledger/internal/errors"
	"sms-ledger/internal/services"
	"sms-ledger/internal/storage"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

func getClientIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	return c.Request().RemoteAddr
}

// parseIDParam reads the :id path parameter as a UUID
func parseIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid transaction ID: %w", err)
	}
	return id, nil
}

// sendStorageError maps storage failures shared by every ledger endpoint
func sendStorageError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrStorageUnavailable):
		return SendError(c, errors.StorageUnavailable)
	case stderrors.Is(err, storage.ErrDecryptionFailed):
		return SendError(c, errors.StorageDecryptionFailed)
	default:
		return SendSystemError(c, err)
	}
}
