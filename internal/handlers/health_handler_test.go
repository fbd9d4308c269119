package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sms-ledger/internal/database"
	"sms-ledger/internal/models"
	"sms-ledger/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	db := database.SetupTestDB(t)
	e := echo.New()

	t.Run("healthy with closed breaker", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		breaker := service_mocks.NewMockCircuitBreakerInterface(ctrl)
		breaker.EXPECT().GetState().Return(models.CircuitStateClosed)

		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

		require.NoError(t, NewHealthCheckHandler(db.DB, breaker).HealthCheck(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, "closed", body["storage"])
		assert.NotEmpty(t, body["time"])
	})

	t.Run("reports open breaker", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		breaker := service_mocks.NewMockCircuitBreakerInterface(ctrl)
		breaker.EXPECT().GetState().Return(models.CircuitStateOpen)

		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

		require.NoError(t, NewHealthCheckHandler(db.DB, breaker).HealthCheck(c))
		assert.Contains(t, rec.Body.String(), `"storage":"open"`)
	})

	t.Run("closed database", func(t *testing.T) {
		closed := database.SetupTestDB(t)
		require.NoError(t, closed.Close())

		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

		require.NoError(t, NewHealthCheckHandler(closed.DB, nil).HealthCheck(c))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
