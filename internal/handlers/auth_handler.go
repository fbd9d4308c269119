package handlers

import (
	stderrors "errors"
	"net/http"

	"sms-ledger/internal/dto"
	"sms-ledger/internal/errors"
	"sms-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles the PIN gate endpoints
type AuthHandler struct {
	pinService services.PINServiceInterface
}

// NewAuthHandler creates a new PIN gate handler
func NewAuthHandler(pinService services.PINServiceInterface) *AuthHandler {
	return &AuthHandler{
		pinService: pinService,
	}
}

// Status reports the state of the PIN gate
// @Summary PIN gate status
// @Description Report whether a PIN is configured, biometric unlock is enabled and the gate is locked out
// @Tags Authentication
// @Produce json
// @Success 200 {object} dto.AuthStatusResponse "Gate status"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001"
// @Router /auth/status [get]
func (h *AuthHandler) Status(c echo.Context) error {
	status, err := h.pinService.Status(c.Request().Context())
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, status)
}

// SetPIN configures the first PIN or changes it
// @Summary Set or change the PIN
// @Description Set the first PIN, or change it when current_pin is supplied. Changing the PIN ends every session.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.SetPINRequest true "New PIN"
// @Success 200 {object} SuccessResponse "PIN saved"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001 or VALIDATION_006"
// @Failure 401 {object} errors.ErrorResponse "Incorrect current PIN - AUTH_001"
// @Failure 403 {object} errors.ErrorResponse "Locked out - AUTH_006"
// @Failure 409 {object} errors.ErrorResponse "PIN already set - AUTH_008, or not set - AUTH_007"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001"
// @Router /auth/pin [post]
func (h *AuthHandler) SetPIN(c echo.Context) error {
	var req dto.SetPINRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	ipAddress := getClientIP(c)
	userAgent := c.Request().UserAgent()

	var err error
	message := "PIN set successfully"
	if req.CurrentPIN != "" {
		err = h.pinService.ChangePIN(ctx, req.CurrentPIN, req.PIN, ipAddress, userAgent)
		message = "PIN changed successfully"
	} else {
		err = h.pinService.SetPIN(ctx, req.PIN, ipAddress, userAgent)
	}
	if err != nil {
		return sendPINError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: message})
}

// Unlock exchanges the PIN for a session token
// @Summary Unlock with PIN
// @Description Verify the PIN and issue a session token. Repeated failures lock the gate out.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.UnlockRequest true "PIN"
// @Success 200 {object} dto.SessionResponse "Session issued"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001"
// @Failure 401 {object} errors.ErrorResponse "Incorrect PIN - AUTH_001"
// @Failure 403 {object} errors.ErrorResponse "Locked out - AUTH_006"
// @Failure 409 {object} errors.ErrorResponse "PIN not set - AUTH_007"
// @Failure 429 {object} errors.ErrorResponse "Rate limit exceeded - SYSTEM_006"
// @Router /auth/unlock [post]
func (h *AuthHandler) Unlock(c echo.Context) error {
	var req dto.UnlockRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	session, err := h.pinService.Unlock(c.Request().Context(), req.PIN, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		return sendPINError(c, err)
	}

	return c.JSON(http.StatusOK, session)
}

// UnlockBiometric issues a session after a platform biometric check
// @Summary Unlock with biometrics
// @Description Issue a session token when biometric unlock is enabled
// @Tags Authentication
// @Produce json
// @Success 200 {object} dto.SessionResponse "Session issued"
// @Failure 403 {object} errors.ErrorResponse "Biometric disabled - AUTH_009, or locked out - AUTH_006"
// @Failure 409 {object} errors.ErrorResponse "PIN not set - AUTH_007"
// @Router /auth/unlock/biometric [post]
func (h *AuthHandler) UnlockBiometric(c echo.Context) error {
	session, err := h.pinService.UnlockWithBiometric(c.Request().Context(), getClientIP(c), c.Request().UserAgent())
	if err != nil {
		return sendPINError(c, err)
	}
	return c.JSON(http.StatusOK, session)
}

// SetBiometric turns biometric unlock on or off
// @Summary Toggle biometric unlock
// @Tags Authentication
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BiometricRequest true "Biometric flag"
// @Success 200 {object} SuccessResponse "Preference saved"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001"
// @Failure 401 {object} errors.ErrorResponse "Session required - AUTH_002 to AUTH_005"
// @Router /auth/biometric [put]
func (h *AuthHandler) SetBiometric(c echo.Context) error {
	var req dto.BiometricRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	if err := h.pinService.SetBiometric(c.Request().Context(), *req.Enabled, getClientIP(c), c.Request().UserAgent()); err != nil {
		return sendPINError(c, err)
	}

	message := "Biometric unlock disabled"
	if *req.Enabled {
		message = "Biometric unlock enabled"
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: message})
}

// Lock ends every outstanding session
// @Summary Lock the ledger
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SuccessResponse "Ledger locked"
// @Failure 401 {object} errors.ErrorResponse "Session required - AUTH_002 to AUTH_005"
// @Router /auth/lock [post]
func (h *AuthHandler) Lock(c echo.Context) error {
	if err := h.pinService.Lock(c.Request().Context(), getClientIP(c), c.Request().UserAgent()); err != nil {
		return sendPINError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "Ledger locked"})
}

func sendPINError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrInvalidPIN):
		return SendError(c, errors.AuthInvalidPIN)
	case stderrors.Is(err, services.ErrLockedOut):
		return SendError(c, errors.AuthLockedOut, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrPINNotSet):
		return SendError(c, errors.AuthPINNotSet)
	case stderrors.Is(err, services.ErrPINAlreadySet):
		return SendError(c, errors.AuthPINAlreadySet)
	case stderrors.Is(err, services.ErrBiometricDisabled):
		return SendError(c, errors.AuthBiometricDisabled)
	case stderrors.Is(err, services.ErrSamePIN):
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrPINEmpty),
		stderrors.Is(err, services.ErrPINNotNumeric),
		stderrors.Is(err, services.ErrPINLength),
		stderrors.Is(err, services.ErrPINRepeated),
		stderrors.Is(err, services.ErrPINSequential):
		return SendError(c, errors.ValidationWeakPIN, errors.WithDetails(err.Error()))
	default:
		return SendSystemError(c, err)
	}
}
