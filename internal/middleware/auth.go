package middleware

import (
	stderrors "errors"
	"log/slog"

	"sms-ledger/internal/errors"
	"sms-ledger/internal/handlers"
	"sms-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	// SessionClaimsKey holds the validated *models.CustomClaims
	SessionClaimsKey = "session_claims"
	// UnlockMethodKey holds how the current session was unlocked
	UnlockMethodKey = "unlock_method"
)

// RequireSession admits requests carrying a token from the current unlock.
// Tokens issued before the last lock or PIN change are refused.
func RequireSession(tokenService services.TokenServiceInterface, pinService services.PINServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateSessionToken(token)
			if err != nil {
				if stderrors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			if !pinService.IsUnlocked(c.Request().Context(), token) {
				return handlers.SendError(c, errors.AuthSessionLocked)
			}

			c.Set(SessionClaimsKey, claims)
			c.Set(UnlockMethodKey, claims.UnlockMethod)

			return next(c)
		}
	}
}

// RequireSessionIfPINSet lets requests through unauthenticated until a PIN
// exists, then behaves like RequireSession. It guards first-time PIN setup.
func RequireSessionIfPINSet(tokenService services.TokenServiceInterface, pinService services.PINServiceInterface) echo.MiddlewareFunc {
	requireSession := RequireSession(tokenService, pinService)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		guarded := requireSession(next)

		return func(c echo.Context) error {
			status, err := pinService.Status(c.Request().Context())
			if err != nil {
				slog.ErrorContext(c.Request().Context(), "failed to load PIN status", "error", err)
				return handlers.SendSystemError(c, err)
			}
			if !status.PINConfigured {
				return next(c)
			}
			return guarded(c)
		}
	}
}
