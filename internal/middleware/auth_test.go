package middleware

import (
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sms-ledger/internal/config"
	"sms-ledger/internal/dto"
	"sms-ledger/internal/models"
	"sms-ledger/internal/services"
	"sms-ledger/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	jwtConfig    *config.JWTConfig
	tokenService services.TokenServiceInterface
	mockPIN      *service_mocks.MockPINServiceInterface
	credential   *models.Credential
	e            *echo.Echo
}

func (s *AuthMiddlewareSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	s.jwtConfig = &config.JWTConfig{
		PrivateKey:      privateKey,
		PublicKey:       publicKey,
		Issuer:          "test-issuer",
		SessionDuration: 15 * time.Minute,
	}
	s.tokenService = services.NewTokenService(s.jwtConfig)
	s.mockPIN = service_mocks.NewMockPINServiceInterface(s.ctrl)
	s.credential = &models.Credential{ID: models.CredentialID, SessionVersion: 3}
	s.e = echo.New()
}

func (s *AuthMiddlewareSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthMiddlewareSuite) token(svc services.TokenServiceInterface) string {
	token, _, err := svc.GenerateSessionToken(s.credential, services.UnlockMethodBiometric)
	s.Require().NoError(err)
	return token
}

func (s *AuthMiddlewareSuite) serve(mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, bool) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	reached := false
	err := mw(func(c echo.Context) error {
		reached = true
		claims, ok := c.Get(SessionClaimsKey).(*models.CustomClaims)
		s.True(ok)
		s.Equal(3, claims.SessionVersion)
		s.Equal(services.UnlockMethodBiometric, c.Get(UnlockMethodKey))
		return c.NoContent(http.StatusOK)
	})(c)
	s.Require().NoError(err)
	return rec, reached
}

func (s *AuthMiddlewareSuite) TestRequireSession_ValidToken() {
	token := s.token(s.tokenService)
	s.mockPIN.EXPECT().IsUnlocked(gomock.Any(), token).Return(true)

	rec, reached := s.serve(RequireSession(s.tokenService, s.mockPIN), "Bearer "+token)

	s.True(reached)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireSession_MissingHeader() {
	rec, reached := s.serve(RequireSession(s.tokenService, s.mockPIN), "")

	s.False(reached)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_002")
}

func (s *AuthMiddlewareSuite) TestRequireSession_MalformedHeader() {
	rec, reached := s.serve(RequireSession(s.tokenService, s.mockPIN), "Token abc")

	s.False(reached)
	s.Contains(rec.Body.String(), "AUTH_004")
}

func (s *AuthMiddlewareSuite) TestRequireSession_ForeignSignature() {
	other := services.NewTokenService(func() *config.JWTConfig {
		priv, pub, err := config.GenerateRSAKeyPair()
		s.Require().NoError(err)
		return &config.JWTConfig{PrivateKey: priv, PublicKey: pub, Issuer: "test-issuer", SessionDuration: time.Minute}
	}())

	rec, reached := s.serve(RequireSession(s.tokenService, s.mockPIN), "Bearer "+s.token(other))

	s.False(reached)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_004")
}

func (s *AuthMiddlewareSuite) TestRequireSession_ExpiredToken() {
	expired := *s.jwtConfig
	expired.SessionDuration = -time.Minute
	token := s.token(services.NewTokenService(&expired))

	rec, reached := s.serve(RequireSession(s.tokenService, s.mockPIN), "Bearer "+token)

	s.False(reached)
	s.Contains(rec.Body.String(), "AUTH_003")
}

func (s *AuthMiddlewareSuite) TestRequireSession_LockedLedger() {
	token := s.token(s.tokenService)
	s.mockPIN.EXPECT().IsUnlocked(gomock.Any(), token).Return(false)

	rec, reached := s.serve(RequireSession(s.tokenService, s.mockPIN), "Bearer "+token)

	s.False(reached)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_005")
}

func (s *AuthMiddlewareSuite) TestRequireSessionIfPINSet_OpenBeforeSetup() {
	s.mockPIN.EXPECT().Status(gomock.Any()).Return(&dto.AuthStatusResponse{PINConfigured: false}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/pin", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	reached := false
	err := RequireSessionIfPINSet(s.tokenService, s.mockPIN)(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusCreated)
	})(c)

	s.Require().NoError(err)
	s.True(reached)
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireSessionIfPINSet_RequiresSessionAfterSetup() {
	s.mockPIN.EXPECT().Status(gomock.Any()).Return(&dto.AuthStatusResponse{PINConfigured: true}, nil)

	rec, reached := s.serve(RequireSessionIfPINSet(s.tokenService, s.mockPIN), "")

	s.False(reached)
	s.Contains(rec.Body.String(), "AUTH_002")
}

func (s *AuthMiddlewareSuite) TestRequireSessionIfPINSet_StatusFailure() {
	s.mockPIN.EXPECT().Status(gomock.Any()).Return(nil, stderrors.New("db down"))

	rec, reached := s.serve(RequireSessionIfPINSet(s.tokenService, s.mockPIN), "")

	s.False(reached)
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), "db down")
}
