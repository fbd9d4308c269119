// Package server assembles the HTTP surface from already constructed services.
package server

import (
	"log/slog"
	"net/http"

	"sms-ledger/internal/handlers"
	"sms-ledger/internal/middleware"
	"sms-ledger/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// Dependencies carries everything the router wires into handlers
type Dependencies struct {
	DB               *gorm.DB
	Breaker          services.CircuitBreakerInterface
	Parser           services.MessageParserInterface
	TokenService     services.TokenServiceInterface
	PINService       services.PINServiceInterface
	IngestionService services.IngestionServiceInterface
	LedgerService    services.LedgerServiceInterface
	ExportService    services.ExportServiceInterface
	AuditService     services.AuditServiceInterface
	UnlockLimiter    *middleware.RateLimiter
	MetricsGatherer  prometheus.Gatherer
	CORSAllowOrigins []string
	Logger           *slog.Logger
}

// NewRouter builds the echo instance with middleware and every route
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(requestLogger(deps.Logger))
	if len(deps.CORSAllowOrigins) > 0 {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins: deps.CORSAllowOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
			AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, middleware.TraceIDHeader},
		}))
	}
	e.Use(echomw.BodyLimit("2M"))

	healthHandler := handlers.NewHealthCheckHandler(deps.DB, deps.Breaker)
	authHandler := handlers.NewAuthHandler(deps.PINService)
	messageHandler := handlers.NewMessageHandler(deps.Parser, deps.IngestionService)
	transactionHandler := handlers.NewTransactionHandler(deps.LedgerService, deps.ExportService)
	auditHandler := handlers.NewAuditHandler(deps.AuditService)

	e.GET("/health", healthHandler.HealthCheck)

	gatherer := deps.MetricsGatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := e.Group("/api/v1")
	requireSession := middleware.RequireSession(deps.TokenService, deps.PINService)

	auth := api.Group("/auth")
	auth.GET("/status", authHandler.Status)
	auth.POST("/pin", authHandler.SetPIN, middleware.RequireSessionIfPINSet(deps.TokenService, deps.PINService))

	unlock := auth.Group("/unlock")
	if deps.UnlockLimiter != nil {
		unlock.Use(deps.UnlockLimiter.Middleware())
	}
	unlock.POST("", authHandler.Unlock)
	unlock.POST("/biometric", authHandler.UnlockBiometric)

	auth.POST("/biometric", authHandler.SetBiometric, requireSession)
	auth.POST("/lock", authHandler.Lock, requireSession)

	messages := api.Group("/messages", requireSession)
	messages.POST("/parse", messageHandler.Parse)
	messages.POST("/check", messageHandler.Check)
	messages.POST("/ingest", messageHandler.Ingest)

	transactions := api.Group("/transactions", requireSession)
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.GET("/export", transactionHandler.ExportTransactions)
	transactions.GET("/summary", transactionHandler.Summary)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.PATCH("/:id", transactionHandler.ReviewTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	api.GET("/audit", auditHandler.ListActivity, requireSession)

	return e
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:    true,
		LogURIPath:   true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("path", v.URIPath),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("trace_id", middleware.GetTraceID(c)),
			}
			level := slog.LevelInfo
			if v.Error != nil {
				level = slog.LevelError
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}
