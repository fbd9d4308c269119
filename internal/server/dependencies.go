package server

import (
	"fmt"
	"log/slog"

	"sms-ledger/internal/config"
	"sms-ledger/internal/middleware"
	"sms-ledger/internal/parser"
	"sms-ledger/internal/repositories"
	"sms-ledger/internal/services"
	"sms-ledger/internal/storage"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// NewDependencies constructs repositories, the encrypted ledger and every service from cfg.
// Metrics are registered with reg and served from gatherer.
func NewDependencies(
	cfg *config.Config,
	db *gorm.DB,
	reg prometheus.Registerer,
	gatherer prometheus.Gatherer,
	logger *slog.Logger,
) (*Dependencies, error) {
	messageParser, err := NewParser(cfg.Parser, logger)
	if err != nil {
		return nil, err
	}

	store, err := storage.NewEncryptedStore(
		repositories.NewKVRepository(db),
		storage.DeriveKey(cfg.Storage.Passphrase, cfg.Storage.Salt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open encrypted store: %w", err)
	}

	breaker := services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig())
	ledgerRepo := services.NewGuardedLedgerRepository(repositories.NewLedgerRepository(store), breaker)

	metrics := services.NewPrometheusMetrics(reg)
	auditLogger := services.NewAuditLogger(logger)
	auditService := services.NewAuditService(repositories.NewAuditLogRepository(db))
	tokenService := services.NewTokenService(&cfg.JWT)
	pinService := services.NewPINService(
		repositories.NewCredentialRepository(db),
		tokenService,
		auditService,
		auditLogger,
		metrics,
		cfg.Security,
		logger,
	)

	return &Dependencies{
		DB:               db,
		Breaker:          breaker,
		Parser:           messageParser,
		TokenService:     tokenService,
		PINService:       pinService,
		IngestionService: services.NewIngestionService(messageParser, ledgerRepo, auditLogger, metrics, cfg.Parser.AutoConfirmThreshold, logger),
		LedgerService:    services.NewLedgerService(ledgerRepo, auditService, auditLogger, metrics, logger),
		ExportService:    services.NewExportService(ledgerRepo, auditService, metrics, logger),
		AuditService:     auditService,
		UnlockLimiter:    middleware.NewRateLimiter(float64(cfg.Security.RateLimitPerSecond), cfg.Security.RateLimitBurst),
		MetricsGatherer:  gatherer,
		CORSAllowOrigins: cfg.Server.CORSAllowOrigins,
		Logger:           logger,
	}, nil
}

// NewParser builds the extraction engine from the parser settings
func NewParser(cfg config.ParserConfig, logger *slog.Logger) (*parser.Parser, error) {
	opts := []parser.Option{parser.WithLogger(logger)}

	if cfg.TablesFile != "" {
		tables, err := parser.LoadTables(cfg.TablesFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load parser tables: %w", err)
		}
		opts = append(opts, parser.WithTables(tables))
	}

	if cfg.Seeded {
		opts = append(opts, parser.WithRandomSource(parser.NewSeededSource(cfg.RandomSeed)))
	}

	return parser.New(opts...), nil
}
