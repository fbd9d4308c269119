package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type correlationKey string

// CorrelationIDKey is the context key request middleware stores the request ID under
const CorrelationIDKey correlationKey = "correlation_id"

type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	return &AuditLogger{
		logger: logger,
	}
}

func (al *AuditLogger) LogAuthEvent(ctx context.Context, eventType, method string) {
	level := slog.LevelInfo
	if eventType == "unlock_failed" {
		level = slog.LevelWarn
	}
	al.logger.LogAttrs(ctx, level, "authentication event",
		slog.String("event_type", eventType),
		slog.String("method", method),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogLockout(ctx context.Context, until time.Time) {
	al.logger.WarnContext(ctx, "unlock locked out",
		slog.String("event_type", "lockout"),
		slog.Time("locked_until", until),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogMessageIngested(ctx context.Context, entryID uuid.UUID, status, source string, confidence float64) {
	al.logger.InfoContext(ctx, "message ingested",
		slog.String("event_type", "message_ingested"),
		slog.String("entry_id", entryID.String()),
		slog.String("status", status),
		slog.String("source", source),
		slog.Float64("confidence", confidence),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogMessageSkipped(ctx context.Context, reason, source string) {
	al.logger.InfoContext(ctx, "message skipped",
		slog.String("event_type", "message_skipped"),
		slog.String("reason", reason),
		slog.String("source", source),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogDuplicateMessage(ctx context.Context, existingID uuid.UUID, reference string) {
	al.logger.InfoContext(ctx, "duplicate message",
		slog.String("event_type", "message_duplicate"),
		slog.String("existing_entry_id", existingID.String()),
		slog.String("reference_number", reference),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogEntryStatusChange(ctx context.Context, entryID uuid.UUID, oldStatus, newStatus string) {
	al.logger.InfoContext(ctx, "ledger entry state change",
		slog.String("event_type", "entry_state_change"),
		slog.String("entry_id", entryID.String()),
		slog.String("old_status", oldStatus),
		slog.String("new_status", newStatus),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}

	return ""
}
