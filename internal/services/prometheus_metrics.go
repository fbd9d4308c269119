package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics
const (
	MetricMessageParsed       = "message.parsed"
	MetricMessageIngested     = "message.ingested"
	MetricMessageSkipped      = "message.skipped"
	MetricMessageDuplicate    = "message.duplicate"
	MetricIngestFailed        = "message.ingest_failed"
	MetricIngestDuration      = "message.ingest"
	MetricParseConfidence     = "parse.confidence"
	MetricEntryReviewed       = "entry.reviewed"
	MetricEntryDeleted        = "entry.deleted"
	MetricLedgerEntries       = "ledger.entries"
	MetricLedgerExported      = "ledger.exported"
	MetricAuthenticationEvent = "authentication_event"
)

type PrometheusMetrics struct {
	messagesParsed            *prometheus.CounterVec
	messagesIngested          *prometheus.CounterVec
	messagesSkipped           *prometheus.CounterVec
	ingestDuration            prometheus.Histogram
	parseConfidence           prometheus.Histogram
	entriesReviewed           *prometheus.CounterVec
	entriesDeleted            prometheus.Counter
	ledgerEntries             *prometheus.GaugeVec
	ledgerExports             *prometheus.CounterVec
	authenticationEventsTotal *prometheus.CounterVec
}

// NewPrometheusMetrics registers the ledger metrics with reg. A nil reg uses the default registerer.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		messagesParsed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "parser_messages_parsed_total",
				Help: "Total number of messages run through the parser",
			},
			[]string{"confidence_level"},
		),
		messagesIngested: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_messages_ingested_total",
				Help: "Total number of messages ingested by outcome",
			},
			[]string{"outcome", "status"},
		),
		messagesSkipped: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_messages_skipped_total",
				Help: "Total number of messages not stored, by reason",
			},
			[]string{"reason"},
		),
		ingestDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_ingest_duration_milliseconds",
				Help:    "Message ingestion duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		parseConfidence: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "parser_confidence",
				Help:    "Distribution of parser confidence scores",
				Buckets: prometheus.LinearBuckets(0.1, 0.1, 10),
			},
		),
		entriesReviewed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_entries_reviewed_total",
				Help: "Total number of manual reviews by resulting status",
			},
			[]string{"status"},
		),
		entriesDeleted: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_entries_deleted_total",
				Help: "Total number of ledger entries deleted",
			},
		),
		ledgerEntries: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ledger_entries",
				Help: "Current number of ledger entries by status",
			},
			[]string{"status"},
		),
		ledgerExports: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_exports_total",
				Help: "Total number of ledger exports by format",
			},
			[]string{"format"},
		),
		authenticationEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case MetricMessageParsed:
		m.messagesParsed.WithLabelValues(tags["confidence_level"]).Inc()
	case MetricMessageIngested:
		m.messagesIngested.WithLabelValues("stored", status).Inc()
	case MetricMessageDuplicate:
		m.messagesIngested.WithLabelValues("duplicate", "").Inc()
	case MetricMessageSkipped:
		if reason := tags["reason"]; reason != "" {
			m.messagesSkipped.WithLabelValues(reason).Inc()
		}
	case MetricIngestFailed:
		m.messagesIngested.WithLabelValues("failed", "").Inc()
	case MetricEntryReviewed:
		if status != "" {
			m.entriesReviewed.WithLabelValues(status).Inc()
		}
	case MetricEntryDeleted:
		m.entriesDeleted.Inc()
	case MetricLedgerExported:
		if format := tags["format"]; format != "" {
			m.ledgerExports.WithLabelValues(format).Inc()
		}
	case MetricAuthenticationEvent:
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricIngestDuration:
		m.ingestDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricParseConfidence:
		m.parseConfidence.Observe(value)
	case MetricLedgerEntries:
		if status := tags["status"]; status != "" {
			m.ledgerEntries.WithLabelValues(status).Set(value)
		}
	}
}
