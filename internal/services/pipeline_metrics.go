package services

import (
	"time"

	apperrors "finsight/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// decodeStages maps wire decoder failure codes to the stage label reported
// on the decode-failure counter.
var decodeStages = map[apperrors.ErrorCode]string{
	apperrors.DecodeNoJSONObject:  "extract",
	apperrors.DecodeEnvelopeParse: "envelope",
	apperrors.DecodeInvalidRPC:    "rpc",
	apperrors.DecodePayloadParse:  "payload",
}

// recordFetchFailure reports a failed tool call. Decoder failures are
// additionally tagged with the stage that rejected the response.
func recordFetchFailure(m MetricsRecorderInterface, tool string, err error, elapsed time.Duration) {
	if stage, ok := decodeStages[apperrors.CodeOf(err)]; ok {
		m.RecordDecodeFailure(stage)
	}
	m.RecordFetch(tool, "error", elapsed)
}

type PipelineMetrics struct {
	fetchTotal          *prometheus.CounterVec
	fetchDuration       *prometheus.HistogramVec
	decodeFailures      *prometheus.CounterVec
	enrichmentFallbacks *prometheus.CounterVec
	advisorGenerations  *prometheus.CounterVec
	advisorDuration     prometheus.Histogram
}

func NewPipelineMetrics() MetricsRecorderInterface {
	return &PipelineMetrics{
		fetchTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aggregator_fetch_total",
				Help: "Total number of aggregator tool calls by tool and status",
			},
			[]string{"tool", "status"},
		),
		fetchDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "aggregator_fetch_duration_milliseconds",
				Help:    "Aggregator tool call duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(10, 2, 12),
			},
			[]string{"tool"},
		),
		decodeFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wire_decode_failures_total",
				Help: "Total number of wire decode failures by stage",
			},
			[]string{"stage"},
		),
		enrichmentFallbacks: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "enrichment_fallbacks_total",
				Help: "Total number of per-item enrichment failures degraded to fallbacks",
			},
			[]string{"kind"},
		),
		advisorGenerations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "advisor_generations_total",
				Help: "Total number of AI advisor generations by operation and status",
			},
			[]string{"operation", "status"},
		),
		advisorDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "advisor_generation_duration_milliseconds",
				Help:    "AI advisor generation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(100, 2, 10),
			},
		),
	}
}

func (m *PipelineMetrics) RecordFetch(tool, status string, duration time.Duration) {
	m.fetchTotal.WithLabelValues(tool, status).Inc()
	m.fetchDuration.WithLabelValues(tool).Observe(float64(duration.Milliseconds()))
}

func (m *PipelineMetrics) RecordDecodeFailure(stage string) {
	m.decodeFailures.WithLabelValues(stage).Inc()
}

func (m *PipelineMetrics) RecordEnrichmentFallback(kind string) {
	m.enrichmentFallbacks.WithLabelValues(kind).Inc()
}

func (m *PipelineMetrics) RecordAdvisorGeneration(operation, status string, duration time.Duration) {
	m.advisorGenerations.WithLabelValues(operation, status).Inc()
	m.advisorDuration.Observe(float64(duration.Milliseconds()))
}

// NoopMetrics is the recorder used in tests.
type NoopMetrics struct{}

func (NoopMetrics) RecordFetch(string, string, time.Duration)             {}
func (NoopMetrics) RecordDecodeFailure(string)                            {}
func (NoopMetrics) RecordEnrichmentFallback(string)                       {}
func (NoopMetrics) RecordAdvisorGeneration(string, string, time.Duration) {}
