package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/nyaysathi/nyaysathi/internal/core/domain"
)

// PipelineMetrics covers the analysis pipeline itself and is shared by the
// API (sync path) and the worker. It registers into the caller's registry.
type PipelineMetrics struct {
	analysesTotal         *prometheus.CounterVec
	ocrFallbackTotal      *prometheus.CounterVec
	simplifierSourceTotal *prometheus.CounterVec
}

func newPipelineMetrics(registry *prometheus.Registry) *PipelineMetrics {
	analysesTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nyaysathi",
			Subsystem: "pipeline",
			Name:      "analyses_total",
			Help:      "Total completed analyses by status and document type.",
		},
		[]string{"service", "status", "document_type"},
	)
	ocrFallbackTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nyaysathi",
			Subsystem: "pipeline",
			Name:      "ocr_fallback_total",
			Help:      "Recognition attempts that failed over to the next provider.",
		},
		[]string{"service", "provider"},
	)
	simplifierSourceTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nyaysathi",
			Subsystem: "pipeline",
			Name:      "simplifier_source_total",
			Help:      "Simplified explanations by producing source (ai or rule_based).",
		},
		[]string{"service", "source"},
	)

	registry.MustRegister(analysesTotal, ocrFallbackTotal, simplifierSourceTotal)

	return &PipelineMetrics{
		analysesTotal:         analysesTotal,
		ocrFallbackTotal:      ocrFallbackTotal,
		simplifierSourceTotal: simplifierSourceTotal,
	}
}

func (m *PipelineMetrics) RecordAnalysis(service string, result *domain.AnalysisResult, err error) {
	if m == nil {
		return
	}
	status := "success"
	docType := "unknown"
	if err != nil {
		status = "error"
	}
	if result != nil {
		docType = string(result.DocumentType)
		m.simplifierSourceTotal.WithLabelValues(service, string(result.SimplificationSource)).Inc()
	}
	m.analysesTotal.WithLabelValues(service, status, docType).Inc()
}

func (m *PipelineMetrics) RecordOCRFallback(service, provider string) {
	if m == nil {
		return
	}
	m.ocrFallbackTotal.WithLabelValues(service, provider).Inc()
}
