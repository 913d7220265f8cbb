// Package ocr chains text-recognition providers behind a single
// ports.TextRecognizer. Order matters: the first provider that supports the
// upload and returns text wins, the rest are fallbacks.
package ocr

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nyaysathi/nyaysathi/internal/core/domain"
	"github.com/nyaysathi/nyaysathi/internal/infrastructure/resilience"
	"github.com/nyaysathi/nyaysathi/internal/observability/metrics"
)

// Provider is one step in the recognition chain.
type Provider interface {
	Name() string
	Supports(upload domain.RawUpload) bool
	Recognize(ctx context.Context, upload domain.RawUpload) (string, error)
}

type Gateway struct {
	service   string
	providers []Provider
	executor  *resilience.Executor
	pipeline  *metrics.PipelineMetrics
	logger    *slog.Logger
}

// NewGateway builds the recognition chain. executor and pipeline may be nil.
func NewGateway(
	service string,
	executor *resilience.Executor,
	pipeline *metrics.PipelineMetrics,
	logger *slog.Logger,
	providers ...Provider,
) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{
		service:   service,
		providers: providers,
		executor:  executor,
		pipeline:  pipeline,
		logger:    logger,
	}
}

func (g *Gateway) Recognize(ctx context.Context, upload domain.RawUpload) (domain.OcrOutcome, error) {
	if len(upload.Content) == 0 {
		return domain.OcrOutcome{}, domain.WrapError(domain.ErrEmptyInput, "recognize text",
			errors.New("uploaded file is empty"))
	}

	var lastErr error
	for _, provider := range g.providers {
		if !provider.Supports(upload) {
			continue
		}

		text, err := g.recognizeWith(ctx, provider, upload)
		if err != nil {
			if ctx.Err() != nil {
				return domain.OcrOutcome{}, ctx.Err()
			}
			g.logger.Warn("ocr provider failed, trying next",
				"provider", provider.Name(), "filename", upload.Filename, "error", err)
			g.pipeline.RecordOCRFallback(g.service, provider.Name())
			lastErr = err
			continue
		}

		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			lastErr = fmt.Errorf("%s returned empty text", provider.Name())
			continue
		}
		return domain.OcrOutcome{Text: trimmed, Method: provider.Name()}, nil
	}

	if lastErr == nil {
		lastErr = errors.New("no recognition provider supports this file type")
	}
	return domain.OcrOutcome{}, domain.WrapError(domain.ErrOCRFailure, "recognize text", lastErr)
}

func (g *Gateway) recognizeWith(ctx context.Context, provider Provider, upload domain.RawUpload) (string, error) {
	if g.executor == nil {
		return provider.Recognize(ctx, upload)
	}

	var text string
	err := g.executor.Execute(ctx, "ocr."+provider.Name(), func(ctx context.Context) error {
		out, err := provider.Recognize(ctx, upload)
		if err != nil {
			return err
		}
		text = out
		return nil
	}, classifyProviderError)
	return text, err
}

// classifyProviderError keeps breaker accounting honest: caller aborts do not
// count against a provider, everything else does. Retrying is left to the
// chain itself, not the executor.
func classifyProviderError(err error) resilience.ErrorClassification {
	if err == nil {
		return resilience.ErrorClassification{}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return resilience.ErrorClassification{Retryable: false, RecordFailure: false}
	}
	return resilience.ErrorClassification{Retryable: false, RecordFailure: true}
}
