// Package bootstrap wires the pipeline for both binaries. The api and the
// worker share the same construction; only what they run afterwards differs.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nyaysathi/nyaysathi/internal/config"
	"github.com/nyaysathi/nyaysathi/internal/core/classify"
	"github.com/nyaysathi/nyaysathi/internal/core/domain"
	"github.com/nyaysathi/nyaysathi/internal/core/ports"
	"github.com/nyaysathi/nyaysathi/internal/core/simplify"
	"github.com/nyaysathi/nyaysathi/internal/core/usecase"
	"github.com/nyaysathi/nyaysathi/internal/export"
	"github.com/nyaysathi/nyaysathi/internal/infrastructure/llm/gemini"
	"github.com/nyaysathi/nyaysathi/internal/infrastructure/ocr"
	"github.com/nyaysathi/nyaysathi/internal/infrastructure/ocr/ocrspace"
	"github.com/nyaysathi/nyaysathi/internal/infrastructure/ocr/pdftext"
	"github.com/nyaysathi/nyaysathi/internal/infrastructure/ocr/tesseract"
	"github.com/nyaysathi/nyaysathi/internal/infrastructure/queue/nats"
	"github.com/nyaysathi/nyaysathi/internal/infrastructure/repository/postgres"
	"github.com/nyaysathi/nyaysathi/internal/infrastructure/resilience"
	"github.com/nyaysathi/nyaysathi/internal/infrastructure/storage/localfs"
	"github.com/nyaysathi/nyaysathi/internal/observability/metrics"
)

type App struct {
	Config config.Config

	Queue     *nats.Queue
	Repo      ports.AnalysisRepository
	AnalyzeUC ports.DocumentAnalyzer
	IngestUC  ports.DocumentIngestor
	ProcessUC ports.AnalysisProcessor
	Exporter  *export.Service

	closeFn func()
}

func New(
	ctx context.Context,
	cfg config.Config,
	service string,
	logger *slog.Logger,
	pipeline *metrics.PipelineMetrics,
) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := postgres.OpenDB(cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	repo := postgres.NewAnalysisRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	storage, err := localfs.New(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("init object storage: %w", err)
	}

	queue, err := nats.NewWithOptions(cfg.NATSURL, cfg.NATSSubject, nats.Options{
		ResilienceExecutor: resilience.NewExecutor(resilience.PublishConfig()),
		Logger:             logger,
	})
	if err != nil {
		return nil, fmt.Errorf("init message queue: %w", err)
	}

	providers := []ocr.Provider{
		pdftext.New(),
		ocrspace.New(ocrspace.Config{
			URL:               cfg.OCRSpaceURL,
			APIKey:            cfg.OCRSpaceAPIKey,
			Timeout:           time.Duration(cfg.OCRSpaceTimeoutSeconds) * time.Second,
			RequestsPerMinute: cfg.OCRSpaceRequestsPerMinute,
		}),
	}
	if tesseract.Available(cfg.TesseractBin) {
		providers = append(providers, tesseract.New(cfg.TesseractBin, cfg.TesseractLang))
	} else {
		logger.Warn("tesseract binary not found, offline OCR fallback disabled",
			"bin", cfg.TesseractBin)
	}
	gateway := ocr.NewGateway(service, resilience.NewExecutor(resilience.OCRConfig()), pipeline, logger, providers...)

	var generator ports.TextGenerator
	var geminiClient *gemini.Client
	if cfg.GeminiAPIKey != "" {
		geminiClient, err = gemini.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, fmt.Errorf("init gemini client: %w", err)
		}
		generator = geminiClient
	} else {
		logger.Warn("no gemini api key configured, using rule-based simplification only")
	}

	simplifier := simplify.New(generator, logger)
	analyzeUC := instrumentAnalyzer(
		usecase.NewAnalyzeDocumentUseCase(gateway, classify.New(), simplifier, logger),
		pipeline, service,
	)

	return &App{
		Config:    cfg,
		Queue:     queue,
		Repo:      repo,
		AnalyzeUC: analyzeUC,
		IngestUC:  usecase.NewIngestDocumentUseCase(repo, storage, queue),
		ProcessUC: usecase.NewProcessAnalysisUseCase(repo, storage, analyzeUC),
		Exporter:  export.NewService(repo, logger),

		closeFn: func() {
			queue.Close()
			if geminiClient != nil {
				_ = geminiClient.Close()
			}
			_ = db.Close()
		},
	}, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}

type instrumentedAnalyzer struct {
	inner    ports.DocumentAnalyzer
	pipeline *metrics.PipelineMetrics
	service  string
}

func instrumentAnalyzer(inner ports.DocumentAnalyzer, pipeline *metrics.PipelineMetrics, service string) ports.DocumentAnalyzer {
	if pipeline == nil {
		return inner
	}
	return &instrumentedAnalyzer{inner: inner, pipeline: pipeline, service: service}
}

func (a *instrumentedAnalyzer) Analyze(ctx context.Context, upload domain.RawUpload) (*domain.AnalysisResult, error) {
	result, err := a.inner.Analyze(ctx, upload)
	a.pipeline.RecordAnalysis(a.service, result, err)
	return result, err
}
