package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/nyaysathi/nyaysathi/internal/core/domain"
	"github.com/nyaysathi/nyaysathi/internal/core/ports"
)

// ProcessAnalysisUseCase is the worker-side entry: load the stored upload,
// run the analysis pipeline, persist the outcome.
type ProcessAnalysisUseCase struct {
	repo     ports.AnalysisRepository
	storage  ports.ObjectStorage
	analyzer ports.DocumentAnalyzer
}

func NewProcessAnalysisUseCase(
	repo ports.AnalysisRepository,
	storage ports.ObjectStorage,
	analyzer ports.DocumentAnalyzer,
) *ProcessAnalysisUseCase {
	return &ProcessAnalysisUseCase{
		repo:     repo,
		storage:  storage,
		analyzer: analyzer,
	}
}

func (uc *ProcessAnalysisUseCase) ProcessByID(ctx context.Context, analysisID string) error {
	if err := uc.repo.UpdateStatus(ctx, analysisID, domain.StatusProcessing, ""); err != nil {
		return fmt.Errorf("set status=processing: %w", err)
	}

	result, err := uc.runPipeline(ctx, analysisID)
	if err != nil {
		if failErr := uc.repo.UpdateStatus(ctx, analysisID, domain.StatusFailed, domain.UserMessage(err)); failErr != nil {
			return fmt.Errorf("%w; mark failed status: %v", err, failErr)
		}
		return err
	}

	if err := uc.repo.SaveResult(ctx, analysisID, result); err != nil {
		if failErr := uc.repo.UpdateStatus(ctx, analysisID, domain.StatusFailed, err.Error()); failErr != nil {
			return fmt.Errorf("%w; mark failed status: %v", err, failErr)
		}
		return err
	}

	if err := uc.repo.UpdateStatus(ctx, analysisID, domain.StatusCompleted, ""); err != nil {
		return fmt.Errorf("set status=completed: %w", err)
	}
	return nil
}

func (uc *ProcessAnalysisUseCase) runPipeline(ctx context.Context, analysisID string) (*domain.AnalysisResult, error) {
	rec, err := uc.repo.GetByID(ctx, analysisID)
	if err != nil {
		return nil, fmt.Errorf("fetch analysis by id: %w", err)
	}

	reader, err := uc.storage.Open(ctx, rec.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("open stored upload: %w", err)
	}
	defer reader.Close()

	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read stored upload: %w", err)
	}

	return uc.analyzer.Analyze(ctx, domain.RawUpload{
		Content:  content,
		Filename: rec.Filename,
		MimeType: rec.MimeType,
	})
}
