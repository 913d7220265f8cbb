package ports

import (
	"context"
	"io"

	"github.com/nyaysathi/nyaysathi/internal/core/domain"
)

// TextRecognizer turns an uploaded artifact into plain text. Implementations
// own provider selection and fallback; the returned method names the provider
// that produced the text.
type TextRecognizer interface {
	Recognize(ctx context.Context, upload domain.RawUpload) (domain.OcrOutcome, error)
}

// TextGenerator is the AI text-generation capability used for simplification.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// AnalysisRepository persists analysis records for the asynchronous path.
type AnalysisRepository interface {
	Create(ctx context.Context, rec *domain.AnalysisRecord) error
	GetByID(ctx context.Context, id string) (*domain.AnalysisRecord, error)
	UpdateStatus(ctx context.Context, id string, status domain.AnalysisStatus, errMessage string) error
	SaveResult(ctx context.Context, id string, result *domain.AnalysisResult) error
	ListCompleted(ctx context.Context, limit int) ([]*domain.AnalysisRecord, error)
}

// ObjectStorage stores uploaded source documents.
type ObjectStorage interface {
	Save(ctx context.Context, key string, data io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// MessageQueue publishes/consumes analysis-requested events.
type MessageQueue interface {
	PublishAnalysisRequested(ctx context.Context, analysisID string) error
	SubscribeAnalysisRequested(ctx context.Context, handler func(context.Context, string) error) error
}
