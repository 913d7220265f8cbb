package ports

import (
	"context"
	"io"

	"github.com/nyaysathi/nyaysathi/internal/core/domain"
)

// DocumentAnalyzer is the inbound contract for synchronous, stateless analysis
// of a single uploaded document.
type DocumentAnalyzer interface {
	Analyze(ctx context.Context, upload domain.RawUpload) (*domain.AnalysisResult, error)
}

// DocumentIngestor accepts an upload for asynchronous analysis.
type DocumentIngestor interface {
	Upload(ctx context.Context, filename, mimeType string, body io.Reader) (*domain.AnalysisRecord, error)
}

// AnalysisProcessor runs the pipeline for a stored upload.
type AnalysisProcessor interface {
	ProcessByID(ctx context.Context, analysisID string) error
}

// AnalysisReader is the inbound read model for stored analyses.
type AnalysisReader interface {
	GetByID(ctx context.Context, id string) (*domain.AnalysisRecord, error)
}
