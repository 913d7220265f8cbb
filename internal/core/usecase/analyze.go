package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/nyaysathi/nyaysathi/internal/core/classify"
	"github.com/nyaysathi/nyaysathi/internal/core/domain"
	"github.com/nyaysathi/nyaysathi/internal/core/keypoints"
	"github.com/nyaysathi/nyaysathi/internal/core/ports"
	"github.com/nyaysathi/nyaysathi/internal/core/recommend"
	"github.com/nyaysathi/nyaysathi/internal/core/simplify"
	"github.com/nyaysathi/nyaysathi/internal/core/textutil"
)

const (
	// minExtractedChars is the signal threshold below which extraction counts
	// as failed even though a provider technically returned text.
	minExtractedChars = 20

	// extractedTextLimit caps the verbatim text echoed back to the caller.
	extractedTextLimit = 2000

	processedAtLayout = "02/01/2006 15:04"
)

// AnalyzeDocumentUseCase sequences the pipeline:
// Received -> Extracting -> (ExtractFailed | Extracted) -> Classified ->
// Simplified -> Completed. Once extraction succeeded nothing downstream can
// fail the request; classifier, simplifier, key-point extractor and
// recommendation lookup all default internally.
type AnalyzeDocumentUseCase struct {
	recognizer ports.TextRecognizer
	classifier *classify.Classifier
	simplifier *simplify.Simplifier
	logger     *slog.Logger
	now        func() time.Time
}

func NewAnalyzeDocumentUseCase(
	recognizer ports.TextRecognizer,
	classifier *classify.Classifier,
	simplifier *simplify.Simplifier,
	logger *slog.Logger,
) *AnalyzeDocumentUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalyzeDocumentUseCase{
		recognizer: recognizer,
		classifier: classifier,
		simplifier: simplifier,
		logger:     logger,
		now:        time.Now,
	}
}

func (uc *AnalyzeDocumentUseCase) Analyze(ctx context.Context, upload domain.RawUpload) (*domain.AnalysisResult, error) {
	outcome, err := uc.recognizer.Recognize(ctx, upload)
	if err != nil {
		return nil, err
	}

	text := outcome.Text
	if utf8.RuneCountInString(text) < minExtractedChars {
		return nil, domain.WrapError(domain.ErrInsufficientText, "analyze document",
			errors.New("extracted text below minimum length"))
	}

	classification := uc.classifier.Classify(text)
	docType := classification.DocumentType

	simplified := uc.simplifier.Simplify(ctx, text, docType)

	uc.logger.Info("document analyzed",
		"document_type", docType,
		"score", classification.Score,
		"ocr_method", outcome.Method,
		"simplification_source", simplified.Source,
	)

	return &domain.AnalysisResult{
		DocumentType:         docType,
		DocumentTypeName:     docType.DisplayName(),
		UrgencyLevel:         docType.Urgency(),
		ExtractedText:        textutil.TruncateWithEllipsis(text, extractedTextLimit),
		SimplifiedText:       simplified.Text,
		SimplificationSource: simplified.Source,
		KeyPoints:            keypoints.KeyPoints(text, docType),
		ImportantDates:       keypoints.Dates(text),
		RecommendedActions:   recommend.Actions(docType),
		OCRMethod:            outcome.Method,
		WordCount:            textutil.WordCount(text),
		ProcessedAt:          uc.now().Format(processedAtLayout),
	}, nil
}
