// Package pdftext pulls the embedded text layer out of digital PDFs, which
// skips the OCR round-trip entirely for machine-generated documents.
package pdftext

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"github.com/nyaysathi/nyaysathi/internal/core/domain"
)

// minTextRunes guards against scanned PDFs that carry a stub text layer.
// Below this the document goes to OCR instead.
const minTextRunes = 100

type Extractor struct{}

func New() *Extractor { return &Extractor{} }

func (e *Extractor) Name() string { return "pdf-text" }

func (e *Extractor) Supports(upload domain.RawUpload) bool {
	return strings.ToLower(filepath.Ext(upload.Filename)) == ".pdf"
}

func (e *Extractor) Recognize(_ context.Context, upload domain.RawUpload) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(upload.Content), int64(len(upload.Content)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read pdf text layer: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("read pdf text layer: %w", err)
	}

	text := strings.TrimSpace(buf.String())
	if utf8.RuneCountInString(text) < minTextRunes {
		return "", errors.New("pdf has no usable text layer")
	}
	return text, nil
}
