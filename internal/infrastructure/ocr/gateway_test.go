package ocr

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/nyaysathi/nyaysathi/internal/core/domain"
)

type providerFake struct {
	name     string
	supports bool
	text     string
	err      error
	calls    int
}

func (f *providerFake) Name() string                   { return f.name }
func (f *providerFake) Supports(domain.RawUpload) bool { return f.supports }
func (f *providerFake) Recognize(context.Context, domain.RawUpload) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func jpgUpload() domain.RawUpload {
	return domain.RawUpload{Content: []byte("img"), Filename: "doc.jpg", MimeType: "image/jpeg"}
}

func TestRecognizeEmptyUpload(t *testing.T) {
	primary := &providerFake{name: "primary", supports: true, text: "text"}
	g := NewGateway("api", nil, nil, nil, primary)

	_, err := g.Recognize(context.Background(), domain.RawUpload{Filename: "doc.jpg"})
	if !domain.IsKind(err, domain.ErrEmptyInput) {
		t.Fatalf("Recognize() error = %v, want empty-input kind", err)
	}
	if primary.calls != 0 {
		t.Fatalf("provider called %d times for empty upload, want 0", primary.calls)
	}
}

func TestRecognizeFirstProviderWins(t *testing.T) {
	primary := &providerFake{name: "primary", supports: true, text: "  निकाला गया टेक्स्ट  "}
	secondary := &providerFake{name: "secondary", supports: true, text: "other"}
	g := NewGateway("api", nil, nil, nil, primary, secondary)

	outcome, err := g.Recognize(context.Background(), jpgUpload())
	if err != nil {
		t.Fatalf("Recognize() error = %v", err)
	}
	if outcome.Text != "निकाला गया टेक्स्ट" {
		t.Fatalf("Text = %q, want trimmed primary output", outcome.Text)
	}
	if outcome.Method != "primary" {
		t.Fatalf("Method = %s, want primary", outcome.Method)
	}
	if secondary.calls != 0 {
		t.Fatalf("secondary called %d times, want 0", secondary.calls)
	}
}

func TestRecognizeFallsBackOnFailure(t *testing.T) {
	primary := &providerFake{name: "primary", supports: true, err: errors.New("api down")}
	secondary := &providerFake{name: "secondary", supports: true, text: "fallback text"}
	g := NewGateway("api", nil, nil, nil, primary, secondary)

	outcome, err := g.Recognize(context.Background(), jpgUpload())
	if err != nil {
		t.Fatalf("Recognize() error = %v", err)
	}
	if outcome.Method != "secondary" {
		t.Fatalf("Method = %s, want secondary", outcome.Method)
	}
	if primary.calls != 1 || secondary.calls != 1 {
		t.Fatalf("calls primary=%d secondary=%d, want 1 each", primary.calls, secondary.calls)
	}
}

func TestRecognizeSkipsUnsupportedProviders(t *testing.T) {
	pdfOnly := &providerFake{name: "pdf-text", supports: false}
	image := &providerFake{name: "image", supports: true, text: "text from image"}
	g := NewGateway("api", nil, nil, nil, pdfOnly, image)

	outcome, err := g.Recognize(context.Background(), jpgUpload())
	if err != nil {
		t.Fatalf("Recognize() error = %v", err)
	}
	if outcome.Method != "image" {
		t.Fatalf("Method = %s, want image", outcome.Method)
	}
	if pdfOnly.calls != 0 {
		t.Fatalf("unsupported provider was called")
	}
}

func TestRecognizeAllProvidersFail(t *testing.T) {
	primary := &providerFake{name: "primary", supports: true, err: errors.New("api down")}
	secondary := &providerFake{name: "secondary", supports: true, err: errors.New("binary missing")}
	g := NewGateway("api", nil, nil, nil, primary, secondary)

	_, err := g.Recognize(context.Background(), jpgUpload())
	if !domain.IsKind(err, domain.ErrOCRFailure) {
		t.Fatalf("Recognize() error = %v, want ocr-failure kind", err)
	}
	if !strings.Contains(err.Error(), "binary missing") {
		t.Fatalf("error %v should carry the most recent provider error", err)
	}
}

func TestRecognizeEmptyProviderTextTriggersFallback(t *testing.T) {
	primary := &providerFake{name: "primary", supports: true, text: "   "}
	secondary := &providerFake{name: "secondary", supports: true, text: "real text"}
	g := NewGateway("api", nil, nil, nil, primary, secondary)

	outcome, err := g.Recognize(context.Background(), jpgUpload())
	if err != nil {
		t.Fatalf("Recognize() error = %v", err)
	}
	if outcome.Method != "secondary" {
		t.Fatalf("Method = %s, want secondary after empty primary text", outcome.Method)
	}
}

func TestRecognizeNoProviderSupportsUpload(t *testing.T) {
	pdfOnly := &providerFake{name: "pdf-text", supports: false}
	g := NewGateway("api", nil, nil, nil, pdfOnly)

	_, err := g.Recognize(context.Background(), jpgUpload())
	if !domain.IsKind(err, domain.ErrOCRFailure) {
		t.Fatalf("Recognize() error = %v, want ocr-failure kind", err)
	}
}
