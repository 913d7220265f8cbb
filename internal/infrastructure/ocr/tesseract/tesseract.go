// Package tesseract shells out to a locally installed tesseract binary. It
// is the offline fallback when the cloud provider is unreachable.
package tesseract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/nyaysathi/nyaysathi/internal/core/domain"
)

const (
	DefaultBin  = "tesseract"
	DefaultLang = "hin+eng"
)

// Runner abstracts process execution so tests can fake the binary.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout []byte, stderr []byte, err error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf
	err := cmd.Run()
	return out.Bytes(), errBuf.Bytes(), err
}

type Engine struct {
	bin    string
	lang   string
	runner Runner
}

func New(bin, lang string) *Engine {
	if bin == "" {
		bin = DefaultBin
	}
	if lang == "" {
		lang = DefaultLang
	}
	return &Engine{bin: bin, lang: lang, runner: execRunner{}}
}

// NewWithRunner is for tests.
func NewWithRunner(bin, lang string, runner Runner) *Engine {
	e := New(bin, lang)
	e.runner = runner
	return e
}

// Available reports whether the binary can be found on PATH.
func Available(bin string) bool {
	if bin == "" {
		bin = DefaultBin
	}
	_, err := exec.LookPath(bin)
	return err == nil
}

func (e *Engine) Name() string { return "tesseract" }

// Supports covers images only. Tesseract cannot read PDF input directly.
func (e *Engine) Supports(upload domain.RawUpload) bool {
	return strings.ToLower(filepath.Ext(upload.Filename)) != ".pdf"
}

func (e *Engine) Recognize(ctx context.Context, upload domain.RawUpload) (string, error) {
	tmp, err := os.CreateTemp("", "ocr-*"+filepath.Ext(upload.Filename))
	if err != nil {
		return "", fmt.Errorf("create temp image: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(upload.Content); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write temp image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close temp image: %w", err)
	}

	stdout, stderr, err := e.runner.Run(ctx, e.bin, tmp.Name(), "stdout", "-l", e.lang)
	if err != nil {
		msg := strings.TrimSpace(string(stderr))
		if msg == "" {
			return "", fmt.Errorf("tesseract: %w", err)
		}
		return "", fmt.Errorf("tesseract: %w: %s", err, msg)
	}

	text := strings.TrimSpace(string(stdout))
	if text == "" {
		return "", errors.New("tesseract produced no text")
	}
	return text, nil
}
