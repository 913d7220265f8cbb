// Package ocrspace talks to the OCR.space parse API. It is the primary
// provider in the recognition chain.
package ocrspace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/nyaysathi/nyaysathi/internal/core/domain"
)

const (
	// DefaultURL is the public OCR.space endpoint.
	DefaultURL = "https://api.ocr.space/parse/image"

	defaultTimeout = 60 * time.Second
)

// filetype hints the API accepts. Anything else is sent as JPG, which the
// API treats as "guess from content".
var filetypeByExt = map[string]string{
	".pdf": "PDF",
	".png": "PNG",
	".gif": "GIF",
	".bmp": "BMP",
	".jpg": "JPG",
}

type Client struct {
	url        string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

type Config struct {
	URL               string
	APIKey            string
	Timeout           time.Duration
	RequestsPerMinute int
}

func New(cfg Config) *Client {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), cfg.RequestsPerMinute)
	}

	return &Client{
		url:        cfg.URL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    limiter,
	}
}

func (c *Client) Name() string { return "ocrspace" }

// Supports accepts every upload type the ingest layer admits; OCR.space
// handles both images and PDFs.
func (c *Client) Supports(domain.RawUpload) bool { return true }

func (c *Client) Recognize(ctx context.Context, upload domain.RawUpload) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("ocrspace rate limit wait: %w", err)
		}
	}

	body, contentType, err := buildForm(c.apiKey, upload)
	if err != nil {
		return "", fmt.Errorf("build ocrspace form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, body)
	if err != nil {
		return "", fmt.Errorf("create ocrspace request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ocrspace request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", formatHTTPError(resp)
	}

	var parsed response
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode ocrspace response: %w", err)
	}
	if parsed.IsErroredOnProcessing {
		msg := parsed.ErrorMessage.String()
		if msg == "" {
			msg = "processing error"
		}
		return "", fmt.Errorf("ocrspace processing: %s", msg)
	}

	parts := make([]string, 0, len(parsed.ParsedResults))
	for _, r := range parsed.ParsedResults {
		parts = append(parts, r.ParsedText)
	}
	text := strings.TrimSpace(strings.Join(parts, "\n"))
	if text == "" {
		return "", errors.New("ocrspace returned no text")
	}
	return text, nil
}

func buildForm(apiKey string, upload domain.RawUpload) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename=%q`, filepath.Base(upload.Filename)))
	if upload.MimeType != "" {
		header.Set("Content-Type", upload.MimeType)
	}
	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(upload.Content); err != nil {
		return nil, "", err
	}

	fields := map[string]string{
		"apikey":            apiKey,
		"filetype":          filetypeHint(upload.Filename),
		"language":          "eng",
		"isOverlayRequired": "false",
		"detectOrientation": "true",
		"scale":             "true",
		"OCREngine":         "1",
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

func filetypeHint(filename string) string {
	if hint, ok := filetypeByExt[strings.ToLower(filepath.Ext(filename))]; ok {
		return hint
	}
	return "JPG"
}

func formatHTTPError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return fmt.Errorf("ocrspace status: %s", resp.Status)
	}
	return fmt.Errorf("ocrspace status: %s: %s", resp.Status, msg)
}

type response struct {
	ParsedResults []struct {
		ParsedText string `json:"ParsedText"`
	} `json:"ParsedResults"`
	IsErroredOnProcessing bool         `json:"IsErroredOnProcessing"`
	ErrorMessage          errorMessage `json:"ErrorMessage"`
}

// errorMessage tolerates both the string and the []string shapes the API
// uses for ErrorMessage.
type errorMessage []string

func (m *errorMessage) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*m = errorMessage{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*m = errorMessage(many)
	return nil
}

func (m errorMessage) String() string {
	return strings.TrimSpace(strings.Join(m, "; "))
}
