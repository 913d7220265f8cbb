package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OCRSPACE_API_KEY", "")
	t.Setenv("OCRSPACE_TIMEOUT_SECONDS", "")
	t.Setenv("TESSERACT_LANG", "")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("MAX_UPLOAD_MB", "")
	t.Setenv("API_RATE_LIMIT_RPS", "")

	cfg := Load()
	if cfg.OCRSpaceAPIKey != "helloworld" {
		t.Fatalf("expected default ocr.space key, got %q", cfg.OCRSpaceAPIKey)
	}
	if cfg.OCRSpaceTimeoutSeconds != 60 {
		t.Fatalf("expected default ocr.space timeout 60, got %d", cfg.OCRSpaceTimeoutSeconds)
	}
	if cfg.TesseractLang != "hin+eng" {
		t.Fatalf("expected default tesseract languages hin+eng, got %q", cfg.TesseractLang)
	}
	if cfg.GeminiModel != "gemini-1.5-flash" {
		t.Fatalf("expected default gemini model, got %q", cfg.GeminiModel)
	}
	if cfg.MaxUploadMB != 10 {
		t.Fatalf("expected default upload cap 10, got %d", cfg.MaxUploadMB)
	}
	if cfg.APIRateLimitRPS != 0 {
		t.Fatalf("expected rate limiting off by default, got %d", cfg.APIRateLimitRPS)
	}
	if cfg.NATSSubject != "documents.analyze" {
		t.Fatalf("expected default subject documents.analyze, got %q", cfg.NATSSubject)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	t.Setenv("OCRSPACE_URL", "http://localhost:9999/parse")
	t.Setenv("OCRSPACE_REQUESTS_PER_MINUTE", "5")
	t.Setenv("TESSERACT_BIN", "/opt/bin/tesseract")
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("API_MAX_CONCURRENT", "16")
	t.Setenv("EXPORT_LIMIT", "25")

	cfg := Load()
	if cfg.OCRSpaceURL != "http://localhost:9999/parse" {
		t.Fatalf("expected ocr.space url override, got %q", cfg.OCRSpaceURL)
	}
	if cfg.OCRSpaceRequestsPerMinute != 5 {
		t.Fatalf("expected 5 requests per minute, got %d", cfg.OCRSpaceRequestsPerMinute)
	}
	if cfg.TesseractBin != "/opt/bin/tesseract" {
		t.Fatalf("expected tesseract bin override, got %q", cfg.TesseractBin)
	}
	if cfg.GeminiAPIKey != "g-key" {
		t.Fatalf("expected gemini key override, got %q", cfg.GeminiAPIKey)
	}
	if cfg.APIMaxConcurrent != 16 {
		t.Fatalf("expected max concurrent 16, got %d", cfg.APIMaxConcurrent)
	}
	if cfg.ExportLimit != 25 {
		t.Fatalf("expected export limit 25, got %d", cfg.ExportLimit)
	}
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("MAX_UPLOAD_MB", "not-a-number")

	cfg := Load()
	if cfg.MaxUploadMB != 10 {
		t.Fatalf("expected fallback 10 for malformed value, got %d", cfg.MaxUploadMB)
	}
}
