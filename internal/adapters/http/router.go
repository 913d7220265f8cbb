// Package httpadapter exposes the analysis pipeline over HTTP. The sync
// endpoint runs the full pipeline in-request; the async pair stores the
// upload and hands it to the worker.
package httpadapter

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/nyaysathi/nyaysathi/internal/core/domain"
	"github.com/nyaysathi/nyaysathi/internal/core/ports"
	"github.com/nyaysathi/nyaysathi/internal/core/usecase"
	"github.com/nyaysathi/nyaysathi/internal/export"
)

const defaultMaxUploadBytes = 10 << 20 // 10 MiB

// multipart file field names accepted on upload endpoints, in lookup order.
var uploadFieldNames = []string{"document", "file"}

type Router struct {
	analyzer ports.DocumentAnalyzer
	ingestUC ports.DocumentIngestor
	reader   ports.AnalysisReader
	exporter *export.Service

	maxUploadBytes int64
	rateLimitRPS   int
	rateLimitBurst int
	maxConcurrent  int
}

type RouterConfig struct {
	MaxUploadBytes int64
	RateLimitRPS   int
	RateLimitBurst int
	MaxConcurrent  int
}

func NewRouter(
	analyzer ports.DocumentAnalyzer,
	ingestUC ports.DocumentIngestor,
	reader ports.AnalysisReader,
	exporter *export.Service,
	cfg RouterConfig,
) *Router {
	maxUpload := cfg.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = defaultMaxUploadBytes
	}
	return &Router{
		analyzer:       analyzer,
		ingestUC:       ingestUC,
		reader:         reader,
		exporter:       exporter,
		maxUploadBytes: maxUpload,
		rateLimitRPS:   cfg.RateLimitRPS,
		rateLimitBurst: cfg.RateLimitBurst,
		maxConcurrent:  cfg.MaxConcurrent,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.HandleFunc("/v1/documents/analyze", rt.analyzeDocument)
	mux.HandleFunc("/v1/documents", rt.uploadDocument)
	mux.HandleFunc("/v1/documents/", rt.getAnalysisByID)
	mux.HandleFunc("/v1/exports/analyses.xlsx", rt.exportAnalyses)

	var handler http.Handler = mux
	if rt.maxConcurrent > 0 {
		handler = backpressureMiddleware(handler, rt.maxConcurrent, 50*time.Millisecond)
	}
	if rt.rateLimitRPS > 0 {
		handler = rateLimitMiddleware(handler, rt.rateLimitRPS, rt.rateLimitBurst)
	}
	handler = accessLogMiddleware(handler)
	return requestIDMiddleware(handler)
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// analyzeDocument is the synchronous path: OCR, classification and
// simplification happen inside the request.
func (rt *Router) analyzeDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	file, header, err := rt.uploadedFile(w, r)
	if err != nil {
		writeError(w, domain.WrapError(domain.ErrInvalidInput, "analyze document", err))
		return
	}
	defer file.Close()

	if !usecase.AllowedExtension(header.Filename) {
		writeError(w, domain.WrapError(domain.ErrInvalidInput, "analyze document",
			fmt.Errorf("unsupported file extension: %q", header.Filename)))
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		writeError(w, fmt.Errorf("read uploaded file: %w", err))
		return
	}

	result, err := rt.analyzer.Analyze(r.Context(), domain.RawUpload{
		Content:  content,
		Filename: header.Filename,
		MimeType: header.Header.Get("Content-Type"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// uploadDocument is the asynchronous path: store, record, enqueue.
func (rt *Router) uploadDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	file, header, err := rt.uploadedFile(w, r)
	if err != nil {
		writeError(w, domain.WrapError(domain.ErrInvalidInput, "upload document", err))
		return
	}
	defer file.Close()

	rec, err := rt.ingestUC.Upload(
		r.Context(),
		header.Filename,
		header.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, rec)
}

func (rt *Router) getAnalysisByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/v1/documents/")
	if id == "" || strings.Contains(id, "/") {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "document id is required"})
		return
	}

	rec, err := rt.reader.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (rt *Router) exportAnalyses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	payload, err := rt.exporter.AnalysesXLSX(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="analyses.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

// uploadedFile pulls the document out of the multipart form, accepting the
// "document" field with "file" as a fallback.
func (rt *Router) uploadedFile(w http.ResponseWriter, r *http.Request) (multipart.File, *multipart.FileHeader, error) {
	r.Body = http.MaxBytesReader(w, r.Body, rt.maxUploadBytes)
	if err := r.ParseMultipartForm(rt.maxUploadBytes); err != nil {
		return nil, nil, fmt.Errorf("parse multipart form: %w", err)
	}

	for _, field := range uploadFieldNames {
		file, header, err := r.FormFile(field)
		if err == nil {
			return file, header, nil
		}
	}
	return nil, nil, fmt.Errorf("multipart field %q is required", uploadFieldNames[0])
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
