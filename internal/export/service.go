// Package export produces an XLSX workbook of completed analyses for legal
// aid workers who review cases offline.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nyaysathi/nyaysathi/internal/core/ports"
)

const defaultLimit = 500

type Service struct {
	repo   ports.AnalysisRepository
	logger *slog.Logger
}

func NewService(repo ports.AnalysisRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// AnalysesXLSX returns a workbook with the most recent completed analyses,
// newest first.
func (s *Service) AnalysesXLSX(ctx context.Context, limit int) ([]byte, error) {
	start := time.Now()
	if limit <= 0 {
		limit = defaultLimit
	}

	recs, err := s.repo.ListCompleted(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list completed analyses: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Analyses"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	if defaultIndex, _ := f.GetSheetIndex("Sheet1"); defaultIndex != -1 && sheet != "Sheet1" {
		_ = f.DeleteSheet("Sheet1")
	}

	headers := []string{
		"ID",
		"Filename",
		"Document Type",
		"Urgency",
		"OCR Method",
		"Simplification Source",
		"Word Count",
		"Key Points",
		"Recommended Actions",
		"Uploaded At",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, rec := range recs {
		if rec.Result == nil {
			continue
		}
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, rec.ID)
		write(2, rec.Filename)
		write(3, string(rec.Result.DocumentType))
		write(4, string(rec.Result.UrgencyLevel))
		write(5, rec.Result.OCRMethod)
		write(6, string(rec.Result.SimplificationSource))
		write(7, rec.Result.WordCount)
		write(8, strings.Join(rec.Result.KeyPoints, "\n"))
		write(9, strings.Join(rec.Result.RecommendedActions, "\n"))
		write(10, rec.CreatedAt.UTC().Format("2006-01-02 15:04"))
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("analyses exported",
		"rows", row-2, "duration_ms", time.Since(start).Milliseconds())
	return buf.Bytes(), nil
}
