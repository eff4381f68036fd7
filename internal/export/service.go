package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/labelworks/annoqueue/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	decisions repository.DecisionRepository
	logger    *slog.Logger
}

func NewService(decisions repository.DecisionRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{decisions: decisions, logger: logger}
}

// ExportLabelsXLSX returns an XLSX workbook (as bytes) with every
// labeled item in the project, one row per decision.
func (s *Service) ExportLabelsXLSX(ctx context.Context, projectID int) ([]byte, error) {
	start := time.Now()

	items, err := s.decisions.ListForProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("query labeled items: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Labels"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Data ID",
		"Text",
		"Label",
		"Labeler",
		"Training Set",
		"Labeled At",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, item := range items {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, item.DataID)
		write(2, truncate(item.Text, 500))
		write(3, item.LabelName)
		write(4, item.Labeler)
		write(5, item.TrainingSet)
		if !item.LabeledAt.IsZero() {
			write(6, item.LabeledAt.Format(time.RFC3339))
		} else {
			write(6, "")
		}

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 10) // id
	_ = f.SetColWidth(sheet, "B", "B", 80) // text
	_ = f.SetColWidth(sheet, "C", "C", 22) // label
	_ = f.SetColWidth(sheet, "D", "D", 20) // labeler
	_ = f.SetColWidth(sheet, "E", "E", 12) // set
	_ = f.SetColWidth(sheet, "F", "F", 22) // timestamp

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"project_id", projectID,
		"rows", len(items),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
