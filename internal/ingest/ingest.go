// Package ingest loads raw text items into a project from delimited
// files. Rows become unlabeled items; the feature matrix the trainer
// needs is built externally against the same ids.
package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/labelworks/annoqueue/internal/common"
	"github.com/labelworks/annoqueue/internal/repository"
)

// Service handles data ingestion business logic.
type Service struct {
	data   repository.DataRepository
	logger *slog.Logger
}

// NewService creates a new ingest service.
func NewService(data repository.DataRepository, logger *slog.Logger) *Service {
	return &Service{data: data, logger: logger}
}

// IngestFile reads a .csv or .tsv file and registers each row's first
// column as one unlabeled item. A leading "text" header row is skipped.
// Returns how many items were added.
func (s *Service) IngestFile(ctx context.Context, projectID int, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open data file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			s.logger.Warn("closing data file failed", "path", path, "error", cerr)
		}
	}()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		reader.Comma = '\t'
	}

	var texts []string
	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("read data file: %w", err)
		}
		if len(record) == 0 {
			continue
		}
		text := strings.TrimSpace(record[0])
		if first {
			first = false
			if strings.EqualFold(text, "text") {
				continue
			}
		}
		if text == "" {
			continue
		}
		texts = append(texts, text)
	}

	return s.IngestTexts(ctx, projectID, texts)
}

// IngestTexts registers the given texts as unlabeled items, dropping
// blanks.
func (s *Service) IngestTexts(ctx context.Context, projectID int, texts []string) (int, error) {
	cleaned := make([]string, 0, len(texts))
	for _, t := range texts {
		if t = strings.TrimSpace(t); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	if len(cleaned) == 0 {
		return 0, fmt.Errorf("no nonempty texts to ingest: %w", common.ErrInvalidInput)
	}

	n, err := s.data.AddData(ctx, projectID, cleaned)
	if err != nil {
		return 0, fmt.Errorf("add data: %w", err)
	}
	s.logger.Info("data ingested", "project_id", projectID, "items", n)
	return n, nil
}
