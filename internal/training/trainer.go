// Package training drives the model lifecycle: deciding when a project
// has enough fresh labels to retrain, running train jobs against the
// external trainer, and turning its predictions into uncertainty scores
// that rank the next fill.
package training

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff"

	"github.com/labelworks/annoqueue/internal/common"
)

// TrainRequest tells the trainer which artifact to fit and where to
// write the resulting model. RowOffset is the project's smallest data
// id; subtracting it from a data id gives the feature-matrix row.
type TrainRequest struct {
	ProjectID   int    `json:"project_id"`
	TrainingSet int    `json:"training_set"`
	Classifier  string `json:"classifier"`
	MatrixPath  string `json:"matrix_path"`
	ModelPath   string `json:"model_path"`
	RowOffset   int    `json:"row_offset"`
}

// PredictRequest asks for class probabilities over DataIDs, the
// project's unlabeled items, using an already-fitted model.
type PredictRequest struct {
	ProjectID  int    `json:"project_id"`
	MatrixPath string `json:"matrix_path"`
	ModelPath  string `json:"model_path"`
	RowOffset  int    `json:"row_offset"`
	DataIDs    []int  `json:"data_ids"`
}

// PredictedItem is one unlabeled item's probability vector, ordered to
// match PredictResult.Classes.
type PredictedItem struct {
	DataID        int       `json:"data_id"`
	Probabilities []float64 `json:"probabilities"`
}

type PredictResult struct {
	Classes []int           `json:"classes"`
	Items   []PredictedItem `json:"items"`
}

// Trainer is the contract with the external training service.
type Trainer interface {
	Train(ctx context.Context, req TrainRequest) error
	Predict(ctx context.Context, req PredictRequest) (*PredictResult, error)
}

// HTTPTrainer talks JSON over HTTP to the trainer service, retrying
// transient failures with exponential backoff.
type HTTPTrainer struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

func NewHTTPTrainer(cfg common.TrainerConfig, logger *slog.Logger) *HTTPTrainer {
	return &HTTPTrainer{
		baseURL: cfg.URL,
		client:  &http.Client{Timeout: cfg.Timeout},
		logger:  logger.With("component", "trainer_client"),
	}
}

func (t *HTTPTrainer) Train(ctx context.Context, req TrainRequest) error {
	_, err := t.post(ctx, "/train", req)
	if err != nil {
		return fmt.Errorf("train project %d set %d: %w", req.ProjectID, req.TrainingSet, err)
	}
	return nil
}

func (t *HTTPTrainer) Predict(ctx context.Context, req PredictRequest) (*PredictResult, error) {
	raw, err := t.post(ctx, "/predict", req)
	if err != nil {
		return nil, fmt.Errorf("predict project %d: %w", req.ProjectID, err)
	}

	if err := ValidateJSONAgainstSchema(BuildPredictResponseSchema(), raw); err != nil {
		return nil, fmt.Errorf("trainer returned malformed prediction payload: %w", err)
	}

	var result PredictResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("decode prediction payload: %w", err)
	}
	return &result, nil
}

// post sends one JSON request and returns the raw response body. Only
// transport errors and 5xx responses are retried; a 4xx means the
// request itself is wrong and retrying cannot help.
func (t *HTTPTrainer) post(ctx context.Context, path string, body any) ([]byte, error) {
	bs, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}

	var raw []byte
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+path, bytes.NewReader(bs))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")

		start := time.Now()
		resp, err := t.client.Do(req)
		if err != nil {
			t.logger.Warn("trainer request failed", "path", path, "error", err)
			return err
		}
		defer func() {
			if cerr := resp.Body.Close(); cerr != nil {
				t.logger.Warn("trainer response body close failed", "path", path, "error", cerr)
			}
		}()

		raw, _ = io.ReadAll(resp.Body)
		t.logger.Info("trainer response",
			"path", path,
			"status", resp.StatusCode,
			"bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds())

		switch {
		case resp.StatusCode/100 == 2:
			return nil
		case resp.StatusCode/100 == 5:
			return fmt.Errorf("trainer status %d", resp.StatusCode)
		default:
			return backoff.Permanent(fmt.Errorf("trainer status %d", resp.StatusCode))
		}
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(op, policy); err != nil {
		return nil, err
	}
	return raw, nil
}
