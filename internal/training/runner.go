package training

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labelworks/annoqueue/internal/entity"
	"github.com/labelworks/annoqueue/internal/featurestore"
	"github.com/labelworks/annoqueue/internal/repository"
	"github.com/labelworks/annoqueue/internal/uncertainty"
)

// Runner executes one train job end to end: fit a model on the given
// training set, record it, predict over the project's unlabeled items,
// and persist uncertainty scores plus per-class probabilities for the
// new model.
type Runner struct {
	trainer  Trainer
	projects repository.ProjectRepository
	data     repository.DataRepository
	models   repository.ModelRepository
	store    *featurestore.Store
	logger   *slog.Logger
}

func NewRunner(trainer Trainer, projects repository.ProjectRepository, data repository.DataRepository, models repository.ModelRepository, store *featurestore.Store, logger *slog.Logger) *Runner {
	return &Runner{
		trainer:  trainer,
		projects: projects,
		data:     data,
		models:   models,
		store:    store,
		logger:   logger.With("component", "train_runner"),
	}
}

func (r *Runner) Run(ctx context.Context, job Job) error {
	project, err := r.projects.Get(ctx, job.ProjectID)
	if err != nil {
		return fmt.Errorf("loading project %d: %w", job.ProjectID, err)
	}

	matrixPath := r.store.MatrixPath(job.ProjectID)
	modelPath := r.store.ModelPath(job.ProjectID, job.TrainingSet)

	rowOffset, err := r.data.MinID(ctx, job.ProjectID)
	if err != nil {
		return fmt.Errorf("finding matrix row offset for project %d: %w", job.ProjectID, err)
	}

	if err := r.trainer.Train(ctx, TrainRequest{
		ProjectID:   job.ProjectID,
		TrainingSet: job.TrainingSet,
		Classifier:  project.Classifier,
		MatrixPath:  matrixPath,
		ModelPath:   modelPath,
		RowOffset:   rowOffset,
	}); err != nil {
		return err
	}

	model, err := r.models.Create(ctx, job.ProjectID, modelPath, job.TrainingSet)
	if err != nil {
		return fmt.Errorf("recording model for project %d: %w", job.ProjectID, err)
	}

	unlabeled, err := r.data.UnlabeledIDs(ctx, job.ProjectID)
	if err != nil {
		return fmt.Errorf("listing unlabeled data for project %d: %w", job.ProjectID, err)
	}
	if len(unlabeled) == 0 {
		r.logger.Info("nothing left to score",
			"project_id", job.ProjectID,
			"training_set", job.TrainingSet,
			"model_id", model.ID)
		return nil
	}

	result, err := r.trainer.Predict(ctx, PredictRequest{
		ProjectID:  job.ProjectID,
		MatrixPath: matrixPath,
		ModelPath:  modelPath,
		RowOffset:  rowOffset,
		DataIDs:    unlabeled,
	})
	if err != nil {
		return err
	}

	scores := make([]entity.UncertaintyScore, 0, len(result.Items))
	var predictions []entity.Prediction
	for _, item := range result.Items {
		m, err := uncertainty.Score(item.Probabilities)
		if err != nil {
			return fmt.Errorf("scoring data %d: %w", item.DataID, err)
		}
		scores = append(scores, entity.UncertaintyScore{
			DataID:         item.DataID,
			LeastConfident: m.LeastConfident,
			Margin:         m.Margin,
			Entropy:        m.Entropy,
		})
		if len(item.Probabilities) != len(result.Classes) {
			return fmt.Errorf("data %d: %d probabilities for %d classes", item.DataID, len(item.Probabilities), len(result.Classes))
		}
		for i, p := range item.Probabilities {
			predictions = append(predictions, entity.Prediction{
				DataID:      item.DataID,
				LabelID:     result.Classes[i],
				Probability: p,
			})
		}
	}

	if err := r.models.SaveScores(ctx, model.ID, scores, predictions); err != nil {
		return fmt.Errorf("saving scores for model %d: %w", model.ID, err)
	}

	r.logger.Info("train job finished",
		"project_id", job.ProjectID,
		"training_set", job.TrainingSet,
		"model_id", model.ID,
		"scored_items", len(scores))
	return nil
}
