package repository

import (
	"context"
	"log/slog"

	"github.com/labelworks/annoqueue/gen/ent"
	"github.com/labelworks/annoqueue/gen/ent/model"
	"github.com/labelworks/annoqueue/internal/entity"
	"github.com/labelworks/annoqueue/internal/utils"
)

type ModelRepository interface {
	Create(ctx context.Context, projectID int, path string, trainingSet int) (*entity.ModelRef, error)
	// LatestID returns the newest model id for the project; ok is false when
	// nothing has been trained yet.
	LatestID(ctx context.Context, projectID int) (id int, ok bool, err error)
	// SaveScores bulk-inserts one model run's uncertainty scores and
	// per-class predictions in a single transaction.
	SaveScores(ctx context.Context, modelID int, scores []entity.UncertaintyScore, predictions []entity.Prediction) error
}

type modelRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewModelRepository(client *ent.Client, logger *slog.Logger) ModelRepository {
	return &modelRepository{
		client: client,
		logger: logger,
	}
}

func (r *modelRepository) Create(ctx context.Context, projectID int, path string, trainingSet int) (*entity.ModelRef, error) {
	m, err := r.client.Model.Create().
		SetProjectID(projectID).
		SetPath(path).
		SetTrainingSet(trainingSet).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to record model", "project_id", projectID, "path", path, "error", err)
		return nil, err
	}
	return utils.ToModelRef(m), nil
}

func (r *modelRepository) LatestID(ctx context.Context, projectID int) (int, bool, error) {
	id, err := r.client.Model.Query().
		Where(model.ProjectID(projectID)).
		Order(ent.Desc(model.FieldID)).
		FirstID(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return id, true, nil
}

func (r *modelRepository) SaveScores(ctx context.Context, modelID int, scores []entity.UncertaintyScore, predictions []entity.Prediction) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return err
	}

	if len(scores) > 0 {
		creates := make([]*ent.DataUncertaintyCreate, len(scores))
		for i, s := range scores {
			creates[i] = tx.DataUncertainty.Create().
				SetDataID(s.DataID).
				SetModelID(modelID).
				SetLeastConfident(s.LeastConfident).
				SetMargin(s.Margin).
				SetEntropy(s.Entropy)
		}
		if _, err := tx.DataUncertainty.CreateBulk(creates...).Save(ctx); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	if len(predictions) > 0 {
		creates := make([]*ent.DataPredictionCreate, len(predictions))
		for i, p := range predictions {
			creates[i] = tx.DataPrediction.Create().
				SetDataID(p.DataID).
				SetModelID(modelID).
				SetLabelID(p.LabelID).
				SetProbability(p.Probability)
		}
		if _, err := tx.DataPrediction.CreateBulk(creates...).Save(ctx); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}
