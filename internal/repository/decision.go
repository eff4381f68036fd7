package repository

import (
	"context"
	"log/slog"

	"github.com/labelworks/annoqueue/gen/ent"
	"github.com/labelworks/annoqueue/gen/ent/data"
	"github.com/labelworks/annoqueue/gen/ent/datalabel"
	"github.com/labelworks/annoqueue/internal/entity"
)

type DecisionRepository interface {
	// CountForTrainingSet counts decisions recorded in the project during
	// one training generation.
	CountForTrainingSet(ctx context.Context, projectID, trainingSet int) (int, error)
	// DistinctLabelIDs returns the label classes actually used in one
	// generation's decisions.
	DistinctLabelIDs(ctx context.Context, projectID, trainingSet int) ([]int, error)
	// ListForProject returns every decision in the project denormalized for
	// export, oldest first.
	ListForProject(ctx context.Context, projectID int) ([]*entity.LabeledItem, error)
}

type decisionRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDecisionRepository(client *ent.Client, logger *slog.Logger) DecisionRepository {
	return &decisionRepository{
		client: client,
		logger: logger,
	}
}

func (r *decisionRepository) CountForTrainingSet(ctx context.Context, projectID, trainingSet int) (int, error) {
	return r.client.DataLabel.Query().
		Where(
			datalabel.TrainingSet(trainingSet),
			datalabel.HasDataWith(data.ProjectID(projectID)),
		).
		Count(ctx)
}

func (r *decisionRepository) DistinctLabelIDs(ctx context.Context, projectID, trainingSet int) ([]int, error) {
	return r.client.DataLabel.Query().
		Where(
			datalabel.TrainingSet(trainingSet),
			datalabel.HasDataWith(data.ProjectID(projectID)),
		).
		Unique(true).
		Select(datalabel.FieldLabelID).
		Ints(ctx)
}

func (r *decisionRepository) ListForProject(ctx context.Context, projectID int) ([]*entity.LabeledItem, error) {
	rows, err := r.client.DataLabel.Query().
		Where(datalabel.HasDataWith(data.ProjectID(projectID))).
		WithData().
		WithLabel().
		WithProfile().
		Order(ent.Asc(datalabel.FieldID)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list decisions", "project_id", projectID, "error", err)
		return nil, err
	}

	result := make([]*entity.LabeledItem, 0, len(rows))
	for _, dl := range rows {
		item := &entity.LabeledItem{
			DataID:      dl.DataID,
			TrainingSet: dl.TrainingSet,
			LabeledAt:   dl.LabeledAt,
		}
		if dl.Edges.Data != nil {
			item.Text = dl.Edges.Data.Text
		}
		if dl.Edges.Label != nil {
			item.LabelName = dl.Edges.Label.Name
		}
		if dl.Edges.Profile != nil {
			item.Labeler = dl.Edges.Profile.Username
		}
		result = append(result, item)
	}
	return result, nil
}
