package repository

import (
	"context"
	"log/slog"

	"github.com/labelworks/annoqueue/gen/ent"
	"github.com/labelworks/annoqueue/gen/ent/data"
	"github.com/labelworks/annoqueue/internal/entity"
	"github.com/labelworks/annoqueue/internal/utils"
)

type DataRepository interface {
	// AddData bulk-inserts texts as new data rows and returns how many were
	// created.
	AddData(ctx context.Context, projectID int, texts []string) (int, error)
	Get(ctx context.Context, id int) (*entity.Data, error)
	// MinID returns the smallest data id in the project. It is the offset
	// that maps data ids onto feature-matrix row indices.
	MinID(ctx context.Context, projectID int) (int, error)
	// UnlabeledIDs returns every data id in the project without a recorded
	// decision, ascending.
	UnlabeledIDs(ctx context.Context, projectID int) ([]int, error)
}

type dataRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDataRepository(client *ent.Client, logger *slog.Logger) DataRepository {
	return &dataRepository{
		client: client,
		logger: logger,
	}
}

func (r *dataRepository) AddData(ctx context.Context, projectID int, texts []string) (int, error) {
	creates := make([]*ent.DataCreate, len(texts))
	for i, t := range texts {
		creates[i] = r.client.Data.Create().
			SetProjectID(projectID).
			SetText(t)
	}
	rows, err := r.client.Data.CreateBulk(creates...).Save(ctx)
	if err != nil {
		r.logger.Error("failed to add data", "project_id", projectID, "count", len(texts), "error", err)
		return 0, err
	}
	return len(rows), nil
}

func (r *dataRepository) Get(ctx context.Context, id int) (*entity.Data, error) {
	d, err := r.client.Data.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToData(d), nil
}

func (r *dataRepository) MinID(ctx context.Context, projectID int) (int, error) {
	return r.client.Data.Query().
		Where(data.ProjectID(projectID)).
		Order(ent.Asc(data.FieldID)).
		FirstID(ctx)
}

func (r *dataRepository) UnlabeledIDs(ctx context.Context, projectID int) ([]int, error) {
	return r.client.Data.Query().
		Where(
			data.ProjectID(projectID),
			data.Not(data.HasDecisions()),
		).
		Order(ent.Asc(data.FieldID)).
		IDs(ctx)
}
