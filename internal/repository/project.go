package repository

import (
	"context"
	"log/slog"

	"github.com/labelworks/annoqueue/gen/ent"
	"github.com/labelworks/annoqueue/gen/ent/label"
	"github.com/labelworks/annoqueue/gen/ent/project"
	"github.com/labelworks/annoqueue/internal/entity"
	"github.com/labelworks/annoqueue/internal/utils"
)

type ProjectRepository interface {
	Create(ctx context.Context, name string, classifier string) (*entity.Project, error)
	Get(ctx context.Context, id int) (*entity.Project, error)
	// IncrementTrainingSet bumps the project's training generation and
	// returns the new value. The counter never goes backwards.
	IncrementTrainingSet(ctx context.Context, id int) (int, error)
	AddLabel(ctx context.Context, projectID int, name string) (*entity.Label, error)
	ListLabels(ctx context.Context, projectID int) ([]*entity.Label, error)
	CountLabels(ctx context.Context, projectID int) (int, error)
}

type projectRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewProjectRepository(client *ent.Client, logger *slog.Logger) ProjectRepository {
	return &projectRepository{
		client: client,
		logger: logger,
	}
}

func (r *projectRepository) Create(ctx context.Context, name string, classifier string) (*entity.Project, error) {
	builder := r.client.Project.Create().SetName(name)
	if classifier != "" {
		builder = builder.SetClassifier(classifier)
	}
	p, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create project", "name", name, "error", err)
		return nil, err
	}
	return utils.ToProject(p), nil
}

func (r *projectRepository) Get(ctx context.Context, id int) (*entity.Project, error) {
	p, err := r.client.Project.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToProject(p), nil
}

func (r *projectRepository) IncrementTrainingSet(ctx context.Context, id int) (int, error) {
	p, err := r.client.Project.UpdateOneID(id).
		AddCurrentTrainingSet(1).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to increment training set", "project_id", id, "error", err)
		return 0, err
	}
	r.logger.Info("advanced training generation", "project_id", id, "training_set", p.CurrentTrainingSet)
	return p.CurrentTrainingSet, nil
}

func (r *projectRepository) AddLabel(ctx context.Context, projectID int, name string) (*entity.Label, error) {
	l, err := r.client.Label.Create().
		SetProjectID(projectID).
		SetName(name).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to add label", "project_id", projectID, "name", name, "error", err)
		return nil, err
	}
	return utils.ToLabel(l), nil
}

func (r *projectRepository) ListLabels(ctx context.Context, projectID int) ([]*entity.Label, error) {
	rows, err := r.client.Label.Query().
		Where(label.ProjectID(projectID)).
		Order(ent.Asc(label.FieldID)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*entity.Label, len(rows))
	for i, l := range rows {
		result[i] = utils.ToLabel(l)
	}
	return result, nil
}

func (r *projectRepository) CountLabels(ctx context.Context, projectID int) (int, error) {
	return r.client.Label.Query().
		Where(label.ProjectID(projectID)).
		Count(ctx)
}

// ListProjects is a package-level helper for health tooling.
func ListProjects(ctx context.Context, client *ent.Client) ([]*entity.Project, error) {
	rows, err := client.Project.Query().Order(ent.Asc(project.FieldID)).All(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*entity.Project, len(rows))
	for i, p := range rows {
		result[i] = utils.ToProject(p)
	}
	return result, nil
}
