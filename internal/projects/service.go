// Package projects handles project setup business logic: creating a
// project with its label taxonomy, provisioning its queues, and doing
// the first fill so labelers have work immediately.
package projects

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/labelworks/annoqueue/constants"
	"github.com/labelworks/annoqueue/internal/common"
	"github.com/labelworks/annoqueue/internal/entity"
	"github.com/labelworks/annoqueue/internal/queue"
	"github.com/labelworks/annoqueue/internal/repository"
)

// Service handles project setup business logic.
type Service struct {
	projects repository.ProjectRepository
	queues   repository.QueueRepository
	filler   *queue.Filler
	logger   *slog.Logger
}

// NewService creates a new project service.
func NewService(projects repository.ProjectRepository, queues repository.QueueRepository, filler *queue.Filler, logger *slog.Logger) *Service {
	return &Service{
		projects: projects,
		queues:   queues,
		filler:   filler,
		logger:   logger,
	}
}

// CreateProjectRequest represents project creation parameters.
type CreateProjectRequest struct {
	Name       string
	Classifier string
	Labels     []string
	Policy     constants.OrderPolicy
}

// CreateProject creates a project with its labels and shared queue. The
// queue's length follows the label count, so a richer taxonomy yields a
// bigger batch between retrains.
func (s *Service) CreateProject(ctx context.Context, req CreateProjectRequest) (*entity.Project, *entity.Queue, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, nil, fmt.Errorf("project name is required: %w", common.ErrInvalidInput)
	}

	labels := make([]string, 0, len(req.Labels))
	for _, l := range req.Labels {
		if l = strings.TrimSpace(l); l != "" {
			labels = append(labels, l)
		}
	}
	if len(labels) < 2 {
		return nil, nil, fmt.Errorf("at least two labels are required: %w", common.ErrInvalidInput)
	}

	if !constants.ValidOrderPolicy(req.Policy) {
		return nil, nil, fmt.Errorf("%q: %w", req.Policy, common.ErrInvalidPolicy)
	}

	project, err := s.projects.Create(ctx, name, req.Classifier)
	if err != nil {
		return nil, nil, fmt.Errorf("create project: %w", err)
	}
	for _, l := range labels {
		if _, err := s.projects.AddLabel(ctx, project.ID, l); err != nil {
			return nil, nil, fmt.Errorf("add label %q: %w", l, err)
		}
	}

	batch, err := s.filler.BatchSize(ctx, project.ID)
	if err != nil {
		return nil, nil, err
	}
	q, err := s.queues.Create(ctx, repository.CreateQueueRequest{
		ProjectID: project.ID,
		Length:    batch,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create shared queue: %w", err)
	}

	if _, err := s.filler.Fill(ctx, q, req.Policy); err != nil {
		return nil, nil, err
	}

	s.logger.Info("project created", "project_id", project.ID, "name", name, "labels", len(labels), "queue_id", q.ID)
	return project, q, nil
}

// CreatePersonalQueue provisions and fills a queue that only the given
// labeler is served from.
func (s *Service) CreatePersonalQueue(ctx context.Context, projectID int, profileID uuid.UUID, policy constants.OrderPolicy) (*entity.Queue, error) {
	batch, err := s.filler.BatchSize(ctx, projectID)
	if err != nil {
		return nil, err
	}
	q, err := s.queues.Create(ctx, repository.CreateQueueRequest{
		ProjectID: projectID,
		Length:    batch,
		ProfileID: &profileID,
	})
	if err != nil {
		return nil, fmt.Errorf("create personal queue: %w", err)
	}
	if _, err := s.filler.Fill(ctx, q, policy); err != nil {
		return nil, err
	}
	return q, nil
}
