package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/labelworks/annoqueue/internal/entity"
	"github.com/labelworks/annoqueue/internal/fastindex"
	"github.com/labelworks/annoqueue/internal/repository"
)

// AssignmentManager owns the lifecycle of a labeler's claim on an item:
// claiming it from a queue, recording the final label, or releasing the
// claim so someone else is served the item next.
type AssignmentManager struct {
	dispatcher  *Dispatcher
	assignments repository.AssignmentRepository
	data        repository.DataRepository
	projects    repository.ProjectRepository
	index       fastindex.Index
	logger      *slog.Logger
}

func NewAssignmentManager(
	dispatcher *Dispatcher,
	assignments repository.AssignmentRepository,
	data repository.DataRepository,
	projects repository.ProjectRepository,
	index fastindex.Index,
	logger *slog.Logger,
) *AssignmentManager {
	return &AssignmentManager{
		dispatcher:  dispatcher,
		assignments: assignments,
		data:        data,
		projects:    projects,
		index:       index,
		logger:      logger.With("component", "assignment_manager"),
	}
}

// Assign claims the next item for a labeler. ok is false when no
// candidate queue has anything left.
func (m *AssignmentManager) Assign(ctx context.Context, projectID int, profileID uuid.UUID) (*entity.Assignment, bool, error) {
	queueID, dataID, ok, err := m.dispatcher.Dispatch(ctx, projectID, &profileID)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	a, err := m.assignments.Create(ctx, dataID, profileID, queueID)
	if err != nil {
		return nil, false, fmt.Errorf("recording assignment of data %d to profile %s: %w", dataID, profileID, err)
	}
	return a, true, nil
}

// GetOrCreateAssignments returns the labeler's open assignments for a
// project, claiming fresh items only when they hold none. Calling it
// twice without labeling returns the same items, so a page reload never
// burns through the queue.
func (m *AssignmentManager) GetOrCreateAssignments(ctx context.Context, profileID uuid.UUID, projectID int, count int) ([]*entity.Assignment, error) {
	existing, err := m.assignments.ListForProfile(ctx, profileID, projectID, count)
	if err != nil {
		return nil, fmt.Errorf("listing assignments for profile %s: %w", profileID, err)
	}
	if len(existing) > 0 {
		return existing, nil
	}

	var claimed []*entity.Assignment
	for i := 0; i < count; i++ {
		a, ok, err := m.Assign(ctx, projectID, profileID)
		if err != nil {
			return claimed, err
		}
		if !ok {
			break
		}
		claimed = append(claimed, a)
	}
	return claimed, nil
}

// Label records a labeler's decision for an assigned item, stamps it
// with the project's current training set, and releases the item from
// its queue. The whole operation commits atomically in the durable
// store.
func (m *AssignmentManager) Label(ctx context.Context, dataID, labelID int, profileID uuid.UUID) error {
	d, err := m.data.Get(ctx, dataID)
	if err != nil {
		return fmt.Errorf("loading data %d: %w", dataID, err)
	}
	p, err := m.projects.Get(ctx, d.ProjectID)
	if err != nil {
		return fmt.Errorf("loading project %d: %w", d.ProjectID, err)
	}

	if err := m.assignments.LabelAndRelease(ctx, dataID, labelID, profileID, p.CurrentTrainingSet); err != nil {
		return err
	}
	m.logger.Info("item labeled",
		"data_id", dataID,
		"label_id", labelID,
		"profile_id", profileID,
		"training_set", p.CurrentTrainingSet)
	return nil
}

// Unassign gives an item back without labeling it. The item keeps its
// queue membership and is pushed to the head of the fast index so it is
// served next; a failed push is left for the reconciler.
func (m *AssignmentManager) Unassign(ctx context.Context, dataID int, profileID uuid.UUID) error {
	queueID, err := m.assignments.Release(ctx, dataID, profileID)
	if err != nil {
		return err
	}

	if err := m.index.PushFront(ctx, queueID, dataID); err != nil {
		m.logger.Warn("index push failed after release, reconciler will repair",
			"queue_id", queueID,
			"data_id", dataID,
			"error", err)
	}
	return nil
}
