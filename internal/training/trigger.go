package training

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/labelworks/annoqueue/constants"
	"github.com/labelworks/annoqueue/internal/featurestore"
	"github.com/labelworks/annoqueue/internal/queue"
	"github.com/labelworks/annoqueue/internal/repository"
)

// Signal is the outcome of a trigger check.
type Signal string

const (
	// SignalNone: the current training set has not filled a batch yet.
	SignalNone Signal = "no_trigger"
	// SignalRefill: a batch is full but does not cover every label
	// class, so the shared queue was refilled instead of retraining.
	SignalRefill Signal = "refill"
	// SignalRetrain: the training set was closed and a train job queued.
	SignalRetrain Signal = "retrain"
)

// Trigger decides after each labeled batch whether a project retrains.
type Trigger struct {
	projects  repository.ProjectRepository
	decisions repository.DecisionRepository
	queues    repository.QueueRepository
	filler    *queue.Filler
	store     *featurestore.Store
	submitter Submitter
	logger    *slog.Logger
}

func NewTrigger(
	projects repository.ProjectRepository,
	decisions repository.DecisionRepository,
	queues repository.QueueRepository,
	filler *queue.Filler,
	store *featurestore.Store,
	submitter Submitter,
	logger *slog.Logger,
) *Trigger {
	return &Trigger{
		projects:  projects,
		decisions: decisions,
		queues:    queues,
		filler:    filler,
		store:     store,
		submitter: submitter,
		logger:    logger.With("component", "training_trigger"),
	}
}

// Check runs after a label lands. When the current training set has a
// full batch spanning every configured label class and the project's
// feature matrix exists, it closes the set by incrementing the counter
// first, then queues a train job on the just-closed set. New labels
// arriving while the job runs land in the next set, so the job's input
// never shifts underneath it.
//
// A full batch with unrepresented classes cannot fit a classifier over
// the whole label set; the shared queue is refilled randomly and the
// counter left alone so labeling continues until every class shows up.
func (t *Trigger) Check(ctx context.Context, projectID int) (Signal, error) {
	project, err := t.projects.Get(ctx, projectID)
	if err != nil {
		return SignalNone, fmt.Errorf("loading project %d: %w", projectID, err)
	}

	batchSize, err := t.filler.BatchSize(ctx, projectID)
	if err != nil {
		return SignalNone, err
	}
	if batchSize == 0 {
		return SignalNone, nil
	}

	labeled, err := t.decisions.CountForTrainingSet(ctx, projectID, project.CurrentTrainingSet)
	if err != nil {
		return SignalNone, fmt.Errorf("counting labels for project %d set %d: %w", projectID, project.CurrentTrainingSet, err)
	}
	if labeled < batchSize {
		return SignalNone, nil
	}

	classes, err := t.decisions.DistinctLabelIDs(ctx, projectID, project.CurrentTrainingSet)
	if err != nil {
		return SignalNone, fmt.Errorf("counting label classes for project %d set %d: %w", projectID, project.CurrentTrainingSet, err)
	}
	labelCount, err := t.projects.CountLabels(ctx, projectID)
	if err != nil {
		return SignalNone, fmt.Errorf("counting labels for project %d: %w", projectID, err)
	}
	if len(classes) < labelCount {
		t.logger.Info("batch full but missing label classes, refilling",
			"project_id", projectID,
			"training_set", project.CurrentTrainingSet,
			"labeled", labeled,
			"classes", len(classes),
			"label_count", labelCount)
		return SignalRefill, t.refill(ctx, projectID)
	}

	if !t.store.HasMatrix(projectID) {
		t.logger.Warn("batch full but feature matrix missing, refilling",
			"project_id", projectID,
			"matrix_path", t.store.MatrixPath(projectID))
		return SignalRefill, t.refill(ctx, projectID)
	}

	newSet, err := t.projects.IncrementTrainingSet(ctx, projectID)
	if err != nil {
		return SignalNone, fmt.Errorf("closing training set for project %d: %w", projectID, err)
	}

	job := Job{ProjectID: projectID, TrainingSet: newSet - 1, SubmittedAt: time.Now()}
	if err := t.submitter.Submit(ctx, job); err != nil {
		return SignalNone, fmt.Errorf("submitting train job for project %d: %w", projectID, err)
	}

	t.logger.Info("training set closed, train job queued",
		"project_id", projectID,
		"training_set", job.TrainingSet,
		"labeled", labeled,
		"classes", len(classes))
	return SignalRetrain, nil
}

func (t *Trigger) refill(ctx context.Context, projectID int) error {
	q, err := t.queues.ProjectQueue(ctx, projectID)
	if err != nil {
		return fmt.Errorf("finding shared queue for project %d: %w", projectID, err)
	}
	if _, err := t.filler.Fill(ctx, q, constants.OrderRandom); err != nil {
		return err
	}
	return nil
}
