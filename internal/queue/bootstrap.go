package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labelworks/annoqueue/internal/fastindex"
	"github.com/labelworks/annoqueue/internal/repository"
)

// Reconciler rebuilds the fast index from the durable store. The index
// is a cache: after a crash, a flush, or a missed push it can drift, and
// a rebuild at startup restores exactly the unassigned members of every
// queue.
type Reconciler struct {
	queues      repository.QueueRepository
	assignments repository.AssignmentRepository
	index       fastindex.Index
	logger      *slog.Logger
}

func NewReconciler(queues repository.QueueRepository, assignments repository.AssignmentRepository, index fastindex.Index, logger *slog.Logger) *Reconciler {
	return &Reconciler{
		queues:      queues,
		assignments: assignments,
		index:       index,
		logger:      logger.With("component", "reconciler"),
	}
}

// Rebuild clears the index and repopulates every queue with its
// unassigned members, oldest membership first. It probes the assignment
// table first so a store missing its schema halts startup instead of
// silently serving an empty index.
func (r *Reconciler) Rebuild(ctx context.Context) error {
	if _, err := r.assignments.AssignedDataIDs(ctx); err != nil {
		return fmt.Errorf("probing durable store before index rebuild: %w", err)
	}

	if err := r.index.Clear(ctx); err != nil {
		return fmt.Errorf("clearing fast index: %w", err)
	}

	queues, err := r.queues.List(ctx)
	if err != nil {
		return fmt.Errorf("listing queues: %w", err)
	}

	total := 0
	for _, q := range queues {
		ids, err := r.queues.UnassignedMemberIDs(ctx, q.ID)
		if err != nil {
			return fmt.Errorf("listing unassigned members of queue %d: %w", q.ID, err)
		}
		if len(ids) == 0 {
			continue
		}
		if err := r.index.Push(ctx, q.ID, ids...); err != nil {
			return fmt.Errorf("pushing %d items to queue %d: %w", len(ids), q.ID, err)
		}
		total += len(ids)
	}

	r.logger.Info("fast index rebuilt", "queues", len(queues), "items", total)
	return nil
}
