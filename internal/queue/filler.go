// Package queue implements the dispatch engine: filling queues with
// eligible items, handing items to labelers, and keeping the fast index
// consistent with the durable store.
package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labelworks/annoqueue/constants"
	"github.com/labelworks/annoqueue/internal/common"
	"github.com/labelworks/annoqueue/internal/entity"
	"github.com/labelworks/annoqueue/internal/fastindex"
	"github.com/labelworks/annoqueue/internal/repository"
	"github.com/labelworks/annoqueue/internal/utils"
)

// itemsPerLabel sizes a project's default batch: ten items for every
// label class keeps early training sets balanced without starving
// labelers on small projects.
const itemsPerLabel = 10

// Filler tops queues up to their configured length with eligible items,
// ordered by the project's active policy.
type Filler struct {
	queues   repository.QueueRepository
	projects repository.ProjectRepository
	index    fastindex.Index
	logger   *slog.Logger
}

func NewFiller(queues repository.QueueRepository, projects repository.ProjectRepository, index fastindex.Index, logger *slog.Logger) *Filler {
	return &Filler{
		queues:   queues,
		projects: projects,
		index:    index,
		logger:   logger.With("component", "queue_filler"),
	}
}

// BatchSize returns the default queue length for a project, derived
// from its label class count.
func (f *Filler) BatchSize(ctx context.Context, projectID int) (int, error) {
	labels, err := f.projects.CountLabels(ctx, projectID)
	if err != nil {
		return 0, fmt.Errorf("counting labels for project %d: %w", projectID, err)
	}
	return labels * itemsPerLabel, nil
}

// Fill tops one queue up to its length and returns how many items were
// added. The durable membership rows are committed before the fast index
// is touched; a failed index push is logged and left for the reconciler,
// never surfaced as a fill failure.
func (f *Filler) Fill(ctx context.Context, q *entity.Queue, policy constants.OrderPolicy) (int, error) {
	if !constants.ValidOrderPolicy(policy) {
		return 0, fmt.Errorf("%q: %w", policy, common.ErrInvalidPolicy)
	}

	current, err := f.queues.MemberCount(ctx, q.ID)
	if err != nil {
		return 0, fmt.Errorf("counting members of queue %d: %w", q.ID, err)
	}
	capacity := q.Length - current
	if capacity <= 0 {
		return 0, nil
	}

	var ids []int
	if policy == constants.OrderRandom {
		eligible, err := f.queues.EligibleIDs(ctx, q.ProjectID)
		if err != nil {
			return 0, fmt.Errorf("listing eligible items for project %d: %w", q.ProjectID, err)
		}
		n := capacity
		if len(eligible) < n {
			n = len(eligible)
		}
		ids, err = utils.Sample(eligible, n)
		if err != nil {
			return 0, fmt.Errorf("sampling %d of %d eligible items: %w", n, len(eligible), err)
		}
	} else {
		ids, err = f.queues.RankedEligibleIDs(ctx, q.ProjectID, policy, capacity)
		if err != nil {
			return 0, fmt.Errorf("ranking eligible items for project %d: %w", q.ProjectID, err)
		}
	}
	if len(ids) == 0 {
		return 0, nil
	}

	if err := f.queues.AddMembers(ctx, q.ID, ids); err != nil {
		return 0, fmt.Errorf("adding %d members to queue %d: %w", len(ids), q.ID, err)
	}

	if err := f.index.Push(ctx, q.ID, ids...); err != nil {
		f.logger.Warn("index push failed after durable fill, reconciler will repair",
			"queue_id", q.ID,
			"items", len(ids),
			"error", err)
	}

	f.logger.Info("queue filled", "queue_id", q.ID, "policy", policy, "added", len(ids))
	return len(ids), nil
}
