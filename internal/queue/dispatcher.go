package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/labelworks/annoqueue/internal/fastindex"
	"github.com/labelworks/annoqueue/internal/repository"
)

// Dispatcher picks the next item for a labeler. Personal queues are
// drained before shared ones, and the pop across candidate queues is a
// single atomic index operation so concurrent labelers never receive
// the same item.
type Dispatcher struct {
	queues repository.QueueRepository
	index  fastindex.Index
	logger *slog.Logger
}

func NewDispatcher(queues repository.QueueRepository, index fastindex.Index, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		queues: queues,
		index:  index,
		logger: logger.With("component", "queue_dispatcher"),
	}
}

// Dispatch pops the head of the highest-priority nonempty queue the
// labeler may draw from. A nil profileID restricts the pop to shared
// project queues. ok is false when every candidate queue is empty.
func (d *Dispatcher) Dispatch(ctx context.Context, projectID int, profileID *uuid.UUID) (queueID, dataID int, ok bool, err error) {
	candidates, err := d.queues.CandidatesForDispatch(ctx, projectID, profileID)
	if err != nil {
		return 0, 0, false, fmt.Errorf("listing candidate queues for project %d: %w", projectID, err)
	}
	if len(candidates) == 0 {
		return 0, 0, false, nil
	}

	queueID, dataID, ok, err = d.index.PopFirstNonEmpty(ctx, candidates)
	if err != nil {
		return 0, 0, false, fmt.Errorf("popping from %d candidate queues: %w", len(candidates), err)
	}
	if ok {
		d.logger.Debug("item dispatched", "queue_id", queueID, "data_id", dataID)
	}
	return queueID, dataID, ok, nil
}

// PopQueue removes one item from a single named queue, bypassing the
// priority order. Batch tooling uses it to drain a specific queue.
func (d *Dispatcher) PopQueue(ctx context.Context, queueID int) (int, bool, error) {
	return d.index.PopQueue(ctx, queueID)
}
