package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/labelworks/annoqueue/constants"
	"github.com/labelworks/annoqueue/gen/ent"
	"github.com/labelworks/annoqueue/gen/ent/data"
	"github.com/labelworks/annoqueue/gen/ent/dataqueue"
	"github.com/labelworks/annoqueue/gen/ent/datauncertainty"
	"github.com/labelworks/annoqueue/gen/ent/model"
	"github.com/labelworks/annoqueue/gen/ent/queue"
	"github.com/labelworks/annoqueue/internal/common"
	"github.com/labelworks/annoqueue/internal/entity"
	"github.com/labelworks/annoqueue/internal/utils"
)

// CreateQueueRequest wraps parameters for creating a queue. A nil ProfileID
// makes a shared project queue.
type CreateQueueRequest struct {
	ProjectID int
	Length    int
	ProfileID *uuid.UUID
}

type QueueRepository interface {
	Create(ctx context.Context, req CreateQueueRequest) (*entity.Queue, error)
	Get(ctx context.Context, id int) (*entity.Queue, error)
	List(ctx context.Context) ([]*entity.Queue, error)
	// ProjectQueue returns the project's shared queue (lowest id wins when
	// several exist).
	ProjectQueue(ctx context.Context, projectID int) (*entity.Queue, error)
	// CandidatesForDispatch returns queue ids in pop order: the profile's
	// personal queues first, then shared project queues, ties broken by id
	// ascending. Without a profile only shared queues are considered.
	CandidatesForDispatch(ctx context.Context, projectID int, profileID *uuid.UUID) ([]int, error)
	MemberCount(ctx context.Context, queueID int) (int, error)
	// EligibleIDs returns data in the project that is neither labeled nor a
	// member of any queue, ascending by id.
	EligibleIDs(ctx context.Context, projectID int) ([]int, error)
	// RankedEligibleIDs returns up to limit eligible data ids ordered by the
	// newest model's uncertainty scores for the given policy. Items without
	// a score for that model are excluded; with no model at all the result
	// is empty.
	RankedEligibleIDs(ctx context.Context, projectID int, policy constants.OrderPolicy, limit int) ([]int, error)
	// AddMembers inserts membership rows for the given data in one
	// transaction.
	AddMembers(ctx context.Context, queueID int, dataIDs []int) error
	// UnassignedMemberIDs returns the queue's current membership excluding
	// items with an active assignment, in insertion order. This is the
	// durable mirror of the fast index.
	UnassignedMemberIDs(ctx context.Context, queueID int) ([]int, error)
}

type queueRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewQueueRepository(client *ent.Client, logger *slog.Logger) QueueRepository {
	return &queueRepository{
		client: client,
		logger: logger,
	}
}

func (r *queueRepository) Create(ctx context.Context, req CreateQueueRequest) (*entity.Queue, error) {
	builder := r.client.Queue.Create().
		SetProjectID(req.ProjectID).
		SetLength(req.Length)
	if req.ProfileID != nil {
		builder = builder.SetProfileID(*req.ProfileID)
	}
	q, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create queue", "project_id", req.ProjectID, "error", err)
		return nil, err
	}
	return utils.ToQueue(q), nil
}

func (r *queueRepository) Get(ctx context.Context, id int) (*entity.Queue, error) {
	q, err := r.client.Queue.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToQueue(q), nil
}

func (r *queueRepository) List(ctx context.Context) ([]*entity.Queue, error) {
	rows, err := r.client.Queue.Query().Order(ent.Asc(queue.FieldID)).All(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*entity.Queue, len(rows))
	for i, q := range rows {
		result[i] = utils.ToQueue(q)
	}
	return result, nil
}

func (r *queueRepository) ProjectQueue(ctx context.Context, projectID int) (*entity.Queue, error) {
	q, err := r.client.Queue.Query().
		Where(
			queue.ProjectID(projectID),
			queue.ProfileIDIsNil(),
		).
		Order(ent.Asc(queue.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("project %d has no shared queue: %w", projectID, common.ErrNotFound)
		}
		return nil, err
	}
	return utils.ToQueue(q), nil
}

func (r *queueRepository) CandidatesForDispatch(ctx context.Context, projectID int, profileID *uuid.UUID) ([]int, error) {
	var candidates []int

	if profileID != nil {
		personal, err := r.client.Queue.Query().
			Where(
				queue.ProjectID(projectID),
				queue.ProfileID(*profileID),
			).
			Order(ent.Asc(queue.FieldID)).
			IDs(ctx)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, personal...)
	}

	shared, err := r.client.Queue.Query().
		Where(
			queue.ProjectID(projectID),
			queue.ProfileIDIsNil(),
		).
		Order(ent.Asc(queue.FieldID)).
		IDs(ctx)
	if err != nil {
		return nil, err
	}
	return append(candidates, shared...), nil
}

func (r *queueRepository) MemberCount(ctx context.Context, queueID int) (int, error) {
	return r.client.DataQueue.Query().
		Where(dataqueue.QueueID(queueID)).
		Count(ctx)
}

func (r *queueRepository) EligibleIDs(ctx context.Context, projectID int) ([]int, error) {
	return r.client.Data.Query().
		Where(
			data.ProjectID(projectID),
			data.Not(data.HasDecisions()),
			data.Not(data.HasQueueEntries()),
		).
		Order(ent.Asc(data.FieldID)).
		IDs(ctx)
}

func (r *queueRepository) RankedEligibleIDs(ctx context.Context, projectID int, policy constants.OrderPolicy, limit int) ([]int, error) {
	latestModel, err := r.client.Model.Query().
		Where(model.ProjectID(projectID)).
		Order(ent.Desc(model.FieldID)).
		FirstID(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			// nothing trained yet, so nothing to rank
			return nil, nil
		}
		return nil, err
	}

	q := r.client.DataUncertainty.Query().
		Where(
			datauncertainty.ModelID(latestModel),
			datauncertainty.HasDataWith(
				data.ProjectID(projectID),
				data.Not(data.HasDecisions()),
				data.Not(data.HasQueueEntries()),
			),
		)

	switch policy {
	case constants.OrderLeastConfident:
		q = q.Order(ent.Desc(datauncertainty.FieldLeastConfident))
	case constants.OrderMargin:
		q = q.Order(ent.Asc(datauncertainty.FieldMargin))
	case constants.OrderEntropy:
		q = q.Order(ent.Desc(datauncertainty.FieldEntropy))
	default:
		return nil, fmt.Errorf("%q: %w", policy, common.ErrInvalidPolicy)
	}

	rows, err := q.Limit(limit).All(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]int, len(rows))
	for i, u := range rows {
		ids[i] = u.DataID
	}
	return ids, nil
}

func (r *queueRepository) AddMembers(ctx context.Context, queueID int, dataIDs []int) error {
	if len(dataIDs) == 0 {
		return nil
	}
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return err
	}
	creates := make([]*ent.DataQueueCreate, len(dataIDs))
	for i, id := range dataIDs {
		creates[i] = tx.DataQueue.Create().
			SetQueueID(queueID).
			SetDataID(id)
	}
	if _, err := tx.DataQueue.CreateBulk(creates...).Save(ctx); err != nil {
		_ = tx.Rollback()
		r.logger.Error("failed to add queue members", "queue_id", queueID, "count", len(dataIDs), "error", err)
		return err
	}
	return tx.Commit()
}

func (r *queueRepository) UnassignedMemberIDs(ctx context.Context, queueID int) ([]int, error) {
	rows, err := r.client.DataQueue.Query().
		Where(
			dataqueue.QueueID(queueID),
			dataqueue.HasDataWith(data.Not(data.HasAssignments())),
		).
		Order(ent.Asc(dataqueue.FieldID)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]int, len(rows))
	for i, dq := range rows {
		ids[i] = dq.DataID
	}
	return ids, nil
}
