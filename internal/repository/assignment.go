package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/labelworks/annoqueue/gen/ent"
	"github.com/labelworks/annoqueue/gen/ent/assigneddata"
	"github.com/labelworks/annoqueue/gen/ent/dataqueue"
	"github.com/labelworks/annoqueue/gen/ent/queue"
	"github.com/labelworks/annoqueue/internal/common"
	"github.com/labelworks/annoqueue/internal/entity"
	"github.com/labelworks/annoqueue/internal/utils"
)

type AssignmentRepository interface {
	// Create records the claim of one profile on one data item. The unique
	// (data_id, profile_id) index rejects duplicates at the durable layer.
	Create(ctx context.Context, dataID int, profileID uuid.UUID, queueID int) (*entity.Assignment, error)
	// ListForProfile returns up to limit active assignments the profile
	// holds in the project, oldest first. limit <= 0 means no limit.
	ListForProfile(ctx context.Context, profileID uuid.UUID, projectID int, limit int) ([]*entity.Assignment, error)
	// AssignedDataIDs returns the data ids of every active assignment. Also
	// doubles as the startup schema probe: a query error here means the
	// schema is not migrated.
	AssignedDataIDs(ctx context.Context) ([]int, error)
	// LabelAndRelease records a terminal decision and, in the same
	// transaction, deletes the assignment and the queue membership row.
	// Fails with ErrAssignmentNotFound when the profile holds no claim on
	// the item.
	LabelAndRelease(ctx context.Context, dataID int, labelID int, profileID uuid.UUID, trainingSet int) error
	// Release deletes the assignment and reports which queue the item came
	// from so the caller can reinstate it. Fails with ErrAssignmentNotFound
	// when there is no claim.
	Release(ctx context.Context, dataID int, profileID uuid.UUID) (queueID int, err error)
}

type assignmentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewAssignmentRepository(client *ent.Client, logger *slog.Logger) AssignmentRepository {
	return &assignmentRepository{
		client: client,
		logger: logger,
	}
}

func (r *assignmentRepository) Create(ctx context.Context, dataID int, profileID uuid.UUID, queueID int) (*entity.Assignment, error) {
	a, err := r.client.AssignedData.Create().
		SetDataID(dataID).
		SetProfileID(profileID).
		SetQueueID(queueID).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create assignment", "data_id", dataID, "profile_id", profileID, "error", err)
		return nil, err
	}
	return utils.ToAssignment(a), nil
}

func (r *assignmentRepository) ListForProfile(ctx context.Context, profileID uuid.UUID, projectID int, limit int) ([]*entity.Assignment, error) {
	q := r.client.AssignedData.Query().
		Where(
			assigneddata.ProfileID(profileID),
			assigneddata.HasQueueWith(queue.ProjectID(projectID)),
		).
		Order(ent.Asc(assigneddata.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*entity.Assignment, len(rows))
	for i, a := range rows {
		result[i] = utils.ToAssignment(a)
	}
	return result, nil
}

func (r *assignmentRepository) AssignedDataIDs(ctx context.Context) ([]int, error) {
	rows, err := r.client.AssignedData.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading assigned data: %w", common.ErrMigrationRequired)
	}
	ids := make([]int, len(rows))
	for i, a := range rows {
		ids[i] = a.DataID
	}
	return ids, nil
}

func (r *assignmentRepository) LabelAndRelease(ctx context.Context, dataID int, labelID int, profileID uuid.UUID, trainingSet int) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return err
	}

	a, err := tx.AssignedData.Query().
		Where(
			assigneddata.DataID(dataID),
			assigneddata.ProfileID(profileID),
		).
		Only(ctx)
	if err != nil {
		_ = tx.Rollback()
		if ent.IsNotFound(err) {
			return fmt.Errorf("data %d, profile %s: %w", dataID, profileID, common.ErrAssignmentNotFound)
		}
		return err
	}

	if _, err := tx.DataLabel.Create().
		SetDataID(dataID).
		SetLabelID(labelID).
		SetProfileID(profileID).
		SetTrainingSet(trainingSet).
		Save(ctx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.AssignedData.DeleteOne(a).Exec(ctx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if _, err := tx.DataQueue.Delete().
		Where(
			dataqueue.DataID(dataID),
			dataqueue.QueueID(a.QueueID),
		).
		Exec(ctx); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

func (r *assignmentRepository) Release(ctx context.Context, dataID int, profileID uuid.UUID) (int, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return 0, err
	}

	a, err := tx.AssignedData.Query().
		Where(
			assigneddata.DataID(dataID),
			assigneddata.ProfileID(profileID),
		).
		Only(ctx)
	if err != nil {
		_ = tx.Rollback()
		if ent.IsNotFound(err) {
			return 0, fmt.Errorf("data %d, profile %s: %w", dataID, profileID, common.ErrAssignmentNotFound)
		}
		return 0, err
	}

	if err := tx.AssignedData.DeleteOne(a).Exec(ctx); err != nil {
		_ = tx.Rollback()
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return a.QueueID, nil
}
