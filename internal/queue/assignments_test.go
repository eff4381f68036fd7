package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labelworks/annoqueue/constants"
	"github.com/labelworks/annoqueue/internal/common"
)

func TestAssignmentManager_Assign(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 10, 5)
	_, err := f.filler.Fill(ctx, f.shared, constants.OrderRandom)
	require.NoError(t, err)

	a, ok, err := f.manager.Assign(ctx, f.shared.ProjectID, f.labeler)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, f.shared.ID, a.QueueID)
	assert.Equal(t, f.labeler, a.ProfileID)

	// assigned item is gone from the index but keeps its membership
	indexed, err := f.index.Members(ctx, f.shared.ID)
	require.NoError(t, err)
	assert.NotContains(t, indexed, a.DataID)
	count, err := f.store.Queues().MemberCount(ctx, f.shared.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestAssignmentManager_GetOrCreateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 10, 5)
	_, err := f.filler.Fill(ctx, f.shared, constants.OrderRandom)
	require.NoError(t, err)

	first, err := f.manager.GetOrCreateAssignments(ctx, f.labeler, f.shared.ProjectID, 3)
	require.NoError(t, err)
	require.Len(t, first, 3)

	second, err := f.manager.GetOrCreateAssignments(ctx, f.labeler, f.shared.ProjectID, 3)
	require.NoError(t, err)
	require.Len(t, second, 3)
	for i := range first {
		assert.Equal(t, first[i].DataID, second[i].DataID)
	}

	// no extra items were popped by the second call
	indexed, err := f.index.Members(ctx, f.shared.ID)
	require.NoError(t, err)
	assert.Len(t, indexed, 2)
}

func TestAssignmentManager_Label(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 10, 5)
	_, err := f.filler.Fill(ctx, f.shared, constants.OrderRandom)
	require.NoError(t, err)

	a, ok, err := f.manager.Assign(ctx, f.shared.ProjectID, f.labeler)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, f.manager.Label(ctx, a.DataID, 1, f.labeler))

	// decision carries the project's current training set
	count, err := f.store.Decisions().CountForTrainingSet(ctx, f.shared.ProjectID, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// labeled item left the queue and is no longer eligible
	members, err := f.store.Queues().UnassignedMemberIDs(ctx, f.shared.ID)
	require.NoError(t, err)
	assert.NotContains(t, members, a.DataID)
	eligible, err := f.store.Queues().EligibleIDs(ctx, f.shared.ProjectID)
	require.NoError(t, err)
	assert.NotContains(t, eligible, a.DataID)
}

func TestAssignmentManager_LabelWithoutAssignment(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 10, 5)

	err := f.manager.Label(ctx, 1, 1, f.labeler)
	assert.ErrorIs(t, err, common.ErrAssignmentNotFound)
}

func TestAssignmentManager_UnassignServesItemNext(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 10, 5)
	_, err := f.filler.Fill(ctx, f.shared, constants.OrderRandom)
	require.NoError(t, err)

	a, ok, err := f.manager.Assign(ctx, f.shared.ProjectID, f.labeler)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, f.manager.Unassign(ctx, a.DataID, f.labeler))

	// membership survived the release
	count, err := f.store.Queues().MemberCount(ctx, f.shared.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	next, ok, err := f.manager.Assign(ctx, f.shared.ProjectID, f.labeler)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, a.DataID, next.DataID)
}

func TestAssignmentManager_UnassignWithoutAssignment(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 10, 5)

	err := f.manager.Unassign(ctx, 1, f.labeler)
	assert.ErrorIs(t, err, common.ErrAssignmentNotFound)
}
