package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labelworks/annoqueue/constants"
	"github.com/labelworks/annoqueue/internal/common"
	"github.com/labelworks/annoqueue/internal/entity"
)

func TestFiller_InvalidPolicy(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 10, 5)

	_, err := f.filler.Fill(ctx, f.shared, constants.OrderPolicy("alphabetical"))
	assert.ErrorIs(t, err, common.ErrInvalidPolicy)
}

func TestFiller_RandomFillRespectsCapacity(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 10, 5)

	added, err := f.filler.Fill(ctx, f.shared, constants.OrderRandom)
	require.NoError(t, err)
	assert.Equal(t, 5, added)

	count, err := f.store.Queues().MemberCount(ctx, f.shared.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestFiller_FullQueueIsNoOp(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 10, 5)

	_, err := f.filler.Fill(ctx, f.shared, constants.OrderRandom)
	require.NoError(t, err)

	added, err := f.filler.Fill(ctx, f.shared, constants.OrderRandom)
	require.NoError(t, err)
	assert.Equal(t, 0, added)
}

func TestFiller_ShortPopulationFillsWhatExists(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 3, 10)

	added, err := f.filler.Fill(ctx, f.shared, constants.OrderRandom)
	require.NoError(t, err)
	assert.Equal(t, 3, added)
}

func TestFiller_IndexMirrorsDurableMembership(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 10, 5)

	_, err := f.filler.Fill(ctx, f.shared, constants.OrderRandom)
	require.NoError(t, err)

	durable, err := f.store.Queues().UnassignedMemberIDs(ctx, f.shared.ID)
	require.NoError(t, err)
	indexed, err := f.index.Members(ctx, f.shared.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, durable, indexed)
}

func TestFiller_QueuedItemsNotFilledTwice(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 10, 6)

	_, err := f.filler.Fill(ctx, f.shared, constants.OrderRandom)
	require.NoError(t, err)
	first, err := f.store.Queues().UnassignedMemberIDs(ctx, f.shared.ID)
	require.NoError(t, err)

	second, err := f.store.Queues().Create(ctx, newQueueReq(f.shared.ProjectID, 10))
	require.NoError(t, err)
	added, err := f.filler.Fill(ctx, second, constants.OrderRandom)
	require.NoError(t, err)
	assert.Equal(t, 4, added)

	members, err := f.store.Queues().UnassignedMemberIDs(ctx, second.ID)
	require.NoError(t, err)
	for _, id := range members {
		assert.NotContains(t, first, id)
	}
}

func TestFiller_RankedFillWithoutModelAddsNothing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 10, 5)

	added, err := f.filler.Fill(ctx, f.shared, constants.OrderLeastConfident)
	require.NoError(t, err)
	assert.Equal(t, 0, added)
}

func TestFiller_RankedFillFollowsUncertainty(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 5, 3)

	model, err := f.store.Models().Create(ctx, f.shared.ProjectID, "/models/m.pkl", 0)
	require.NoError(t, err)
	scores := []entity.UncertaintyScore{
		{DataID: 1, LeastConfident: 0.1},
		{DataID: 2, LeastConfident: 0.5},
		{DataID: 3, LeastConfident: 0.3},
		{DataID: 4, LeastConfident: 0.4},
		{DataID: 5, LeastConfident: 0.2},
	}
	require.NoError(t, f.store.Models().SaveScores(ctx, model.ID, scores, nil))

	added, err := f.filler.Fill(ctx, f.shared, constants.OrderLeastConfident)
	require.NoError(t, err)
	assert.Equal(t, 3, added)

	members, err := f.index.Members(ctx, f.shared.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 3}, members)
}

func TestFiller_BatchSizeFollowsLabelCount(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 0, 5)

	batch, err := f.filler.BatchSize(ctx, f.shared.ProjectID)
	require.NoError(t, err)
	assert.Equal(t, 20, batch)
}
