package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labelworks/annoqueue/internal/repository"
)

func TestDispatcher_EmptyQueues(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 10, 5)

	_, _, ok, err := f.disp.Dispatch(ctx, f.shared.ProjectID, &f.labeler)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDispatcher_PersonalQueueDrainsFirst(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 10, 5)

	personal, err := f.store.Queues().Create(ctx, repository.CreateQueueRequest{
		ProjectID: f.shared.ProjectID,
		Length:    5,
		ProfileID: &f.labeler,
	})
	require.NoError(t, err)

	require.NoError(t, f.store.Queues().AddMembers(ctx, f.shared.ID, []int{1, 2}))
	require.NoError(t, f.index.Push(ctx, f.shared.ID, 1, 2))
	require.NoError(t, f.store.Queues().AddMembers(ctx, personal.ID, []int{3}))
	require.NoError(t, f.index.Push(ctx, personal.ID, 3))

	queueID, dataID, ok, err := f.disp.Dispatch(ctx, f.shared.ProjectID, &f.labeler)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, personal.ID, queueID)
	assert.Equal(t, 3, dataID)

	// personal queue now empty, shared takes over
	queueID, dataID, ok, err = f.disp.Dispatch(ctx, f.shared.ProjectID, &f.labeler)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, f.shared.ID, queueID)
	assert.Equal(t, 1, dataID)
}

func TestDispatcher_OtherLabelersPersonalQueueIgnored(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 10, 5)

	other, err := f.store.Profiles().Create(ctx, "alex", "alex@example.com")
	require.NoError(t, err)
	personal, err := f.store.Queues().Create(ctx, repository.CreateQueueRequest{
		ProjectID: f.shared.ProjectID,
		Length:    5,
		ProfileID: &other.ID,
	})
	require.NoError(t, err)
	require.NoError(t, f.store.Queues().AddMembers(ctx, personal.ID, []int{4}))
	require.NoError(t, f.index.Push(ctx, personal.ID, 4))

	_, _, ok, err := f.disp.Dispatch(ctx, f.shared.ProjectID, &f.labeler)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDispatcher_NilProfileSkipsPersonalQueues(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 10, 5)

	personal, err := f.store.Queues().Create(ctx, repository.CreateQueueRequest{
		ProjectID: f.shared.ProjectID,
		Length:    5,
		ProfileID: &f.labeler,
	})
	require.NoError(t, err)
	require.NoError(t, f.store.Queues().AddMembers(ctx, personal.ID, []int{7}))
	require.NoError(t, f.index.Push(ctx, personal.ID, 7))
	require.NoError(t, f.store.Queues().AddMembers(ctx, f.shared.ID, []int{8}))
	require.NoError(t, f.index.Push(ctx, f.shared.ID, 8))

	// with no labeler only shared queues serve
	queueID, dataID, ok, err := f.disp.Dispatch(ctx, f.shared.ProjectID, nil)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, f.shared.ID, queueID)
	assert.Equal(t, 8, dataID)

	_, _, ok, err = f.disp.Dispatch(ctx, f.shared.ProjectID, nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDispatcher_PopQueue(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 10, 5)

	require.NoError(t, f.index.Push(ctx, f.shared.ID, 1, 2, 3))

	dataID, ok, err := f.disp.PopQueue(ctx, f.shared.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 3, dataID)
}
