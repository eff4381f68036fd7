package queue

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labelworks/annoqueue/constants"
)

func TestReconciler_RebuildRestoresUnassignedMembers(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 10, 5)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := f.filler.Fill(ctx, f.shared, constants.OrderRandom)
	require.NoError(t, err)

	// one item assigned, the rest stay pending
	a, ok, err := f.manager.Assign(ctx, f.shared.ProjectID, f.labeler)
	require.NoError(t, err)
	require.True(t, ok)

	// simulate index loss plus stale garbage
	require.NoError(t, f.index.Clear(ctx))
	require.NoError(t, f.index.Push(ctx, 999, 12345))

	rec := NewReconciler(f.store.Queues(), f.store.Assignments(), f.index, logger)
	require.NoError(t, rec.Rebuild(ctx))

	indexed, err := f.index.Members(ctx, f.shared.ID)
	require.NoError(t, err)
	durable, err := f.store.Queues().UnassignedMemberIDs(ctx, f.shared.ID)
	require.NoError(t, err)
	assert.Equal(t, durable, indexed)
	assert.NotContains(t, indexed, a.DataID)

	stale, err := f.index.Members(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, stale)
}

func TestReconciler_RebuildEmptyStore(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 0, 5)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	rec := NewReconciler(f.store.Queues(), f.store.Assignments(), f.index, logger)
	require.NoError(t, rec.Rebuild(ctx))

	members, err := f.index.Members(ctx, f.shared.ID)
	require.NoError(t, err)
	assert.Empty(t, members)
}
