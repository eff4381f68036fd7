package projects

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labelworks/annoqueue/constants"
	"github.com/labelworks/annoqueue/internal/common"
	"github.com/labelworks/annoqueue/internal/fastindex"
	"github.com/labelworks/annoqueue/internal/queue"
	"github.com/labelworks/annoqueue/internal/repository/memory"
)

func newService(t *testing.T) (*Service, *memory.Store) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewStore()
	filler := queue.NewFiller(store.Queues(), store.Projects(), fastindex.NewMemoryIndex(), logger)
	return NewService(store.Projects(), store.Queues(), filler, logger), store
}

func TestCreateProject(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t)

	project, q, err := svc.CreateProject(ctx, CreateProjectRequest{
		Name:   "headlines",
		Labels: []string{"relevant", "irrelevant", "unsure"},
		Policy: constants.OrderRandom,
	})
	require.NoError(t, err)
	assert.Equal(t, "headlines", project.Name)

	labels, err := store.Projects().ListLabels(ctx, project.ID)
	require.NoError(t, err)
	assert.Len(t, labels, 3)

	// shared queue sized by label count
	assert.Nil(t, q.ProfileID)
	assert.Equal(t, 30, q.Length)
}

func TestCreateProject_Validation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	tests := []struct {
		name    string
		req     CreateProjectRequest
		wantErr error
	}{
		{
			name:    "missing name",
			req:     CreateProjectRequest{Labels: []string{"a", "b"}, Policy: constants.OrderRandom},
			wantErr: common.ErrInvalidInput,
		},
		{
			name:    "single label",
			req:     CreateProjectRequest{Name: "p", Labels: []string{"a"}, Policy: constants.OrderRandom},
			wantErr: common.ErrInvalidInput,
		},
		{
			name:    "blank labels dropped",
			req:     CreateProjectRequest{Name: "p", Labels: []string{"a", "  "}, Policy: constants.OrderRandom},
			wantErr: common.ErrInvalidInput,
		},
		{
			name:    "bad policy",
			req:     CreateProjectRequest{Name: "p", Labels: []string{"a", "b"}, Policy: "alphabetical"},
			wantErr: common.ErrInvalidPolicy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.CreateProject(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreatePersonalQueue(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t)

	project, _, err := svc.CreateProject(ctx, CreateProjectRequest{
		Name:   "headlines",
		Labels: []string{"relevant", "irrelevant"},
		Policy: constants.OrderRandom,
	})
	require.NoError(t, err)

	labeler, err := store.Profiles().Create(ctx, "sam", "sam@example.com")
	require.NoError(t, err)

	q, err := svc.CreatePersonalQueue(ctx, project.ID, labeler.ID, constants.OrderRandom)
	require.NoError(t, err)
	require.NotNil(t, q.ProfileID)
	assert.Equal(t, labeler.ID, *q.ProfileID)
	assert.Equal(t, 20, q.Length)
}
