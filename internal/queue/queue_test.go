package queue

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/labelworks/annoqueue/internal/entity"
	"github.com/labelworks/annoqueue/internal/fastindex"
	"github.com/labelworks/annoqueue/internal/repository"
	"github.com/labelworks/annoqueue/internal/repository/memory"
)

// fixture wires the queue services over the in-memory store and index.
type fixture struct {
	store   *memory.Store
	index   *fastindex.MemoryIndex
	filler  *Filler
	disp    *Dispatcher
	manager *AssignmentManager

	shared  *entity.Queue
	labeler uuid.UUID
}

func newQueueReq(projectID, length int) repository.CreateQueueRequest {
	return repository.CreateQueueRequest{ProjectID: projectID, Length: length}
}

// newFixture creates a project with two labels, dataCount unlabeled
// items (ids 1..dataCount), one shared queue of the given length, and
// one labeler profile.
func newFixture(t *testing.T, dataCount, queueLength int) *fixture {
	t.Helper()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := memory.NewStore()
	project, err := store.Projects().Create(ctx, "headlines", "")
	require.NoError(t, err)
	_, err = store.Projects().AddLabel(ctx, project.ID, "relevant")
	require.NoError(t, err)
	_, err = store.Projects().AddLabel(ctx, project.ID, "irrelevant")
	require.NoError(t, err)

	texts := make([]string, dataCount)
	for i := range texts {
		texts[i] = fmt.Sprintf("headline %d", i+1)
	}
	if dataCount > 0 {
		_, err = store.Data().AddData(ctx, project.ID, texts)
		require.NoError(t, err)
	}

	shared, err := store.Queues().Create(ctx, repository.CreateQueueRequest{
		ProjectID: project.ID,
		Length:    queueLength,
	})
	require.NoError(t, err)

	labeler, err := store.Profiles().Create(ctx, "sam", "sam@example.com")
	require.NoError(t, err)

	index := fastindex.NewMemoryIndex()
	filler := NewFiller(store.Queues(), store.Projects(), index, logger)
	disp := NewDispatcher(store.Queues(), index, logger)
	manager := NewAssignmentManager(disp, store.Assignments(), store.Data(), store.Projects(), index, logger)

	return &fixture{
		store:   store,
		index:   index,
		filler:  filler,
		disp:    disp,
		manager: manager,
		shared:  shared,
		labeler: labeler.ID,
	}
}
