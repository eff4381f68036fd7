package training

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labelworks/annoqueue/internal/entity"
	"github.com/labelworks/annoqueue/internal/fastindex"
	"github.com/labelworks/annoqueue/internal/featurestore"
	"github.com/labelworks/annoqueue/internal/queue"
	"github.com/labelworks/annoqueue/internal/repository"
	"github.com/labelworks/annoqueue/internal/repository/memory"
)

type fakeSubmitter struct {
	jobs []Job
}

func (f *fakeSubmitter) Submit(_ context.Context, job Job) error {
	f.jobs = append(f.jobs, job)
	return nil
}

type triggerFixture struct {
	store     *memory.Store
	trigger   *Trigger
	submitter *fakeSubmitter
	fs        *featurestore.Store

	project *entity.Project
	shared  *entity.Queue
	labeler uuid.UUID
	labels  []int
}

// newTriggerFixture builds a project with the given labels (default
// two, batch size 20), dataCount unlabeled items and a shared queue.
func newTriggerFixture(t *testing.T, dataCount int, labelNames ...string) *triggerFixture {
	t.Helper()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if len(labelNames) == 0 {
		labelNames = []string{"relevant", "irrelevant"}
	}

	store := memory.NewStore()
	project, err := store.Projects().Create(ctx, "headlines", "")
	require.NoError(t, err)
	var labelIDs []int
	for _, name := range labelNames {
		l, err := store.Projects().AddLabel(ctx, project.ID, name)
		require.NoError(t, err)
		labelIDs = append(labelIDs, l.ID)
	}

	texts := make([]string, dataCount)
	for i := range texts {
		texts[i] = fmt.Sprintf("headline %d", i+1)
	}
	_, err = store.Data().AddData(ctx, project.ID, texts)
	require.NoError(t, err)

	shared, err := store.Queues().Create(ctx, repository.CreateQueueRequest{
		ProjectID: project.ID,
		Length:    5,
	})
	require.NoError(t, err)

	labeler, err := store.Profiles().Create(ctx, "sam", "sam@example.com")
	require.NoError(t, err)

	fs := featurestore.New(t.TempDir())
	require.NoError(t, fs.EnsureDirs())

	index := fastindex.NewMemoryIndex()
	filler := queue.NewFiller(store.Queues(), store.Projects(), index, logger)
	submitter := &fakeSubmitter{}
	trigger := NewTrigger(store.Projects(), store.Decisions(), store.Queues(), filler, fs, submitter, logger)

	return &triggerFixture{
		store:     store,
		trigger:   trigger,
		submitter: submitter,
		fs:        fs,
		project:   project,
		shared:    shared,
		labeler:   labeler.ID,
		labels:    labelIDs,
	}
}

// labelItems records one decision per data id in training set 0.
func (f *triggerFixture) labelItems(t *testing.T, dataIDs []int, labelID int) {
	t.Helper()
	ctx := context.Background()
	for _, id := range dataIDs {
		_, err := f.store.Assignments().Create(ctx, id, f.labeler, f.shared.ID)
		require.NoError(t, err)
		require.NoError(t, f.store.Assignments().LabelAndRelease(ctx, id, labelID, f.labeler, 0))
	}
}

func (f *triggerFixture) writeMatrix(t *testing.T) {
	t.Helper()
	require.NoError(t, os.WriteFile(f.fs.MatrixPath(f.project.ID), []byte("matrix"), 0o644))
}

func idRange(from, to int) []int {
	ids := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		ids = append(ids, i)
	}
	return ids
}

func TestTrigger_BatchNotFull(t *testing.T) {
	ctx := context.Background()
	f := newTriggerFixture(t, 30)
	f.labelItems(t, idRange(1, 19), f.labels[0])

	signal, err := f.trigger.Check(ctx, f.project.ID)
	require.NoError(t, err)
	assert.Equal(t, SignalNone, signal)
	assert.Empty(t, f.submitter.jobs)
}

func TestTrigger_SingleClassBatchRefills(t *testing.T) {
	ctx := context.Background()
	f := newTriggerFixture(t, 30)
	f.labelItems(t, idRange(1, 20), f.labels[0])
	f.writeMatrix(t)

	signal, err := f.trigger.Check(ctx, f.project.ID)
	require.NoError(t, err)
	assert.Equal(t, SignalRefill, signal)
	assert.Empty(t, f.submitter.jobs)

	// counter untouched
	p, err := f.store.Projects().Get(ctx, f.project.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, p.CurrentTrainingSet)

	// shared queue got fresh items
	count, err := f.store.Queues().MemberCount(ctx, f.shared.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestTrigger_UnrepresentedClassRefills(t *testing.T) {
	ctx := context.Background()
	f := newTriggerFixture(t, 45, "positive", "negative", "neutral")
	f.labelItems(t, idRange(1, 15), f.labels[0])
	f.labelItems(t, idRange(16, 30), f.labels[1])
	f.writeMatrix(t)

	// batch of 30 is full but the third class never appeared
	signal, err := f.trigger.Check(ctx, f.project.ID)
	require.NoError(t, err)
	assert.Equal(t, SignalRefill, signal)
	assert.Empty(t, f.submitter.jobs)

	p, err := f.store.Projects().Get(ctx, f.project.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, p.CurrentTrainingSet)

	// once every class is represented the set closes
	f.labelItems(t, idRange(31, 40), f.labels[2])
	signal, err = f.trigger.Check(ctx, f.project.ID)
	require.NoError(t, err)
	assert.Equal(t, SignalRetrain, signal)
	require.Len(t, f.submitter.jobs, 1)
}

func TestTrigger_MissingMatrixRefills(t *testing.T) {
	ctx := context.Background()
	f := newTriggerFixture(t, 30)
	f.labelItems(t, idRange(1, 10), f.labels[0])
	f.labelItems(t, idRange(11, 20), f.labels[1])

	signal, err := f.trigger.Check(ctx, f.project.ID)
	require.NoError(t, err)
	assert.Equal(t, SignalRefill, signal)
	assert.Empty(t, f.submitter.jobs)
}

func TestTrigger_FullBatchRetrains(t *testing.T) {
	ctx := context.Background()
	f := newTriggerFixture(t, 30)
	f.labelItems(t, idRange(1, 10), f.labels[0])
	f.labelItems(t, idRange(11, 20), f.labels[1])
	f.writeMatrix(t)

	signal, err := f.trigger.Check(ctx, f.project.ID)
	require.NoError(t, err)
	assert.Equal(t, SignalRetrain, signal)

	// counter advanced, job trains on the closed set
	p, err := f.store.Projects().Get(ctx, f.project.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, p.CurrentTrainingSet)
	require.Len(t, f.submitter.jobs, 1)
	assert.Equal(t, f.project.ID, f.submitter.jobs[0].ProjectID)
	assert.Equal(t, 0, f.submitter.jobs[0].TrainingSet)
}

func TestTrigger_NoLabelsConfigured(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewStore()
	project, err := store.Projects().Create(ctx, "bare", "")
	require.NoError(t, err)

	index := fastindex.NewMemoryIndex()
	filler := queue.NewFiller(store.Queues(), store.Projects(), index, logger)
	submitter := &fakeSubmitter{}
	fs := featurestore.New(t.TempDir())
	trigger := NewTrigger(store.Projects(), store.Decisions(), store.Queues(), filler, fs, submitter, logger)

	signal, err := trigger.Check(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, SignalNone, signal)
}
