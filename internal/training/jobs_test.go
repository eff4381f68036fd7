package training

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labelworks/annoqueue/internal/featurestore"
	"github.com/labelworks/annoqueue/internal/repository/memory"
)

// slowTrainer parks every Train call until release is closed so tests
// can hold a worker busy on purpose.
type slowTrainer struct {
	started chan struct{}
	release chan struct{}
	runs    atomic.Int32
}

func newSlowTrainer() *slowTrainer {
	return &slowTrainer{
		started: make(chan struct{}, 8),
		release: make(chan struct{}),
	}
}

func (s *slowTrainer) Train(ctx context.Context, _ TrainRequest) error {
	s.runs.Add(1)
	s.started <- struct{}{}
	select {
	case <-s.release:
	case <-ctx.Done():
	}
	return errors.New("trainer stopped")
}

func (s *slowTrainer) Predict(context.Context, PredictRequest) (*PredictResult, error) {
	return nil, errors.New("trainer stopped")
}

func TestPool_SubmitNeverBlocksWhenFull(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := memory.NewStore()
	project, err := store.Projects().Create(ctx, "headlines", "")
	require.NoError(t, err)
	_, err = store.Data().AddData(ctx, project.ID, []string{"one"})
	require.NoError(t, err)

	trainer := newSlowTrainer()
	fs := featurestore.New(t.TempDir())
	runner := NewRunner(trainer, store.Projects(), store.Data(), store.Models(), fs, logger)
	pool := NewPool(runner, logger, WithWorkers(1), WithQueueSize(1), WithJobTimeout(time.Second))

	job := Job{ProjectID: project.ID, TrainingSet: 0, SubmittedAt: time.Now()}

	// first job occupies the only worker, second fills the buffer
	require.NoError(t, pool.Submit(ctx, job))
	<-trainer.started
	require.NoError(t, pool.Submit(ctx, job))

	// a third submit against the full buffer must return immediately
	done := make(chan struct{})
	go func() {
		defer close(done)
		assert.NoError(t, pool.Submit(ctx, job))
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("submit blocked on a full pool")
	}

	close(trainer.release)
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	pool.Shutdown(shutdownCtx)

	// the overflow job was dropped, not queued behind the others
	assert.Equal(t, int32(2), trainer.runs.Load())
}

func TestPool_SubmitAfterShutdownIsIgnored(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := memory.NewStore()
	project, err := store.Projects().Create(ctx, "headlines", "")
	require.NoError(t, err)

	trainer := newSlowTrainer()
	close(trainer.release)
	fs := featurestore.New(t.TempDir())
	runner := NewRunner(trainer, store.Projects(), store.Data(), store.Models(), fs, logger)
	pool := NewPool(runner, logger, WithWorkers(1))

	pool.Shutdown(ctx)
	assert.NoError(t, pool.Submit(ctx, Job{ProjectID: project.ID}))
	assert.Equal(t, int32(0), trainer.runs.Load())
}