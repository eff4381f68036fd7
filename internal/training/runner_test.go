package training

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labelworks/annoqueue/internal/featurestore"
	"github.com/labelworks/annoqueue/internal/repository/memory"
)

type fakeTrainer struct {
	trained   []TrainRequest
	predicted []PredictRequest
	result    *PredictResult
}

func (f *fakeTrainer) Train(_ context.Context, req TrainRequest) error {
	f.trained = append(f.trained, req)
	return nil
}

func (f *fakeTrainer) Predict(_ context.Context, req PredictRequest) (*PredictResult, error) {
	f.predicted = append(f.predicted, req)
	return f.result, nil
}

func TestRunner_Run(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := memory.NewStore()
	project, err := store.Projects().Create(ctx, "headlines", "svm")
	require.NoError(t, err)
	_, err = store.Data().AddData(ctx, project.ID, []string{"one", "two"})
	require.NoError(t, err)

	trainer := &fakeTrainer{
		result: &PredictResult{
			Classes: []int{1, 2},
			Items: []PredictedItem{
				{DataID: 1, Probabilities: []float64{0.9, 0.1}},
				{DataID: 2, Probabilities: []float64{0.5, 0.5}},
			},
		},
	}
	fs := featurestore.New(t.TempDir())
	runner := NewRunner(trainer, store.Projects(), store.Data(), store.Models(), fs, logger)

	require.NoError(t, runner.Run(ctx, Job{ProjectID: project.ID, TrainingSet: 0}))

	// train request carried the project's classifier, artifact paths
	// and matrix row offset
	require.Len(t, trainer.trained, 1)
	assert.Equal(t, "svm", trainer.trained[0].Classifier)
	assert.Equal(t, fs.MatrixPath(project.ID), trainer.trained[0].MatrixPath)
	assert.Equal(t, fs.ModelPath(project.ID, 0), trainer.trained[0].ModelPath)
	assert.Equal(t, 1, trainer.trained[0].RowOffset)

	// prediction was asked only for the unlabeled items
	require.Len(t, trainer.predicted, 1)
	assert.Equal(t, []int{1, 2}, trainer.predicted[0].DataIDs)
	assert.Equal(t, 1, trainer.predicted[0].RowOffset)

	// the model was recorded and becomes the newest
	modelID, ok, err := store.Models().LatestID(ctx, project.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Positive(t, modelID)
}

func TestRunner_RejectsClassProbabilityMismatch(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := memory.NewStore()
	project, err := store.Projects().Create(ctx, "headlines", "")
	require.NoError(t, err)
	_, err = store.Data().AddData(ctx, project.ID, []string{"one"})
	require.NoError(t, err)

	trainer := &fakeTrainer{
		result: &PredictResult{
			Classes: []int{1, 2, 3},
			Items:   []PredictedItem{{DataID: 1, Probabilities: []float64{0.9, 0.1}}},
		},
	}
	fs := featurestore.New(t.TempDir())
	runner := NewRunner(trainer, store.Projects(), store.Data(), store.Models(), fs, logger)

	err = runner.Run(ctx, Job{ProjectID: project.ID, TrainingSet: 0})
	assert.Error(t, err)
}
