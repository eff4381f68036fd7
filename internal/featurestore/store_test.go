package featurestore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaths(t *testing.T) {
	s := New("/data")

	assert.Equal(t, filepath.Join("/data", "tf_idf", "7.npz"), s.MatrixPath(7))
	assert.Equal(t, filepath.Join("/data", "model_pickles", "project_7_training_3.pkl"), s.ModelPath(7, 3))
}

func TestHasMatrix(t *testing.T) {
	s := New(t.TempDir())
	require.NoError(t, s.EnsureDirs())

	assert.False(t, s.HasMatrix(1))
	require.NoError(t, os.WriteFile(s.MatrixPath(1), []byte("matrix"), 0o644))
	assert.True(t, s.HasMatrix(1))
}
