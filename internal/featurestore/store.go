// Package featurestore resolves the on-disk artifacts shared with the
// external trainer: the per-project feature matrix it reads and the
// pickled models it writes. The layout is part of the contract with the
// trainer, so both sides derive paths from project id and training set
// alone.
package featurestore

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	matrixDir = "tf_idf"
	modelDir  = "model_pickles"
)

// Store maps projects and training sets to artifact paths under a
// shared data root.
type Store struct {
	root string
}

func New(root string) *Store {
	return &Store{root: root}
}

// EnsureDirs creates the artifact directories if they are missing.
func (s *Store) EnsureDirs() error {
	for _, dir := range []string{matrixDir, modelDir} {
		if err := os.MkdirAll(filepath.Join(s.root, dir), 0o755); err != nil {
			return fmt.Errorf("creating %s directory: %w", dir, err)
		}
	}
	return nil
}

// MatrixPath is where the trainer expects the project's feature matrix.
func (s *Store) MatrixPath(projectID int) string {
	return filepath.Join(s.root, matrixDir, fmt.Sprintf("%d.npz", projectID))
}

// ModelPath is where the trainer writes the model fitted on the given
// training set.
func (s *Store) ModelPath(projectID, trainingSet int) string {
	return filepath.Join(s.root, modelDir, fmt.Sprintf("project_%d_training_%d.pkl", projectID, trainingSet))
}

// HasMatrix reports whether the project's feature matrix exists. A
// project cannot train without one.
func (s *Store) HasMatrix(projectID int) bool {
	_, err := os.Stat(s.MatrixPath(projectID))
	return err == nil
}
