package entity

import "time"

// ModelRef points at one trained classifier blob for a project generation.
// The path is opaque to the core; only the trainer dereferences it.
type ModelRef struct {
	ID          int       `json:"id"`
	ProjectID   int       `json:"project_id"`
	Path        string    `json:"path"`
	TrainingSet int       `json:"training_set"`
	CreatedAt   time.Time `json:"created_at"`
}

// UncertaintyScore holds the three priority metrics for one (data, model)
// pair.
type UncertaintyScore struct {
	DataID         int     `json:"data_id"`
	LeastConfident float64 `json:"least_confident"`
	Margin         float64 `json:"margin"`
	Entropy        float64 `json:"entropy"`
}

// Prediction is one per-class probability from a model for a data item.
type Prediction struct {
	DataID      int     `json:"data_id"`
	LabelID     int     `json:"label_id"`
	Probability float64 `json:"probability"`
}
