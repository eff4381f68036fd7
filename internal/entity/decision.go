package entity

import (
	"time"

	"github.com/google/uuid"
)

// Decision is a recorded label on a data item, tagged with the training
// generation that was current when it was made.
type Decision struct {
	ID          int       `json:"id"`
	DataID      int       `json:"data_id"`
	LabelID     int       `json:"label_id"`
	ProfileID   uuid.UUID `json:"profile_id"`
	TrainingSet int       `json:"training_set"`
	LabeledAt   time.Time `json:"labeled_at"`
}

// LabeledItem is a denormalized decision row used for exports.
type LabeledItem struct {
	DataID      int       `json:"data_id"`
	Text        string    `json:"text"`
	LabelName   string    `json:"label_name"`
	Labeler     string    `json:"labeler"`
	TrainingSet int       `json:"training_set"`
	LabeledAt   time.Time `json:"labeled_at"`
}
