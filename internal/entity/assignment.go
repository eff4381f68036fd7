package entity

import (
	"time"

	"github.com/google/uuid"
)

// Assignment is the durable claim binding one labeler to one data item.
// QueueID records which queue the item was drawn from so a release can
// reinstate it there.
type Assignment struct {
	ID         int       `json:"id"`
	DataID     int       `json:"data_id"`
	ProfileID  uuid.UUID `json:"profile_id"`
	QueueID    int       `json:"queue_id"`
	AssignedAt time.Time `json:"assigned_at"`
}
