package entity

import "github.com/google/uuid"

// Queue represents a target-length pool of unassigned work items. A queue
// with a ProfileID is personal to that labeler and outranks project queues
// at dispatch time.
type Queue struct {
	ID        int        `json:"id"`
	ProjectID int        `json:"project_id"`
	Length    int        `json:"length"`
	ProfileID *uuid.UUID `json:"profile_id,omitempty"`
}
