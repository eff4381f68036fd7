package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile represents a labeler for data transfer between layers.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
