package entity

import "time"

// Project represents an annotation project for data transfer between layers.
type Project struct {
	ID                 int       `json:"id"`
	Name               string    `json:"name"`
	Classifier         string    `json:"classifier"`
	CurrentTrainingSet int       `json:"current_training_set"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Label represents one label class of a project.
type Label struct {
	ID        int    `json:"id"`
	ProjectID int    `json:"project_id"`
	Name      string `json:"name"`
}
