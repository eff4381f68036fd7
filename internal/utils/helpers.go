package utils

import (
	"github.com/labelworks/annoqueue/gen/ent"
	"github.com/labelworks/annoqueue/internal/entity"
)

func ToProject(e *ent.Project) *entity.Project {
	return &entity.Project{
		ID:                 e.ID,
		Name:               e.Name,
		Classifier:         e.Classifier,
		CurrentTrainingSet: e.CurrentTrainingSet,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

func ToLabel(e *ent.Label) *entity.Label {
	return &entity.Label{
		ID:        e.ID,
		ProjectID: e.ProjectID,
		Name:      e.Name,
	}
}

func ToProfile(e *ent.Profile) *entity.Profile {
	return &entity.Profile{
		ID:        e.ID,
		Username:  e.Username,
		Email:     e.Email,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToData(e *ent.Data) *entity.Data {
	return &entity.Data{
		ID:        e.ID,
		ProjectID: e.ProjectID,
		Text:      e.Text,
	}
}

func ToQueue(e *ent.Queue) *entity.Queue {
	return &entity.Queue{
		ID:        e.ID,
		ProjectID: e.ProjectID,
		Length:    e.Length,
		ProfileID: e.ProfileID,
	}
}

func ToAssignment(e *ent.AssignedData) *entity.Assignment {
	return &entity.Assignment{
		ID:         e.ID,
		DataID:     e.DataID,
		ProfileID:  e.ProfileID,
		QueueID:    e.QueueID,
		AssignedAt: e.AssignedAt,
	}
}

func ToDecision(e *ent.DataLabel) *entity.Decision {
	return &entity.Decision{
		ID:          e.ID,
		DataID:      e.DataID,
		LabelID:     e.LabelID,
		ProfileID:   e.ProfileID,
		TrainingSet: e.TrainingSet,
		LabeledAt:   e.LabeledAt,
	}
}

func ToModelRef(e *ent.Model) *entity.ModelRef {
	return &entity.ModelRef{
		ID:          e.ID,
		ProjectID:   e.ProjectID,
		Path:        e.Path,
		TrainingSet: e.TrainingSet,
		CreatedAt:   e.CreatedAt,
	}
}
