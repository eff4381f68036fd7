// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/labelworks/annoqueue/db/ent/schema"
	"github.com/labelworks/annoqueue/gen/ent/assigneddata"
	"github.com/labelworks/annoqueue/gen/ent/data"
	"github.com/labelworks/annoqueue/gen/ent/datalabel"
	"github.com/labelworks/annoqueue/gen/ent/label"
	"github.com/labelworks/annoqueue/gen/ent/model"
	"github.com/labelworks/annoqueue/gen/ent/profile"
	"github.com/labelworks/annoqueue/gen/ent/project"
	"github.com/labelworks/annoqueue/gen/ent/queue"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assigneddataFields := schema.AssignedData{}.Fields()
	_ = assigneddataFields
	// assigneddataDescAssignedAt is the schema descriptor for assigned_at field.
	assigneddataDescAssignedAt := assigneddataFields[3].Descriptor()
	// assigneddata.DefaultAssignedAt holds the default value on creation for the assigned_at field.
	assigneddata.DefaultAssignedAt = assigneddataDescAssignedAt.Default.(func() time.Time)
	dataFields := schema.Data{}.Fields()
	_ = dataFields
	// dataDescText is the schema descriptor for text field.
	dataDescText := dataFields[1].Descriptor()
	// data.TextValidator is a validator for the "text" field. It is called by the builders before save.
	data.TextValidator = dataDescText.Validators[0].(func(string) error)
	datalabelFields := schema.DataLabel{}.Fields()
	_ = datalabelFields
	// datalabelDescTrainingSet is the schema descriptor for training_set field.
	datalabelDescTrainingSet := datalabelFields[3].Descriptor()
	// datalabel.TrainingSetValidator is a validator for the "training_set" field. It is called by the builders before save.
	datalabel.TrainingSetValidator = datalabelDescTrainingSet.Validators[0].(func(int) error)
	// datalabelDescLabeledAt is the schema descriptor for labeled_at field.
	datalabelDescLabeledAt := datalabelFields[4].Descriptor()
	// datalabel.DefaultLabeledAt holds the default value on creation for the labeled_at field.
	datalabel.DefaultLabeledAt = datalabelDescLabeledAt.Default.(func() time.Time)
	labelFields := schema.Label{}.Fields()
	_ = labelFields
	// labelDescName is the schema descriptor for name field.
	labelDescName := labelFields[1].Descriptor()
	// label.NameValidator is a validator for the "name" field. It is called by the builders before save.
	label.NameValidator = labelDescName.Validators[0].(func(string) error)
	modelFields := schema.Model{}.Fields()
	_ = modelFields
	// modelDescPath is the schema descriptor for path field.
	modelDescPath := modelFields[1].Descriptor()
	// model.PathValidator is a validator for the "path" field. It is called by the builders before save.
	model.PathValidator = modelDescPath.Validators[0].(func(string) error)
	// modelDescTrainingSet is the schema descriptor for training_set field.
	modelDescTrainingSet := modelFields[2].Descriptor()
	// model.TrainingSetValidator is a validator for the "training_set" field. It is called by the builders before save.
	model.TrainingSetValidator = modelDescTrainingSet.Validators[0].(func(int) error)
	// modelDescCreatedAt is the schema descriptor for created_at field.
	modelDescCreatedAt := modelFields[3].Descriptor()
	// model.DefaultCreatedAt holds the default value on creation for the created_at field.
	model.DefaultCreatedAt = modelDescCreatedAt.Default.(func() time.Time)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescUsername is the schema descriptor for username field.
	profileDescUsername := profileFields[1].Descriptor()
	// profile.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	profile.UsernameValidator = profileDescUsername.Validators[0].(func(string) error)
	// profileDescEmail is the schema descriptor for email field.
	profileDescEmail := profileFields[2].Descriptor()
	// profile.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	profile.EmailValidator = profileDescEmail.Validators[0].(func(string) error)
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileFields[3].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileFields[4].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// profileDescID is the schema descriptor for id field.
	profileDescID := profileFields[0].Descriptor()
	// profile.DefaultID holds the default value on creation for the id field.
	profile.DefaultID = profileDescID.Default.(func() uuid.UUID)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescName is the schema descriptor for name field.
	projectDescName := projectFields[0].Descriptor()
	// project.NameValidator is a validator for the "name" field. It is called by the builders before save.
	project.NameValidator = projectDescName.Validators[0].(func(string) error)
	// projectDescClassifier is the schema descriptor for classifier field.
	projectDescClassifier := projectFields[1].Descriptor()
	// project.DefaultClassifier holds the default value on creation for the classifier field.
	project.DefaultClassifier = projectDescClassifier.Default.(string)
	// project.ClassifierValidator is a validator for the "classifier" field. It is called by the builders before save.
	project.ClassifierValidator = projectDescClassifier.Validators[0].(func(string) error)
	// projectDescCurrentTrainingSet is the schema descriptor for current_training_set field.
	projectDescCurrentTrainingSet := projectFields[2].Descriptor()
	// project.DefaultCurrentTrainingSet holds the default value on creation for the current_training_set field.
	project.DefaultCurrentTrainingSet = projectDescCurrentTrainingSet.Default.(int)
	// project.CurrentTrainingSetValidator is a validator for the "current_training_set" field. It is called by the builders before save.
	project.CurrentTrainingSetValidator = projectDescCurrentTrainingSet.Validators[0].(func(int) error)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[3].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[4].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	queueFields := schema.Queue{}.Fields()
	_ = queueFields
	// queueDescLength is the schema descriptor for length field.
	queueDescLength := queueFields[1].Descriptor()
	// queue.LengthValidator is a validator for the "length" field. It is called by the builders before save.
	queue.LengthValidator = queueDescLength.Validators[0].(func(int) error)
}
