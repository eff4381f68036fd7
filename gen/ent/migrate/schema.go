// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssignedDataColumns holds the columns for the "assigned_data" table.
	AssignedDataColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "assigned_at", Type: field.TypeTime},
		{Name: "data_id", Type: field.TypeInt},
		{Name: "profile_id", Type: field.TypeUUID},
		{Name: "queue_id", Type: field.TypeInt},
	}
	// AssignedDataTable holds the schema information for the "assigned_data" table.
	AssignedDataTable = &schema.Table{
		Name:       "assigned_data",
		Columns:    AssignedDataColumns,
		PrimaryKey: []*schema.Column{AssignedDataColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "assigned_data_data_assignments",
				Columns:    []*schema.Column{AssignedDataColumns[2]},
				RefColumns: []*schema.Column{DataColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "assigned_data_profiles_assignments",
				Columns:    []*schema.Column{AssignedDataColumns[3]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "assigned_data_queues_assignments",
				Columns:    []*schema.Column{AssignedDataColumns[4]},
				RefColumns: []*schema.Column{QueuesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "assigneddata_data_id_profile_id",
				Unique:  true,
				Columns: []*schema.Column{AssignedDataColumns[2], AssignedDataColumns[3]},
			},
			{
				Name:    "assigneddata_profile_id",
				Unique:  false,
				Columns: []*schema.Column{AssignedDataColumns[3]},
			},
		},
	}
	// DataColumns holds the columns for the "data" table.
	DataColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "text", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "project_id", Type: field.TypeInt},
	}
	// DataTable holds the schema information for the "data" table.
	DataTable = &schema.Table{
		Name:       "data",
		Columns:    DataColumns,
		PrimaryKey: []*schema.Column{DataColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "data_projects_data",
				Columns:    []*schema.Column{DataColumns[2]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "data_project_id",
				Unique:  false,
				Columns: []*schema.Column{DataColumns[2]},
			},
		},
	}
	// DataLabelsColumns holds the columns for the "data_labels" table.
	DataLabelsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "training_set", Type: field.TypeInt},
		{Name: "labeled_at", Type: field.TypeTime},
		{Name: "data_id", Type: field.TypeInt},
		{Name: "label_id", Type: field.TypeInt},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// DataLabelsTable holds the schema information for the "data_labels" table.
	DataLabelsTable = &schema.Table{
		Name:       "data_labels",
		Columns:    DataLabelsColumns,
		PrimaryKey: []*schema.Column{DataLabelsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "data_labels_data_decisions",
				Columns:    []*schema.Column{DataLabelsColumns[3]},
				RefColumns: []*schema.Column{DataColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "data_labels_labels_decisions",
				Columns:    []*schema.Column{DataLabelsColumns[4]},
				RefColumns: []*schema.Column{LabelsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "data_labels_profiles_decisions",
				Columns:    []*schema.Column{DataLabelsColumns[5]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "datalabel_data_id_profile_id",
				Unique:  true,
				Columns: []*schema.Column{DataLabelsColumns[3], DataLabelsColumns[5]},
			},
			{
				Name:    "datalabel_training_set",
				Unique:  false,
				Columns: []*schema.Column{DataLabelsColumns[1]},
			},
		},
	}
	// DataPredictionsColumns holds the columns for the "data_predictions" table.
	DataPredictionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "probability", Type: field.TypeFloat64},
		{Name: "data_id", Type: field.TypeInt},
		{Name: "label_id", Type: field.TypeInt},
		{Name: "model_id", Type: field.TypeInt},
	}
	// DataPredictionsTable holds the schema information for the "data_predictions" table.
	DataPredictionsTable = &schema.Table{
		Name:       "data_predictions",
		Columns:    DataPredictionsColumns,
		PrimaryKey: []*schema.Column{DataPredictionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "data_predictions_data_predictions",
				Columns:    []*schema.Column{DataPredictionsColumns[2]},
				RefColumns: []*schema.Column{DataColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "data_predictions_labels_predictions",
				Columns:    []*schema.Column{DataPredictionsColumns[3]},
				RefColumns: []*schema.Column{LabelsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "data_predictions_models_predictions",
				Columns:    []*schema.Column{DataPredictionsColumns[4]},
				RefColumns: []*schema.Column{ModelsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "dataprediction_data_id_model_id_label_id",
				Unique:  true,
				Columns: []*schema.Column{DataPredictionsColumns[2], DataPredictionsColumns[4], DataPredictionsColumns[3]},
			},
		},
	}
	// DataQueuesColumns holds the columns for the "data_queues" table.
	DataQueuesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "data_id", Type: field.TypeInt},
		{Name: "queue_id", Type: field.TypeInt},
	}
	// DataQueuesTable holds the schema information for the "data_queues" table.
	DataQueuesTable = &schema.Table{
		Name:       "data_queues",
		Columns:    DataQueuesColumns,
		PrimaryKey: []*schema.Column{DataQueuesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "data_queues_data_queue_entries",
				Columns:    []*schema.Column{DataQueuesColumns[1]},
				RefColumns: []*schema.Column{DataColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "data_queues_queues_entries",
				Columns:    []*schema.Column{DataQueuesColumns[2]},
				RefColumns: []*schema.Column{QueuesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "dataqueue_data_id_queue_id",
				Unique:  true,
				Columns: []*schema.Column{DataQueuesColumns[1], DataQueuesColumns[2]},
			},
			{
				Name:    "dataqueue_queue_id",
				Unique:  false,
				Columns: []*schema.Column{DataQueuesColumns[2]},
			},
		},
	}
	// DataUncertaintiesColumns holds the columns for the "data_uncertainties" table.
	DataUncertaintiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "least_confident", Type: field.TypeFloat64},
		{Name: "margin", Type: field.TypeFloat64},
		{Name: "entropy", Type: field.TypeFloat64},
		{Name: "data_id", Type: field.TypeInt},
		{Name: "model_id", Type: field.TypeInt},
	}
	// DataUncertaintiesTable holds the schema information for the "data_uncertainties" table.
	DataUncertaintiesTable = &schema.Table{
		Name:       "data_uncertainties",
		Columns:    DataUncertaintiesColumns,
		PrimaryKey: []*schema.Column{DataUncertaintiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "data_uncertainties_data_uncertainties",
				Columns:    []*schema.Column{DataUncertaintiesColumns[4]},
				RefColumns: []*schema.Column{DataColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "data_uncertainties_models_uncertainties",
				Columns:    []*schema.Column{DataUncertaintiesColumns[5]},
				RefColumns: []*schema.Column{ModelsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "datauncertainty_data_id_model_id",
				Unique:  true,
				Columns: []*schema.Column{DataUncertaintiesColumns[4], DataUncertaintiesColumns[5]},
			},
			{
				Name:    "datauncertainty_model_id",
				Unique:  false,
				Columns: []*schema.Column{DataUncertaintiesColumns[5]},
			},
		},
	}
	// LabelsColumns holds the columns for the "labels" table.
	LabelsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "project_id", Type: field.TypeInt},
	}
	// LabelsTable holds the schema information for the "labels" table.
	LabelsTable = &schema.Table{
		Name:       "labels",
		Columns:    LabelsColumns,
		PrimaryKey: []*schema.Column{LabelsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "labels_projects_labels",
				Columns:    []*schema.Column{LabelsColumns[2]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "label_project_id_name",
				Unique:  true,
				Columns: []*schema.Column{LabelsColumns[2], LabelsColumns[1]},
			},
		},
	}
	// ModelsColumns holds the columns for the "models" table.
	ModelsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "path", Type: field.TypeString},
		{Name: "training_set", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeInt},
	}
	// ModelsTable holds the schema information for the "models" table.
	ModelsTable = &schema.Table{
		Name:       "models",
		Columns:    ModelsColumns,
		PrimaryKey: []*schema.Column{ModelsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "models_projects_models",
				Columns:    []*schema.Column{ModelsColumns[4]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "model_project_id_training_set",
				Unique:  true,
				Columns: []*schema.Column{ModelsColumns[4], ModelsColumns[2]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "username", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "classifier", Type: field.TypeString, Default: "logistic_regression"},
		{Name: "current_training_set", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
	}
	// QueuesColumns holds the columns for the "queues" table.
	QueuesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "length", Type: field.TypeInt},
		{Name: "profile_id", Type: field.TypeUUID, Nullable: true},
		{Name: "project_id", Type: field.TypeInt},
	}
	// QueuesTable holds the schema information for the "queues" table.
	QueuesTable = &schema.Table{
		Name:       "queues",
		Columns:    QueuesColumns,
		PrimaryKey: []*schema.Column{QueuesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "queues_profiles_queues",
				Columns:    []*schema.Column{QueuesColumns[2]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "queues_projects_queues",
				Columns:    []*schema.Column{QueuesColumns[3]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "queue_project_id_profile_id",
				Unique:  false,
				Columns: []*schema.Column{QueuesColumns[3], QueuesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssignedDataTable,
		DataTable,
		DataLabelsTable,
		DataPredictionsTable,
		DataQueuesTable,
		DataUncertaintiesTable,
		LabelsTable,
		ModelsTable,
		ProfilesTable,
		ProjectsTable,
		QueuesTable,
	}
)

func init() {
	AssignedDataTable.ForeignKeys[0].RefTable = DataTable
	AssignedDataTable.ForeignKeys[1].RefTable = ProfilesTable
	AssignedDataTable.ForeignKeys[2].RefTable = QueuesTable
	AssignedDataTable.Annotation = &entsql.Annotation{
		Table: "assigned_data",
	}
	DataTable.ForeignKeys[0].RefTable = ProjectsTable
	DataTable.Annotation = &entsql.Annotation{
		Table: "data",
	}
	DataLabelsTable.ForeignKeys[0].RefTable = DataTable
	DataLabelsTable.ForeignKeys[1].RefTable = LabelsTable
	DataLabelsTable.ForeignKeys[2].RefTable = ProfilesTable
	DataLabelsTable.Annotation = &entsql.Annotation{
		Table: "data_labels",
	}
	DataPredictionsTable.ForeignKeys[0].RefTable = DataTable
	DataPredictionsTable.ForeignKeys[1].RefTable = LabelsTable
	DataPredictionsTable.ForeignKeys[2].RefTable = ModelsTable
	DataPredictionsTable.Annotation = &entsql.Annotation{
		Table: "data_predictions",
	}
	DataQueuesTable.ForeignKeys[0].RefTable = DataTable
	DataQueuesTable.ForeignKeys[1].RefTable = QueuesTable
	DataQueuesTable.Annotation = &entsql.Annotation{
		Table: "data_queues",
	}
	DataUncertaintiesTable.ForeignKeys[0].RefTable = DataTable
	DataUncertaintiesTable.ForeignKeys[1].RefTable = ModelsTable
	DataUncertaintiesTable.Annotation = &entsql.Annotation{
		Table: "data_uncertainties",
	}
	LabelsTable.ForeignKeys[0].RefTable = ProjectsTable
	LabelsTable.Annotation = &entsql.Annotation{
		Table: "labels",
	}
	ModelsTable.ForeignKeys[0].RefTable = ProjectsTable
	ModelsTable.Annotation = &entsql.Annotation{
		Table: "models",
	}
	ProfilesTable.Annotation = &entsql.Annotation{
		Table: "profiles",
	}
	ProjectsTable.Annotation = &entsql.Annotation{
		Table: "projects",
	}
	QueuesTable.ForeignKeys[0].RefTable = ProfilesTable
	QueuesTable.ForeignKeys[1].RefTable = ProjectsTable
	QueuesTable.Annotation = &entsql.Annotation{
		Table: "queues",
	}
}
