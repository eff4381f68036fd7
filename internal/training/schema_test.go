package training

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePredictResponse(t *testing.T) {
	schema := BuildPredictResponseSchema()

	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{
			name:    "valid",
			payload: `{"classes":[1,2],"items":[{"data_id":5,"probabilities":[0.7,0.3]}]}`,
		},
		{
			name:    "no items",
			payload: `{"classes":[1,2],"items":[]}`,
		},
		{
			name:    "missing classes",
			payload: `{"items":[{"data_id":5,"probabilities":[0.7,0.3]}]}`,
			wantErr: true,
		},
		{
			name:    "single class",
			payload: `{"classes":[1],"items":[]}`,
			wantErr: true,
		},
		{
			name:    "probability above one",
			payload: `{"classes":[1,2],"items":[{"data_id":5,"probabilities":[1.3,0.3]}]}`,
			wantErr: true,
		},
		{
			name:    "missing data id",
			payload: `{"classes":[1,2],"items":[{"probabilities":[0.7,0.3]}]}`,
			wantErr: true,
		},
		{
			name:    "unknown field",
			payload: `{"classes":[1,2],"items":[],"extra":true}`,
			wantErr: true,
		},
		{
			name:    "not json",
			payload: `classes`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJSONAgainstSchema(schema, []byte(tt.payload))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
