package fastindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labelworks/annoqueue/internal/common"
)

func TestKeyRoundTrip(t *testing.T) {
	assert.Equal(t, "queue:42", QueueKey(42))
	assert.Equal(t, "data:7", DataValue(7))

	queueID, err := ParseQueueKey(QueueKey(42))
	require.NoError(t, err)
	assert.Equal(t, 42, queueID)

	dataID, err := ParseDataValue(DataValue(7))
	require.NoError(t, err)
	assert.Equal(t, 7, dataID)
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "missing prefix", input: "42"},
		{name: "wrong prefix", input: "data:42"},
		{name: "non-numeric id", input: "queue:abc"},
		{name: "empty", input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseQueueKey(tt.input)
			assert.ErrorIs(t, err, common.ErrInvalidInput)
		})
	}
}
