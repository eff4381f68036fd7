package export

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/labelworks/annoqueue/internal/repository"
	"github.com/labelworks/annoqueue/internal/repository/memory"
)

func TestExportLabelsXLSX(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := memory.NewStore()
	project, err := store.Projects().Create(ctx, "headlines", "")
	require.NoError(t, err)
	label, err := store.Projects().AddLabel(ctx, project.ID, "relevant")
	require.NoError(t, err)
	_, err = store.Data().AddData(ctx, project.ID, []string{"first headline"})
	require.NoError(t, err)
	labeler, err := store.Profiles().Create(ctx, "sam", "sam@example.com")
	require.NoError(t, err)

	q, err := store.Queues().Create(ctx, repository.CreateQueueRequest{ProjectID: project.ID, Length: 5})
	require.NoError(t, err)
	_, err = store.Assignments().Create(ctx, 1, labeler.ID, q.ID)
	require.NoError(t, err)
	require.NoError(t, store.Assignments().LabelAndRelease(ctx, 1, label.ID, labeler.ID, 0))

	svc := NewService(store.Decisions(), logger)
	out, err := svc.ExportLabelsXLSX(ctx, project.ID)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	rows, err := f.GetRows("Labels")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "first headline", rows[1][1])
	assert.Equal(t, "relevant", rows[1][2])
	assert.Equal(t, "sam", rows[1][3])
}

func TestExportLabelsXLSX_EmptyProject(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := memory.NewStore()
	project, err := store.Projects().Create(ctx, "empty", "")
	require.NoError(t, err)

	svc := NewService(store.Decisions(), logger)
	out, err := svc.ExportLabelsXLSX(ctx, project.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
