package ingest

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labelworks/annoqueue/internal/common"
	"github.com/labelworks/annoqueue/internal/repository/memory"
)

func newService(t *testing.T) (*Service, *memory.Store, int) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewStore()
	project, err := store.Projects().Create(context.Background(), "headlines", "")
	require.NoError(t, err)
	return NewService(store.Data(), logger), store, project.ID
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestIngestFile_CSV(t *testing.T) {
	ctx := context.Background()
	svc, store, projectID := newService(t)

	path := writeFile(t, "data.csv", "Text\nfirst headline\nsecond headline\n")
	n, err := svc.IngestFile(ctx, projectID, path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	ids, err := store.Data().UnlabeledIDs(ctx, projectID)
	require.NoError(t, err)
	assert.Len(t, ids, 2)
}

func TestIngestFile_TSVExtraColumnsIgnored(t *testing.T) {
	ctx := context.Background()
	svc, _, projectID := newService(t)

	path := writeFile(t, "data.tsv", "one headline\textra\nanother headline\tmore\n")
	n, err := svc.IngestFile(ctx, projectID, path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestIngestFile_NoHeaderStillIngestsFirstRow(t *testing.T) {
	ctx := context.Background()
	svc, store, projectID := newService(t)

	path := writeFile(t, "data.csv", "first headline\nsecond headline\n")
	n, err := svc.IngestFile(ctx, projectID, path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	row, err := store.Data().Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "first headline", row.Text)
}

func TestIngestFile_Missing(t *testing.T) {
	ctx := context.Background()
	svc, _, projectID := newService(t)

	_, err := svc.IngestFile(ctx, projectID, filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}

func TestIngestTexts_DropsBlanks(t *testing.T) {
	ctx := context.Background()
	svc, _, projectID := newService(t)

	n, err := svc.IngestTexts(ctx, projectID, []string{" spaced ", "", "plain"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestIngestTexts_AllBlank(t *testing.T) {
	ctx := context.Background()
	svc, _, projectID := newService(t)

	_, err := svc.IngestTexts(ctx, projectID, []string{"", "   "})
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}
