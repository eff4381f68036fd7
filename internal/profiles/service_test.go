package profiles

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labelworks/annoqueue/internal/common"
	"github.com/labelworks/annoqueue/internal/repository/memory"
)

func TestCreateProfile(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(memory.NewStore().Profiles(), logger)

	p, err := svc.CreateProfile(ctx, CreateProfileRequest{Username: " sam ", Email: "sam@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "sam", p.Username)

	got, err := svc.GetProfile(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
}

func TestCreateProfile_Validation(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(memory.NewStore().Profiles(), logger)

	_, err := svc.CreateProfile(ctx, CreateProfileRequest{Username: ""})
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = svc.CreateProfile(ctx, CreateProfileRequest{Username: "sam", Email: "not-an-address"})
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}
