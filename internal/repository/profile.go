package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/labelworks/annoqueue/gen/ent"
	"github.com/labelworks/annoqueue/internal/entity"
	"github.com/labelworks/annoqueue/internal/utils"
)

type ProfileRepository interface {
	Create(ctx context.Context, username, email string) (*entity.Profile, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
}

type profileRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewProfileRepository(client *ent.Client, logger *slog.Logger) ProfileRepository {
	return &profileRepository{
		client: client,
		logger: logger,
	}
}

func (r *profileRepository) Create(ctx context.Context, username, email string) (*entity.Profile, error) {
	p, err := r.client.Profile.Create().
		SetUsername(username).
		SetEmail(email).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create profile", "username", username, "error", err)
		return nil, err
	}
	return utils.ToProfile(p), nil
}

func (r *profileRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	p, err := r.client.Profile.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToProfile(p), nil
}
