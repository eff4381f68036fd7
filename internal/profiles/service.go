package profiles

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/labelworks/annoqueue/internal/common"
	"github.com/labelworks/annoqueue/internal/entity"
	"github.com/labelworks/annoqueue/internal/repository"
)

// Service handles labeler profile business logic.
type Service struct {
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// NewService creates a new profile service.
func NewService(profileRepo repository.ProfileRepository, logger *slog.Logger) *Service {
	return &Service{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// CreateProfileRequest represents profile creation parameters.
type CreateProfileRequest struct {
	Username string
	Email    string
}

// CreateProfile creates a new labeler profile.
func (s *Service) CreateProfile(ctx context.Context, req CreateProfileRequest) (*entity.Profile, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, fmt.Errorf("username is required: %w", common.ErrInvalidInput)
	}

	email := strings.TrimSpace(req.Email)
	if email != "" && !strings.Contains(email, "@") {
		return nil, fmt.Errorf("email %q is not an address: %w", email, common.ErrInvalidInput)
	}

	p, err := s.profileRepo.Create(ctx, username, email)
	if err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}

	s.logger.Info("profile created successfully", "profile_id", p.ID, "username", p.Username)
	return p, nil
}

// GetProfile returns one labeler profile.
func (s *Service) GetProfile(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	return s.profileRepo.Get(ctx, id)
}
