package services

import (
	"context"
	"fmt"

	"github.com/hackbits-tech/hackbits-backend/internal/models"
	"github.com/hackbits-tech/hackbits-backend/internal/repositories"
)

// SettingsService defines the interface for event settings operations
type SettingsService interface {
	Get(ctx context.Context) (*models.EventSettings, error)
	Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.EventSettings, error)
}

type settingsService struct {
	settingsRepo repositories.SettingsRepository
}

// NewSettingsService creates a new SettingsService implementation
func NewSettingsService(settingsRepo repositories.SettingsRepository) SettingsService {
	return &settingsService{
		settingsRepo: settingsRepo,
	}
}

// Get retrieves the current event settings
func (s *settingsService) Get(ctx context.Context) (*models.EventSettings, error) {
	return s.settingsRepo.Get(ctx)
}

// Update applies the provided fields to the settings document; nil fields
// are left unchanged
func (s *settingsService) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.EventSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	if req.EventName != nil {
		settings.EventName = *req.EventName
	}
	if req.EventDate != nil {
		settings.EventDate = *req.EventDate
	}
	if req.RegistrationOpen != nil {
		settings.RegistrationOpen = *req.RegistrationOpen
	}
	if req.CheckInOpen != nil {
		settings.CheckInOpen = *req.CheckInOpen
	}

	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	return settings, nil
}
