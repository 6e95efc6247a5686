package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hackbits-tech/hackbits-backend/internal/lifecycle"
	"github.com/hackbits-tech/hackbits-backend/internal/models"
	"github.com/hackbits-tech/hackbits-backend/internal/repositories"
)

// CheckInService defines the interface for venue check-in operations
type CheckInService interface {
	CheckIn(ctx context.Context, req *models.CheckInRequest) (*models.CheckInResponse, error)
	VerifyEligibility(ctx context.Context, registrationNumber string) (*models.CheckInEligibility, error)
	UndoCheckIn(ctx context.Context, teamID primitive.ObjectID) (*models.Team, error)
	GetStats(ctx context.Context) (*models.CheckInStats, error)
	GetHistory(ctx context.Context) ([]*models.Team, error)
}

type checkInService struct {
	teamRepo     repositories.TeamRepository
	settingsRepo repositories.SettingsRepository
}

// NewCheckInService creates a new CheckInService implementation
func NewCheckInService(teamRepo repositories.TeamRepository, settingsRepo repositories.SettingsRepository) CheckInService {
	return &checkInService{
		teamRepo:     teamRepo,
		settingsRepo: settingsRepo,
	}
}

// CheckIn admits a team at the venue, provided check-in is open in the event
// settings. The team is resolved from the registration number, or from the
// scanned payload when no number is given.
// A second check-in reports AlreadyCheckedIn with the original timestamp
// instead of failing; the check-in timestamp is always server-assigned.
func (s *checkInService) CheckIn(ctx context.Context, req *models.CheckInRequest) (*models.CheckInResponse, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load event settings: %w", err)
	}
	if !settings.CheckInOpen {
		return nil, lifecycle.ErrCheckInClosed
	}

	registrationNumber := req.RegistrationNumber
	if registrationNumber == "" {
		payload, err := lifecycle.DecodeTicketPayload(req.Payload)
		if err != nil {
			return nil, err
		}
		registrationNumber = payload.RegistrationNumber
	}

	team, err := s.teamRepo.FindByRegistrationNumber(ctx, registrationNumber)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, lifecycle.ErrNotFound
		}
		return nil, err
	}

	if err := lifecycle.ValidateCheckIn(team); err != nil {
		return nil, err
	}

	if team.CheckedIn {
		return &models.CheckInResponse{
			Success:          false,
			Message:          fmt.Sprintf("Team %s is already checked in", team.TeamName),
			Team:             team,
			AlreadyCheckedIn: true,
			CheckInTime:      team.CheckInTime,
		}, nil
	}

	now := time.Now()
	team.CheckedIn = true
	team.CheckInTime = &now
	team.CheckInMethod = req.Method

	if err := s.teamRepo.Update(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to record check-in: %w", err)
	}

	log.Printf("[INFO] team %s checked in via %s", team.RegistrationNumber, req.Method)
	return &models.CheckInResponse{
		Success:     true,
		Message:     fmt.Sprintf("Team %s checked in successfully", team.TeamName),
		Team:        team,
		CheckInTime: team.CheckInTime,
	}, nil
}

// VerifyEligibility reports whether a team could be checked in right now,
// without changing any state
func (s *checkInService) VerifyEligibility(ctx context.Context, registrationNumber string) (*models.CheckInEligibility, error) {
	team, err := s.teamRepo.FindByRegistrationNumber(ctx, registrationNumber)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, lifecycle.ErrNotFound
		}
		return nil, err
	}

	stage := lifecycle.DeriveStage(team)
	return &models.CheckInEligibility{
		Eligible:  stage == lifecycle.StageComplete && !team.CheckedIn,
		CheckedIn: team.CheckedIn,
		Stage:     string(stage),
		Team:      team,
	}, nil
}

// UndoCheckIn clears a team's check-in state. Calling it on a team that is
// not checked in is a no-op success.
func (s *checkInService) UndoCheckIn(ctx context.Context, teamID primitive.ObjectID) (*models.Team, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, lifecycle.ErrNotFound
		}
		return nil, err
	}

	if !team.CheckedIn {
		return team, nil
	}

	team.CheckedIn = false
	team.CheckInTime = nil
	team.CheckInMethod = ""

	if err := s.teamRepo.Update(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to undo check-in: %w", err)
	}

	log.Printf("[INFO] team %s check-in undone", team.RegistrationNumber)
	return team, nil
}

// GetStats computes the scanner dashboard counts. Only verified teams are
// counted, since only they can be admitted.
func (s *checkInService) GetStats(ctx context.Context) (*models.CheckInStats, error) {
	verified, err := s.teamRepo.CountByPaymentStatus(ctx, models.PaymentVerified)
	if err != nil {
		return nil, err
	}
	checkedIn, err := s.teamRepo.CountCheckedIn(ctx)
	if err != nil {
		return nil, err
	}

	stats := &models.CheckInStats{
		TotalTeams:     verified,
		CheckedInTeams: checkedIn,
		PendingTeams:   verified - checkedIn,
	}
	if verified > 0 {
		stats.CheckInRate = float64(checkedIn) / float64(verified) * 100
	}
	return stats, nil
}

// GetHistory retrieves all checked-in teams, most recent first
func (s *checkInService) GetHistory(ctx context.Context) ([]*models.Team, error) {
	return s.teamRepo.FindCheckedIn(ctx)
}
