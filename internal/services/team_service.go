package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"

	qrcode "github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hackbits-tech/hackbits-backend/internal/config"
	"github.com/hackbits-tech/hackbits-backend/internal/lifecycle"
	"github.com/hackbits-tech/hackbits-backend/internal/models"
	"github.com/hackbits-tech/hackbits-backend/internal/repositories"
	"github.com/hackbits-tech/hackbits-backend/internal/utils"
)

// ErrTeamExists is returned when a leader attempts a second registration
var ErrTeamExists = errors.New("a team is already registered for this account")

// TeamWithStage pairs a team with its derived lifecycle stage so every
// surface renders the same state
type TeamWithStage struct {
	*models.Team
	Stage lifecycle.Stage `json:"stage"`
}

// TeamService defines the interface for team registration and verification
type TeamService interface {
	RegisterTeam(ctx context.Context, user *models.User, req *models.RegisterTeamRequest) (*models.Team, error)
	GetTeamForLeader(ctx context.Context, email string) (*TeamWithStage, error)
	GetTeamByID(ctx context.Context, id primitive.ObjectID) (*models.Team, error)
	SubmitPaymentReference(ctx context.Context, leaderEmail, transactionID string) (*TeamWithStage, error)
	SubmitDocuments(ctx context.Context, leaderEmail string, req *models.SubmitDocumentsRequest) (*TeamWithStage, error)
	ChangePaymentStatus(ctx context.Context, teamID primitive.ObjectID, target models.PaymentStatus, reason string) (*models.Team, error)
	ListTeams(ctx context.Context, statusFilter string) ([]*TeamWithStage, error)
	GetStats(ctx context.Context) (*models.TeamStats, error)
}

type teamService struct {
	teamRepo     repositories.TeamRepository
	settingsRepo repositories.SettingsRepository
	notifier     NotificationService
	cfg          *config.Config
}

// NewTeamService creates a new TeamService implementation
func NewTeamService(teamRepo repositories.TeamRepository, settingsRepo repositories.SettingsRepository, notifier NotificationService, cfg *config.Config) TeamService {
	return &teamService{
		teamRepo:     teamRepo,
		settingsRepo: settingsRepo,
		notifier:     notifier,
		cfg:          cfg,
	}
}

// RegisterTeam creates a team for the logged-in participant. One team per
// account; the participant becomes the team leader.
func (s *teamService) RegisterTeam(ctx context.Context, user *models.User, req *models.RegisterTeamRequest) (*models.Team, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load event settings: %w", err)
	}
	if !settings.RegistrationOpen {
		return nil, lifecycle.ErrRegistrationClosed
	}

	_, err = s.teamRepo.FindByLeaderEmail(ctx, user.Email)
	if err == nil {
		return nil, ErrTeamExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to check existing registration: %w", err)
	}

	team := &models.Team{
		RegistrationNumber: utils.GenerateRegistrationNumber(),
		TeamName:           req.TeamName,
		TeamSize:           req.TeamSize,
		ProblemStatement:   req.ProblemStatement,
		Leader: models.TeamLeader{
			Name:               req.LeaderName,
			Email:              user.Email,
			Phone:              req.LeaderPhone,
			RegistrationNumber: user.RegistrationNumber,
		},
		Members:       req.Members,
		PaymentAmount: s.cfg.Payment.AmountFor(string(req.TeamSize)),
		PaymentStatus: models.PaymentPending,
	}

	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return team, nil
}

// GetTeamForLeader loads the team registered by a leader with its stage
func (s *teamService) GetTeamForLeader(ctx context.Context, email string) (*TeamWithStage, error) {
	team, err := s.teamRepo.FindByLeaderEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, lifecycle.ErrNotFound
		}
		return nil, err
	}
	return &TeamWithStage{Team: team, Stage: lifecycle.DeriveStage(team)}, nil
}

// GetTeamByID loads a team by id
func (s *teamService) GetTeamByID(ctx context.Context, id primitive.ObjectID) (*models.Team, error) {
	team, err := s.teamRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, lifecycle.ErrNotFound
		}
		return nil, err
	}
	return team, nil
}

// SubmitPaymentReference records the manual payment transaction reference
func (s *teamService) SubmitPaymentReference(ctx context.Context, leaderEmail, transactionID string) (*TeamWithStage, error) {
	team, err := s.teamRepo.FindByLeaderEmail(ctx, leaderEmail)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, lifecycle.ErrNotFound
		}
		return nil, err
	}

	team.TransactionID = transactionID
	if err := s.teamRepo.Update(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to save payment reference: %w", err)
	}

	return &TeamWithStage{Team: team, Stage: lifecycle.DeriveStage(team)}, nil
}

// SubmitDocuments records the payment screenshot and ID card references
func (s *teamService) SubmitDocuments(ctx context.Context, leaderEmail string, req *models.SubmitDocumentsRequest) (*TeamWithStage, error) {
	team, err := s.teamRepo.FindByLeaderEmail(ctx, leaderEmail)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, lifecycle.ErrNotFound
		}
		return nil, err
	}

	team.PaymentScreenshot = req.PaymentScreenshot
	team.IDCard = req.IDCard
	if err := s.teamRepo.Update(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to save documents: %w", err)
	}

	return &TeamWithStage{Team: team, Stage: lifecycle.DeriveStage(team)}, nil
}

// ChangePaymentStatus applies an admin status decision. The transition is
// validated by the lifecycle engine before anything is written; a ticket is
// minted when a team becomes verified and withdrawn when it stops being
// verified. A request for the team's current status is a trivial success.
func (s *teamService) ChangePaymentStatus(ctx context.Context, teamID primitive.ObjectID, target models.PaymentStatus, reason string) (*models.Team, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, lifecycle.ErrNotFound
		}
		return nil, err
	}

	if err := lifecycle.ValidateStatusChange(team, target, reason); err != nil {
		return nil, err
	}

	if team.PaymentStatus == target {
		return team, nil
	}

	previous := team.PaymentStatus
	team.PaymentStatus = target

	switch target {
	case models.PaymentVerified:
		team.RejectionReason = ""
		if err := s.mintTicket(team); err != nil {
			return nil, err
		}
	case models.PaymentRejected:
		team.RejectionReason = reason
		s.withdrawTicket(team)
	case models.PaymentPending:
		team.RejectionReason = ""
		s.withdrawTicket(team)
	}

	if err := s.teamRepo.Update(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to update payment status: %w", err)
	}

	// Notification failures must not fail the status change
	switch target {
	case models.PaymentVerified:
		if err := s.notifier.NotifyVerification(ctx, team); err != nil {
			log.Printf("[WARN] failed to send verification notification for %s: %v", team.RegistrationNumber, err)
		}
	case models.PaymentRejected:
		if err := s.notifier.NotifyRejection(ctx, team); err != nil {
			log.Printf("[WARN] failed to send rejection notification for %s: %v", team.RegistrationNumber, err)
		}
	}

	log.Printf("[INFO] team %s payment status %s -> %s", team.RegistrationNumber, previous, target)
	return team, nil
}

// mintTicket assigns a ticket number, encodes the QR payload and renders the
// QR image for a newly verified team
func (s *teamService) mintTicket(team *models.Team) error {
	team.TicketNumber = utils.GenerateTicketNumber()

	payload, err := lifecycle.EncodeTicketPayload(team)
	if err != nil {
		return fmt.Errorf("failed to encode ticket payload: %w", err)
	}
	team.QRPayload = payload

	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to render QR code: %w", err)
	}
	team.QRCode = "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)

	return nil
}

// withdrawTicket clears ticket fields when a team leaves the verified state
func (s *teamService) withdrawTicket(team *models.Team) {
	team.TicketNumber = ""
	team.QRPayload = ""
	team.QRCode = ""
}

// ListTeams retrieves teams with derived stages, optionally filtered by
// payment status ("all" or empty returns everything)
func (s *teamService) ListTeams(ctx context.Context, statusFilter string) ([]*TeamWithStage, error) {
	var teams []*models.Team
	var err error

	switch statusFilter {
	case "", "all":
		teams, err = s.teamRepo.FindAll(ctx)
	default:
		teams, err = s.teamRepo.FindByPaymentStatus(ctx, models.PaymentStatus(statusFilter))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	result := make([]*TeamWithStage, 0, len(teams))
	for _, team := range teams {
		result = append(result, &TeamWithStage{Team: team, Stage: lifecycle.DeriveStage(team)})
	}
	return result, nil
}

// GetStats computes the aggregate counts for the admin dashboard
func (s *teamService) GetStats(ctx context.Context) (*models.TeamStats, error) {
	stats := &models.TeamStats{}
	var err error

	if stats.TotalTeams, err = s.teamRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.VerifiedPayments, err = s.teamRepo.CountByPaymentStatus(ctx, models.PaymentVerified); err != nil {
		return nil, err
	}
	if stats.PendingPayments, err = s.teamRepo.CountByPaymentStatus(ctx, models.PaymentPending); err != nil {
		return nil, err
	}
	if stats.RejectedPayments, err = s.teamRepo.CountByPaymentStatus(ctx, models.PaymentRejected); err != nil {
		return nil, err
	}
	if stats.DocumentsUploaded, err = s.teamRepo.CountWithDocuments(ctx); err != nil {
		return nil, err
	}

	return stats, nil
}
