package services

import (
	"context"
	"fmt"
	"log"

	"github.com/hackbits-tech/hackbits-backend/internal/models"
	"github.com/hackbits-tech/hackbits-backend/internal/repositories"
	"github.com/hackbits-tech/hackbits-backend/pkg/mailgateway"
)

// NotificationService defines the interface for team notifications
type NotificationService interface {
	NotifyVerification(ctx context.Context, team *models.Team) error
	NotifyRejection(ctx context.Context, team *models.Team) error
	GetTeamNotifications(ctx context.Context, team *models.Team) ([]*models.Notification, error)
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
	gateway          mailgateway.Gateway
}

// NewNotificationService creates a new NotificationService implementation
func NewNotificationService(notificationRepo repositories.NotificationRepository, gateway mailgateway.Gateway) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		gateway:          gateway,
	}
}

// NotifyVerification emails the leader their ticket details after an admin
// verifies the team
func (s *notificationService) NotifyVerification(ctx context.Context, team *models.Team) error {
	subject := fmt.Sprintf("HackBits: team %s verified", team.TeamName)
	body := fmt.Sprintf(
		"Hi %s,\n\nYour registration is verified. Your ticket number is %s.\n"+
			"Show the QR code on your profile page at the venue entrance.\n\nTeam: %s (%s)\n",
		team.Leader.Name, team.TicketNumber, team.TeamName, team.RegistrationNumber,
	)
	return s.send(ctx, team, models.NotificationVerification, subject, body)
}

// NotifyRejection emails the leader the rejection reason so they can fix
// their submission
func (s *notificationService) NotifyRejection(ctx context.Context, team *models.Team) error {
	subject := fmt.Sprintf("HackBits: team %s needs attention", team.TeamName)
	body := fmt.Sprintf(
		"Hi %s,\n\nYour registration could not be verified: %s\n"+
			"Please correct your submission from your profile page.\n\nTeam: %s (%s)\n",
		team.Leader.Name, team.RejectionReason, team.TeamName, team.RegistrationNumber,
	)
	return s.send(ctx, team, models.NotificationRejection, subject, body)
}

func (s *notificationService) send(ctx context.Context, team *models.Team, notifType models.NotificationType, subject, body string) error {
	record := &models.Notification{
		TeamID:    team.ID,
		Recipient: team.Leader.Email,
		Type:      notifType,
		Subject:   subject,
		Body:      body,
		Status:    "sent",
	}

	messageID, err := s.gateway.Send(team.Leader.Email, subject, body)
	if err != nil {
		record.Status = "failed"
		if createErr := s.notificationRepo.Create(ctx, record); createErr != nil {
			log.Printf("[WARN] failed to record failed notification: %v", createErr)
		}
		return fmt.Errorf("failed to send %s email: %w", notifType, err)
	}

	record.MessageID = messageID
	if err := s.notificationRepo.Create(ctx, record); err != nil {
		// The mail went out; a lost record is logged, not surfaced
		log.Printf("[WARN] failed to record notification %s: %v", messageID, err)
	}
	return nil
}

// GetTeamNotifications retrieves the notification history for a team
func (s *notificationService) GetTeamNotifications(ctx context.Context, team *models.Team) ([]*models.Notification, error) {
	return s.notificationRepo.FindByTeamID(ctx, team.ID)
}
