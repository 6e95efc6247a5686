package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hackbits-tech/hackbits-backend/internal/models"
	"github.com/hackbits-tech/hackbits-backend/internal/repositories"
)

// In-memory repository fakes. They return mongo.ErrNoDocuments for misses,
// matching the driver-backed implementations.

type fakeTeamRepo struct {
	teams map[primitive.ObjectID]*models.Team
}

var _ repositories.TeamRepository = (*fakeTeamRepo)(nil)

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{teams: make(map[primitive.ObjectID]*models.Team)}
}

func (r *fakeTeamRepo) Create(_ context.Context, team *models.Team) error {
	team.ID = primitive.NewObjectID()
	copied := *team
	r.teams[team.ID] = &copied
	return nil
}

func (r *fakeTeamRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Team, error) {
	team, ok := r.teams[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *team
	return &copied, nil
}

func (r *fakeTeamRepo) FindByRegistrationNumber(_ context.Context, registrationNumber string) (*models.Team, error) {
	for _, team := range r.teams {
		if team.RegistrationNumber == registrationNumber {
			copied := *team
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeTeamRepo) FindByLeaderEmail(_ context.Context, email string) (*models.Team, error) {
	for _, team := range r.teams {
		if team.Leader.Email == email {
			copied := *team
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeTeamRepo) FindAll(_ context.Context) ([]*models.Team, error) {
	teams := []*models.Team{}
	for _, team := range r.teams {
		copied := *team
		teams = append(teams, &copied)
	}
	return teams, nil
}

func (r *fakeTeamRepo) FindByPaymentStatus(_ context.Context, status models.PaymentStatus) ([]*models.Team, error) {
	teams := []*models.Team{}
	for _, team := range r.teams {
		if team.PaymentStatus == status {
			copied := *team
			teams = append(teams, &copied)
		}
	}
	return teams, nil
}

func (r *fakeTeamRepo) FindCheckedIn(_ context.Context) ([]*models.Team, error) {
	teams := []*models.Team{}
	for _, team := range r.teams {
		if team.CheckedIn {
			copied := *team
			teams = append(teams, &copied)
		}
	}
	return teams, nil
}

func (r *fakeTeamRepo) Update(_ context.Context, team *models.Team) error {
	if _, ok := r.teams[team.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	copied := *team
	r.teams[team.ID] = &copied
	return nil
}

func (r *fakeTeamRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.teams)), nil
}

func (r *fakeTeamRepo) CountByPaymentStatus(_ context.Context, status models.PaymentStatus) (int64, error) {
	var n int64
	for _, team := range r.teams {
		if team.PaymentStatus == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeTeamRepo) CountWithDocuments(_ context.Context) (int64, error) {
	var n int64
	for _, team := range r.teams {
		if team.PaymentScreenshot != "" && team.IDCard != "" {
			n++
		}
	}
	return n, nil
}

func (r *fakeTeamRepo) CountCheckedIn(_ context.Context) (int64, error) {
	var n int64
	for _, team := range r.teams {
		if team.CheckedIn {
			n++
		}
	}
	return n, nil
}

type fakeSettingsRepo struct {
	settings models.EventSettings
}

var _ repositories.SettingsRepository = (*fakeSettingsRepo)(nil)

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{settings: models.EventSettings{
		EventName:        "HackBits",
		RegistrationOpen: true,
		CheckInOpen:      true,
	}}
}

func (r *fakeSettingsRepo) Get(_ context.Context) (*models.EventSettings, error) {
	copied := r.settings
	return &copied, nil
}

func (r *fakeSettingsRepo) Upsert(_ context.Context, settings *models.EventSettings) error {
	r.settings = *settings
	return nil
}

type fakeNotificationRepo struct {
	records []*models.Notification
}

var _ repositories.NotificationRepository = (*fakeNotificationRepo)(nil)

func (r *fakeNotificationRepo) Create(_ context.Context, notification *models.Notification) error {
	notification.ID = primitive.NewObjectID()
	r.records = append(r.records, notification)
	return nil
}

func (r *fakeNotificationRepo) FindByTeamID(_ context.Context, teamID primitive.ObjectID) ([]*models.Notification, error) {
	records := []*models.Notification{}
	for _, record := range r.records {
		if record.TeamID == teamID {
			records = append(records, record)
		}
	}
	return records, nil
}

// fakeMailGateway records sent mail in memory
type fakeMailGateway struct {
	sent []string // recipients
}

func (g *fakeMailGateway) Send(to, subject, body string) (string, error) {
	g.sent = append(g.sent, to)
	return "fake-message-id", nil
}
