package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hackbits-tech/hackbits-backend/internal/config"
	"github.com/hackbits-tech/hackbits-backend/internal/lifecycle"
	"github.com/hackbits-tech/hackbits-backend/internal/models"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Payment.Currency = "INR"
	cfg.Payment.SoloAmount = 50000
	cfg.Payment.DuoAmount = 80000
	cfg.Payment.TeamAmount = 120000
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpiresIn = 3600
	return cfg
}

func newTestTeamService(t *testing.T) (TeamService, *fakeTeamRepo, *fakeSettingsRepo, *fakeMailGateway) {
	t.Helper()
	teamRepo := newFakeTeamRepo()
	settingsRepo := newFakeSettingsRepo()
	mailGateway := &fakeMailGateway{}
	notifier := NewNotificationService(&fakeNotificationRepo{}, mailGateway)
	svc := NewTeamService(teamRepo, settingsRepo, notifier, testConfig())
	return svc, teamRepo, settingsRepo, mailGateway
}

func registerDuo(t *testing.T, svc TeamService) *models.Team {
	t.Helper()
	user := &models.User{
		Name:               "Asha Rao",
		Email:              "asha@example.com",
		RegistrationNumber: "HB-2026-AAAAAA",
	}
	team, err := svc.RegisterTeam(context.Background(), user, &models.RegisterTeamRequest{
		TeamName:         "Null Pointers",
		TeamSize:         models.TeamSizeDuo,
		ProblemStatement: "PS-04 Smart Campus",
		LeaderName:       "Asha Rao",
		LeaderPhone:      "+919800000000",
		Members: []models.TeamMember{
			{Name: "Vikram Shah", Email: "vikram@example.com", RegistrationNumber: "REG-1002"},
		},
	})
	require.NoError(t, err)
	return team
}

func TestRegisterTeam(t *testing.T) {
	svc, _, _, _ := newTestTeamService(t)
	team := registerDuo(t, svc)

	assert.Equal(t, models.PaymentPending, team.PaymentStatus)
	assert.Equal(t, int64(80000), team.PaymentAmount, "Duo pays the Duo rate")
	assert.True(t, strings.HasPrefix(team.RegistrationNumber, "HB-"))
	assert.Equal(t, "asha@example.com", team.Leader.Email)

	got, err := svc.GetTeamForLeader(context.Background(), "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StagePendingPayment, got.Stage)
}

func TestRegisterTeam_OnePerAccount(t *testing.T) {
	svc, _, _, _ := newTestTeamService(t)
	registerDuo(t, svc)

	user := &models.User{Email: "asha@example.com", RegistrationNumber: "HB-2026-AAAAAA"}
	_, err := svc.RegisterTeam(context.Background(), user, &models.RegisterTeamRequest{
		TeamName:         "Second Try",
		TeamSize:         models.TeamSizeSolo,
		ProblemStatement: "PS-01",
		LeaderName:       "Asha Rao",
		LeaderPhone:      "+919800000000",
	})
	require.ErrorIs(t, err, ErrTeamExists)
}

func TestRegisterTeam_RegistrationClosed(t *testing.T) {
	svc, _, settingsRepo, _ := newTestTeamService(t)
	settingsRepo.settings.RegistrationOpen = false

	user := &models.User{Email: "late@example.com", RegistrationNumber: "HB-2026-BBBBBB"}
	_, err := svc.RegisterTeam(context.Background(), user, &models.RegisterTeamRequest{
		TeamName:         "Latecomers",
		TeamSize:         models.TeamSizeSolo,
		ProblemStatement: "PS-01",
		LeaderName:       "Late User",
		LeaderPhone:      "+919800000001",
	})
	require.ErrorIs(t, err, lifecycle.ErrRegistrationClosed)
}

func TestSubmitEvidenceAdvancesStage(t *testing.T) {
	svc, _, _, _ := newTestTeamService(t)
	registerDuo(t, svc)
	ctx := context.Background()

	withStage, err := svc.SubmitPaymentReference(ctx, "asha@example.com", "TXN123")
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StagePendingDocuments, withStage.Stage)

	withStage, err = svc.SubmitDocuments(ctx, "asha@example.com", &models.SubmitDocumentsRequest{
		PaymentScreenshot: "https://cdn.example.com/ss.png",
		IDCard:            "https://cdn.example.com/id.png",
	})
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StagePendingAdmin, withStage.Stage)
}

func TestChangePaymentStatus_VerifyRequiresEvidence(t *testing.T) {
	svc, _, _, _ := newTestTeamService(t)
	team := registerDuo(t, svc)

	_, err := svc.ChangePaymentStatus(context.Background(), team.ID, models.PaymentVerified, "")
	require.ErrorIs(t, err, lifecycle.ErrIneligibleForVerification)
}

func TestChangePaymentStatus_RejectRequiresReason(t *testing.T) {
	svc, _, _, _ := newTestTeamService(t)
	team := registerDuo(t, svc)

	_, err := svc.ChangePaymentStatus(context.Background(), team.ID, models.PaymentRejected, "")
	require.ErrorIs(t, err, lifecycle.ErrMissingRejectionReason)

	updated, err := svc.ChangePaymentStatus(context.Background(), team.ID, models.PaymentRejected, "screenshot unreadable")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentRejected, updated.PaymentStatus)
	assert.Equal(t, "screenshot unreadable", updated.RejectionReason)
	assert.Equal(t, lifecycle.StageRejected, lifecycle.DeriveStage(updated))
}

func TestChangePaymentStatus_VerifyMintsTicket(t *testing.T) {
	svc, _, _, mailGateway := newTestTeamService(t)
	team := registerDuo(t, svc)
	ctx := context.Background()

	_, err := svc.SubmitPaymentReference(ctx, "asha@example.com", "TXN123")
	require.NoError(t, err)
	_, err = svc.SubmitDocuments(ctx, "asha@example.com", &models.SubmitDocumentsRequest{
		PaymentScreenshot: "https://cdn.example.com/ss.png",
		IDCard:            "https://cdn.example.com/id.png",
	})
	require.NoError(t, err)

	verified, err := svc.ChangePaymentStatus(ctx, team.ID, models.PaymentVerified, "")
	require.NoError(t, err)

	assert.Equal(t, models.PaymentVerified, verified.PaymentStatus)
	assert.NotEmpty(t, verified.TicketNumber)
	assert.NotEmpty(t, verified.QRPayload)
	assert.True(t, strings.HasPrefix(verified.QRCode, "data:image/png;base64,"))
	assert.Equal(t, lifecycle.StageComplete, lifecycle.DeriveStage(verified))

	payload, err := lifecycle.DecodeTicketPayload(verified.QRPayload)
	require.NoError(t, err)
	assert.Equal(t, verified.RegistrationNumber, payload.RegistrationNumber)

	assert.Equal(t, []string{"asha@example.com"}, mailGateway.sent, "leader is notified on verification")
}

func TestChangePaymentStatus_UnverifyWithdrawsTicket(t *testing.T) {
	svc, _, _, _ := newTestTeamService(t)
	team := registerDuo(t, svc)
	ctx := context.Background()

	_, err := svc.SubmitPaymentReference(ctx, "asha@example.com", "TXN123")
	require.NoError(t, err)
	_, err = svc.SubmitDocuments(ctx, "asha@example.com", &models.SubmitDocumentsRequest{
		PaymentScreenshot: "ss.png",
		IDCard:            "id.png",
	})
	require.NoError(t, err)
	_, err = svc.ChangePaymentStatus(ctx, team.ID, models.PaymentVerified, "")
	require.NoError(t, err)

	// Admin correction: back to pending
	reverted, err := svc.ChangePaymentStatus(ctx, team.ID, models.PaymentPending, "")
	require.NoError(t, err)
	assert.Empty(t, reverted.TicketNumber)
	assert.Empty(t, reverted.QRCode)
	assert.Equal(t, lifecycle.StagePendingAdmin, lifecycle.DeriveStage(reverted))
}

func TestChangePaymentStatus_NoOp(t *testing.T) {
	svc, _, _, mailGateway := newTestTeamService(t)
	team := registerDuo(t, svc)

	// Requesting the current status is a trivial success and sends nothing
	same, err := svc.ChangePaymentStatus(context.Background(), team.ID, models.PaymentPending, "")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPending, same.PaymentStatus)
	assert.Empty(t, mailGateway.sent)
}

func TestChangePaymentStatus_NotFound(t *testing.T) {
	svc, _, _, _ := newTestTeamService(t)
	registerDuo(t, svc)

	_, err := svc.ChangePaymentStatus(context.Background(), primitive.NewObjectID(), models.PaymentPending, "")
	require.ErrorIs(t, err, lifecycle.ErrNotFound)
}

func TestListTeamsAndStats(t *testing.T) {
	svc, _, _, _ := newTestTeamService(t)
	team := registerDuo(t, svc)
	ctx := context.Background()

	user := &models.User{Email: "solo@example.com", RegistrationNumber: "HB-2026-CCCCCC"}
	_, err := svc.RegisterTeam(ctx, user, &models.RegisterTeamRequest{
		TeamName:         "Lone Wolf",
		TeamSize:         models.TeamSizeSolo,
		ProblemStatement: "PS-02",
		LeaderName:       "Solo Dev",
		LeaderPhone:      "+919800000002",
	})
	require.NoError(t, err)

	_, err = svc.SubmitPaymentReference(ctx, "asha@example.com", "TXN123")
	require.NoError(t, err)
	_, err = svc.SubmitDocuments(ctx, "asha@example.com", &models.SubmitDocumentsRequest{
		PaymentScreenshot: "ss.png", IDCard: "id.png",
	})
	require.NoError(t, err)
	_, err = svc.ChangePaymentStatus(ctx, team.ID, models.PaymentVerified, "")
	require.NoError(t, err)

	all, err := svc.ListTeams(ctx, "all")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	verified, err := svc.ListTeams(ctx, "verified")
	require.NoError(t, err)
	require.Len(t, verified, 1)
	assert.Equal(t, lifecycle.StageComplete, verified[0].Stage)

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalTeams)
	assert.Equal(t, int64(1), stats.VerifiedPayments)
	assert.Equal(t, int64(1), stats.PendingPayments)
	assert.Equal(t, int64(0), stats.RejectedPayments)
	assert.Equal(t, int64(1), stats.DocumentsUploaded)
}
