package lifecycle

import (
	"testing"

	"github.com/hackbits-tech/hackbits-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingTeam() *models.Team {
	return &models.Team{
		RegistrationNumber: "HB-2026-000042",
		TeamName:           "Null Pointers",
		TeamSize:           models.TeamSizeDuo,
		PaymentStatus:      models.PaymentPending,
	}
}

func TestDeriveStage(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*models.Team)
		want  Stage
	}{
		{
			name:  "no payment reference",
			setup: func(tm *models.Team) {},
			want:  StagePendingPayment,
		},
		{
			name: "no payment reference ignores documents",
			setup: func(tm *models.Team) {
				tm.PaymentScreenshot = "https://cdn.example.com/ss.png"
				tm.IDCard = "https://cdn.example.com/id.png"
			},
			want: StagePendingPayment,
		},
		{
			name: "payment reference but no documents",
			setup: func(tm *models.Team) {
				tm.TransactionID = "TXN123"
			},
			want: StagePendingDocuments,
		},
		{
			name: "payment reference but only screenshot",
			setup: func(tm *models.Team) {
				tm.TransactionID = "TXN123"
				tm.PaymentScreenshot = "https://cdn.example.com/ss.png"
			},
			want: StagePendingDocuments,
		},
		{
			name: "all evidence present, awaiting admin",
			setup: func(tm *models.Team) {
				tm.TransactionID = "TXN123"
				tm.PaymentScreenshot = "https://cdn.example.com/ss.png"
				tm.IDCard = "https://cdn.example.com/id.png"
			},
			want: StagePendingAdmin,
		},
		{
			name: "rejected overrides document completeness",
			setup: func(tm *models.Team) {
				tm.PaymentStatus = models.PaymentRejected
				tm.RejectionReason = "screenshot unreadable"
			},
			want: StageRejected,
		},
		{
			name: "rejected overrides full evidence",
			setup: func(tm *models.Team) {
				tm.TransactionID = "TXN123"
				tm.PaymentScreenshot = "https://cdn.example.com/ss.png"
				tm.IDCard = "https://cdn.example.com/id.png"
				tm.PaymentStatus = models.PaymentRejected
				tm.RejectionReason = "duplicate payment"
			},
			want: StageRejected,
		},
		{
			name: "verified with ticket is complete",
			setup: func(tm *models.Team) {
				tm.TransactionID = "TXN123"
				tm.PaymentStatus = models.PaymentVerified
				tm.TicketNumber = "HBT-1A2B3C4D"
			},
			want: StageComplete,
		},
		{
			name: "verified stays complete even if screenshot later cleared",
			setup: func(tm *models.Team) {
				tm.PaymentStatus = models.PaymentVerified
				tm.TicketNumber = "HBT-1A2B3C4D"
			},
			want: StageComplete,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			team := pendingTeam()
			tt.setup(team)
			assert.Equal(t, tt.want, DeriveStage(team))
		})
	}
}

func TestDeriveStage_NeverCompleteUnlessVerified(t *testing.T) {
	for _, status := range []models.PaymentStatus{models.PaymentPending, models.PaymentRejected} {
		team := pendingTeam()
		team.TransactionID = "TXN123"
		team.PaymentScreenshot = "ss.png"
		team.IDCard = "id.png"
		team.TicketNumber = "HBT-STALE" // even with a stale ticket lying around
		team.PaymentStatus = status
		if status == models.PaymentRejected {
			team.RejectionReason = "reason"
		}
		assert.NotEqual(t, StageComplete, DeriveStage(team), "status %s must not derive complete", status)
	}
}

func TestCanVerify(t *testing.T) {
	team := pendingTeam()
	assert.False(t, CanVerify(team))

	team.TransactionID = "TXN123"
	assert.False(t, CanVerify(team))

	team.PaymentScreenshot = "ss.png"
	assert.False(t, CanVerify(team))

	team.IDCard = "id.png"
	assert.True(t, CanVerify(team))
}

func TestValidateStatusChange(t *testing.T) {
	t.Run("verify refused without evidence", func(t *testing.T) {
		team := pendingTeam()
		err := ValidateStatusChange(team, models.PaymentVerified, "")
		require.ErrorIs(t, err, ErrIneligibleForVerification)
	})

	t.Run("verify allowed with full evidence", func(t *testing.T) {
		team := pendingTeam()
		team.TransactionID = "TXN123"
		team.PaymentScreenshot = "ss.png"
		team.IDCard = "id.png"
		require.NoError(t, ValidateStatusChange(team, models.PaymentVerified, ""))
	})

	t.Run("reject requires a reason", func(t *testing.T) {
		team := pendingTeam()
		err := ValidateStatusChange(team, models.PaymentRejected, "")
		require.ErrorIs(t, err, ErrMissingRejectionReason)
	})

	t.Run("reject allowed with a reason", func(t *testing.T) {
		team := pendingTeam()
		require.NoError(t, ValidateStatusChange(team, models.PaymentRejected, "screenshot unreadable"))
	})

	t.Run("pending always allowed", func(t *testing.T) {
		team := pendingTeam()
		team.PaymentStatus = models.PaymentRejected
		team.RejectionReason = "old reason"
		require.NoError(t, ValidateStatusChange(team, models.PaymentPending, ""))
	})

	t.Run("unknown status refused", func(t *testing.T) {
		team := pendingTeam()
		err := ValidateStatusChange(team, models.PaymentStatus("approved"), "")
		require.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("validation applies even when target equals current", func(t *testing.T) {
		team := pendingTeam()
		team.PaymentStatus = models.PaymentRejected
		team.RejectionReason = "old reason"
		err := ValidateStatusChange(team, models.PaymentRejected, "")
		require.ErrorIs(t, err, ErrMissingRejectionReason)
	})
}

func TestValidateCheckIn(t *testing.T) {
	team := pendingTeam()
	team.TransactionID = "TXN123"
	team.PaymentScreenshot = "ss.png"
	team.IDCard = "id.png"
	require.ErrorIs(t, ValidateCheckIn(team), ErrNotVerified, "pending_admin team must not check in")

	team.PaymentStatus = models.PaymentVerified
	team.TicketNumber = "HBT-1A2B3C4D"
	require.NoError(t, ValidateCheckIn(team))

	team.PaymentStatus = models.PaymentRejected
	team.RejectionReason = "chargeback"
	require.ErrorIs(t, ValidateCheckIn(team), ErrNotVerified)
}

// Full participant journey: Duo registers, pays, uploads
// documents, gets verified, checks in.
func TestLifecycleScenario(t *testing.T) {
	team := pendingTeam()
	assert.Equal(t, StagePendingPayment, DeriveStage(team))

	team.TransactionID = "TXN123"
	assert.Equal(t, StagePendingDocuments, DeriveStage(team))

	team.PaymentScreenshot = "https://cdn.example.com/ss.png"
	team.IDCard = "https://cdn.example.com/id.png"
	assert.Equal(t, StagePendingAdmin, DeriveStage(team))

	require.NoError(t, ValidateStatusChange(team, models.PaymentVerified, ""))
	team.PaymentStatus = models.PaymentVerified
	team.TicketNumber = "HBT-1A2B3C4D"
	assert.Equal(t, StageComplete, DeriveStage(team))
	require.NoError(t, ValidateCheckIn(team))
}
