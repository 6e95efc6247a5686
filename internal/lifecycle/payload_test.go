package lifecycle

import (
	"encoding/base64"
	"testing"

	"github.com/hackbits-tech/hackbits-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketPayloadRoundTrip(t *testing.T) {
	team := &models.Team{
		RegistrationNumber: "HB-2026-000042",
		TeamName:           "Null Pointers",
		TeamSize:           models.TeamSizeDuo,
		TicketNumber:       "HBT-1A2B3C4D",
		Leader: models.TeamLeader{
			Name:               "Asha Rao",
			Email:              "asha@example.com",
			Phone:              "+919800000000",
			RegistrationNumber: "REG-1001",
		},
		Members: []models.TeamMember{
			{Name: "Vikram Shah", Email: "vikram@example.com", RegistrationNumber: "REG-1002"},
		},
	}

	encoded, err := EncodeTicketPayload(team)
	require.NoError(t, err)

	decoded, err := DecodeTicketPayload(encoded)
	require.NoError(t, err)

	assert.Equal(t, team.RegistrationNumber, decoded.RegistrationNumber)
	assert.Equal(t, team.TicketNumber, decoded.TicketNumber)
	assert.Equal(t, team.TeamName, decoded.TeamName)
	assert.Equal(t, team.TeamSize, decoded.TeamSize)
	assert.Equal(t, team.Leader, decoded.Leader)
	assert.Equal(t, team.Members, decoded.Members)
}

func TestDecodeTicketPayload_Malformed(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"empty", ""},
		{"not base64", "!!!not-base64!!!"},
		{"base64 but not json", base64.URLEncoding.EncodeToString([]byte("hello world"))},
		{"json without registration number", base64.URLEncoding.EncodeToString([]byte(`{"teamName":"ghost"}`))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeTicketPayload(tc.payload)
			require.ErrorIs(t, err, ErrInvalidPayload)
		})
	}
}
