package lifecycle

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/hackbits-tech/hackbits-backend/internal/models"
)

// TicketPayload is the structure carried inside a ticket QR code. It is
// denormalised so the scanner can render a confirmation screen without a
// second round trip; the registration number is the check-in lookup key.
type TicketPayload struct {
	TicketNumber       string              `json:"ticketNumber"`
	RegistrationNumber string              `json:"registrationNumber"`
	TeamName           string              `json:"teamName"`
	TeamSize           models.TeamSize     `json:"teamSize"`
	Leader             models.TeamLeader   `json:"leader"`
	Members            []models.TeamMember `json:"members,omitempty"`
}

// EncodeTicketPayload serialises a team's ticket payload as base64url(JSON)
func EncodeTicketPayload(t *models.Team) (string, error) {
	payload := TicketPayload{
		TicketNumber:       t.TicketNumber,
		RegistrationNumber: t.RegistrationNumber,
		TeamName:           t.TeamName,
		TeamSize:           t.TeamSize,
		Leader:             t.Leader,
		Members:            t.Members,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal ticket payload: %w", err)
	}
	return base64.URLEncoding.EncodeToString(data), nil
}

// DecodeTicketPayload parses a scanned or pasted payload string. Anything
// that does not decode to a structure carrying a registration number is
// reported as ErrInvalidPayload, distinct from backend failures.
func DecodeTicketPayload(s string) (*TicketPayload, error) {
	if s == "" {
		return nil, ErrInvalidPayload
	}
	data, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	var payload TicketPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if payload.RegistrationNumber == "" {
		return nil, fmt.Errorf("%w: missing registration number", ErrInvalidPayload)
	}
	return &payload, nil
}
