package models

import "time"

// CheckInRequest is the scanner's check-in request. Either the registration
// number or the raw scanned payload must be supplied; when both are present
// the registration number wins.
type CheckInRequest struct {
	RegistrationNumber string        `json:"registrationNumber"`
	Payload            string        `json:"payload"`
	Method             CheckInMethod `json:"method" binding:"required,oneof=qr_scan manual_entry"`
}

// VerifyCheckInRequest asks whether a team could be checked in right now
type VerifyCheckInRequest struct {
	RegistrationNumber string `json:"registrationNumber" binding:"required"`
}

// CheckInResponse reports the outcome of a check-in attempt.
// AlreadyCheckedIn is a valid, expected outcome and carries the prior
// check-in time; it is not an error.
type CheckInResponse struct {
	Success          bool       `json:"success"`
	Message          string     `json:"message"`
	Team             *Team      `json:"team,omitempty"`
	AlreadyCheckedIn bool       `json:"alreadyCheckedIn,omitempty"`
	CheckInTime      *time.Time `json:"checkInTime,omitempty"`
}

// CheckInEligibility is the response to a pre-check verification
type CheckInEligibility struct {
	Eligible  bool   `json:"eligible"`
	CheckedIn bool   `json:"checkedIn"`
	Stage     string `json:"stage"`
	Team      *Team  `json:"team,omitempty"`
}

// CheckInStats holds the aggregate counts for the scanner dashboard.
// Only verified teams count towards the totals, since only they can enter.
type CheckInStats struct {
	TotalTeams     int64   `json:"totalTeams"`
	CheckedInTeams int64   `json:"checkedInTeams"`
	PendingTeams   int64   `json:"pendingTeams"`
	CheckInRate    float64 `json:"checkInRate"` // percentage, 0-100
}
