package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamSize categorises a team by member count
type TeamSize string

const (
	TeamSizeSolo TeamSize = "Solo" // 1 participant
	TeamSizeDuo  TeamSize = "Duo"  // 2 participants
	TeamSizeTeam TeamSize = "Team" // 3-4 participants
)

// PaymentStatus is the admin-controlled verification state of a team
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentVerified PaymentStatus = "verified"
	PaymentRejected PaymentStatus = "rejected"
)

// CheckInMethod records how a team was admitted at the venue
type CheckInMethod string

const (
	CheckInMethodQRScan      CheckInMethod = "qr_scan"
	CheckInMethodManualEntry CheckInMethod = "manual_entry"
)

// TeamLeader holds the contact details of the registering participant
type TeamLeader struct {
	Name               string `bson:"name" json:"name"`
	Email              string `bson:"email" json:"email"`
	Phone              string `bson:"phone" json:"phone"`
	RegistrationNumber string `bson:"registrationNumber" json:"registrationNumber"`
}

// TeamMember represents an additional (non-leader) team member
type TeamMember struct {
	Name               string `bson:"name" json:"name"`
	Email              string `bson:"email" json:"email"`
	RegistrationNumber string `bson:"registrationNumber" json:"registrationNumber"`
}

// Team represents a registered hackathon team
type Team struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	RegistrationNumber string             `bson:"registrationNumber" json:"registrationNumber"`
	TeamName           string             `bson:"teamName" json:"teamName"`
	TeamSize           TeamSize           `bson:"teamSize" json:"teamSize"`
	ProblemStatement   string             `bson:"problemStatement" json:"problemStatement"`
	Leader             TeamLeader         `bson:"leader" json:"leader"`
	Members            []TeamMember       `bson:"members,omitempty" json:"members,omitempty"`

	// Payment evidence submitted by the participant
	TransactionID     string `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	PaymentScreenshot string `bson:"paymentScreenshot,omitempty" json:"paymentScreenshot,omitempty"`
	IDCard            string `bson:"idCard,omitempty" json:"idCard,omitempty"`
	PaymentAmount     int64  `bson:"paymentAmount" json:"paymentAmount"` // minor currency units

	// Verification state, mutated only by admins
	PaymentStatus   PaymentStatus `bson:"paymentStatus" json:"paymentStatus"`
	RejectionReason string        `bson:"rejectionReason,omitempty" json:"rejectionReason,omitempty"`

	// Ticket fields, present only once verified
	TicketNumber string `bson:"ticketNumber,omitempty" json:"ticketNumber,omitempty"`
	QRPayload    string `bson:"qrPayload,omitempty" json:"qrPayload,omitempty"`
	QRCode       string `bson:"qrCode,omitempty" json:"qrCode,omitempty"` // PNG data URL

	// Check-in state
	CheckedIn     bool          `bson:"checkedIn" json:"checkedIn"`
	CheckInTime   *time.Time    `bson:"checkInTime,omitempty" json:"checkInTime,omitempty"`
	CheckInMethod CheckInMethod `bson:"checkInMethod,omitempty" json:"checkInMethod,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// RegisterTeamRequest defines the structure for team registration requests
type RegisterTeamRequest struct {
	TeamName         string       `json:"teamName" binding:"required"`
	TeamSize         TeamSize     `json:"teamSize" binding:"required,oneof=Solo Duo Team"`
	ProblemStatement string       `json:"problemStatement" binding:"required"`
	LeaderName       string       `json:"leaderName" binding:"required"`
	LeaderPhone      string       `json:"leaderPhone" binding:"required"`
	Members          []TeamMember `json:"members"`
}

// SubmitPaymentRequest carries the manual transaction reference
type SubmitPaymentRequest struct {
	TransactionID string `json:"transactionId" binding:"required"`
}

// SubmitDocumentsRequest carries uploaded document references.
// Binary transport happens outside this service; only references are stored.
type SubmitDocumentsRequest struct {
	PaymentScreenshot string `json:"paymentScreenshot" binding:"required"`
	IDCard            string `json:"idCard" binding:"required"`
}

// UpdatePaymentStatusRequest is the admin status-change request body
type UpdatePaymentStatusRequest struct {
	PaymentStatus   PaymentStatus `json:"paymentStatus" binding:"required,oneof=pending verified rejected"`
	RejectionReason string        `json:"rejectionReason"`
}

// TeamStats holds the aggregate counts for the admin dashboard
type TeamStats struct {
	TotalTeams        int64 `json:"totalTeams"`
	VerifiedPayments  int64 `json:"verifiedPayments"`
	PendingPayments   int64 `json:"pendingPayments"`
	RejectedPayments  int64 `json:"rejectedPayments"`
	DocumentsUploaded int64 `json:"documentsUploaded"`
}
