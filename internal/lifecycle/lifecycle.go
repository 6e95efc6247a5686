// Package lifecycle is the registration status engine: it derives a team's
// display stage from its raw fields and validates status-change and check-in
// requests before they touch storage. Every surface (admin table, participant
// profile, check-in scanner) derives state through this package so they agree
// by construction.
//
// The package is pure and stateless; it performs no I/O.
package lifecycle

import "github.com/hackbits-tech/hackbits-backend/internal/models"

// Stage is the user-facing lifecycle stage of a team
type Stage string

const (
	StagePendingPayment   Stage = "pending_payment"
	StagePendingDocuments Stage = "pending_documents"
	StagePendingAdmin     Stage = "pending_admin"
	StageRejected         Stage = "rejected"
	StageComplete         Stage = "complete"
)

// DeriveStage converts a team's raw fields into its lifecycle stage. It is
// total: every team maps to exactly one stage.
//
// Explicit admin decisions (verified, rejected) take precedence over
// document-completeness stages, so a verified team whose screenshot was later
// cleared still reads as complete.
func DeriveStage(t *models.Team) Stage {
	switch {
	case t.PaymentStatus == models.PaymentVerified && t.TicketNumber != "":
		return StageComplete
	case t.PaymentStatus == models.PaymentRejected:
		return StageRejected
	case t.TransactionID == "":
		return StagePendingPayment
	case t.PaymentScreenshot == "" || t.IDCard == "":
		return StagePendingDocuments
	default:
		return StagePendingAdmin
	}
}

// CanVerify reports whether a team has the full audit trail required for
// verification: payment reference, payment screenshot and ID card. Admin
// verify requests are refused when this is false, regardless of what the
// admin asked for, because verification gates physical event entry.
func CanVerify(t *models.Team) bool {
	return t.TransactionID != "" && t.PaymentScreenshot != "" && t.IDCard != ""
}

// ValidateStatusChange checks whether the requested payment-status transition
// is well-formed. Validation always runs, even when target equals the current
// status; a redundant but valid request is treated as a trivial success by
// the caller.
func ValidateStatusChange(t *models.Team, target models.PaymentStatus, reason string) error {
	switch target {
	case models.PaymentPending:
		return nil
	case models.PaymentVerified:
		if !CanVerify(t) {
			return ErrIneligibleForVerification
		}
		return nil
	case models.PaymentRejected:
		if reason == "" {
			return ErrMissingRejectionReason
		}
		return nil
	default:
		return ErrInvalidStatus
	}
}

// ValidateCheckIn checks the check-in precondition: only teams at stage
// complete may be admitted. An already-checked-in team passes; the caller
// reports that as the soft AlreadyCheckedIn outcome, not as a failure.
func ValidateCheckIn(t *models.Team) error {
	if DeriveStage(t) != StageComplete {
		return ErrNotVerified
	}
	return nil
}
