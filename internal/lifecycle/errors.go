package lifecycle

import "errors"

// Error taxonomy surfaced to callers. Handlers map these to HTTP codes with
// errors.Is; none of them are retried.
var (
	// ErrIneligibleForVerification means a verify was requested without the
	// full audit trail (payment reference, screenshot and ID card).
	ErrIneligibleForVerification = errors.New("team is not eligible for verification: payment reference, payment screenshot and ID card are required")

	// ErrMissingRejectionReason means a reject was requested without a reason.
	ErrMissingRejectionReason = errors.New("a rejection reason is required to reject a team")

	// ErrInvalidStatus means the requested target status is not one of
	// pending, verified or rejected.
	ErrInvalidStatus = errors.New("invalid payment status")

	// ErrInvalidPayload means a scanned or pasted ticket payload could not be
	// decoded into the expected structure.
	ErrInvalidPayload = errors.New("invalid ticket payload")

	// ErrNotVerified means a check-in was attempted for a team whose stage is
	// not complete.
	ErrNotVerified = errors.New("team is not verified and cannot be checked in")

	// ErrNotFound means the team (or other entity) is unknown to the store.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized means the acting account lacks the required capability.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRegistrationClosed means team registration is currently disabled.
	ErrRegistrationClosed = errors.New("registration is closed")

	// ErrCheckInClosed means venue check-in is currently disabled.
	ErrCheckInClosed = errors.New("check-in is closed")
)
