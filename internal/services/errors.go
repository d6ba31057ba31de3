// Package services defines the business logic for accounts, petitions,
// evidence, consultations, and depositions. This file centralizes common
// service-level error values so that they can be consistently returned by
// service methods and checked by callers.
//
// These errors are intended for internal use by the service layer;
// translation into user-facing messages or HTTP status codes is performed
// at the handler layer.
package services

import "errors"

// Account-related errors.
var (
	// ErrUsernameTaken is returned when registration is attempted with a
	// username that already exists.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials is returned when login fails, without revealing
	// whether the username or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidToken is returned when a bearer token cannot be validated.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Authorization errors shared across aggregates.
var (
	// ErrCitizenOnly is returned when an operation reserved for citizens is
	// attempted by another role.
	ErrCitizenOnly = errors.New("only citizens may perform this action")

	// ErrAdminOnly is returned when an operation reserved for admins is
	// attempted by another role.
	ErrAdminOnly = errors.New("only admins may perform this action")

	// ErrLawyerOnly is returned when an operation reserved for lawyers is
	// attempted by another role.
	ErrLawyerOnly = errors.New("only lawyers may perform this action")

	// ErrNotOwner is returned when a user attempts to act on a record they
	// do not own.
	ErrNotOwner = errors.New("record belongs to another user")
)

// Validation errors.
var (
	// ErrMissingFields is returned when a required field is blank.
	ErrMissingFields = errors.New("required field missing")
)

// Petition errors.
var (
	// ErrPetitionNotFound indicates that the requested petition does not
	// exist or is not visible to the current viewer.
	ErrPetitionNotFound = errors.New("petition not found")

	// ErrPetitionNotDraft is returned when an edit is attempted on a
	// petition that has already left the draft state.
	ErrPetitionNotDraft = errors.New("petition is no longer a draft")
)

// Evidence errors.
var (
	// ErrEvidenceNotFound indicates that a referenced evidence record does
	// not exist or is not accessible.
	ErrEvidenceNotFound = errors.New("evidence not found")
)

// Consultation errors.
var (
	// ErrSlotNotFound indicates that the requested consultation slot does
	// not exist.
	ErrSlotNotFound = errors.New("consultation slot not found")

	// ErrSlotTaken is returned when a booking is attempted against a slot
	// that already holds a confirmed booking.
	ErrSlotTaken = errors.New("slot is already booked")
)

// Deposition errors.
var (
	// ErrDepositionNotFound indicates that the requested deposition does
	// not exist or belongs to another user.
	ErrDepositionNotFound = errors.New("deposition not found")
)
