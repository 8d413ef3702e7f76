package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Inventory errors
	ErrMsgInsufficientInventory = "not enough duplicates"

	// Rule errors
	ErrMsgValidationFailed = "selection rejected"
	ErrMsgAlreadyClaimed   = "already claimed"
	ErrMsgNotEligible      = "not eligible"

	// Lookup errors
	ErrMsgUnknownEntity = "unknown entity"

	// Storage errors
	ErrMsgPersistenceFailure = "persistence failure"

	// Feature errors
	ErrMsgFeatureLocked = "feature is locked"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Not-eligible causes reported to the caller
const (
	CauseAlreadyClaimed   = "already claimed"
	CauseTargetNotReached = "target not reached"
	CausePredecessorUnmet = "previous step not claimed"
	CauseLevelNotReached  = "level not reached"
	CausePassLocked       = "not unlocked"
	CauseNoRewardAtLevel  = "no reward at this level"
)

// Validation reasons (prefixes, details are appended)
const (
	ReasonIncompleteSelection = "incomplete selection"
	ReasonUnknownPlayer       = "unknown player"
	ReasonRatingTooLow        = "rating too low"
	ReasonDisallowedRarity    = "disallowed rarity"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInsufficientFunds     = errors.New(ErrMsgInsufficientFunds)
	ErrInsufficientInventory = errors.New(ErrMsgInsufficientInventory)
	ErrValidation            = errors.New(ErrMsgValidationFailed)
	ErrAlreadyClaimed        = errors.New(ErrMsgAlreadyClaimed)
	ErrNotEligible           = errors.New(ErrMsgNotEligible)
	ErrUnknownEntity         = errors.New(ErrMsgUnknownEntity)
	ErrPersistence           = errors.New(ErrMsgPersistenceFailure)
	ErrFeatureLocked         = errors.New(ErrMsgFeatureLocked)
	ErrInvalidInput          = errors.New(ErrMsgInvalidInput)
)

// InsufficientInventoryError reports the first card whose requested
// multiplicity exceeds the owned count.
type InsufficientInventoryError struct {
	Name     string
	Owned    int
	Required int
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("%s of %s (owned: %d, required: %d)", ErrMsgInsufficientInventory, e.Name, e.Owned, e.Required)
}

func (e *InsufficientInventoryError) Unwrap() error { return ErrInsufficientInventory }

// ValidationError carries the user-facing reason a squad was rejected.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError builds a ValidationError from a reason prefix and detail.
func NewValidationError(reason, detail string) *ValidationError {
	if detail == "" {
		return &ValidationError{Reason: reason}
	}
	return &ValidationError{Reason: fmt.Sprintf("%s %s", reason, detail)}
}

// NotEligibleError reports why a claim or switch was refused.
type NotEligibleError struct {
	Cause string
}

func (e *NotEligibleError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMsgNotEligible, e.Cause)
}

// Unwrap exposes ErrAlreadyClaimed for repeat claims so callers can test
// either sentinel.
func (e *NotEligibleError) Unwrap() []error {
	if e.Cause == CauseAlreadyClaimed {
		return []error{ErrNotEligible, ErrAlreadyClaimed}
	}
	return []error{ErrNotEligible}
}

// NotEligible is shorthand for &NotEligibleError{Cause: cause}.
func NotEligible(cause string) error {
	return &NotEligibleError{Cause: cause}
}

// UnknownEntity wraps ErrUnknownEntity with the offending name.
func UnknownEntity(kind, name string) error {
	return fmt.Errorf("%w: %s %q", ErrUnknownEntity, kind, name)
}

// Persistence wraps a store error so callers can match ErrPersistence.
func Persistence(op, key string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", ErrPersistence, op, key, err)
}
