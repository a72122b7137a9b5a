package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a domain failure so the transport layer can map it
// to a client-facing status without string matching.
type ErrorKind string

const (
	KindNotFound        ErrorKind = "not_found"
	KindValidation      ErrorKind = "validation"
	KindInvalidInterval ErrorKind = "invalid_interval"
	KindPastDate        ErrorKind = "past_date"
	KindItemUnavailable ErrorKind = "item_unavailable"
	KindAlreadyApproved ErrorKind = "already_approved"
	KindUnknownState    ErrorKind = "unknown_state"
	KindNotBooker       ErrorKind = "not_booker"
	KindNotOwner        ErrorKind = "not_owner"
	KindConflict        ErrorKind = "conflict"
)

// Error is a typed, recoverable domain failure. Every error constructed at a
// point of failure is local to that call; no shared message state.
type Error struct {
	Kind    ErrorKind
	Message string
}

// Error returns the message of the domain error.
func (e *Error) Error() string { return e.Message }

// NewNotFoundError reports that an entity with the given id does not exist.
func NewNotFoundError(resource, id string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s with id %s not found", resource, id)}
}

// NewValidationError reports a generic request validation failure.
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewInvalidIntervalError reports a booking interval whose end is not after its start.
func NewInvalidIntervalError() *Error {
	return &Error{Kind: KindInvalidInterval, Message: "booking end must be strictly after its start"}
}

// NewPastDateError reports a booking interval reaching into the past.
func NewPastDateError() *Error {
	return &Error{Kind: KindPastDate, Message: "booking dates must not be in the past"}
}

// NewItemUnavailableError reports an attempt to book an item whose owner
// has marked it unavailable.
func NewItemUnavailableError(itemID string) *Error {
	return &Error{Kind: KindItemUnavailable, Message: fmt.Sprintf("item %s is not available for booking", itemID)}
}

// NewOwnItemError reports an owner trying to book their own item. It is
// surfaced as not-found so the item's ownership is not leaked.
func NewOwnItemError() *Error {
	return &Error{Kind: KindNotFound, Message: "owners cannot book their own items"}
}

// NewAlreadyApprovedError reports an approval decision on a booking that is
// already approved.
func NewAlreadyApprovedError(bookingID string) *Error {
	return &Error{Kind: KindAlreadyApproved, Message: fmt.Sprintf("booking %s is already approved and cannot change status", bookingID)}
}

// NewUnknownStateError reports an unrecognized booking state filter. The
// message format is part of the API contract.
func NewUnknownStateError(state string) *Error {
	return &Error{Kind: KindUnknownState, Message: "Unknown state: " + state}
}

// NewNotBookerError reports a booker-only operation attempted by someone else.
func NewNotBookerError() *Error {
	return &Error{Kind: KindNotBooker, Message: "only the booker may modify this booking"}
}

// NewNotOwnerError reports an owner-only operation attempted by someone else.
func NewNotOwnerError() *Error {
	return &Error{Kind: KindNotOwner, Message: "only the item owner may perform this operation"}
}

// NewConflictError reports a lost optimistic-locking race.
func NewConflictError(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// KindOf extracts the ErrorKind from err, or "" if err is not a domain error.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// IsNotFound reports whether err is a domain not-found error.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}
