package item

import (
	"time"

	"github.com/boyarintsev1/shareit/internal/domain"
	"github.com/google/uuid"
)

// Item is the aggregate root for a shareable thing. Availability is a single
// boolean switch the owner controls; it is the only gate on new bookings,
// there is no per-interval calendar. An item may answer an open request, in
// which case requestID links back to it.
type Item struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	name        string
	description string
	available   bool
	requestID   *uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
}

// NewItem creates an item owned by the given user. A non-nil requestID marks
// the item as an answer to that request.
func NewItem(ownerID uuid.UUID, name, description string, available bool, requestID *uuid.UUID) (*Item, error) {
	if ownerID == uuid.Nil {
		return nil, domain.NewValidationError("owner ID is required")
	}
	if name == "" {
		return nil, domain.NewValidationError("item name is required")
	}

	now := time.Now().UTC()
	return &Item{
		id:          uuid.New(),
		ownerID:     ownerID,
		name:        name,
		description: description,
		available:   available,
		requestID:   requestID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// Reconstruct rebuilds an Item from persistence data (no validation).
func Reconstruct(id, ownerID uuid.UUID, name, description string, available bool, requestID *uuid.UUID, createdAt, updatedAt time.Time) *Item {
	return &Item{
		id:          id,
		ownerID:     ownerID,
		name:        name,
		description: description,
		available:   available,
		requestID:   requestID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ID returns the item's unique identifier.
func (i *Item) ID() uuid.UUID { return i.id }

// OwnerID returns the owning user's identifier.
func (i *Item) OwnerID() uuid.UUID { return i.ownerID }

// Name returns the item's short name.
func (i *Item) Name() string { return i.name }

// Description returns the item's description.
func (i *Item) Description() string { return i.description }

// Available reports whether the item can currently be booked.
func (i *Item) Available() bool { return i.available }

// RequestID returns the request this item answers, or nil.
func (i *Item) RequestID() *uuid.UUID { return i.requestID }

// CreatedAt returns the creation timestamp.
func (i *Item) CreatedAt() time.Time { return i.createdAt }

// UpdatedAt returns the last-updated timestamp.
func (i *Item) UpdatedAt() time.Time { return i.updatedAt }

// IsOwnedBy reports whether the given user owns the item.
func (i *Item) IsOwnedBy(userID uuid.UUID) bool {
	return i.ownerID == userID
}

// ApplyPatch updates the non-empty fields of an owner edit.
func (i *Item) ApplyPatch(name, description *string, available *bool) {
	if name != nil && *name != "" {
		i.name = *name
	}
	if description != nil && *description != "" {
		i.description = *description
	}
	if available != nil {
		i.available = *available
	}
	i.updatedAt = time.Now().UTC()
}
