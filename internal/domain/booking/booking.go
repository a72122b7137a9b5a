package booking

import (
	"time"

	"github.com/boyarintsev1/shareit/internal/domain"
	"github.com/google/uuid"
)

// Booking is the aggregate root for the booking domain: a time-bounded
// reservation of an item by a booker, with an approval status.
type Booking struct {
	id       uuid.UUID
	start    time.Time
	end      time.Time
	itemID   uuid.UUID
	bookerID uuid.UUID
	status   Status

	version   int64
	createdAt time.Time
	updatedAt time.Time
}

// NewBooking creates a booking request in status WAITING. The interval must
// be strictly positive; item availability is the caller's concern.
func NewBooking(bookerID, itemID uuid.UUID, start, end time.Time) (*Booking, error) {
	if bookerID == uuid.Nil {
		return nil, domain.NewValidationError("booker ID is required")
	}
	if itemID == uuid.Nil {
		return nil, domain.NewValidationError("item ID is required")
	}
	if !end.After(start) {
		return nil, domain.NewInvalidIntervalError()
	}

	now := time.Now().UTC()
	return &Booking{
		id:        uuid.New(),
		start:     start,
		end:       end,
		itemID:    itemID,
		bookerID:  bookerID,
		status:    StatusWaiting,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructBooking rebuilds a Booking from persistence data (no validation).
func ReconstructBooking(
	id uuid.UUID,
	start, end time.Time,
	itemID, bookerID uuid.UUID,
	status Status,
	version int64,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		start:     start,
		end:       end,
		itemID:    itemID,
		bookerID:  bookerID,
		status:    status,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ID returns the booking's unique identifier.
func (b *Booking) ID() uuid.UUID { return b.id }

// Start returns the start of the reserved interval.
func (b *Booking) Start() time.Time { return b.start }

// End returns the end of the reserved interval.
func (b *Booking) End() time.Time { return b.end }

// ItemID returns the booked item's identifier.
func (b *Booking) ItemID() uuid.UUID { return b.itemID }

// BookerID returns the requesting user's identifier.
func (b *Booking) BookerID() uuid.UUID { return b.bookerID }

// Status returns the current approval status.
func (b *Booking) Status() Status { return b.status }

// Version returns the entity version for optimistic locking.
func (b *Booking) Version() int64 { return b.version }

// CreatedAt returns the creation timestamp.
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

// UpdatedAt returns the last-updated timestamp.
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

// ActiveAt reports whether the booking covers the given instant. The lower
// bound is inclusive and the upper bound strict: a booking ending exactly at
// now is finished, one starting exactly at now is active.
func (b *Booking) ActiveAt(now time.Time) bool {
	return !b.start.After(now) && now.Before(b.end)
}

// FinishedAt reports whether the booking has ended at the given instant.
func (b *Booking) FinishedAt(now time.Time) bool {
	return !b.end.After(now)
}

// Decide applies an owner's approval decision at the given instant. An
// approved booking is terminal: it cannot be re-approved or flipped to
// rejected.
func (b *Booking) Decide(approve bool, now time.Time) error {
	if b.status == StatusApproved {
		return domain.NewAlreadyApprovedError(b.id.String())
	}
	if approve {
		b.status = StatusApproved
	} else {
		b.status = StatusRejected
	}
	b.updatedAt = now
	return nil
}

// Patch carries the booker-editable fields of a resubmission. Nil fields are
// left untouched on the stored booking.
type Patch struct {
	Start  *time.Time
	End    *time.Time
	ItemID *uuid.UUID
}

// Resubmit applies a booker's patch and puts the booking back into WAITING
// for a fresh approval cycle, whatever its prior status was. That also
// resurrects a rejected booking. The effective interval after the patch must
// be strictly positive and must not reach into the past.
func (b *Booking) Resubmit(p Patch, now time.Time) error {
	start := b.start
	end := b.end
	if p.Start != nil {
		start = *p.Start
	}
	if p.End != nil {
		end = *p.End
	}

	if !end.After(start) {
		return domain.NewInvalidIntervalError()
	}
	if start.Before(now) || end.Before(now) {
		return domain.NewPastDateError()
	}

	b.start = start
	b.end = end
	if p.ItemID != nil {
		b.itemID = *p.ItemID
	}
	b.status = StatusWaiting
	b.updatedAt = now
	return nil
}

// IncrementVersion bumps the version for optimistic locking.
func (b *Booking) IncrementVersion(now time.Time) {
	b.version++
	b.updatedAt = now
}
