package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// BookingRepository defines the persistence contract for booking aggregates.
//
// The bucket queries come in two actor scopes: the booker scope filters on
// the booking's booker, the owner scope joins through the item and filters
// on its owner. All paginated queries take the raw from/size parameters of
// the API and page with the zero-based page index from/size, returning the
// page plus the total count. Ordering is by start descending except for the
// CURRENT bucket, which is ascending.
type BookingRepository interface {
	// FindByID retrieves a booking by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*Booking, error)

	// FindAllForBooker retrieves every booking made by the booker.
	FindAllForBooker(ctx context.Context, bookerID uuid.UUID, from, size int) ([]*Booking, int64, error)

	// FindCurrentForBooker retrieves the booker's bookings with start <= now < end.
	FindCurrentForBooker(ctx context.Context, bookerID uuid.UUID, now time.Time, from, size int) ([]*Booking, int64, error)

	// FindPastForBooker retrieves the booker's bookings with end <= now.
	FindPastForBooker(ctx context.Context, bookerID uuid.UUID, now time.Time, from, size int) ([]*Booking, int64, error)

	// FindFutureForBooker retrieves the booker's bookings with start > now.
	FindFutureForBooker(ctx context.Context, bookerID uuid.UUID, now time.Time, from, size int) ([]*Booking, int64, error)

	// FindByStatusForBooker retrieves the booker's bookings with the given status.
	FindByStatusForBooker(ctx context.Context, bookerID uuid.UUID, status Status, from, size int) ([]*Booking, int64, error)

	// FindAllForOwner retrieves every booking on items owned by the owner.
	FindAllForOwner(ctx context.Context, ownerID uuid.UUID, from, size int) ([]*Booking, int64, error)

	// FindCurrentForOwner retrieves the owner-scoped bookings with start <= now < end.
	FindCurrentForOwner(ctx context.Context, ownerID uuid.UUID, now time.Time, from, size int) ([]*Booking, int64, error)

	// FindPastForOwner retrieves the owner-scoped bookings with end <= now.
	FindPastForOwner(ctx context.Context, ownerID uuid.UUID, now time.Time, from, size int) ([]*Booking, int64, error)

	// FindFutureForOwner retrieves the owner-scoped bookings with start > now.
	FindFutureForOwner(ctx context.Context, ownerID uuid.UUID, now time.Time, from, size int) ([]*Booking, int64, error)

	// FindByStatusForOwner retrieves the owner-scoped bookings with the given status.
	FindByStatusForOwner(ctx context.Context, ownerID uuid.UUID, status Status, from, size int) ([]*Booking, int64, error)

	// FindApprovedForItem retrieves the item's full approved-booking history,
	// unpaginated, for the last/next computation.
	FindApprovedForItem(ctx context.Context, itemID uuid.UUID) ([]*Booking, error)

	// FindFinishedForItemAndBooker retrieves the booker's bookings of the item
	// that ended at or before now. Used to gate commenting.
	FindFinishedForItemAndBooker(ctx context.Context, itemID, bookerID uuid.UUID, now time.Time) ([]*Booking, error)

	// Save persists a new booking.
	Save(ctx context.Context, booking *Booking) error

	// Update persists changes to an existing booking with optimistic locking.
	Update(ctx context.Context, booking *Booking) error

	// DeleteByID removes a booking unconditionally.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
