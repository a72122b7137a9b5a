package application

import (
	"context"
	"fmt"
	"time"

	"github.com/boyarintsev1/shareit/internal/domain"
	bookingDomain "github.com/boyarintsev1/shareit/internal/domain/booking"
	itemDomain "github.com/boyarintsev1/shareit/internal/domain/item"
	userDomain "github.com/boyarintsev1/shareit/internal/domain/user"
	"github.com/boyarintsev1/shareit/internal/events"
	"github.com/boyarintsev1/shareit/internal/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBookingRequest holds the data needed to file a new booking.
type CreateBookingRequest struct {
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
	ItemID uuid.UUID `json:"item_id" binding:"required"`
}

// UpdateBookingRequest is a booker's resubmission patch; nil fields are left
// untouched on the stored booking.
type UpdateBookingRequest struct {
	Start  *time.Time `json:"start"`
	End    *time.Time `json:"end"`
	ItemID *uuid.UUID `json:"item_id"`
}

// BookingDTO is the response representation of a booking.
type BookingDTO struct {
	ID        uuid.UUID `json:"id"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	ItemID    uuid.UUID `json:"item_id"`
	BookerID  uuid.UUID `json:"booker_id"`
	Status    string    `json:"status"`
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingService is the application service owning the booking lifecycle and
// the state classification queries. It also carries the per-booking access
// guards the transport layer relies on.
type BookingService struct {
	repo      bookingDomain.BookingRepository
	items     itemDomain.Lookup
	users     userDomain.Lookup
	publisher events.Publisher
	logger    *zap.Logger
	now       func() time.Time
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	repo bookingDomain.BookingRepository,
	items itemDomain.Lookup,
	users userDomain.Lookup,
	publisher events.Publisher,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		repo:      repo,
		items:     items,
		users:     users,
		publisher: publisher,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// ListForBooker returns the booker's bookings in the requested state bucket.
// Dispatch is total over the closed state set; an unrecognized value is
// rejected before it gets here, but the guard stays for direct callers.
func (s *BookingService) ListForBooker(ctx context.Context, bookerID uuid.UUID, state bookingDomain.State, from, size int) (*domain.PaginatedResult[BookingDTO], error) {
	if _, err := s.users.FindByID(ctx, bookerID); err != nil {
		return nil, err
	}

	now := s.now()
	var (
		bookings []*bookingDomain.Booking
		total    int64
		err      error
	)
	switch state {
	case bookingDomain.StateAll:
		bookings, total, err = s.repo.FindAllForBooker(ctx, bookerID, from, size)
	case bookingDomain.StateCurrent:
		bookings, total, err = s.repo.FindCurrentForBooker(ctx, bookerID, now, from, size)
	case bookingDomain.StatePast:
		bookings, total, err = s.repo.FindPastForBooker(ctx, bookerID, now, from, size)
	case bookingDomain.StateFuture:
		bookings, total, err = s.repo.FindFutureForBooker(ctx, bookerID, now, from, size)
	case bookingDomain.StateWaiting:
		bookings, total, err = s.repo.FindByStatusForBooker(ctx, bookerID, bookingDomain.StatusWaiting, from, size)
	case bookingDomain.StateRejected:
		bookings, total, err = s.repo.FindByStatusForBooker(ctx, bookerID, bookingDomain.StatusRejected, from, size)
	default:
		return nil, domain.NewUnknownStateError(state.String())
	}
	if err != nil {
		return nil, err
	}

	result := domain.NewPaginatedResult(toBookingDTOs(bookings), total, from/size, size)
	return &result, nil
}

// ListForOwner returns the bookings on the owner's items in the requested
// state bucket.
func (s *BookingService) ListForOwner(ctx context.Context, ownerID uuid.UUID, state bookingDomain.State, from, size int) (*domain.PaginatedResult[BookingDTO], error) {
	if _, err := s.users.FindByID(ctx, ownerID); err != nil {
		return nil, err
	}

	now := s.now()
	var (
		bookings []*bookingDomain.Booking
		total    int64
		err      error
	)
	switch state {
	case bookingDomain.StateAll:
		bookings, total, err = s.repo.FindAllForOwner(ctx, ownerID, from, size)
	case bookingDomain.StateCurrent:
		bookings, total, err = s.repo.FindCurrentForOwner(ctx, ownerID, now, from, size)
	case bookingDomain.StatePast:
		bookings, total, err = s.repo.FindPastForOwner(ctx, ownerID, now, from, size)
	case bookingDomain.StateFuture:
		bookings, total, err = s.repo.FindFutureForOwner(ctx, ownerID, now, from, size)
	case bookingDomain.StateWaiting:
		bookings, total, err = s.repo.FindByStatusForOwner(ctx, ownerID, bookingDomain.StatusWaiting, from, size)
	case bookingDomain.StateRejected:
		bookings, total, err = s.repo.FindByStatusForOwner(ctx, ownerID, bookingDomain.StatusRejected, from, size)
	default:
		return nil, domain.NewUnknownStateError(state.String())
	}
	if err != nil {
		return nil, err
	}

	result := domain.NewPaginatedResult(toBookingDTOs(bookings), total, from/size, size)
	return &result, nil
}

// GetBooking retrieves a single booking, visible only to its booker and the
// booked item's owner. Anyone else gets the same not-found as an unknown id.
func (s *BookingService) GetBooking(ctx context.Context, actorID, bookingID uuid.UUID) (*BookingDTO, error) {
	b, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	it, err := s.items.FindByID(ctx, b.ItemID())
	if err != nil {
		return nil, err
	}
	if !bookingDomain.CanView(actorID, b, it.OwnerID()) {
		return nil, domain.NewNotFoundError("booking", bookingID.String())
	}

	result := toBookingDTO(b)
	return &result, nil
}

// CreateBooking files a new booking request in WAITING. Only the item's
// availability flag gates creation; overlapping approved bookings on the
// same item are allowed.
func (s *BookingService) CreateBooking(ctx context.Context, bookerID uuid.UUID, req CreateBookingRequest) (*BookingDTO, error) {
	booker, err := s.users.FindByID(ctx, bookerID)
	if err != nil {
		return nil, err
	}
	it, err := s.items.FindByID(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	if it.IsOwnedBy(bookerID) {
		return nil, domain.NewOwnItemError()
	}

	b, err := bookingDomain.NewBooking(booker.ID(), it.ID(), req.Start, req.End)
	if err != nil {
		return nil, err
	}
	if !it.Available() {
		return nil, domain.NewItemUnavailableError(it.ID().String())
	}

	if err := s.repo.Save(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}

	metrics.IncBookingCreated()
	s.logger.Info("booking created",
		zap.String("booking_id", b.ID().String()),
		zap.String("item_id", it.ID().String()),
		zap.String("booker_id", bookerID.String()),
	)

	evt := events.BookingRequestedEvent{
		BookingID:  b.ID(),
		ItemID:     b.ItemID(),
		BookerID:   b.BookerID(),
		Start:      b.Start(),
		End:        b.End(),
		OccurredAt: s.now(),
	}
	s.publisher.Publish(ctx, events.BookingRequested, b.ID().String(), evt)

	result := toBookingDTO(b)
	return &result, nil
}

// UpdateBooking applies a booker's resubmission: the patched interval is
// re-validated, non-nil fields are applied and the booking returns to
// WAITING for a fresh approval cycle.
func (s *BookingService) UpdateBooking(ctx context.Context, actorID, bookingID uuid.UUID, req UpdateBookingRequest) (*BookingDTO, error) {
	if _, err := s.users.FindByID(ctx, actorID); err != nil {
		return nil, err
	}
	b, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !bookingDomain.CanModify(actorID, b) {
		return nil, domain.NewNotBookerError()
	}
	if req.ItemID != nil {
		// re-targeting must point at an existing item
		if _, err := s.items.FindByID(ctx, *req.ItemID); err != nil {
			return nil, err
		}
	}

	patch := bookingDomain.Patch{Start: req.Start, End: req.End, ItemID: req.ItemID}
	if err := b.Resubmit(patch, s.now()); err != nil {
		return nil, err
	}

	b.IncrementVersion(s.now())
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.logger.Info("booking resubmitted", zap.String("booking_id", b.ID().String()))

	evt := events.BookingResubmittedEvent{
		BookingID:  b.ID(),
		ItemID:     b.ItemID(),
		BookerID:   b.BookerID(),
		Start:      b.Start(),
		End:        b.End(),
		OccurredAt: s.now(),
	}
	s.publisher.Publish(ctx, events.BookingResubmitted, b.ID().String(), evt)

	result := toBookingDTO(b)
	return &result, nil
}

// ApproveBooking applies the item owner's approval decision. An approved
// booking is terminal either way: it can be neither re-approved nor flipped
// to rejected.
func (s *BookingService) ApproveBooking(ctx context.Context, actorID, bookingID uuid.UUID, approve bool) (*BookingDTO, error) {
	b, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	it, err := s.items.FindByID(ctx, b.ItemID())
	if err != nil {
		return nil, err
	}
	if !bookingDomain.CanApprove(actorID, it.OwnerID()) {
		return nil, domain.NewNotOwnerError()
	}

	if err := b.Decide(approve, s.now()); err != nil {
		return nil, err
	}

	b.IncrementVersion(s.now())
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	decision := events.BookingRejected
	outcome := "rejected"
	if approve {
		decision = events.BookingApproved
		outcome = "approved"
	}
	metrics.IncBookingDecision(outcome)
	s.logger.Info("booking decided",
		zap.String("booking_id", b.ID().String()),
		zap.String("decision", outcome),
	)

	evt := events.BookingDecidedEvent{
		BookingID:  b.ID(),
		ItemID:     b.ItemID(),
		BookerID:   b.BookerID(),
		OwnerID:    it.OwnerID(),
		Approved:   approve,
		OccurredAt: s.now(),
	}
	s.publisher.Publish(ctx, decision, b.ID().String(), evt)

	result := toBookingDTO(b)
	return &result, nil
}

// DeleteBooking removes a booking by id, whatever its state.
func (s *BookingService) DeleteBooking(ctx context.Context, bookingID uuid.UUID) error {
	if err := s.repo.DeleteByID(ctx, bookingID); err != nil {
		return err
	}

	s.logger.Info("booking deleted", zap.String("booking_id", bookingID.String()))

	evt := events.BookingDeletedEvent{BookingID: bookingID, OccurredAt: s.now()}
	s.publisher.Publish(ctx, events.BookingDeleted, bookingID.String(), evt)
	return nil
}

// --- Helpers ---

func toBookingDTO(b *bookingDomain.Booking) BookingDTO {
	return BookingDTO{
		ID:        b.ID(),
		Start:     b.Start(),
		End:       b.End(),
		ItemID:    b.ItemID(),
		BookerID:  b.BookerID(),
		Status:    b.Status().String(),
		Version:   b.Version(),
		CreatedAt: b.CreatedAt(),
		UpdatedAt: b.UpdatedAt(),
	}
}

func toBookingDTOs(bookings []*bookingDomain.Booking) []BookingDTO {
	dtos := make([]BookingDTO, len(bookings))
	for i, b := range bookings {
		dtos[i] = toBookingDTO(b)
	}
	return dtos
}
