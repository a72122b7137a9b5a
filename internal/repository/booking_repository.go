package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/boyarintsev1/shareit/internal/domain"
	bookingDomain "github.com/boyarintsev1/shareit/internal/domain/booking"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingModel is the GORM model for the bookings table.
type BookingModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	StartDate time.Time `gorm:"not null;index"`
	EndDate   time.Time `gorm:"not null;index"`
	ItemID    uuid.UUID `gorm:"type:uuid;index;not null"`
	BookerID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Status    string    `gorm:"not null;size:20;index"`
	Version   int64     `gorm:"not null;default:1"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (BookingModel) TableName() string {
	return "bookings"
}

// GormBookingRepository is the GORM-based implementation of BookingRepository.
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository.
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// FindByID retrieves a booking by its unique identifier.
func (r *GormBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*bookingDomain.Booking, error) {
	var model BookingModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("booking", id.String())
		}
		return nil, fmt.Errorf("failed to find booking by ID: %w", err)
	}
	return toDomainBooking(&model)
}

// page runs a prepared, filtered query with count, ordering and the
// zero-based from/size pagination of the API (page index = from / size).
func (r *GormBookingRepository) page(query *gorm.DB, order string, from, size int) ([]*bookingDomain.Booking, int64, error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	offset := (from / size) * size
	var models []BookingModel
	if err := query.Session(&gorm.Session{}).
		Order(order).
		Offset(offset).
		Limit(size).
		Find(&models).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find bookings: %w", err)
	}

	bookings := make([]*bookingDomain.Booking, len(models))
	for i, m := range models {
		b, err := toDomainBooking(&m)
		if err != nil {
			return nil, 0, err
		}
		bookings[i] = b
	}
	return bookings, total, nil
}

func (r *GormBookingRepository) forBooker(ctx context.Context, bookerID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).Model(&BookingModel{}).Where("booker_id = ?", bookerID)
}

// forOwner joins through the items table so bucket queries can filter on the
// item's owner.
func (r *GormBookingRepository) forOwner(ctx context.Context, ownerID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).Model(&BookingModel{}).
		Joins("INNER JOIN items ON items.id = bookings.item_id").
		Where("items.owner_id = ?", ownerID)
}

// FindAllForBooker retrieves every booking made by the booker.
func (r *GormBookingRepository) FindAllForBooker(ctx context.Context, bookerID uuid.UUID, from, size int) ([]*bookingDomain.Booking, int64, error) {
	return r.page(r.forBooker(ctx, bookerID), "start_date DESC", from, size)
}

// FindCurrentForBooker retrieves the booker's bookings covering now.
func (r *GormBookingRepository) FindCurrentForBooker(ctx context.Context, bookerID uuid.UUID, now time.Time, from, size int) ([]*bookingDomain.Booking, int64, error) {
	q := r.forBooker(ctx, bookerID).Where("start_date <= ? AND end_date > ?", now, now)
	return r.page(q, "start_date ASC", from, size)
}

// FindPastForBooker retrieves the booker's bookings that have ended.
func (r *GormBookingRepository) FindPastForBooker(ctx context.Context, bookerID uuid.UUID, now time.Time, from, size int) ([]*bookingDomain.Booking, int64, error) {
	q := r.forBooker(ctx, bookerID).Where("end_date <= ?", now)
	return r.page(q, "start_date DESC", from, size)
}

// FindFutureForBooker retrieves the booker's bookings starting after now.
func (r *GormBookingRepository) FindFutureForBooker(ctx context.Context, bookerID uuid.UUID, now time.Time, from, size int) ([]*bookingDomain.Booking, int64, error) {
	q := r.forBooker(ctx, bookerID).Where("start_date > ?", now)
	return r.page(q, "start_date DESC", from, size)
}

// FindByStatusForBooker retrieves the booker's bookings with the given status.
func (r *GormBookingRepository) FindByStatusForBooker(ctx context.Context, bookerID uuid.UUID, status bookingDomain.Status, from, size int) ([]*bookingDomain.Booking, int64, error) {
	q := r.forBooker(ctx, bookerID).Where("status = ?", status.String())
	return r.page(q, "start_date DESC", from, size)
}

// FindAllForOwner retrieves every booking on items owned by the owner.
func (r *GormBookingRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, from, size int) ([]*bookingDomain.Booking, int64, error) {
	return r.page(r.forOwner(ctx, ownerID), "start_date DESC", from, size)
}

// FindCurrentForOwner retrieves the owner-scoped bookings covering now.
func (r *GormBookingRepository) FindCurrentForOwner(ctx context.Context, ownerID uuid.UUID, now time.Time, from, size int) ([]*bookingDomain.Booking, int64, error) {
	q := r.forOwner(ctx, ownerID).Where("start_date <= ? AND end_date > ?", now, now)
	return r.page(q, "start_date ASC", from, size)
}

// FindPastForOwner retrieves the owner-scoped bookings that have ended.
func (r *GormBookingRepository) FindPastForOwner(ctx context.Context, ownerID uuid.UUID, now time.Time, from, size int) ([]*bookingDomain.Booking, int64, error) {
	q := r.forOwner(ctx, ownerID).Where("end_date <= ?", now)
	return r.page(q, "start_date DESC", from, size)
}

// FindFutureForOwner retrieves the owner-scoped bookings starting after now.
func (r *GormBookingRepository) FindFutureForOwner(ctx context.Context, ownerID uuid.UUID, now time.Time, from, size int) ([]*bookingDomain.Booking, int64, error) {
	q := r.forOwner(ctx, ownerID).Where("start_date > ?", now)
	return r.page(q, "start_date DESC", from, size)
}

// FindByStatusForOwner retrieves the owner-scoped bookings with the given status.
func (r *GormBookingRepository) FindByStatusForOwner(ctx context.Context, ownerID uuid.UUID, status bookingDomain.Status, from, size int) ([]*bookingDomain.Booking, int64, error) {
	q := r.forOwner(ctx, ownerID).Where("status = ?", status.String())
	return r.page(q, "start_date DESC", from, size)
}

// FindApprovedForItem retrieves the item's full approved-booking history.
func (r *GormBookingRepository) FindApprovedForItem(ctx context.Context, itemID uuid.UUID) ([]*bookingDomain.Booking, error) {
	var models []BookingModel
	if err := r.db.WithContext(ctx).
		Where("item_id = ? AND status = ?", itemID, bookingDomain.StatusApproved.String()).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find approved bookings for item: %w", err)
	}
	return toDomainBookings(models)
}

// FindFinishedForItemAndBooker retrieves the booker's finished bookings of
// the item.
func (r *GormBookingRepository) FindFinishedForItemAndBooker(ctx context.Context, itemID, bookerID uuid.UUID, now time.Time) ([]*bookingDomain.Booking, error) {
	var models []BookingModel
	if err := r.db.WithContext(ctx).
		Where("item_id = ? AND booker_id = ? AND end_date <= ?", itemID, bookerID, now).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find finished bookings for item and booker: %w", err)
	}
	return toDomainBookings(models)
}

// Save persists a new booking.
func (r *GormBookingRepository) Save(ctx context.Context, b *bookingDomain.Booking) error {
	model := toBookingModel(b)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save booking: %w", err)
	}
	return nil
}

// Update persists changes to an existing booking with optimistic locking.
func (r *GormBookingRepository) Update(ctx context.Context, b *bookingDomain.Booking) error {
	model := toBookingModel(b)

	// Only update if the stored version matches the one the aggregate was
	// loaded with (IncrementVersion was called before saving).
	expectedVersion := b.Version() - 1
	result := r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Where("id = ? AND version = ?", model.ID, expectedVersion).
		Updates(map[string]interface{}{
			"start_date": model.StartDate,
			"end_date":   model.EndDate,
			"item_id":    model.ItemID,
			"status":     model.Status,
			"version":    model.Version,
			"updated_at": model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update booking: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewConflictError("booking was modified by another transaction")
	}
	return nil
}

// DeleteByID removes a booking unconditionally.
func (r *GormBookingRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&BookingModel{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	return nil
}

// --- Conversion helpers ---

func toBookingModel(b *bookingDomain.Booking) *BookingModel {
	return &BookingModel{
		ID:        b.ID(),
		StartDate: b.Start(),
		EndDate:   b.End(),
		ItemID:    b.ItemID(),
		BookerID:  b.BookerID(),
		Status:    b.Status().String(),
		Version:   b.Version(),
		CreatedAt: b.CreatedAt(),
		UpdatedAt: b.UpdatedAt(),
	}
}

func toDomainBooking(m *BookingModel) (*bookingDomain.Booking, error) {
	status, err := bookingDomain.ParseStatus(m.Status)
	if err != nil {
		return nil, err
	}
	return bookingDomain.ReconstructBooking(
		m.ID,
		m.StartDate,
		m.EndDate,
		m.ItemID,
		m.BookerID,
		status,
		m.Version,
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}

func toDomainBookings(models []BookingModel) ([]*bookingDomain.Booking, error) {
	bookings := make([]*bookingDomain.Booking, len(models))
	for i, m := range models {
		b, err := toDomainBooking(&m)
		if err != nil {
			return nil, err
		}
		bookings[i] = b
	}
	return bookings, nil
}
