package application

import (
	"context"
	"time"

	bookingDomain "github.com/boyarintsev1/shareit/internal/domain/booking"
	itemDomain "github.com/boyarintsev1/shareit/internal/domain/item"
	requestDomain "github.com/boyarintsev1/shareit/internal/domain/request"
	userDomain "github.com/boyarintsev1/shareit/internal/domain/user"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*bookingDomain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookingDomain.Booking), args.Error(1)
}
func (m *mockBookingRepo) FindAllForBooker(ctx context.Context, bookerID uuid.UUID, from, size int) ([]*bookingDomain.Booking, int64, error) {
	args := m.Called(ctx, bookerID, from, size)
	return bookingsResult(args)
}
func (m *mockBookingRepo) FindCurrentForBooker(ctx context.Context, bookerID uuid.UUID, now time.Time, from, size int) ([]*bookingDomain.Booking, int64, error) {
	args := m.Called(ctx, bookerID, now, from, size)
	return bookingsResult(args)
}
func (m *mockBookingRepo) FindPastForBooker(ctx context.Context, bookerID uuid.UUID, now time.Time, from, size int) ([]*bookingDomain.Booking, int64, error) {
	args := m.Called(ctx, bookerID, now, from, size)
	return bookingsResult(args)
}
func (m *mockBookingRepo) FindFutureForBooker(ctx context.Context, bookerID uuid.UUID, now time.Time, from, size int) ([]*bookingDomain.Booking, int64, error) {
	args := m.Called(ctx, bookerID, now, from, size)
	return bookingsResult(args)
}
func (m *mockBookingRepo) FindByStatusForBooker(ctx context.Context, bookerID uuid.UUID, status bookingDomain.Status, from, size int) ([]*bookingDomain.Booking, int64, error) {
	args := m.Called(ctx, bookerID, status, from, size)
	return bookingsResult(args)
}
func (m *mockBookingRepo) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, from, size int) ([]*bookingDomain.Booking, int64, error) {
	args := m.Called(ctx, ownerID, from, size)
	return bookingsResult(args)
}
func (m *mockBookingRepo) FindCurrentForOwner(ctx context.Context, ownerID uuid.UUID, now time.Time, from, size int) ([]*bookingDomain.Booking, int64, error) {
	args := m.Called(ctx, ownerID, now, from, size)
	return bookingsResult(args)
}
func (m *mockBookingRepo) FindPastForOwner(ctx context.Context, ownerID uuid.UUID, now time.Time, from, size int) ([]*bookingDomain.Booking, int64, error) {
	args := m.Called(ctx, ownerID, now, from, size)
	return bookingsResult(args)
}
func (m *mockBookingRepo) FindFutureForOwner(ctx context.Context, ownerID uuid.UUID, now time.Time, from, size int) ([]*bookingDomain.Booking, int64, error) {
	args := m.Called(ctx, ownerID, now, from, size)
	return bookingsResult(args)
}
func (m *mockBookingRepo) FindByStatusForOwner(ctx context.Context, ownerID uuid.UUID, status bookingDomain.Status, from, size int) ([]*bookingDomain.Booking, int64, error) {
	args := m.Called(ctx, ownerID, status, from, size)
	return bookingsResult(args)
}
func (m *mockBookingRepo) FindApprovedForItem(ctx context.Context, itemID uuid.UUID) ([]*bookingDomain.Booking, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bookingDomain.Booking), args.Error(1)
}
func (m *mockBookingRepo) FindFinishedForItemAndBooker(ctx context.Context, itemID, bookerID uuid.UUID, now time.Time) ([]*bookingDomain.Booking, error) {
	args := m.Called(ctx, itemID, bookerID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bookingDomain.Booking), args.Error(1)
}
func (m *mockBookingRepo) Save(ctx context.Context, b *bookingDomain.Booking) error {
	return m.Called(ctx, b).Error(0)
}
func (m *mockBookingRepo) Update(ctx context.Context, b *bookingDomain.Booking) error {
	return m.Called(ctx, b).Error(0)
}
func (m *mockBookingRepo) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func bookingsResult(args mock.Arguments) ([]*bookingDomain.Booking, int64, error) {
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*bookingDomain.Booking), args.Get(1).(int64), args.Error(2)
}

type mockItemRepo struct {
	mock.Mock
}

func (m *mockItemRepo) FindByID(ctx context.Context, id uuid.UUID) (*itemDomain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*itemDomain.Item), args.Error(1)
}
func (m *mockItemRepo) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*itemDomain.Item, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*itemDomain.Item), args.Error(1)
}
func (m *mockItemRepo) SearchAvailable(ctx context.Context, text string) ([]*itemDomain.Item, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*itemDomain.Item), args.Error(1)
}
func (m *mockItemRepo) FindByRequestID(ctx context.Context, requestID uuid.UUID) ([]*itemDomain.Item, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*itemDomain.Item), args.Error(1)
}
func (m *mockItemRepo) Save(ctx context.Context, it *itemDomain.Item) error {
	return m.Called(ctx, it).Error(0)
}
func (m *mockItemRepo) Update(ctx context.Context, it *itemDomain.Item) error {
	return m.Called(ctx, it).Error(0)
}
func (m *mockItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
func (m *mockItemRepo) SaveComment(ctx context.Context, c *itemDomain.Comment) error {
	return m.Called(ctx, c).Error(0)
}
func (m *mockItemRepo) FindCommentsByItemID(ctx context.Context, itemID uuid.UUID) ([]*itemDomain.Comment, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*itemDomain.Comment), args.Error(1)
}

type mockRequestRepo struct {
	mock.Mock
}

func (m *mockRequestRepo) FindByID(ctx context.Context, id uuid.UUID) (*requestDomain.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*requestDomain.Request), args.Error(1)
}
func (m *mockRequestRepo) FindByRequestorID(ctx context.Context, requestorID uuid.UUID) ([]*requestDomain.Request, error) {
	args := m.Called(ctx, requestorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*requestDomain.Request), args.Error(1)
}
func (m *mockRequestRepo) FindAllForOthers(ctx context.Context, requestorID uuid.UUID, from, size int) ([]*requestDomain.Request, int64, error) {
	args := m.Called(ctx, requestorID, from, size)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*requestDomain.Request), args.Get(1).(int64), args.Error(2)
}
func (m *mockRequestRepo) Save(ctx context.Context, r *requestDomain.Request) error {
	return m.Called(ctx, r).Error(0)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*userDomain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}
func (m *mockUserRepo) FindAll(ctx context.Context) ([]*userDomain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*userDomain.User), args.Error(1)
}
func (m *mockUserRepo) Save(ctx context.Context, u *userDomain.User) error {
	return m.Called(ctx, u).Error(0)
}
func (m *mockUserRepo) Update(ctx context.Context, u *userDomain.User) error {
	return m.Called(ctx, u).Error(0)
}
func (m *mockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, eventType, key string, data interface{}) {
	m.Called(ctx, eventType, key, data)
}
