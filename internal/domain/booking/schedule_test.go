package booking

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func approvedBooking(start, end time.Time) *Booking {
	now := time.Now().UTC()
	return ReconstructBooking(uuid.New(), start, end, uuid.New(), uuid.New(),
		StatusApproved, 1, now, now)
}

func TestLast_EmptyHistory(t *testing.T) {
	now := time.Now().UTC()
	assert.Nil(t, Last(nil, now))
	assert.Nil(t, Last([]*Booking{}, now))
}

func TestLast_OnlyFutureBookings(t *testing.T) {
	now := time.Now().UTC()
	future := approvedBooking(now.Add(time.Hour), now.Add(2*time.Hour))

	assert.Nil(t, Last([]*Booking{future}, now))
}

func TestLast_PicksFinishedWithLatestEnd(t *testing.T) {
	now := time.Now().UTC()
	older := approvedBooking(now.Add(-72*time.Hour), now.Add(-48*time.Hour))
	newer := approvedBooking(now.Add(-24*time.Hour), now.Add(-time.Hour))

	got := Last([]*Booking{older, newer}, now)
	assert.Equal(t, newer.ID(), got.ID())

	// order independent
	got = Last([]*Booking{newer, older}, now)
	assert.Equal(t, newer.ID(), got.ID())
}

func TestLast_ActiveWinsOverFinished(t *testing.T) {
	now := time.Now().UTC()
	finished := approvedBooking(now.Add(-48*time.Hour), now.Add(-24*time.Hour))
	active := approvedBooking(now.Add(-time.Hour), now.Add(time.Hour))

	got := Last([]*Booking{finished, active}, now)
	assert.Equal(t, active.ID(), got.ID())
}

func TestLast_AmongActiveLatestStartWins(t *testing.T) {
	now := time.Now().UTC()
	earlier := approvedBooking(now.Add(-3*time.Hour), now.Add(time.Hour))
	later := approvedBooking(now.Add(-time.Hour), now.Add(2*time.Hour))

	got := Last([]*Booking{earlier, later}, now)
	assert.Equal(t, later.ID(), got.ID())

	got = Last([]*Booking{later, earlier}, now)
	assert.Equal(t, later.ID(), got.ID())
}

func TestLast_BookingEndingExactlyNowIsFinished(t *testing.T) {
	now := time.Now().UTC()
	boundary := approvedBooking(now.Add(-time.Hour), now)

	got := Last([]*Booking{boundary}, now)
	assert.Equal(t, boundary.ID(), got.ID())
	assert.True(t, boundary.FinishedAt(now))
}

func TestNext_EmptyAndNoUpcoming(t *testing.T) {
	now := time.Now().UTC()
	assert.Nil(t, Next(nil, now))

	past := approvedBooking(now.Add(-2*time.Hour), now.Add(-time.Hour))
	active := approvedBooking(now.Add(-time.Hour), now.Add(time.Hour))
	assert.Nil(t, Next([]*Booking{past, active}, now))
}

func TestNext_PicksNearestFutureStart(t *testing.T) {
	now := time.Now().UTC()
	sooner := approvedBooking(now.Add(time.Hour), now.Add(2*time.Hour))
	later := approvedBooking(now.Add(24*time.Hour), now.Add(48*time.Hour))

	got := Next([]*Booking{later, sooner}, now)
	assert.Equal(t, sooner.ID(), got.ID())
}

func TestNext_StartExactlyNowIsNotUpcoming(t *testing.T) {
	now := time.Now().UTC()
	boundary := approvedBooking(now, now.Add(time.Hour))

	// a booking starting exactly at now is already active, not next
	assert.Nil(t, Next([]*Booking{boundary}, now))
}

func TestLastAndNext_NeverTheSameBooking(t *testing.T) {
	now := time.Now().UTC()
	past := approvedBooking(now.Add(-48*time.Hour), now.Add(-24*time.Hour))
	active := approvedBooking(now.Add(-time.Hour), now.Add(time.Hour))
	future := approvedBooking(now.Add(24*time.Hour), now.Add(48*time.Hour))
	history := []*Booking{past, active, future}

	last := Last(history, now)
	next := Next(history, now)
	assert.Equal(t, active.ID(), last.ID())
	assert.Equal(t, future.ID(), next.ID())
	assert.NotEqual(t, last.ID(), next.ID())
}
