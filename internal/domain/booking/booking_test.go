package booking

import (
	"testing"
	"time"

	"github.com/boyarintsev1/shareit/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking_StartsWaiting(t *testing.T) {
	start := time.Now().UTC().Add(24 * time.Hour)
	end := start.Add(48 * time.Hour)

	b, err := NewBooking(uuid.New(), uuid.New(), start, end)
	require.NoError(t, err)

	assert.Equal(t, StatusWaiting, b.Status())
	assert.Equal(t, int64(1), b.Version())
	assert.Equal(t, start, b.Start())
	assert.Equal(t, end, b.End())
}

func TestNewBooking_RejectsNonPositiveInterval(t *testing.T) {
	now := time.Now().UTC()

	// end == start
	_, err := NewBooking(uuid.New(), uuid.New(), now, now)
	require.Error(t, err)
	assert.Equal(t, domain.KindInvalidInterval, domain.KindOf(err))

	// end before start
	_, err = NewBooking(uuid.New(), uuid.New(), now, now.Add(-time.Hour))
	require.Error(t, err)
	assert.Equal(t, domain.KindInvalidInterval, domain.KindOf(err))
}

func TestNewBooking_RequiresBookerAndItem(t *testing.T) {
	start := time.Now().UTC()
	end := start.Add(time.Hour)

	_, err := NewBooking(uuid.Nil, uuid.New(), start, end)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	_, err = NewBooking(uuid.New(), uuid.Nil, start, end)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestDecide_ApproveAndReject(t *testing.T) {
	b := newWaitingBooking(t)
	require.NoError(t, b.Decide(true, time.Now().UTC()))
	assert.Equal(t, StatusApproved, b.Status())

	b = newWaitingBooking(t)
	require.NoError(t, b.Decide(false, time.Now().UTC()))
	assert.Equal(t, StatusRejected, b.Status())
}

func TestDecide_ApprovedIsTerminal(t *testing.T) {
	b := newWaitingBooking(t)
	require.NoError(t, b.Decide(true, time.Now().UTC()))

	// neither re-approval nor a flip to rejected is allowed
	err := b.Decide(true, time.Now().UTC())
	assert.Equal(t, domain.KindAlreadyApproved, domain.KindOf(err))

	err = b.Decide(false, time.Now().UTC())
	assert.Equal(t, domain.KindAlreadyApproved, domain.KindOf(err))
	assert.Equal(t, StatusApproved, b.Status())
}

func TestDecide_RejectedCanStillBeDecided(t *testing.T) {
	b := newWaitingBooking(t)
	require.NoError(t, b.Decide(false, time.Now().UTC()))

	require.NoError(t, b.Decide(true, time.Now().UTC()))
	assert.Equal(t, StatusApproved, b.Status())
}

func TestResubmit_ResetsToWaiting(t *testing.T) {
	now := time.Now().UTC()
	b := newWaitingBooking(t)
	require.NoError(t, b.Decide(true, time.Now().UTC()))

	newStart := now.Add(72 * time.Hour)
	newEnd := newStart.Add(24 * time.Hour)
	err := b.Resubmit(Patch{Start: &newStart, End: &newEnd}, now)
	require.NoError(t, err)

	assert.Equal(t, StatusWaiting, b.Status())
	assert.Equal(t, newStart, b.Start())
	assert.Equal(t, newEnd, b.End())
}

func TestResubmit_ResurrectsRejectedBooking(t *testing.T) {
	now := time.Now().UTC()
	b := newWaitingBooking(t)
	require.NoError(t, b.Decide(false, time.Now().UTC()))

	require.NoError(t, b.Resubmit(Patch{}, now))
	assert.Equal(t, StatusWaiting, b.Status())
}

func TestResubmit_EmptyPatchStillResets(t *testing.T) {
	now := time.Now().UTC()
	b := newWaitingBooking(t)
	start, end := b.Start(), b.End()

	require.NoError(t, b.Resubmit(Patch{}, now))
	assert.Equal(t, StatusWaiting, b.Status())
	assert.Equal(t, start, b.Start())
	assert.Equal(t, end, b.End())
}

func TestResubmit_ValidatesEffectiveInterval(t *testing.T) {
	now := time.Now().UTC()
	b := newWaitingBooking(t)

	// patching only the end below the stored start must fail
	badEnd := b.Start().Add(-time.Hour)
	err := b.Resubmit(Patch{End: &badEnd}, now)
	assert.Equal(t, domain.KindInvalidInterval, domain.KindOf(err))
	assert.Equal(t, StatusWaiting, b.Status())
}

func TestResubmit_RejectsPastDates(t *testing.T) {
	now := time.Now().UTC()
	b := newWaitingBooking(t)

	pastStart := now.Add(-48 * time.Hour)
	pastEnd := now.Add(-24 * time.Hour)
	err := b.Resubmit(Patch{Start: &pastStart, End: &pastEnd}, now)
	assert.Equal(t, domain.KindPastDate, domain.KindOf(err))
}

func TestResubmit_FailedPatchLeavesBookingUntouched(t *testing.T) {
	now := time.Now().UTC()
	b := newWaitingBooking(t)
	require.NoError(t, b.Decide(true, time.Now().UTC()))
	start, end := b.Start(), b.End()

	badEnd := start.Add(-time.Hour)
	require.Error(t, b.Resubmit(Patch{End: &badEnd}, now))

	assert.Equal(t, StatusApproved, b.Status())
	assert.Equal(t, start, b.Start())
	assert.Equal(t, end, b.End())
}

func TestResubmit_RetargetsItem(t *testing.T) {
	now := time.Now().UTC()
	b := newWaitingBooking(t)
	other := uuid.New()

	require.NoError(t, b.Resubmit(Patch{ItemID: &other}, now))
	assert.Equal(t, other, b.ItemID())
}

func TestActiveAt_BoundarySemantics(t *testing.T) {
	now := time.Now().UTC()
	b := ReconstructBooking(uuid.New(), now, now.Add(time.Hour), uuid.New(), uuid.New(),
		StatusApproved, 1, now, now)

	// inclusive lower bound
	assert.True(t, b.ActiveAt(now))
	// strict upper bound: ending exactly at now means finished
	assert.False(t, b.ActiveAt(now.Add(time.Hour)))
	assert.True(t, b.FinishedAt(now.Add(time.Hour)))
	assert.False(t, b.FinishedAt(now))
}

func TestIncrementVersion(t *testing.T) {
	b := newWaitingBooking(t)
	stamp := time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC)
	b.IncrementVersion(stamp)
	assert.Equal(t, int64(2), b.Version())
	assert.Equal(t, stamp, b.UpdatedAt())
}

func TestMutations_StampUpdatedAtWithGivenInstant(t *testing.T) {
	stamp := time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC)

	decided := newWaitingBooking(t)
	require.NoError(t, decided.Decide(true, stamp))
	assert.Equal(t, stamp, decided.UpdatedAt())

	resubmitted := newWaitingBooking(t)
	newStart := stamp.Add(48 * time.Hour)
	newEnd := stamp.Add(72 * time.Hour)
	require.NoError(t, resubmitted.Resubmit(Patch{Start: &newStart, End: &newEnd}, stamp))
	assert.Equal(t, stamp, resubmitted.UpdatedAt())
}

func newWaitingBooking(t *testing.T) *Booking {
	t.Helper()
	start := time.Now().UTC().Add(24 * time.Hour)
	b, err := NewBooking(uuid.New(), uuid.New(), start, start.Add(24*time.Hour))
	require.NoError(t, err)
	return b
}
