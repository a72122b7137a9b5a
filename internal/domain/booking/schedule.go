package booking

import "time"

// Last selects the booking an owner sees as the item's most recent
// reservation out of the item's approved bookings: any booking active at now
// wins over every finished one; among finished bookings the one with the
// latest end not after now wins. Among several active bookings the latest
// start wins, so the selection does not depend on input order.
//
// Returns nil when no booking has started yet.
func Last(bookings []*Booking, now time.Time) *Booking {
	var active, finished *Booking
	for _, b := range bookings {
		switch {
		case b.ActiveAt(now):
			if active == nil || b.Start().After(active.Start()) {
				active = b
			}
		case b.FinishedAt(now):
			if finished == nil || b.End().After(finished.End()) {
				finished = b
			}
		}
	}
	if active != nil {
		return active
	}
	return finished
}

// Next selects the approved booking with the nearest start strictly after
// now, or nil when nothing upcoming exists.
func Next(bookings []*Booking, now time.Time) *Booking {
	var next *Booking
	for _, b := range bookings {
		if !b.Start().After(now) {
			continue
		}
		if next == nil || b.Start().Before(next.Start()) {
			next = b
		}
	}
	return next
}
