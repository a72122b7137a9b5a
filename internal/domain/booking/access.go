package booking

import "github.com/google/uuid"

// Access predicates used by the transport layer to gate booking endpoints.
// The booking itself only references its item, so the item's owner is passed
// alongside. All three are pure.

// CanView reports whether the user may read the booking: bookers and the
// booked item's owner may, nobody else.
func CanView(userID uuid.UUID, b *Booking, ownerID uuid.UUID) bool {
	return b.BookerID() == userID || ownerID == userID
}

// CanModify reports whether the user may edit the booking (booker only).
func CanModify(userID uuid.UUID, b *Booking) bool {
	return b.BookerID() == userID
}

// CanApprove reports whether the user may decide the booking (item owner only).
func CanApprove(userID, ownerID uuid.UUID) bool {
	return ownerID == userID
}
