// Package guard holds the authorization rules shared by the booking
// lifecycle and the booking queries, so both enforce the same view of who
// may see or move a booking.
package guard

import (
	"lendit/internal/domains/booking/model"
	"lendit/shared/failure"
	"time"
)

// CanView allows only the two parties of a booking to read it.
func CanView(actorID string, booking model.Booking) error {
	if actorID == booking.BookerID || actorID == booking.ItemOwnerID {
		return nil
	}

	return failure.Forbidden("only the booker or the item owner may view this booking") // nolint:wrapcheck
}

// CanDecide allows the item owner to settle a pending booking. The status
// checks are ordered so a canceled booking reports its own reason rather
// than the generic settled one.
func CanDecide(actorID string, booking model.Booking) error {
	if actorID != booking.ItemOwnerID {
		return failure.Forbidden("only the owner may decide") // nolint:wrapcheck
	}

	if booking.Status == model.StatusCanceled {
		return failure.BadRequestFromString("booking was canceled") // nolint:wrapcheck
	}

	if booking.Status != model.StatusWaiting {
		return failure.BadRequestFromString("decision already made") // nolint:wrapcheck
	}

	return nil
}

// CanCancel allows the booker to withdraw a booking whose window has not
// elapsed yet.
func CanCancel(actorID string, booking model.Booking, now time.Time) error {
	if actorID != booking.BookerID {
		return failure.Forbidden("only the booker may cancel") // nolint:wrapcheck
	}

	if booking.Expired(now) {
		return failure.BadRequestFromString("booking window expired") // nolint:wrapcheck
	}

	return nil
}
