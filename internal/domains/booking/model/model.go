package model

import (
	"lendit/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID        = "id"
	FieldStartTime = "start_time"
	FieldEndTime   = "end_time"
	FieldItemID    = "item_id"
	FieldBookerID  = "booker_id"
	FieldStatus    = "status"

	// Columns contributed by the items join.
	FieldItemName    = "name"
	FieldItemOwnerID = "owner_id"
)

// Status is the persisted lifecycle state of a booking.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	StatusCanceled Status = "CANCELED"
)

// Booking is one reservation request for an item. The item columns are read
// through the items join; only the bookings columns are written.
type Booking struct {
	ID          string    `db:"id"`
	StartTime   time.Time `db:"start_time"`
	EndTime     time.Time `db:"end_time"`
	ItemID      string    `db:"item_id"`
	BookerID    string    `db:"booker_id"`
	Status      Status    `db:"status"`
	ItemName    string    `db:"item_name"     table:"items" column:"name"`
	ItemOwnerID string    `db:"item_owner_id" table:"items" column:"owner_id"`
	model.Metadata
}

// GetJoinQuery wires the item columns into every booking read. The owner id
// is needed by the authorization rules and the owner-scoped listings.
func (Booking) GetJoinQuery() string {
	return "JOIN items ON items.id = bookings.item_id"
}

// Expired reports whether the booking window has fully elapsed.
func (b Booking) Expired(now time.Time) bool {
	return b.EndTime.Before(now)
}
