package model

import (
	"lendit/shared/model"
)

const (
	TableName  = "items"
	EntityName = "item"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldStatus      = "status"
	FieldOwnerID     = "owner_id"
	FieldRequestID   = "request_id"
)

const (
	StatusAvailable   = "AVAILABLE"
	StatusUnavailable = "UNAVAILABLE"
)

type Item struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	Status      string  `db:"status"`
	OwnerID     string  `db:"owner_id"`
	RequestID   *string `db:"request_id"`
	model.Metadata
}

// Available reports whether the item currently accepts bookings.
func (i Item) Available() bool {
	return i.Status == StatusAvailable
}
