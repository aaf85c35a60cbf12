package model

import (
	"lendit/shared/model"
)

const (
	TableName  = "item_requests"
	EntityName = "item_request"

	FieldID          = "id"
	FieldDescription = "description"
	FieldRequesterID = "requester_id"
)

// ItemRequest is a wish for an item that no one offers yet. Owners answer it
// by creating an item that references the request.
type ItemRequest struct {
	ID          string `db:"id"`
	Description string `db:"description"`
	RequesterID string `db:"requester_id"`
	model.Metadata
}
