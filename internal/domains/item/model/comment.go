package model

import (
	"lendit/shared/model"
)

const (
	CommentTableName  = "comments"
	CommentEntityName = "comment"

	CommentFieldID       = "id"
	CommentFieldText     = "text"
	CommentFieldItemID   = "item_id"
	CommentFieldAuthorID = "author_id"
)

// Comment is feedback left on an item by a user who completed a booking of
// it. The author name is read through the users join.
type Comment struct {
	ID         string `db:"id"`
	Text       string `db:"text"`
	ItemID     string `db:"item_id"`
	AuthorID   string `db:"author_id"`
	AuthorName string `db:"author_name" table:"users" column:"name"`
	model.Metadata
}

func (Comment) GetJoinQuery() string {
	return "JOIN users ON users.id = comments.author_id"
}
