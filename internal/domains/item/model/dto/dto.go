package dto

import (
	"lendit/internal/domains/item/model"
	"lendit/shared"
	gDto "lendit/shared/dto"
	gModel "lendit/shared/model"
	"lendit/shared/timezone"

	"github.com/google/uuid"
)

type CreateItemRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"required"`
	Available   *bool  `json:"available"   validate:"required"`
	RequestID   string `json:"request_id"  validate:"omitempty,uuid"`
}

func (c *CreateItemRequest) ToModel(ownerID string) model.Item {
	status := model.StatusUnavailable
	if *c.Available {
		status = model.StatusAvailable
	}

	var requestID *string
	if c.RequestID != "" {
		requestID = &c.RequestID
	}

	return model.Item{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		Status:      status,
		OwnerID:     ownerID,
		RequestID:   requestID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  ownerID,
			ModifiedBy: ownerID,
		},
	}
}

type UpdateItemRequest struct {
	Name        string `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Description string `db:"description" json:"description" validate:"omitempty"`
	Available   *bool  `json:"available"  validate:"omitempty"`
}

type CreateCommentRequest struct {
	Text string `json:"text" validate:"required"`
}

func (c *CreateCommentRequest) ToModel(itemID, authorID, authorName string) model.Comment {
	return model.Comment{
		ID:         uuid.NewString(),
		Text:       c.Text,
		ItemID:     itemID,
		AuthorID:   authorID,
		AuthorName: authorName,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  authorID,
			ModifiedBy: authorID,
		},
	}
}

type CommentResponse struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	AuthorName string `json:"author_name"`
	gDto.Metadata
}

func (r *CommentResponse) FromModel(model model.Comment) {
	r.ID = model.ID
	r.Text = model.Text
	r.AuthorName = model.AuthorName
	r.Metadata.FromModel(model.Metadata)
}

type ItemResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Available   bool              `json:"available"`
	OwnerID     string            `json:"owner_id"`
	RequestID   *string           `json:"request_id,omitempty"`
	Comments    []CommentResponse `json:"comments,omitempty"`
	gDto.Metadata
}

func (r *ItemResponse) FromModel(model model.Item) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Available = model.Available()
	r.OwnerID = model.OwnerID
	r.RequestID = model.RequestID
	r.Metadata.FromModel(model.Metadata)
}

func (r *ItemResponse) AttachComments(models []model.Comment) {
	r.Comments = make([]CommentResponse, len(models))
	for i, mod := range models {
		r.Comments[i].FromModel(mod)
	}
}

type GetItemsResponse struct {
	Items     []ItemResponse `json:"items"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetItemsResponse) FromModels(models []model.Item, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Items = make([]ItemResponse, len(models))
	for i, mod := range models {
		r.Items[i].FromModel(mod)
	}
}
