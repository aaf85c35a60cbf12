package dto

import (
	itemModel "lendit/internal/domains/item/model"
	"lendit/internal/domains/request/model"
	"lendit/shared"
	gDto "lendit/shared/dto"
	gModel "lendit/shared/model"
	"lendit/shared/timezone"

	"github.com/google/uuid"
)

type CreateItemRequest struct {
	Description string `json:"description" validate:"required"`
}

func (c *CreateItemRequest) ToModel(requesterID string) model.ItemRequest {
	return model.ItemRequest{
		ID:          uuid.NewString(),
		Description: c.Description,
		RequesterID: requesterID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  requesterID,
			ModifiedBy: requesterID,
		},
	}
}

// RequestedItemResponse is the short item view attached to a request,
// enough for the requester to find the offer.
type RequestedItemResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     string `json:"owner_id"`
}

func (r *RequestedItemResponse) FromModel(model itemModel.Item) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Available = model.Available()
	r.OwnerID = model.OwnerID
}

type ItemRequestResponse struct {
	ID          string                  `json:"id"`
	Description string                  `json:"description"`
	RequesterID string                  `json:"requester_id"`
	Items       []RequestedItemResponse `json:"items"`
	gDto.Metadata
}

func (r *ItemRequestResponse) FromModel(model model.ItemRequest) {
	r.ID = model.ID
	r.Description = model.Description
	r.RequesterID = model.RequesterID
	r.Items = []RequestedItemResponse{}
	r.Metadata.FromModel(model.Metadata)
}

func (r *ItemRequestResponse) AttachItems(models []itemModel.Item) {
	r.Items = make([]RequestedItemResponse, len(models))
	for i, mod := range models {
		r.Items[i].FromModel(mod)
	}
}

type GetItemRequestsResponse struct {
	Requests  []ItemRequestResponse `json:"requests"`
	TotalPage int                   `json:"total_page"`
	TotalData int                   `json:"total_data"`
}

func (r *GetItemRequestsResponse) FromModels(models []model.ItemRequest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Requests = make([]ItemRequestResponse, len(models))
	for i, mod := range models {
		r.Requests[i].FromModel(mod)
	}
}

// AttachItems distributes the responding items onto their requests.
func (r *GetItemRequestsResponse) AttachItems(models []itemModel.Item) {
	byRequest := map[string][]itemModel.Item{}

	for _, mod := range models {
		if mod.RequestID == nil {
			continue
		}

		byRequest[*mod.RequestID] = append(byRequest[*mod.RequestID], mod)
	}

	for i := range r.Requests {
		r.Requests[i].AttachItems(byRequest[r.Requests[i].ID])
	}
}
