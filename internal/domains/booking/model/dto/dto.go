package dto

import (
	"lendit/internal/domains/booking/model"
	"lendit/shared"
	"lendit/shared/constant"
	gDto "lendit/shared/dto"
	gModel "lendit/shared/model"
	"lendit/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ItemID string `json:"item_id" validate:"required,uuid"`
	Start  string `json:"start"   validate:"required"`
	End    string `json:"end"     validate:"required"`
}

func (c *CreateBookingRequest) ToModel(bookerID string) (model.Booking, error) {
	start, err := time.Parse(constant.DateFormat, c.Start)
	if err != nil {
		return model.Booking{}, err
	}

	end, err := time.Parse(constant.DateFormat, c.End)
	if err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		ID:        uuid.NewString(),
		StartTime: start,
		EndTime:   end,
		ItemID:    c.ItemID,
		BookerID:  bookerID,
		Status:    model.StatusWaiting,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  bookerID,
			ModifiedBy: bookerID,
		},
	}, nil
}

type BookingResponse struct {
	ID       string `json:"id"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Status   string `json:"status"`
	ItemID   string `json:"item_id"`
	ItemName string `json:"item_name"`
	BookerID string `json:"booker_id"`
	OwnerID  string `json:"owner_id"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.Start = timezone.Format(model.StartTime, constant.DateFormat)
	r.End = timezone.Format(model.EndTime, constant.DateFormat)
	r.Status = string(model.Status)
	r.ItemID = model.ItemID
	r.ItemName = model.ItemName
	r.BookerID = model.BookerID
	r.OwnerID = model.ItemOwnerID
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// BookingEvent is the payload published on every lifecycle transition.
type BookingEvent struct {
	BookingID  string `json:"booking_id"`
	ItemID     string `json:"item_id"`
	BookerID   string `json:"booker_id"`
	OwnerID    string `json:"owner_id"`
	Status     string `json:"status"`
	OccurredAt string `json:"occurred_at"`
}

func (e *BookingEvent) FromModel(model model.Booking) {
	e.BookingID = model.ID
	e.ItemID = model.ItemID
	e.BookerID = model.BookerID
	e.OwnerID = model.ItemOwnerID
	e.Status = string(model.Status)
	e.OccurredAt = timezone.Format(timezone.Now(), constant.DateFormat)
}
