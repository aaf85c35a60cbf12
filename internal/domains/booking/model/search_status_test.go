package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lendit/internal/domains/booking/model"
	"lendit/shared/dto"
	"lendit/shared/timezone"
)

func TestParseSearchStatus(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    model.SearchStatus
		wantErr bool
	}{
		{name: "empty defaults to ALL", raw: "", want: model.SearchAll},
		{name: "ALL", raw: "ALL", want: model.SearchAll},
		{name: "CURRENT", raw: "CURRENT", want: model.SearchCurrent},
		{name: "PAST", raw: "PAST", want: model.SearchPast},
		{name: "FUTURE", raw: "FUTURE", want: model.SearchFuture},
		{name: "WAITING", raw: "WAITING", want: model.SearchWaiting},
		{name: "REJECTED", raw: "REJECTED", want: model.SearchRejected},
		{name: "unknown token fails", raw: "SOMETIME", wantErr: true},
		{name: "lowercase is not accepted", raw: "current", wantErr: true},
		{name: "persisted-only status fails", raw: "APPROVED", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := model.ParseSearchStatus(tt.raw)

			if tt.wantErr {
				assert.EqualError(t, err, "Unknown state: UNSUPPORTED_STATUS")
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSearchStatus_Filter(t *testing.T) {
	now := timezone.Now()

	scope := dto.Filter{
		Field:    model.FieldBookerID,
		Value:    "booker-1",
		Operator: dto.FilterOperatorEq,
		Table:    model.TableName,
	}

	tests := []struct {
		name        string
		status      model.SearchStatus
		wantFilters int
	}{
		{name: "ALL keeps only the scope", status: model.SearchAll, wantFilters: 1},
		{name: "CURRENT brackets now on both sides", status: model.SearchCurrent, wantFilters: 3},
		{name: "PAST ends before now", status: model.SearchPast, wantFilters: 2},
		{name: "FUTURE starts after now", status: model.SearchFuture, wantFilters: 2},
		{name: "WAITING matches the stored status", status: model.SearchWaiting, wantFilters: 2},
		{name: "REJECTED matches the stored status", status: model.SearchRejected, wantFilters: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group := tt.status.Filter(scope, now)

			assert.Equal(t, dto.FilterGroupOperatorAnd, group.Operator)
			assert.Len(t, group.Filters, tt.wantFilters)
			assert.Equal(t, scope, group.Filters[0])
		})
	}
}

func TestSearchStatus_FilterCurrentArgs(t *testing.T) {
	now := timezone.Now()

	scope := dto.Filter{
		Field:    model.FieldBookerID,
		Value:    "booker-1",
		Operator: dto.FilterOperatorEq,
		Table:    model.TableName,
	}

	group := model.SearchCurrent.Filter(scope, now)
	where, args := group.GetWhereClause()

	assert.Contains(t, where, "bookings.start_time < :start_time")
	assert.Contains(t, where, "bookings.end_time > :end_after")
	assert.Equal(t, now, args["start_time"])
	assert.Equal(t, now, args["end_after"])
	assert.Equal(t, "booker-1", args["booker_id"])
}

func TestBooking_Expired(t *testing.T) {
	now := timezone.Now()

	tests := []struct {
		name string
		end  time.Time
		want bool
	}{
		{name: "future end is live", end: now.Add(time.Hour), want: false},
		{name: "end at now is still live", end: now, want: false},
		{name: "past end is expired", end: now.Add(-time.Second), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := model.Booking{EndTime: tt.end}

			assert.Equal(t, tt.want, booking.Expired(now))
		})
	}
}
