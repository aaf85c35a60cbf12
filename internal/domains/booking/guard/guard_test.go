package guard_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lendit/internal/domains/booking/guard"
	"lendit/internal/domains/booking/model"
	"lendit/shared/failure"
	"lendit/shared/timezone"
)

func pendingBooking(now time.Time) model.Booking {
	return model.Booking{
		ID:          "booking-1",
		StartTime:   now.Add(time.Hour),
		EndTime:     now.Add(2 * time.Hour),
		ItemID:      "item-1",
		BookerID:    "booker-1",
		Status:      model.StatusWaiting,
		ItemOwnerID: "owner-1",
	}
}

func TestCanView(t *testing.T) {
	booking := pendingBooking(timezone.Now())

	tests := []struct {
		name    string
		actorID string
		wantErr bool
	}{
		{name: "booker may view", actorID: "booker-1"},
		{name: "owner may view", actorID: "owner-1"},
		{name: "stranger may not view", actorID: "stranger", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := guard.CanView(tt.actorID, booking)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCanDecide(t *testing.T) {
	now := timezone.Now()

	tests := []struct {
		name     string
		actorID  string
		status   model.Status
		wantErr  string
		wantCode int
	}{
		{
			name:    "owner decides pending booking",
			actorID: "owner-1",
			status:  model.StatusWaiting,
		},
		{
			name:     "booker may not decide",
			actorID:  "booker-1",
			status:   model.StatusWaiting,
			wantErr:  "only the owner may decide",
			wantCode: http.StatusForbidden,
		},
		{
			name:     "stranger may not decide",
			actorID:  "stranger",
			status:   model.StatusWaiting,
			wantErr:  "only the owner may decide",
			wantCode: http.StatusForbidden,
		},
		{
			name:     "canceled booking reports its own reason",
			actorID:  "owner-1",
			status:   model.StatusCanceled,
			wantErr:  "booking was canceled",
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "approved booking is settled",
			actorID:  "owner-1",
			status:   model.StatusApproved,
			wantErr:  "decision already made",
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "rejected booking is settled",
			actorID:  "owner-1",
			status:   model.StatusRejected,
			wantErr:  "decision already made",
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "identity outranks status for a stranger",
			actorID:  "stranger",
			status:   model.StatusCanceled,
			wantErr:  "only the owner may decide",
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := pendingBooking(now)
			booking.Status = tt.status

			err := guard.CanDecide(tt.actorID, booking)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCanCancel(t *testing.T) {
	now := timezone.Now()

	t.Run("booker cancels before the window ends", func(t *testing.T) {
		assert.NoError(t, guard.CanCancel("booker-1", pendingBooking(now), now))
	})

	t.Run("only the booker may cancel", func(t *testing.T) {
		err := guard.CanCancel("owner-1", pendingBooking(now), now)

		assert.EqualError(t, err, "only the booker may cancel")
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("elapsed window can no longer be canceled", func(t *testing.T) {
		booking := pendingBooking(now)
		booking.StartTime = now.Add(-2 * time.Hour)
		booking.EndTime = now.Add(-time.Hour)

		err := guard.CanCancel("booker-1", booking, now)

		assert.EqualError(t, err, "booking window expired")
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}
