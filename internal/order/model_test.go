package order

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, StatusPending.CanTransitionTo(StatusProcessing))
	assert.True(t, StatusPending.CanTransitionTo(StatusFailed))
	assert.False(t, StatusPending.CanTransitionTo(StatusCompleted))
	assert.True(t, StatusProcessing.CanTransitionTo(StatusCompleted))
	assert.True(t, StatusProcessing.CanTransitionTo(StatusFailed))
	assert.True(t, StatusProcessing.CanTransitionTo(StatusPending))
	assert.False(t, StatusProcessing.CanTransitionTo(StatusProcessing))
	assert.True(t, StatusCompleted.CanTransitionTo(StatusCompleted))
	assert.False(t, StatusCompleted.CanTransitionTo(StatusFailed))
	assert.False(t, StatusFailed.CanTransitionTo(StatusCompleted))
	assert.False(t, StatusFailed.CanTransitionTo(StatusPending))
}

func TestOrder_CanSetTracking(t *testing.T) {
	tracking := "CJ12345678ABCDEF"

	assert.True(t, (&Order{Status: StatusCompleted}).CanSetTracking())
	assert.False(t, (&Order{Status: StatusCompleted, TrackingNumber: &tracking}).CanSetTracking())
	assert.False(t, (&Order{Status: StatusPending}).CanSetTracking())
	assert.False(t, (&Order{Status: StatusFailed}).CanSetTracking())
}

func TestGenerateOrderID(t *testing.T) {
	now := time.UnixMilli(1705123456789)
	id := GenerateOrderID(now)

	assert.Regexp(t, regexp.MustCompile(`^ORDER_1705123456789_[0-9a-z]{9}$`), id)
	assert.NotEqual(t, id, GenerateOrderID(now))
}

func TestRequestValidation(t *testing.T) {
	t.Run("PaymentComplete", func(t *testing.T) {
		valid := PaymentCompleteRequest{OrderID: "ORDER_1", Phone: "010-1234-5678", Amount: 1000}
		assert.NoError(t, valid.Validate())

		for _, r := range []PaymentCompleteRequest{
			{Phone: "010-1234-5678", Amount: 1000},
			{OrderID: "ORDER_1", Amount: 1000},
			{OrderID: "ORDER_1", Phone: "010-1234-5678"},
		} {
			assert.ErrorIs(t, r.Validate(), ErrMissingFields)
		}

		negative := PaymentCompleteRequest{OrderID: "ORDER_1", Phone: "010-1234-5678", Amount: -1000}
		assert.ErrorIs(t, negative.Validate(), ErrInvalidAmount)
	})

	t.Run("Tracking", func(t *testing.T) {
		valid := TrackingRequest{OrderID: "ORDER_1", TrackingNumber: "CJ1", Phone: "010-1234-5678"}
		assert.NoError(t, valid.Validate())

		for _, r := range []TrackingRequest{
			{TrackingNumber: "CJ1", Phone: "010"},
			{OrderID: "ORDER_1", Phone: "010"},
			{OrderID: "ORDER_1", TrackingNumber: "CJ1"},
		} {
			assert.ErrorIs(t, r.Validate(), ErrMissingFields)
		}
	})
}
