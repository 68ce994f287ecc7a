package shipping

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"storefront-be/internal/logger"
)

type Tracker interface {
	Track(ctx context.Context, trackingNumber string) (*Info, error)
}

type mockCarrier struct{}

// NewMockCarrier answers every lookup with the same in-transit parcel.
// It stands in until a CJ Logistics API key is provisioned.
func NewMockCarrier() Tracker {
	return &mockCarrier{}
}

func (m *mockCarrier) Track(ctx context.Context, trackingNumber string) (*Info, error) {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return nil, ErrTrackingNumberRequired
	}

	logger.FromCtx(ctx).Debug("mock carrier lookup",
		zap.String("layer", "carrier"),
		zap.String("tracking_number", trackingNumber),
	)

	return NewInfo(trackingNumber, StatusInTransit, "2024-01-15", "서울 강남구", []Checkpoint{
		{Date: "2024-01-13", Time: "14:30", Location: "서울 강남구", Status: StatusPickup, Description: "상품이 인수되었습니다."},
		{Date: "2024-01-13", Time: "18:45", Location: "서울 강남구", Status: StatusInTransit, Description: "배송센터에서 출발했습니다."},
		{Date: "2024-01-14", Time: "09:15", Location: "서울 강남구", Status: StatusOutForDelivery, Description: "배송이 시작되었습니다."},
	}), nil
}
