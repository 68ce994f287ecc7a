package shipping

import "errors"

var (
	ErrTrackingNumberRequired = errors.New("tracking number is required")
	ErrLookupFailed           = errors.New("배송 정보를 조회할 수 없습니다.")
)
