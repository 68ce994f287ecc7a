package sms

import (
	"fmt"
	"strings"

	"storefront-be/internal/utils"
)

const (
	brandPrefix         = "[CODEMORPH]"
	DefaultCustomerName = "고객"
)

func customerName(name string) string {
	if strings.TrimSpace(name) == "" {
		return DefaultCustomerName
	}
	return name
}

func VerificationMessage(code string) string {
	return fmt.Sprintf("%s 인증번호: %s (5분간 유효)", brandPrefix, code)
}

func PaymentCompleteMessage(orderID string, amount int64, name string) string {
	return fmt.Sprintf("%s %s님, 결제가 완료되었습니다.\n주문번호: %s\n결제금액: %s원\n\n배송 시작 시 별도로 안내드립니다.",
		brandPrefix, customerName(name), orderID, utils.FormatThousands(amount))
}

func TrackingMessage(orderID, trackingNumber, name string) string {
	return fmt.Sprintf("%s %s님, 상품이 배송되었습니다.\n주문번호: %s\n송장번호: %s\n\nCJ대한통운에서 배송 조회 가능합니다.",
		brandPrefix, customerName(name), orderID, trackingNumber)
}
