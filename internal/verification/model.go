package verification

import (
	"regexp"
	"strconv"
	"time"

	"storefront-be/internal/utils"
)

const (
	CodeTTL        = 5 * time.Minute
	ResendCooldown = 180 * time.Second
	CodeLength     = 6
)

var phonePattern = regexp.MustCompile(`^01[0-9]-?[0-9]{3,4}-?[0-9]{4}$`)

type Verification struct {
	ID        string    `json:"id"`
	Phone     string    `json:"phone"`
	Code      string    `json:"-"`
	Verified  bool      `json:"verified"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// NormalizePhone reduces phone to its digits so 010-1234-5678 and
// 01012345678 compare equal.
func NormalizePhone(phone string) string {
	return utils.DigitsOnly(phone)
}

// ValidatePhone reports whether phone is a Korean mobile number,
// e.g. 010-1234-5678 or 01012345678.
func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(utils.StripSpaces(phone))
}

// GenerateCode returns a uniformly random code in [100000, 999999].
func GenerateCode() (string, error) {
	n, err := utils.RandomInt(900000)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(100000+n, 10), nil
}
