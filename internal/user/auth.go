package user

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"storefront-be/internal/utils"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

var randomInt = utils.RandomInt

// GenerateConsumerID returns "C" followed by a zero-padded 6 digit number.
// Uniqueness is not checked.
func GenerateConsumerID() (string, error) {
	n, err := randomInt(1000000)
	if err != nil {
		return "", fmt.Errorf("generate consumer id: %w", err)
	}
	return fmt.Sprintf("C%06d", n), nil
}
