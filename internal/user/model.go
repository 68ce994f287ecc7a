package user

import "time"

type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Phone         string    `json:"phone"`
	PhoneVerified bool      `json:"phone_verified"`
	ConsumerID    *string   `json:"consumer_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// FullName joins last and first name the way Korean receipts print them.
func (u *User) FullName() string {
	switch {
	case u.LastName == "":
		return u.FirstName
	case u.FirstName == "":
		return u.LastName
	}
	return u.LastName + u.FirstName
}

type RegisterInput struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	FirstName  string `json:"first_name" validate:"required"`
	LastName   string `json:"last_name" validate:"required"`
	Phone      string `json:"phone" validate:"required,krmobile"`
	ConsumerID string `json:"consumer_id" validate:"omitempty,max=20"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateInput is a partial update; nil fields are left unchanged.
type UpdateInput struct {
	Phone      *string `json:"phone" validate:"omitempty,krmobile"`
	ConsumerID *string `json:"consumer_id" validate:"omitempty,max=20"`
}

// BackfillResult reports one user processed by BackfillConsumerIDs.
type BackfillResult struct {
	ID         string `json:"id"`
	Success    bool   `json:"success"`
	ConsumerID string `json:"consumer_id,omitempty"`
	Error      string `json:"error,omitempty"`
}
