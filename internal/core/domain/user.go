package domain

import "time"

// User represents a registered account in the domain.
// PasswordHash is never serialized; response shaping happens in the dto package.
type User struct {
	UserID         string    `json:"userID"`
	Name           string    `json:"name"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	SecondaryEmail string    `json:"secondaryEmail"`
	PasswordHash   string    `json:"-"`
	DOB            time.Time `json:"dob"`
	Place          string    `json:"place"`
	PhoneNumber    string    `json:"phoneNumber"`
	IsVerified     bool      `json:"isVerified"`
	CreatedAt      time.Time `json:"createdAt"`
}

// UserSummary is the id/username projection used by username listings.
type UserSummary struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
}
