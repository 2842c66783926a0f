package models

import "time"

// User mirrors the users table.
type User struct {
	UserID         string    `db:"user_id"`
	Name           string    `db:"name"`
	Username       string    `db:"username"`
	Email          string    `db:"email"`
	SecondaryEmail string    `db:"secondary_email"`
	PasswordHash   string    `db:"password_hash"`
	DOB            time.Time `db:"dob"`
	Place          string    `db:"place"`
	PhoneNumber    string    `db:"phone_number"`
	IsVerified     bool      `db:"is_verified"`
	CreatedAt      time.Time `db:"created_at"`
}
