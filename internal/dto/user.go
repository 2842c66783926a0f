package dto

import (
	"time"

	"github.com/SscSPs/user_account_service/internal/core/domain"
)

// RegisterRequest carries the registration payload. Validation bounds follow the
// account policy: short names rejected, password at least 8 characters, phone
// number 10 to 15 digits, both email fields well-formed.
type RegisterRequest struct {
	Name           string `json:"name" binding:"required,min=3"`
	Username       string `json:"username" binding:"required,min=3"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8"`
	DOB            string `json:"dob" binding:"required,datetime=2006-01-02"`
	Place          string `json:"place" binding:"required"`
	PhoneNumber    string `json:"phoneNumber" binding:"required,numeric,min=10,max=15"`
	SecondaryEmail string `json:"secondaryEmail" binding:"required,email"`
}

// LoginRequest carries the login payload. The identifier may be an email or a username.
type LoginRequest struct {
	EmailOrUsername string `json:"emailOrUsername" binding:"required"`
	Password        string `json:"password" binding:"required,min=8"`
}

// UserResponse is the full account view returned to its owner. The password
// hash never appears here.
type UserResponse struct {
	UserID         string    `json:"id"`
	Name           string    `json:"name"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	SecondaryEmail string    `json:"secondaryEmail"`
	DOB            string    `json:"dob"`
	Place          string    `json:"place"`
	PhoneNumber    string    `json:"phoneNumber"`
	IsVerified     bool      `json:"isVerified"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to its full response view.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:         user.UserID,
		Name:           user.Name,
		Username:       user.Username,
		Email:          user.Email,
		SecondaryEmail: user.SecondaryEmail,
		DOB:            user.DOB.Format("2006-01-02"),
		Place:          user.Place,
		PhoneNumber:    user.PhoneNumber,
		IsVerified:     user.IsVerified,
		CreatedAt:      user.CreatedAt,
	}
}

// PublicUserResponse is the reduced view served to other users.
type PublicUserResponse struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ToPublicUserResponse converts a domain.User to its public view.
func ToPublicUserResponse(user *domain.User) PublicUserResponse {
	return PublicUserResponse{
		UserID:   user.UserID,
		Username: user.Username,
		Email:    user.Email,
	}
}

// UsernameResponse is one entry of the username listing.
type UsernameResponse struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
}

// ToUsernameResponses converts the domain summaries to the listing view.
func ToUsernameResponses(summaries []domain.UserSummary) []UsernameResponse {
	out := make([]UsernameResponse, len(summaries))
	for i, s := range summaries {
		out[i] = UsernameResponse{UserID: s.UserID, Username: s.Username}
	}
	return out
}
