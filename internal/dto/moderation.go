package dto

// AdminActionRequest is the body shared by delete-user and unban-user.
type AdminActionRequest struct {
	AdminSecret string `json:"adminSecret" binding:"required"`
}

// BanUserRequest is the body for ban-user; a reason is required.
type BanUserRequest struct {
	AdminSecret string `json:"adminSecret" binding:"required"`
	Reason      string `json:"reason" binding:"required"`
}

// EmailVerificationRequest is the body for verify-email.
type EmailVerificationRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// MessageResponse is the generic success message envelope.
type MessageResponse struct {
	Message string `json:"message"`
}
