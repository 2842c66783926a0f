package domain

import "time"

// UserAction is the kind of auth event recorded in the audit trail.
type UserAction string

const (
	ActionRegister UserAction = "REGISTER"
	ActionLogin    UserAction = "LOGIN"
	ActionLogout   UserAction = "LOGOUT"
)

// UserActionLog is an append-only audit record written in the same transaction
// as the state change it describes.
type UserActionLog struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userID"`
	Action    UserAction `json:"action"`
	CreatedAt time.Time  `json:"createdAt"`
}
