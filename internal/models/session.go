package models

import "time"

// UserSession mirrors the user_sessions table. LogoutTime is NULL while open.
type UserSession struct {
	ID         string     `db:"id"`
	UserID     string     `db:"user_id"`
	SessionID  string     `db:"session_id"`
	LoginTime  time.Time  `db:"login_time"`
	LogoutTime *time.Time `db:"logout_time"`
}

// UserActionLog mirrors the user_action_logs table.
type UserActionLog struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Action    string    `db:"action"`
	CreatedAt time.Time `db:"created_at"`
}

// BannedUser mirrors the banned_users table.
type BannedUser struct {
	ID         string    `db:"id"`
	UserID     string    `db:"user_id"`
	BannedTime time.Time `db:"banned_time"`
	Reason     string    `db:"reason"`
}
