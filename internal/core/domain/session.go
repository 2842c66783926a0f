package domain

import "time"

// UserSession is one login period for a user. A session with a nil LogoutTime is
// open; at most one open session exists per user at a time. Sessions are closed,
// never deleted.
type UserSession struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userID"`
	SessionID  string     `json:"sessionID"`
	LoginTime  time.Time  `json:"loginTime"`
	LogoutTime *time.Time `json:"logoutTime,omitempty"`
}

// IsActive reports whether the session is still open.
func (s UserSession) IsActive() bool {
	return s.LogoutTime == nil
}
