package domain

import "time"

// BannedUser records a moderation ban. Repeated bans accumulate as separate rows;
// a user is banned while at least one row exists for them.
type BannedUser struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userID"`
	BannedTime time.Time `json:"bannedTime"`
	Reason     string    `json:"reason"`
}
