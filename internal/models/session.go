package models

import "time"

// Session is what a device restores on launch.
type Session struct {
	User    User      `json:"user"`
	SavedAt time.Time `json:"savedAt"`
}

// OTPChallenge is a pending one-time code, kept only as a bcrypt hash.
type OTPChallenge struct {
	Hash         string    `json:"hash"`
	ExpiresAt    time.Time `json:"expiresAt"`
	AttemptsLeft int       `json:"attemptsLeft"`
}
