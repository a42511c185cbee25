package core

import "time"

type Credentials struct {
	Username string
	Password string
}

type Session struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Identity is the decoded content of a verified session token.
type Identity struct {
	UserID   uint
	Username string
}

type NewEvent struct {
	Date      string
	Label     string
	StartTime string
	EndTime   *string
}

type EventRecord struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Date      string    `json:"date"`
	Label     string    `json:"event"`
	StartTime string    `json:"start_time"`
	EndTime   *string   `json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
}
