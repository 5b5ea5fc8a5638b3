package store

import "time"

type Store struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Location  *string   `json:"location"`
	Hours     *string   `json:"hours"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
}
