package entity

import (
	"time"
)

// Client is the companion record created alongside every Lead. Its email
// column carries the unique index that anchors lead-email uniqueness.
type Client struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	LeadID    string    `json:"lead_id"`
	CreatedAt time.Time `json:"created_at"`
}
