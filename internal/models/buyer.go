package models

import "time"

// Buyer represents a real-estate buyer profile. SlackChannel is the optional
// notification target; SystemPrompt is an optional per-buyer override of the
// default system prompt (null means the default applies).
type Buyer struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	SlackChannel *string   `json:"slack_channel"`
	SystemPrompt *string   `gorm:"type:text" json:"system_prompt"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
