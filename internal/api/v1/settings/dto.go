package settings

import (
	"time"

	"homematch-backend/internal/prompts"
)

type PromptSettingsResponse struct {
	Template     string                  `json:"template"`
	Version      int                     `json:"version"`
	Placeholders prompts.PlaceholderDocs `json:"placeholders"`
	UpdatedAt    *time.Time              `json:"updatedAt,omitempty"`
	IsDefault    bool                    `json:"isDefault"`
}

type UpdatePromptRequest struct {
	Template string `json:"template" binding:"required"`
}

type UpdatePromptResponse struct {
	Success bool   `json:"success"`
	Version int    `json:"version"`
	Message string `json:"message"`
}

// PlaceholderErrorResponse is returned when a template fails placeholder
// validation; the missing tokens are listed per category.
type PlaceholderErrorResponse struct {
	Error          string   `json:"error"`
	MissingBuyer   []string `json:"missingBuyer,omitempty"`
	MissingListing []string `json:"missingListing,omitempty"`
}

type ApplyAllResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	ResetCount int64  `json:"resetCount"`
}
