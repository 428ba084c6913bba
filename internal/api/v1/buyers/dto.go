package buyers

import "homematch-backend/internal/models"

type CreateBuyerRequest struct {
	Name         string `json:"name" binding:"required"`
	SlackChannel string `json:"slack_channel"`
}

type UpdateBuyerRequest struct {
	Name         string `json:"name" binding:"required"`
	SlackChannel string `json:"slack_channel"`
}

type SetPromptRequest struct {
	Template string `json:"template" binding:"required"`
}

type BuyerListResponse struct {
	Total int64          `json:"total"`
	Items []models.Buyer `json:"items"`
}

type EffectivePromptResponse struct {
	Template  string `json:"template"`
	IsDefault bool   `json:"isDefault"`
}

// PlaceholderErrorResponse is returned when a prompt override fails
// placeholder validation.
type PlaceholderErrorResponse struct {
	Error          string   `json:"error"`
	MissingBuyer   []string `json:"missingBuyer,omitempty"`
	MissingListing []string `json:"missingListing,omitempty"`
}
