package services

import (
	"errors"

	"homematch-backend/internal/database"
	"homematch-backend/internal/models"
	"homematch-backend/internal/prompts"

	"gorm.io/gorm"
)

// CreateBuyer inserts a new buyer profile. An empty slack channel is stored
// as NULL; the prompt override always starts absent.
func CreateBuyer(name, slackChannel string) (*models.Buyer, error) {
	if !database.IsConfigured() {
		return nil, ErrDatabaseNotConfigured
	}

	buyer := &models.Buyer{
		Name:         name,
		SlackChannel: nullableChannel(slackChannel),
	}

	if err := database.DB.Create(buyer).Error; err != nil {
		return nil, err
	}

	return buyer, nil
}

// GetBuyerByID retrieves a single buyer profile.
func GetBuyerByID(id uint) (*models.Buyer, error) {
	var buyer models.Buyer
	if err := database.DB.First(&buyer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBuyerNotFound
		}
		return nil, err
	}
	return &buyer, nil
}

// ListBuyers retrieves a paginated list of buyers, newest first. Out-of-range
// page and pageSize values fall back to the first page of ten.
func ListBuyers(page, pageSize int) ([]models.Buyer, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	var buyers []models.Buyer
	var total int64

	db := database.DB.Model(&models.Buyer{})

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := db.Order("created_at desc").Offset(offset).Limit(pageSize).Find(&buyers).Error; err != nil {
		return nil, 0, err
	}

	return buyers, total, nil
}

// UpdateBuyer replaces a buyer's name and slack channel. An empty channel
// clears the stored value.
func UpdateBuyer(id uint, name, slackChannel string) (*models.Buyer, error) {
	buyer, err := GetBuyerByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":          name,
		"slack_channel": nullableChannel(slackChannel),
	}
	if err := database.DB.Model(buyer).Updates(updates).Error; err != nil {
		return nil, err
	}

	return buyer, nil
}

// DeleteBuyer removes a buyer profile.
func DeleteBuyer(id uint) error {
	result := database.DB.Delete(&models.Buyer{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBuyerNotFound
	}
	return nil
}

// SetBuyerPrompt stores a per-buyer prompt override. The override must pass
// the same placeholder validation as the default template.
func SetBuyerPrompt(id uint, template string) (*models.Buyer, error) {
	if result := prompts.ValidateTemplate(template); !result.IsValid {
		return nil, &TemplateValidationError{
			MissingBuyer:   result.MissingBuyer,
			MissingListing: result.MissingListing,
		}
	}

	buyer, err := GetBuyerByID(id)
	if err != nil {
		return nil, err
	}

	if err := database.DB.Model(buyer).Update("system_prompt", template).Error; err != nil {
		return nil, err
	}

	return buyer, nil
}

// ClearBuyerPrompt removes one buyer's prompt override, reverting the buyer
// to the default template.
func ClearBuyerPrompt(id uint) (*models.Buyer, error) {
	buyer, err := GetBuyerByID(id)
	if err != nil {
		return nil, err
	}

	if err := database.DB.Model(buyer).Update("system_prompt", nil).Error; err != nil {
		return nil, err
	}

	return buyer, nil
}

// GetEffectivePrompt resolves the template that applies to a buyer: the
// override when one is set, the default prompt settings otherwise.
func GetEffectivePrompt(id uint) (string, bool, error) {
	buyer, err := GetBuyerByID(id)
	if err != nil {
		return "", false, err
	}

	if buyer.SystemPrompt != nil {
		return *buyer.SystemPrompt, false, nil
	}

	settings, err := GetPromptSettings()
	if err != nil {
		return "", false, err
	}
	return settings.Template, true, nil
}

func nullableChannel(channel string) *string {
	if channel == "" {
		return nil
	}
	return &channel
}
