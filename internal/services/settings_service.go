package services

import (
	"encoding/json"
	"errors"
	"time"

	"homematch-backend/internal/database"
	"homematch-backend/internal/models"
	"homematch-backend/internal/prompts"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	PromptSettingCacheKey      = "settings:default_system_prompt"
	PromptSettingCacheDuration = 24 * time.Hour
)

// PromptSettings is the resolved default prompt state: the stored row when
// one exists, the built-in default otherwise.
type PromptSettings struct {
	Template     string
	Version      int
	Placeholders prompts.PlaceholderDocs
	UpdatedAt    *time.Time
	IsDefault    bool
}

type cachedPromptSetting struct {
	Template  string    `json:"template"`
	Version   int       `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetPromptSettings resolves the default system prompt and its placeholder
// documentation, using the cache for the prompt row.
func GetPromptSettings() (*PromptSettings, error) {
	result := &PromptSettings{
		Template:     prompts.DefaultSystemPrompt,
		Version:      1,
		Placeholders: prompts.DefaultPlaceholderDocs,
		IsDefault:    true,
	}

	// Try cache
	val, err := database.RedisClient.Get(database.Ctx, PromptSettingCacheKey).Result()
	if err == nil {
		var cached cachedPromptSetting
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			result.Template = cached.Template
			result.Version = cached.Version
			result.UpdatedAt = &cached.UpdatedAt
			result.IsDefault = false

			if err := loadPlaceholderDocs(result); err != nil {
				return nil, err
			}
			return result, nil
		}
	}

	var setting models.Setting
	err = database.DB.Where("key = ?", models.SettingKeyDefaultSystemPrompt).First(&setting).Error
	if err == nil {
		var value models.PromptSettingValue
		if err := json.Unmarshal(setting.Value, &value); err != nil {
			return nil, err
		}
		result.Template = value.Template
		result.Version = value.Version
		result.UpdatedAt = &setting.UpdatedAt
		result.IsDefault = false

		// Set cache
		if data, err := json.Marshal(cachedPromptSetting{
			Template:  value.Template,
			Version:   value.Version,
			UpdatedAt: setting.UpdatedAt,
		}); err == nil {
			database.RedisClient.Set(database.Ctx, PromptSettingCacheKey, data, PromptSettingCacheDuration)
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := loadPlaceholderDocs(result); err != nil {
		return nil, err
	}
	return result, nil
}

func loadPlaceholderDocs(result *PromptSettings) error {
	var setting models.Setting
	err := database.DB.Where("key = ?", models.SettingKeyPromptPlaceholders).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	var docs prompts.PlaceholderDocs
	if err := json.Unmarshal(setting.Value, &docs); err != nil {
		return err
	}
	result.Placeholders = docs
	return nil
}

// UpdateDefaultPrompt validates the template, bumps the stored version by one
// and upserts the setting row. The read locks the settings row for the rest
// of the transaction, so concurrent writers serialize and the version cannot
// be computed twice from the same base. Returns the new version.
func UpdateDefaultPrompt(template string) (int, error) {
	if result := prompts.ValidateTemplate(template); !result.IsValid {
		return 0, &TemplateValidationError{
			MissingBuyer:   result.MissingBuyer,
			MissingListing: result.MissingListing,
		}
	}

	var newVersion int
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var setting models.Setting
		err := settingForUpdate(tx).Where("key = ?", models.SettingKeyDefaultSystemPrompt).First(&setting).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		currentVersion := 0
		if err == nil {
			var value models.PromptSettingValue
			if err := json.Unmarshal(setting.Value, &value); err != nil {
				return err
			}
			currentVersion = value.Version
		}

		newVersion = currentVersion + 1
		payload, err := json.Marshal(models.PromptSettingValue{
			Template: template,
			Version:  newVersion,
		})
		if err != nil {
			return err
		}

		if setting.ID == 0 {
			setting.Key = models.SettingKeyDefaultSystemPrompt
			setting.Value = payload
			return tx.Create(&setting).Error
		}

		setting.Value = payload
		return tx.Save(&setting).Error
	})
	if err != nil {
		return 0, err
	}

	// Invalidate cache
	database.RedisClient.Del(database.Ctx, PromptSettingCacheKey)

	return newVersion, nil
}

// settingForUpdate locks the settings row until the transaction commits.
// Without the lock, two writers at READ COMMITTED can read the same version
// and both store version+1. SQLite has no FOR UPDATE syntax; its
// single-writer transaction lock covers the same case. The concurrent
// first-write case is arbitrated by the unique index on key.
func settingForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// ResetAllBuyerPrompts clears every per-buyer prompt override in a single
// statement and reports how many rows changed.
func ResetAllBuyerPrompts() (int64, error) {
	result := database.DB.Model(&models.Buyer{}).
		Where("system_prompt IS NOT NULL").
		Update("system_prompt", nil)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
