package models

import (
	"time"

	"gorm.io/datatypes"
)

// Setting keys used by the prompt settings service.
const (
	SettingKeyDefaultSystemPrompt = "default_system_prompt"
	SettingKeyPromptPlaceholders  = "system_prompt_placeholders"
)

// Setting is a singleton key-value configuration row. The payload shape
// depends on the key; the prompt setting stores a PromptSettingValue.
type Setting struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Key       string         `gorm:"uniqueIndex;not null" json:"key"`
	Value     datatypes.JSON `gorm:"not null" json:"value"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// PromptSettingValue is the payload stored under the default_system_prompt key.
// Version starts at 1 and increases by 1 on every successful update.
type PromptSettingValue struct {
	Template string `json:"template"`
	Version  int    `json:"version"`
}
