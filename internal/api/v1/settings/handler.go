package settings

import (
	"errors"
	"fmt"
	"net/http"

	"homematch-backend/internal/services"
	"homematch-backend/internal/utils"
	"homematch-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetPrompt godoc
// @Summary Get the default system prompt
// @Description Get the stored default system prompt template, its version and the placeholder documentation. Falls back to the built-in default when no row is stored.
// @Tags settings
// @Produce json
// @Success 200 {object} PromptSettingsResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /settings/prompt [get]
func GetPrompt(c *gin.Context) {
	promptSettings, err := services.GetPromptSettings()
	if err != nil {
		logger.Log.Error("failed to fetch prompt settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to fetch prompt settings"))
		return
	}

	c.JSON(http.StatusOK, PromptSettingsResponse{
		Template:     promptSettings.Template,
		Version:      promptSettings.Version,
		Placeholders: promptSettings.Placeholders,
		UpdatedAt:    promptSettings.UpdatedAt,
		IsDefault:    promptSettings.IsDefault,
	})
}

// UpdatePrompt godoc
// @Summary Update the default system prompt
// @Description Validate the template's placeholder tokens and store it with the next version number.
// @Tags settings
// @Accept json
// @Produce json
// @Param request body UpdatePromptRequest true "Update Prompt Request"
// @Success 200 {object} UpdatePromptResponse
// @Failure 400 {object} PlaceholderErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /settings/prompt [put]
func UpdatePrompt(c *gin.Context) {
	var req UpdatePromptRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	version, err := services.UpdateDefaultPrompt(req.Template)
	if err != nil {
		var validationErr *services.TemplateValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, PlaceholderErrorResponse{
				Error:          validationErr.Error(),
				MissingBuyer:   validationErr.MissingBuyer,
				MissingListing: validationErr.MissingListing,
			})
			return
		}

		logger.Log.Error("failed to update prompt settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to update prompt settings"))
		return
	}

	c.JSON(http.StatusOK, UpdatePromptResponse{
		Success: true,
		Version: version,
		Message: fmt.Sprintf("Default system prompt updated to version %d", version),
	})
}

// ApplyPromptToAll godoc
// @Summary Reset all buyer prompt overrides
// @Description Clear every per-buyer prompt override so the default system prompt applies to all buyers.
// @Tags settings
// @Produce json
// @Success 200 {object} ApplyAllResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /settings/prompt/apply-all [post]
func ApplyPromptToAll(c *gin.Context) {
	count, err := services.ResetAllBuyerPrompts()
	if err != nil {
		logger.Log.Error("failed to reset buyer prompts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to reset buyer prompts"))
		return
	}

	c.JSON(http.StatusOK, ApplyAllResponse{
		Success:    true,
		Message:    fmt.Sprintf("Reset custom prompts for %d buyers", count),
		ResetCount: count,
	})
}
