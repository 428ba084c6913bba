package buyers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"homematch-backend/internal/services"
	"homematch-backend/internal/utils"
	"homematch-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateBuyer godoc
// @Summary Create a buyer profile
// @Description Create a new buyer with a required name and an optional slack channel. An empty channel is stored as null.
// @Tags buyers
// @Accept json
// @Produce json
// @Param request body CreateBuyerRequest true "Create Buyer Request"
// @Success 201 {object} models.Buyer
// @Failure 400 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /buyers [post]
func CreateBuyer(c *gin.Context) {
	var req CreateBuyerRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	buyer, err := services.CreateBuyer(req.Name, req.SlackChannel)
	if err != nil {
		if errors.Is(err, services.ErrDatabaseNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, utils.NewErrorResponse("Database client is not configured"))
			return
		}

		logger.Log.Error("failed to create buyer", zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to create buyer"))
		return
	}

	c.Header("Location", fmt.Sprintf("/api/v1/buyers/%d", buyer.ID))
	c.JSON(http.StatusCreated, buyer)
}

// ListBuyers godoc
// @Summary List buyer profiles
// @Description Get a paginated list of buyers, newest first.
// @Tags buyers
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} BuyerListResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /buyers [get]
func ListBuyers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	items, total, err := services.ListBuyers(page, limit)
	if err != nil {
		logger.Log.Error("failed to list buyers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to list buyers"))
		return
	}

	c.JSON(http.StatusOK, BuyerListResponse{
		Total: total,
		Items: items,
	})
}

// GetBuyer godoc
// @Summary Get a buyer profile
// @Tags buyers
// @Produce json
// @Param id path int true "Buyer ID"
// @Success 200 {object} models.Buyer
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /buyers/{id} [get]
func GetBuyer(c *gin.Context) {
	id, ok := buyerID(c)
	if !ok {
		return
	}

	buyer, err := services.GetBuyerByID(id)
	if err != nil {
		respondBuyerError(c, err, "failed to fetch buyer", "Failed to fetch buyer")
		return
	}

	c.JSON(http.StatusOK, buyer)
}

// UpdateBuyer godoc
// @Summary Update a buyer profile
// @Description Replace a buyer's name and slack channel. An empty channel clears the stored value.
// @Tags buyers
// @Accept json
// @Produce json
// @Param id path int true "Buyer ID"
// @Param request body UpdateBuyerRequest true "Update Buyer Request"
// @Success 200 {object} models.Buyer
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /buyers/{id} [put]
func UpdateBuyer(c *gin.Context) {
	id, ok := buyerID(c)
	if !ok {
		return
	}

	var req UpdateBuyerRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	buyer, err := services.UpdateBuyer(id, req.Name, req.SlackChannel)
	if err != nil {
		respondBuyerError(c, err, "failed to update buyer", "Failed to update buyer")
		return
	}

	c.JSON(http.StatusOK, buyer)
}

// DeleteBuyer godoc
// @Summary Delete a buyer profile
// @Tags buyers
// @Produce json
// @Param id path int true "Buyer ID"
// @Success 204 {object} nil
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /buyers/{id} [delete]
func DeleteBuyer(c *gin.Context) {
	id, ok := buyerID(c)
	if !ok {
		return
	}

	if err := services.DeleteBuyer(id); err != nil {
		respondBuyerError(c, err, "failed to delete buyer", "Failed to delete buyer")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetEffectivePrompt godoc
// @Summary Get a buyer's effective prompt
// @Description Resolve the system prompt that applies to a buyer: the override if one is set, the default template otherwise.
// @Tags buyers
// @Produce json
// @Param id path int true "Buyer ID"
// @Success 200 {object} EffectivePromptResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /buyers/{id}/prompt [get]
func GetEffectivePrompt(c *gin.Context) {
	id, ok := buyerID(c)
	if !ok {
		return
	}

	template, isDefault, err := services.GetEffectivePrompt(id)
	if err != nil {
		respondBuyerError(c, err, "failed to resolve buyer prompt", "Failed to resolve buyer prompt")
		return
	}

	c.JSON(http.StatusOK, EffectivePromptResponse{
		Template:  template,
		IsDefault: isDefault,
	})
}

// SetBuyerPrompt godoc
// @Summary Set a buyer's prompt override
// @Description Store a per-buyer system prompt. The template must contain the same required placeholder tokens as the default.
// @Tags buyers
// @Accept json
// @Produce json
// @Param id path int true "Buyer ID"
// @Param request body SetPromptRequest true "Set Prompt Request"
// @Success 200 {object} models.Buyer
// @Failure 400 {object} PlaceholderErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /buyers/{id}/prompt [put]
func SetBuyerPrompt(c *gin.Context) {
	id, ok := buyerID(c)
	if !ok {
		return
	}

	var req SetPromptRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	buyer, err := services.SetBuyerPrompt(id, req.Template)
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

		respondBuyerError(c, err, "failed to set buyer prompt", "Failed to set buyer prompt")
		return
	}

	c.JSON(http.StatusOK, buyer)
}

// ClearBuyerPrompt godoc
// @Summary Clear a buyer's prompt override
// @Description Remove a buyer's custom system prompt so the default applies again.
// @Tags buyers
// @Produce json
// @Param id path int true "Buyer ID"
// @Success 200 {object} models.Buyer
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /buyers/{id}/prompt [delete]
func ClearBuyerPrompt(c *gin.Context) {
	id, ok := buyerID(c)
	if !ok {
		return
	}

	buyer, err := services.ClearBuyerPrompt(id)
	if err != nil {
		respondBuyerError(c, err, "failed to clear buyer prompt", "Failed to clear buyer prompt")
		return
	}

	c.JSON(http.StatusOK, buyer)
}

func buyerID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid buyer id"))
		return 0, false
	}
	return uint(id), true
}

func respondBuyerError(c *gin.Context, err error, logMsg, userMsg string) {
	if errors.Is(err, services.ErrBuyerNotFound) {
		c.JSON(http.StatusNotFound, utils.NewErrorResponse("Buyer not found"))
		return
	}

	logger.Log.Error(logMsg, zap.Error(err))
	c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(userMsg))
}
