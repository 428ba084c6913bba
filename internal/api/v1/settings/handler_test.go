package settings_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"homematch-backend/internal/api/v1/settings"
	"homematch-backend/internal/database"
	"homematch-backend/internal/models"
	"homematch-backend/internal/prompts"
	"homematch-backend/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const validTemplate = "Hi {{buyer_name}}, given {{buyer_preferences}} consider {{listing_details}}"

func setupTestDB() {
	logger.Log = zap.NewNop()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(fmt.Sprintf("failed to connect database: %v", err))
	}

	db.Migrator().DropTable(&models.Setting{}, &models.Buyer{})
	err = db.AutoMigrate(&models.Setting{}, &models.Buyer{})
	if err != nil {
		panic("failed to migrate database")
	}

	database.DB = db
}

func setupTestRedis() *miniredis.Miniredis {
	mr, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	database.RedisClient = redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	return mr
}

func TestGetPromptDefault(t *testing.T) {
	setupTestDB()
	mr := setupTestRedis()
	defer mr.Close()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/settings/prompt", nil)

	settings.GetPrompt(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp settings.PromptSettingsResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, prompts.DefaultSystemPrompt, resp.Template)
	assert.Equal(t, 1, resp.Version)
	assert.True(t, resp.IsDefault)
	assert.Nil(t, resp.UpdatedAt)
	assert.NotEmpty(t, resp.Placeholders.Buyer)
	assert.NotEmpty(t, resp.Placeholders.Listing)
}

func TestUpdatePromptAndGet(t *testing.T) {
	setupTestDB()
	mr := setupTestRedis()
	defer mr.Close()
	gin.SetMode(gin.TestMode)

	body, _ := json.Marshal(settings.UpdatePromptRequest{Template: validTemplate})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("PUT", "/settings/prompt", bytes.NewBuffer(body))

	settings.UpdatePrompt(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp settings.UpdatePromptResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.Version)

	// A second write with identical content still advances the version
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("PUT", "/settings/prompt", bytes.NewBuffer(body))

	settings.UpdatePrompt(c)

	assert.Equal(t, http.StatusOK, w.Code)
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, 2, resp.Version)

	// The stored template is now served
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/settings/prompt", nil)

	settings.GetPrompt(c)

	var getResp settings.PromptSettingsResponse
	json.Unmarshal(w.Body.Bytes(), &getResp)
	assert.Equal(t, validTemplate, getResp.Template)
	assert.Equal(t, 2, getResp.Version)
	assert.False(t, getResp.IsDefault)
	assert.NotNil(t, getResp.UpdatedAt)
}

func TestUpdatePromptMissingPlaceholders(t *testing.T) {
	setupTestDB()
	mr := setupTestRedis()
	defer mr.Close()
	gin.SetMode(gin.TestMode)

	body, _ := json.Marshal(settings.UpdatePromptRequest{Template: "Listing: {{listing_details}}"})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("PUT", "/settings/prompt", bytes.NewBuffer(body))

	settings.UpdatePrompt(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp settings.PlaceholderErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NotEmpty(t, resp.Error)
	assert.Equal(t, []string{"{{buyer_name}}", "{{buyer_preferences}}"}, resp.MissingBuyer)
	assert.Empty(t, resp.MissingListing)

	// No write happened
	var count int64
	database.DB.Model(&models.Setting{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestUpdatePromptMissingTemplateField(t *testing.T) {
	setupTestDB()
	mr := setupTestRedis()
	defer mr.Close()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("PUT", "/settings/prompt", bytes.NewBufferString(`{}`))

	settings.UpdatePrompt(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Contains(t, resp, "error")
}

func TestUpdatePromptNonStringTemplate(t *testing.T) {
	setupTestDB()
	mr := setupTestRedis()
	defer mr.Close()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("PUT", "/settings/prompt", bytes.NewBufferString(`{"template": 7}`))

	settings.UpdatePrompt(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApplyPromptToAllEmpty(t *testing.T) {
	setupTestDB()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/settings/prompt/apply-all", nil)

	settings.ApplyPromptToAll(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp settings.ApplyAllResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, int64(0), resp.ResetCount)
}

func TestApplyPromptToAll(t *testing.T) {
	setupTestDB()
	gin.SetMode(gin.TestMode)

	promptX := "x"
	promptY := "y"
	buyersList := []models.Buyer{
		{Name: "A", SystemPrompt: &promptX},
		{Name: "B"},
		{Name: "C", SystemPrompt: &promptY},
	}
	database.DB.Create(&buyersList)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/settings/prompt/apply-all", nil)

	settings.ApplyPromptToAll(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp settings.ApplyAllResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, int64(2), resp.ResetCount)

	var remaining int64
	database.DB.Model(&models.Buyer{}).Where("system_prompt IS NOT NULL").Count(&remaining)
	assert.Equal(t, int64(0), remaining)
}
