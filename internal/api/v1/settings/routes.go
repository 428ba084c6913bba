package settings

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	settingsGroup := router.Group("/settings")
	{
		settingsGroup.GET("/prompt", GetPrompt)
		settingsGroup.PUT("/prompt", UpdatePrompt)
		settingsGroup.POST("/prompt/apply-all", ApplyPromptToAll)
	}
}
