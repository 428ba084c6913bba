package buyers

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	buyerGroup := router.Group("/buyers")
	{
		buyerGroup.POST("", CreateBuyer)
		buyerGroup.GET("", ListBuyers)
		buyerGroup.GET("/:id", GetBuyer)
		buyerGroup.PUT("/:id", UpdateBuyer)
		buyerGroup.DELETE("/:id", DeleteBuyer)
		buyerGroup.GET("/:id/prompt", GetEffectivePrompt)
		buyerGroup.PUT("/:id/prompt", SetBuyerPrompt)
		buyerGroup.DELETE("/:id/prompt", ClearBuyerPrompt)
	}
}
