package attendance

import (
	"go-hrpay/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	attendances := r.Group("/attendances")
	attendances.Use(middleware.AuthMiddleware())
	{
		attendances.GET("", h.GetAll)
		attendances.GET("/summary", h.Summary)
		attendances.POST("/check-in", h.CheckIn)
		attendances.POST("/check-out", h.CheckOut)
	}
}
