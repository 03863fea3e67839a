package export

import (
	"go-hrpay/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	exports := r.Group("/exports")
	exports.Use(middleware.AuthMiddleware())
	{
		exports.GET("/payrolls", middleware.RateLimitByUser(0.5, 2), h.PayrollXLSX)
		exports.GET("/attendances", middleware.RateLimitByUser(0.5, 2), h.AttendanceXLSX)
	}
}
