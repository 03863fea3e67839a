package employee

import (
	"go-hrpay/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("", middleware.RateLimitByUser(3, 10), handler.GetAll)
		employees.GET("/options", middleware.RateLimitByUser(5, 20), handler.GetOptions)
		employees.GET("/:id", middleware.RateLimitByUser(3, 10), handler.GetById)
		employees.POST("", middleware.RateLimitByUser(0.5, 2), handler.Create)
		employees.PUT("/:id", middleware.RateLimitByUser(0.5, 2), handler.Update)
		employees.DELETE("/:id", middleware.RateLimitByUser(0.1, 1), handler.Delete)

		employees.GET("/:id/dependents", handler.GetDependents)
		employees.POST("/:id/dependents", handler.AddDependent)
		employees.DELETE("/:id/dependents/:dependentId", handler.RemoveDependent)
	}
}
