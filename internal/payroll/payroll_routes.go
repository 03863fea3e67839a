package payroll

import (
	"go-hrpay/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	payrolls := r.Group("/payrolls")
	payrolls.Use(middleware.AuthMiddleware())
	{
		payrolls.GET("", handler.GetAll)
		payrolls.GET("/by-department", handler.ByDepartment)
		if redisClient != nil {
			payrolls.POST("/calculate", middleware.Idempotency(redisClient), handler.Calculate)
		} else {
			payrolls.POST("/calculate", handler.Calculate)
		}
	}
}
