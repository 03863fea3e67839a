package org

import (
	"go-hrpay/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	regions := r.Group("/regions")
	regions.Use(middleware.AuthMiddleware())
	{
		regions.GET("", h.GetRegions)
		regions.POST("", h.CreateRegion)
		regions.DELETE("/:id", h.DeleteRegion)
	}

	countries := r.Group("/countries")
	countries.Use(middleware.AuthMiddleware())
	{
		countries.GET("", h.GetCountries)
		countries.POST("", h.CreateCountry)
		countries.DELETE("/:id", h.DeleteCountry)
	}

	locations := r.Group("/locations")
	locations.Use(middleware.AuthMiddleware())
	{
		locations.GET("", h.GetLocations)
		locations.POST("", h.CreateLocation)
		locations.DELETE("/:id", h.DeleteLocation)
	}
}
