package routes

import (
	"github.com/SIPEC/SIPEC-Backend/src/controllers"
	"github.com/SIPEC/SIPEC-Backend/src/middleware"
	"github.com/SIPEC/SIPEC-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupColorRoutes(router *gin.Engine, service *services.ColorService) {
	controller := controllers.NewColorController(service)

	// Public reads
	router.GET("/colores", controller.GetAllColores)
	router.GET("/colores/:id", controller.GetColorByID)

	// Protected mutations
	grupo := router.Group("/colores")
	grupo.Use(middleware.AuthMiddleware())
	{
		grupo.POST("", controller.CreateColor)
		grupo.PATCH("/:id", controller.UpdateColor)
		grupo.DELETE("/:id", controller.DeleteColor)
	}
}
