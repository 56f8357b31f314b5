package routes

import (
	"github.com/SIPEC/SIPEC-Backend/src/controllers"
	"github.com/SIPEC/SIPEC-Backend/src/middleware"
	"github.com/SIPEC/SIPEC-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupModeloRoutes(router *gin.Engine, service *services.ModeloService) {
	controller := controllers.NewModeloController(service)

	// Public reads
	router.GET("/modelos", controller.GetAllModelos)
	router.GET("/modelos/:id", controller.GetModeloByID)

	// Protected mutations
	grupo := router.Group("/modelos")
	grupo.Use(middleware.AuthMiddleware())
	{
		grupo.POST("", controller.CreateModelo)
		grupo.PATCH("/:id", controller.UpdateModelo)
		grupo.DELETE("/:id", controller.DeleteModelo)
	}
}
