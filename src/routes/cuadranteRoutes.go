package routes

import (
	"github.com/SIPEC/SIPEC-Backend/src/controllers"
	"github.com/SIPEC/SIPEC-Backend/src/middleware"
	"github.com/SIPEC/SIPEC-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupCuadranteRoutes(router *gin.Engine, service *services.CuadranteService) {
	controller := controllers.NewCuadranteController(service)

	// Public reads
	router.GET("/cuadrantes", controller.GetAllCuadrantes)
	router.GET("/cuadrantes/:id", controller.GetCuadranteByID)

	// Protected mutations
	grupo := router.Group("/cuadrantes")
	grupo.Use(middleware.AuthMiddleware())
	{
		grupo.POST("", controller.CreateCuadrante)
		grupo.PATCH("/:id", controller.UpdateCuadrante)
		grupo.DELETE("/:id", controller.DeleteCuadrante)
	}
}
