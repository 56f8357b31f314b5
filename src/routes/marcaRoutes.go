package routes

import (
	"github.com/SIPEC/SIPEC-Backend/src/controllers"
	"github.com/SIPEC/SIPEC-Backend/src/middleware"
	"github.com/SIPEC/SIPEC-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupMarcaRoutes(router *gin.Engine, service *services.MarcaService) {
	controller := controllers.NewMarcaController(service)

	// Public reads
	router.GET("/marcas", controller.GetAllMarcas)
	router.GET("/marcas/:id", controller.GetMarcaByID)

	// Protected mutations
	grupo := router.Group("/marcas")
	grupo.Use(middleware.AuthMiddleware())
	{
		grupo.POST("", controller.CreateMarca)
		grupo.PATCH("/:id", controller.UpdateMarca)
		grupo.DELETE("/:id", controller.DeleteMarca)
	}
}
