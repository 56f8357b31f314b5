package routes

import (
	"github.com/SIPEC/SIPEC-Backend/src/controllers"
	"github.com/SIPEC/SIPEC-Backend/src/middleware"
	"github.com/SIPEC/SIPEC-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupCategoriaRoutes(router *gin.Engine, service *services.CategoriaService) {
	controller := controllers.NewCategoriaController(service)

	// Public reads
	router.GET("/categorias", controller.GetAllCategorias)
	router.GET("/categorias/:id", controller.GetCategoriaByID)

	// Protected mutations
	grupo := router.Group("/categorias")
	grupo.Use(middleware.AuthMiddleware())
	{
		grupo.POST("", controller.CreateCategoria)
		grupo.PATCH("/:id", controller.UpdateCategoria)
		grupo.DELETE("/:id", controller.DeleteCategoria)
	}
}
