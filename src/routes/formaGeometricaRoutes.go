package routes

import (
	"github.com/SIPEC/SIPEC-Backend/src/controllers"
	"github.com/SIPEC/SIPEC-Backend/src/middleware"
	"github.com/SIPEC/SIPEC-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupFormaGeometricaRoutes(router *gin.Engine, service *services.FormaGeometricaService) {
	controller := controllers.NewFormaGeometricaController(service)

	// Public reads
	router.GET("/formas", controller.GetAllFormas)
	router.GET("/formas/:id", controller.GetFormaByID)

	// Protected mutations
	grupo := router.Group("/formas")
	grupo.Use(middleware.AuthMiddleware())
	{
		grupo.POST("", controller.CreateForma)
		grupo.PATCH("/:id", controller.UpdateForma)
		grupo.DELETE("/:id", controller.DeleteForma)
	}
}
