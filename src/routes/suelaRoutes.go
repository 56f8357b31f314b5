package routes

import (
	"github.com/SIPEC/SIPEC-Backend/src/controllers"
	"github.com/SIPEC/SIPEC-Backend/src/middleware"
	"github.com/SIPEC/SIPEC-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupSuelaRoutes(router *gin.Engine, service *services.SuelaService) {
	controller := controllers.NewSuelaController(service)

	// Public reads
	router.GET("/suelas", controller.GetAllSuelas)
	router.GET("/suelas/:id", controller.GetSuelaByID)

	// Protected mutations; PUT y PATCH comparten la regla de reemplazo
	// completo de detalles
	grupo := router.Group("/suelas")
	grupo.Use(middleware.AuthMiddleware())
	{
		grupo.POST("", controller.CreateSuela)
		grupo.PUT("/:id", controller.UpdateSuela)
		grupo.PATCH("/:id", controller.UpdateSuela)
		grupo.DELETE("/:id", controller.DeleteSuela)
	}
}
