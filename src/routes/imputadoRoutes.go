package routes

import (
	"github.com/SIPEC/SIPEC-Backend/src/controllers"
	"github.com/SIPEC/SIPEC-Backend/src/middleware"
	"github.com/SIPEC/SIPEC-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupImputadoRoutes(router *gin.Engine, service *services.ImputadoService) {
	controller := controllers.NewImputadoController(service)

	// Public reads
	router.GET("/imputados", controller.GetAllImputados)
	router.GET("/imputados/:id", controller.GetImputadoByID)

	// Protected mutations, incluida la triada de edicion/vinculo/desvinculo
	// sobre /imputados/:id/calzados/:calzadoId
	grupo := router.Group("/imputados")
	grupo.Use(middleware.AuthMiddleware())
	{
		grupo.POST("", controller.CreateImputado)
		grupo.PATCH("/:id", controller.UpdateImputado)
		grupo.DELETE("/:id", controller.DeleteImputado)
		grupo.PATCH("/:id/calzados/:calzadoId", controller.EditarCalzadoVinculado)
		grupo.POST("/:id/calzados/:calzadoId", controller.VincularCalzado)
		grupo.DELETE("/:id/calzados/:calzadoId", controller.DesvincularCalzado)
	}
}
