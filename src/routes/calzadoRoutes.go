package routes

import (
	"github.com/SIPEC/SIPEC-Backend/src/controllers"
	"github.com/SIPEC/SIPEC-Backend/src/middleware"
	"github.com/SIPEC/SIPEC-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupCalzadoRoutes(router *gin.Engine, service *services.CalzadoService) {
	controller := controllers.NewCalzadoController(service)

	// Public reads
	router.GET("/calzados", controller.GetAllCalzados)
	router.GET("/calzados/dubitadas", controller.GetDubitadas)
	router.GET("/calzados/dubitadas/:id", controller.GetDubitadaByID)
	router.GET("/calzados/indubitadas", controller.GetIndubitadas)
	router.GET("/calzados/indubitadas/:id", controller.GetIndubitadaByID)
	router.GET("/calzados/imputados", controller.GetImputadosConCalzados)
	router.GET("/calzados/imputado/:dni", controller.GetCalzadosPorDni)
	router.GET("/calzados/:id", controller.GetCalzadoByID)

	// Protected mutations
	grupo := router.Group("/calzados")
	grupo.Use(middleware.AuthMiddleware())
	{
		grupo.POST("", controller.CreateCalzado)
		grupo.POST("/con-imputado", controller.CreateCalzadoConImputado)
		grupo.POST("/importar", controller.ImportCalzados)
		grupo.PATCH("/:id", controller.UpdateCalzado)
		grupo.DELETE("/:id", controller.DeleteCalzado)
		grupo.POST("/:id/imputados/:imputadoId", controller.VincularImputado)
		grupo.PATCH("/:id/imputados/:imputadoId", controller.UpdateCalzadoConImputado)
		grupo.DELETE("/:id/imputados/:imputadoId", controller.DesvincularImputado)
	}
}
