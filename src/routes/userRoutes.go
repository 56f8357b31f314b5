package routes

import (
	"github.com/SIPEC/SIPEC-Backend/src/controllers"
	"github.com/SIPEC/SIPEC-Backend/src/middleware"
	"github.com/SIPEC/SIPEC-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(router *gin.Engine, service *services.UserService) {
	controller := controllers.NewUserController(service)

	// Public routes
	router.POST("/auth/login", controller.AuthenticateUser)

	// Protected routes
	usuarios := router.Group("/usuarios")
	usuarios.Use(middleware.AuthMiddleware())
	{
		usuarios.GET("", controller.GetAllUsers)
		usuarios.POST("", controller.CreateUser)
		usuarios.DELETE("/:id", controller.DeleteUser)
	}
}
