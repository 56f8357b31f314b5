package main

import (
	"log"
	"os"

	"github.com/SIPEC/SIPEC-Backend/src/db"
	"github.com/SIPEC/SIPEC-Backend/src/middleware"
	"github.com/SIPEC/SIPEC-Backend/src/models"
	"github.com/SIPEC/SIPEC-Backend/src/routes"
	"github.com/SIPEC/SIPEC-Backend/src/seed"
	"github.com/SIPEC/SIPEC-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func main() {

	// Database connection
	db, err := db.Connect()
	if err != nil {
		log.Fatalf("Error connecting to database: %v\n", err)
	}

	// Auto-migrate models
	if err := db.AutoMigrate(
		&models.MarcaModel{},
		&models.ModeloModel{},
		&models.CategoriaModel{},
		&models.ColorModel{},
		&models.CuadranteModel{},
		&models.FormaGeometricaModel{},
		&models.CalzadoModel{},
		&models.SuelaModel{},
		&models.DetalleSuelaModel{},
		&models.ImputadoModel{},
		&models.CalzadoImputadoModel{},
		&models.UserModel{},
	); err != nil {
		log.Fatalf("Error during auto-migration: %v\n", err)
	}

	// JWT secret
	middleware.SetSecretKey(os.Getenv("SECRET_KEY"))

	// Optional seeding
	if os.Getenv("SEED_DB") == "true" {
		seed.Seed(db)
	}

	// Politica de huerfanos: borrar el calzado al quitarle el ultimo
	// imputado (ver DESIGN.md); activa salvo que se apague explicitamente
	eliminarHuerfanos := os.Getenv("DELETE_UNLINKED_CALZADO") != "false"

	// Port and host setup
	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = ":8080"
	}

	// Gin router setup
	router := gin.Default()
	router.Use(middleware.SetupCORS())

	// Services setup
	marcaService := services.NewMarcaService(db)
	modeloService := services.NewModeloService(db)
	categoriaService := services.NewCategoriaService(db)
	colorService := services.NewColorService(db)
	cuadranteService := services.NewCuadranteService(db)
	formaService := services.NewFormaGeometricaService(db)
	calzadoService := services.NewCalzadoService(db, eliminarHuerfanos)
	suelaService := services.NewSuelaService(db)
	imputadoService := services.NewImputadoService(db, calzadoService)
	userService := services.NewUserService(db)

	// Routes setup
	routes.SetupMarcaRoutes(router, marcaService)
	routes.SetupModeloRoutes(router, modeloService)
	routes.SetupCategoriaRoutes(router, categoriaService)
	routes.SetupColorRoutes(router, colorService)
	routes.SetupCuadranteRoutes(router, cuadranteService)
	routes.SetupFormaGeometricaRoutes(router, formaService)
	routes.SetupCalzadoRoutes(router, calzadoService)
	routes.SetupSuelaRoutes(router, suelaService)
	routes.SetupImputadoRoutes(router, imputadoService)
	routes.SetupUserRoutes(router, userService)

	router.GET("/", func(c *gin.Context) {
		c.String(200, "SIPEC backend up")
	})

	// Server run
	if err := router.Run(host); err != nil {
		log.Fatalf("Error starting server on %s: %v\n", host, err)
	}
}
