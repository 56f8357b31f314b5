package seed

import (
	"log"

	"github.com/SIPEC/SIPEC-Backend/src/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed carga los datos de arranque: usuario admin, cuadrantes, formas
// geometricas y algunos calzados de prueba con sus suelas. Es idempotente:
// lo ya cargado se saltea.
func Seed(db *gorm.DB) {
	// Users
	var user models.UserModel
	result := db.Where("username = ?", "admin").First(&user)
	if result.Error == nil {
		log.Println("User 'admin' already exists")
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)

		newUser := models.UserModel{
			Username: "admin",
			Password: string(hashedPassword),
		}
		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("Failed to create user: %v\n", err)
		} else {
			log.Println("User 'admin' created")
		}
	}

	// Cuadrantes
	cuadrantes := []string{
		"Cuadrante Superior Izquierdo",
		"Cuadrante Superior Derecho",
		"Cuadrante Inferior Izquierdo",
		"Cuadrante Inferior Derecho",
		"Cuadrante Central",
	}
	for _, nombre := range cuadrantes {
		var existente models.CuadranteModel
		if err := db.Where("LOWER(nombre) = LOWER(?)", nombre).First(&existente).Error; err == nil {
			continue
		}
		if err := db.Create(&models.CuadranteModel{Nombre: nombre}).Error; err != nil {
			log.Printf("Failed to create cuadrante %q: %v\n", nombre, err)
		} else {
			log.Printf("Cuadrante %q created\n", nombre)
		}
	}

	// Formas geometricas
	formas := []string{"Círculo", "Rombo", "Pirámide", "Texto", "Logo", "Triángulo", "Rectángulo"}
	for _, nombre := range formas {
		var existente models.FormaGeometricaModel
		if err := db.Where("LOWER(nombre) = LOWER(?)", nombre).First(&existente).Error; err == nil {
			continue
		}
		if err := db.Create(&models.FormaGeometricaModel{Nombre: nombre}).Error; err != nil {
			log.Printf("Failed to create forma %q: %v\n", nombre, err)
		} else {
			log.Printf("Forma %q created\n", nombre)
		}
	}

	// Calzados de muestra, cada uno con una suela y tres detalles
	var cuantos int64
	if err := db.Model(&models.CalzadoModel{}).Count(&cuantos).Error; err != nil || cuantos > 0 {
		if cuantos > 0 {
			log.Println("Sample calzados already exist, skipping")
		}
		return
	}

	muestras := []struct {
		categoria string
		marca     string
		modelo    string
		talle     string
		ancho     float64
		alto      float64
		colores   []string
		tipo      string
	}{
		{"deportivo", "Nike", "Air Zoom", "42", 10.5, 28.0, []string{"negro", "blanco"}, models.TipoIndubitadaProveedor},
		{"urbano", "Adidas", "Superstar", "41", 10.0, 27.5, []string{"blanco", "negro"}, models.TipoIndubitadaComisaria},
		{"trabajo", "Caterpillar", "SteelToe", "43", 11.0, 29.0, []string{"amarillo", "negro"}, models.TipoDubitada},
	}

	for _, muestra := range muestras {
		categoria := models.CategoriaModel{Nombre: muestra.categoria}
		marca := models.MarcaModel{Nombre: muestra.marca}
		modelo := models.ModeloModel{Nombre: muestra.modelo}
		if err := db.FirstOrCreate(&categoria, models.CategoriaModel{Nombre: muestra.categoria}).Error; err != nil {
			log.Printf("Seed categoria failed: %v\n", err)
			continue
		}
		if err := db.FirstOrCreate(&marca, models.MarcaModel{Nombre: muestra.marca}).Error; err != nil {
			log.Printf("Seed marca failed: %v\n", err)
			continue
		}
		if err := db.FirstOrCreate(&modelo, models.ModeloModel{Nombre: muestra.modelo}).Error; err != nil {
			log.Printf("Seed modelo failed: %v\n", err)
			continue
		}

		calzado := models.CalzadoModel{
			Talle:        muestra.talle,
			Ancho:        muestra.ancho,
			Alto:         muestra.alto,
			TipoRegistro: muestra.tipo,
			MarcaID:      &marca.Id,
			ModeloID:     &modelo.Id,
			CategoriaID:  &categoria.Id,
		}
		if err := db.Create(&calzado).Error; err != nil {
			log.Printf("Seed calzado failed: %v\n", err)
			continue
		}
		for _, nombreColor := range muestra.colores {
			color := models.ColorModel{Nombre: nombreColor}
			if err := db.FirstOrCreate(&color, models.ColorModel{Nombre: nombreColor}).Error; err != nil {
				log.Printf("Seed color failed: %v\n", err)
				continue
			}
			if err := db.Model(&calzado).Association("Colores").Append(&color); err != nil {
				log.Printf("Seed color association failed: %v\n", err)
			}
		}

		descripcion := "Suela con dibujo estándar para pruebas"
		suela := models.SuelaModel{CalzadoID: calzado.Id, DescripcionGeneral: &descripcion}
		if err := db.Create(&suela).Error; err != nil {
			log.Printf("Seed suela failed: %v\n", err)
			continue
		}
		var cuadrantesDB []models.CuadranteModel
		var formasDB []models.FormaGeometricaModel
		db.Limit(3).Find(&cuadrantesDB)
		db.Limit(3).Find(&formasDB)
		for i := 0; i < len(cuadrantesDB) && i < len(formasDB); i++ {
			detalleTexto := "Test"
			detalle := models.DetalleSuelaModel{
				SuelaID:          suela.Id,
				CuadranteID:      cuadrantesDB[i].Id,
				FormaID:          formasDB[i].Id,
				DetalleAdicional: &detalleTexto,
			}
			if err := db.Create(&detalle).Error; err != nil {
				log.Printf("Seed detalle failed: %v\n", err)
			}
		}
		log.Printf("Sample calzado %s %s created\n", muestra.marca, muestra.modelo)
	}
}
