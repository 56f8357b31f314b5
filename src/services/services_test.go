package services

import (
	"testing"

	"github.com/SIPEC/SIPEC-Backend/src/dtos"
	"github.com/SIPEC/SIPEC-Backend/src/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
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
	))
	return db
}

// crearCalzadoBasico inserta un calzado sin asociaciones y devuelve su id.
func crearCalzadoBasico(t *testing.T, s *CalzadoService, tipo string) int {
	t.Helper()
	dto, err := s.CreateCalzado(&dtos.CalzadoInput{
		Talle:        "42",
		Ancho:        10.5,
		Alto:         30.2,
		TipoRegistro: tipo,
	})
	require.NoError(t, err)
	return dto.IdCalzado
}

// crearImputadoBasico inserta un imputado valido y devuelve su id.
func crearImputadoBasico(t *testing.T, s *ImputadoService, nombre, dni string) int {
	t.Helper()
	imputado, err := s.CreateImputado(&dtos.ImputadoInput{
		Nombre:       nombre,
		Dni:          dni,
		Direccion:    "Calle Falsa 123",
		Comisaria:    "Comisaria 1ra",
		Jurisdiccion: "La Plata",
	})
	require.NoError(t, err)
	return imputado.Id
}
