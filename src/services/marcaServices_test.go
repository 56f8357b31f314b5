package services

import (
	"testing"

	"github.com/SIPEC/SIPEC-Backend/src/apperrors"
	"github.com/SIPEC/SIPEC-Backend/src/dtos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMarcaTrimsName(t *testing.T) {
	db := setupTestDB(t)
	service := NewMarcaService(db)

	marca, err := service.CreateMarca("  Nike  ")
	require.NoError(t, err)
	assert.Equal(t, "Nike", marca.Nombre)
	assert.NotZero(t, marca.Id)
}

func TestCreateMarcaEmptyName(t *testing.T) {
	db := setupTestDB(t)
	service := NewMarcaService(db)

	_, err := service.CreateMarca("   ")
	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestCreateMarcaDuplicateCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	service := NewMarcaService(db)

	_, err := service.CreateMarca("Nike")
	require.NoError(t, err)

	_, err = service.CreateMarca(" nike ")
	var dup *apperrors.DuplicateNameError
	require.ErrorAs(t, err, &dup)
	// el mensaje reporta el nombre ya registrado, con su formato original
	assert.Equal(t, "Nike", dup.Nombre)

	marcas, err := service.GetAllMarcas()
	require.NoError(t, err)
	assert.Len(t, marcas, 1)
}

func TestUpdateMarcaRename(t *testing.T) {
	db := setupTestDB(t)
	service := NewMarcaService(db)

	marca, err := service.CreateMarca("Nike")
	require.NoError(t, err)

	renombrada, err := service.UpdateMarca(marca.Id, "Adidas")
	require.NoError(t, err)
	assert.Equal(t, "Adidas", renombrada.Nombre)
}

func TestUpdateMarcaKeepsOwnName(t *testing.T) {
	db := setupTestDB(t)
	service := NewMarcaService(db)

	marca, err := service.CreateMarca("Nike")
	require.NoError(t, err)

	// renombrar a su propio nombre no cuenta como duplicado
	_, err = service.UpdateMarca(marca.Id, "NIKE")
	require.NoError(t, err)
}

func TestUpdateMarcaDuplicateName(t *testing.T) {
	db := setupTestDB(t)
	service := NewMarcaService(db)

	_, err := service.CreateMarca("Nike")
	require.NoError(t, err)
	marca, err := service.CreateMarca("Adidas")
	require.NoError(t, err)

	_, err = service.UpdateMarca(marca.Id, "nike")
	var dup *apperrors.DuplicateNameError
	require.ErrorAs(t, err, &dup)
}

func TestDeleteMarcaNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := NewMarcaService(db)

	err := service.DeleteMarca(99)
	var nf *apperrors.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestDeleteMarcaBlockedWhileInUse(t *testing.T) {
	db := setupTestDB(t)
	service := NewMarcaService(db)
	calzadoService := NewCalzadoService(db, true)

	marca, err := service.CreateMarca("Nike")
	require.NoError(t, err)

	dto, err := calzadoService.CreateCalzado(&dtos.CalzadoInput{
		Talle:        "42",
		Ancho:        10,
		Alto:         30,
		TipoRegistro: "dubitada",
		IdMarca:      &marca.Id,
	})
	require.NoError(t, err)

	err = service.DeleteMarca(marca.Id)
	var enUso *apperrors.InUseError
	require.ErrorAs(t, err, &enUso)

	// con el calzado fuera, el borrado procede
	require.NoError(t, calzadoService.DeleteCalzado(dto.IdCalzado))
	require.NoError(t, service.DeleteMarca(marca.Id))

	marcas, err := service.GetAllMarcas()
	require.NoError(t, err)
	assert.Empty(t, marcas)
}

func TestDeleteColorBlockedWhileAssigned(t *testing.T) {
	db := setupTestDB(t)
	colorService := NewColorService(db)
	calzadoService := NewCalzadoService(db, true)

	color, err := colorService.CreateColor("Negro")
	require.NoError(t, err)

	dto, err := calzadoService.CreateCalzado(&dtos.CalzadoInput{
		Talle:        "41",
		Ancho:        9,
		Alto:         28,
		TipoRegistro: "dubitada",
		IdColores:    []int{color.Id},
	})
	require.NoError(t, err)

	err = colorService.DeleteColor(color.Id)
	var enUso *apperrors.InUseError
	require.ErrorAs(t, err, &enUso)

	require.NoError(t, calzadoService.DeleteCalzado(dto.IdCalzado))
	require.NoError(t, colorService.DeleteColor(color.Id))
}

func TestDeleteCuadranteBlockedWhileReferenced(t *testing.T) {
	db := setupTestDB(t)
	cuadranteService := NewCuadranteService(db)
	formaService := NewFormaGeometricaService(db)
	calzadoService := NewCalzadoService(db, true)
	suelaService := NewSuelaService(db)

	cuadrante, err := cuadranteService.CreateCuadrante("Superior izquierdo")
	require.NoError(t, err)
	forma, err := formaService.CreateForma("Circulo")
	require.NoError(t, err)

	idCalzado := crearCalzadoBasico(t, calzadoService, "dubitada")
	suela, err := suelaService.CreateSuela(&dtos.SuelaInput{
		IdCalzado: idCalzado,
		Detalles: []dtos.DetalleSuelaInput{
			{IdCuadrante: cuadrante.Id, IdForma: forma.Id},
		},
	})
	require.NoError(t, err)

	err = cuadranteService.DeleteCuadrante(cuadrante.Id)
	var enUso *apperrors.InUseError
	require.ErrorAs(t, err, &enUso)

	err = formaService.DeleteForma(forma.Id)
	require.ErrorAs(t, err, &enUso)

	require.NoError(t, suelaService.DeleteSuela(suela.IdSuela))
	require.NoError(t, cuadranteService.DeleteCuadrante(cuadrante.Id))
	require.NoError(t, formaService.DeleteForma(forma.Id))
}
