package services

import (
	"testing"

	"github.com/SIPEC/SIPEC-Backend/src/apperrors"
	"github.com/SIPEC/SIPEC-Backend/src/dtos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateImputadoMissingFields(t *testing.T) {
	db := setupTestDB(t)
	service := NewImputadoService(db, NewCalzadoService(db, true))

	_, err := service.CreateImputado(&dtos.ImputadoInput{
		Nombre: "Juan Perez",
		Dni:    "12345678",
	})
	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	// el mensaje enumera cada campo faltante
	assert.Contains(t, vErr.Mensaje, "direccion")
	assert.Contains(t, vErr.Mensaje, "comisaria")
	assert.Contains(t, vErr.Mensaje, "jurisdiccion")
}

func TestCreateImputadoDuplicateDni(t *testing.T) {
	db := setupTestDB(t)
	service := NewImputadoService(db, NewCalzadoService(db, true))

	crearImputadoBasico(t, service, "Juan Perez", "12345678")

	_, err := service.CreateImputado(&dtos.ImputadoInput{
		Nombre:       "Otro Nombre",
		Dni:          "12345678",
		Direccion:    "Calle 2",
		Comisaria:    "Comisaria 2da",
		Jurisdiccion: "Quilmes",
	})
	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestCreateImputadoDuplicateName(t *testing.T) {
	db := setupTestDB(t)
	service := NewImputadoService(db, NewCalzadoService(db, true))

	crearImputadoBasico(t, service, "Juan Perez", "12345678")

	_, err := service.CreateImputado(&dtos.ImputadoInput{
		Nombre:       " juan perez ",
		Dni:          "99999999",
		Direccion:    "Calle 2",
		Comisaria:    "Comisaria 2da",
		Jurisdiccion: "Quilmes",
	})
	var dup *apperrors.DuplicateNameError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "Juan Perez", dup.Nombre)
}

func TestUpdateImputadoPartial(t *testing.T) {
	db := setupTestDB(t)
	service := NewImputadoService(db, NewCalzadoService(db, true))

	id := crearImputadoBasico(t, service, "Juan Perez", "12345678")

	actualizado, err := service.UpdateImputado(id, map[string]interface{}{
		"direccion": "Avenida Siempreviva 742",
	})
	require.NoError(t, err)
	assert.Equal(t, "Avenida Siempreviva 742", actualizado.Direccion)
	assert.Equal(t, "Juan Perez", actualizado.Nombre)
}

func TestUpdateImputadoDniConflict(t *testing.T) {
	db := setupTestDB(t)
	service := NewImputadoService(db, NewCalzadoService(db, true))

	crearImputadoBasico(t, service, "Juan Perez", "12345678")
	id := crearImputadoBasico(t, service, "Maria Gomez", "87654321")

	_, err := service.UpdateImputado(id, map[string]interface{}{
		"dni": "12345678",
	})
	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)

	// repetir el propio dni no es conflicto
	_, err = service.UpdateImputado(id, map[string]interface{}{
		"dni": "87654321",
	})
	require.NoError(t, err)
}

func TestDeleteImputadoBlockedWithCalzados(t *testing.T) {
	db := setupTestDB(t)
	calzadoService := NewCalzadoService(db, true)
	service := NewImputadoService(db, calzadoService)

	id := crearImputadoBasico(t, service, "Juan Perez", "12345678")
	idCalzado := crearCalzadoBasico(t, calzadoService, "dubitada")
	require.NoError(t, service.VincularCalzado(id, idCalzado))

	err := service.DeleteImputado(id)
	var dep *apperrors.HasDependentsError
	require.ErrorAs(t, err, &dep)

	// desvinculado el calzado, el borrado procede
	require.NoError(t, service.DesvincularCalzado(id, idCalzado))
	require.NoError(t, service.DeleteImputado(id))
}

func TestEditarCalzadoVinculado(t *testing.T) {
	db := setupTestDB(t)
	calzadoService := NewCalzadoService(db, true)
	service := NewImputadoService(db, calzadoService)

	id := crearImputadoBasico(t, service, "Juan Perez", "12345678")
	idCalzado := crearCalzadoBasico(t, calzadoService, "dubitada")
	require.NoError(t, service.VincularCalzado(id, idCalzado))

	dto, err := service.EditarCalzadoVinculado(id, idCalzado, map[string]interface{}{
		"talle":         "44",
		"tipo_registro": "indubitada_comisaria",
	})
	require.NoError(t, err)
	assert.Equal(t, "44", dto.Talle)
	assert.Equal(t, "indubitada_comisaria", dto.TipoRegistro)
}

func TestEditarCalzadoVinculadoNotLinked(t *testing.T) {
	db := setupTestDB(t)
	calzadoService := NewCalzadoService(db, true)
	service := NewImputadoService(db, calzadoService)

	id := crearImputadoBasico(t, service, "Juan Perez", "12345678")
	idCalzado := crearCalzadoBasico(t, calzadoService, "dubitada")

	_, err := service.EditarCalzadoVinculado(id, idCalzado, map[string]interface{}{
		"talle": "44",
	})
	var nf *apperrors.AssociationNotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestEditarCalzadoVinculadoInvalidTipo(t *testing.T) {
	db := setupTestDB(t)
	calzadoService := NewCalzadoService(db, true)
	service := NewImputadoService(db, calzadoService)

	id := crearImputadoBasico(t, service, "Juan Perez", "12345678")
	idCalzado := crearCalzadoBasico(t, calzadoService, "dubitada")
	require.NoError(t, service.VincularCalzado(id, idCalzado))

	_, err := service.EditarCalzadoVinculado(id, idCalzado, map[string]interface{}{
		"tipo_registro": "sospechosa",
	})
	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
}
