package services

import (
	"testing"

	"github.com/SIPEC/SIPEC-Backend/src/apperrors"
	"github.com/SIPEC/SIPEC-Backend/src/dtos"
	"github.com/SIPEC/SIPEC-Backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCalzadoWithAssociations(t *testing.T) {
	db := setupTestDB(t)
	service := NewCalzadoService(db, true)
	marcaService := NewMarcaService(db)
	colorService := NewColorService(db)

	marca, err := marcaService.CreateMarca("Nike")
	require.NoError(t, err)
	negro, err := colorService.CreateColor("Negro")
	require.NoError(t, err)
	blanco, err := colorService.CreateColor("Blanco")
	require.NoError(t, err)

	dto, err := service.CreateCalzado(&dtos.CalzadoInput{
		Talle:        "42",
		Ancho:        10.5,
		Alto:         30.2,
		TipoRegistro: "indubitada_proveedor",
		IdMarca:      &marca.Id,
		IdColores:    []int{negro.Id, blanco.Id},
	})
	require.NoError(t, err)
	assert.Equal(t, "42", dto.Talle)
	require.NotNil(t, dto.Marca)
	assert.Equal(t, "Nike", *dto.Marca)
	assert.Nil(t, dto.Modelo)
	assert.ElementsMatch(t, []string{"Negro", "Blanco"}, dto.Colores)
}

func TestCreateCalzadoInvalidTipoRegistro(t *testing.T) {
	db := setupTestDB(t)
	service := NewCalzadoService(db, true)

	_, err := service.CreateCalzado(&dtos.CalzadoInput{
		Talle:        "42",
		TipoRegistro: "sospechosa",
	})
	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestCreateCalzadoInvalidMarcaRollsBack(t *testing.T) {
	db := setupTestDB(t)
	service := NewCalzadoService(db, true)

	idInexistente := 999
	_, err := service.CreateCalzado(&dtos.CalzadoInput{
		Talle:        "42",
		TipoRegistro: "dubitada",
		IdMarca:      &idInexistente,
	})
	var ref *apperrors.InvalidReferenceError
	require.ErrorAs(t, err, &ref)
	assert.Equal(t, "marca", ref.Entidad)

	var cuenta int64
	require.NoError(t, db.Model(&models.CalzadoModel{}).Count(&cuenta).Error)
	assert.Zero(t, cuenta)
}

func TestCreateCalzadoInvalidColorRollsBack(t *testing.T) {
	db := setupTestDB(t)
	service := NewCalzadoService(db, true)

	_, err := service.CreateCalzado(&dtos.CalzadoInput{
		Talle:        "42",
		TipoRegistro: "dubitada",
		IdColores:    []int{777},
	})
	var ref *apperrors.InvalidReferenceError
	require.ErrorAs(t, err, &ref)

	// el calzado no debe quedar a medio insertar
	var cuenta int64
	require.NoError(t, db.Model(&models.CalzadoModel{}).Count(&cuenta).Error)
	assert.Zero(t, cuenta)
}

func TestGetCalzadosPorTipo(t *testing.T) {
	db := setupTestDB(t)
	service := NewCalzadoService(db, true)

	crearCalzadoBasico(t, service, "dubitada")
	crearCalzadoBasico(t, service, "indubitada_proveedor")
	crearCalzadoBasico(t, service, "indubitada_comisaria")

	dubitadas, err := service.GetCalzadosPorTipo("dubitada")
	require.NoError(t, err)
	assert.Len(t, dubitadas, 1)

	// indubitada abarca proveedor y comisaria
	indubitadas, err := service.GetCalzadosPorTipo("indubitada")
	require.NoError(t, err)
	assert.Len(t, indubitadas, 2)

	_, err = service.GetCalzadosPorTipo("otro")
	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestGetCalzadoPorTipoYIDMismatch(t *testing.T) {
	db := setupTestDB(t)
	service := NewCalzadoService(db, true)

	id := crearCalzadoBasico(t, service, "dubitada")

	dto, err := service.GetCalzadoPorTipoYID("dubitada", id)
	require.NoError(t, err)
	assert.Equal(t, id, dto.IdCalzado)

	_, err = service.GetCalzadoPorTipoYID("indubitada", id)
	var kind *apperrors.InvalidRegistrationKindError
	require.ErrorAs(t, err, &kind)
	assert.Equal(t, "dubitada", kind.Tipo)

	_, err = service.GetCalzadoPorTipoYID("dubitada", 999)
	var nf *apperrors.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestUpdateCalzadoPartialFields(t *testing.T) {
	db := setupTestDB(t)
	service := NewCalzadoService(db, true)
	marcaService := NewMarcaService(db)

	marca, err := marcaService.CreateMarca("Nike")
	require.NoError(t, err)

	dto, err := service.CreateCalzado(&dtos.CalzadoInput{
		Talle:        "42",
		Ancho:        10,
		Alto:         30,
		TipoRegistro: "dubitada",
		IdMarca:      &marca.Id,
	})
	require.NoError(t, err)

	// solo cambia el talle; la marca queda intacta
	actualizado, err := service.UpdateCalzado(dto.IdCalzado, map[string]interface{}{
		"talle": "43",
	})
	require.NoError(t, err)
	assert.Equal(t, "43", actualizado.Talle)
	require.NotNil(t, actualizado.Marca)
	assert.Equal(t, "Nike", *actualizado.Marca)
}

func TestUpdateCalzadoExplicitNullClearsFK(t *testing.T) {
	db := setupTestDB(t)
	service := NewCalzadoService(db, true)
	marcaService := NewMarcaService(db)

	marca, err := marcaService.CreateMarca("Nike")
	require.NoError(t, err)

	dto, err := service.CreateCalzado(&dtos.CalzadoInput{
		Talle:        "42",
		TipoRegistro: "dubitada",
		IdMarca:      &marca.Id,
	})
	require.NoError(t, err)

	actualizado, err := service.UpdateCalzado(dto.IdCalzado, map[string]interface{}{
		"id_marca": nil,
	})
	require.NoError(t, err)
	assert.Nil(t, actualizado.IdMarca)
	assert.Nil(t, actualizado.Marca)
}

func TestUpdateCalzadoInvalidFK(t *testing.T) {
	db := setupTestDB(t)
	service := NewCalzadoService(db, true)

	id := crearCalzadoBasico(t, service, "dubitada")

	_, err := service.UpdateCalzado(id, map[string]interface{}{
		// los ids llegan como float64 desde el JSON
		"id_modelo": float64(555),
	})
	var ref *apperrors.InvalidReferenceError
	require.ErrorAs(t, err, &ref)
	assert.Equal(t, "modelo", ref.Entidad)
}

func TestUpdateCalzadoReplacesColores(t *testing.T) {
	db := setupTestDB(t)
	service := NewCalzadoService(db, true)
	colorService := NewColorService(db)

	negro, err := colorService.CreateColor("Negro")
	require.NoError(t, err)
	rojo, err := colorService.CreateColor("Rojo")
	require.NoError(t, err)

	dto, err := service.CreateCalzado(&dtos.CalzadoInput{
		Talle:        "42",
		TipoRegistro: "dubitada",
		IdColores:    []int{negro.Id},
	})
	require.NoError(t, err)

	actualizado, err := service.UpdateCalzado(dto.IdCalzado, map[string]interface{}{
		"id_colores": []interface{}{float64(rojo.Id)},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Rojo"}, actualizado.Colores)

	// lista vacia: se limpian todos los colores
	actualizado, err = service.UpdateCalzado(dto.IdCalzado, map[string]interface{}{
		"id_colores": []interface{}{},
	})
	require.NoError(t, err)
	assert.Empty(t, actualizado.Colores)
}

func TestUpdateCalzadoEmptyBody(t *testing.T) {
	db := setupTestDB(t)
	service := NewCalzadoService(db, true)

	id := crearCalzadoBasico(t, service, "dubitada")

	_, err := service.UpdateCalzado(id, map[string]interface{}{})
	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestDeleteCalzadoCascades(t *testing.T) {
	db := setupTestDB(t)
	service := NewCalzadoService(db, true)
	suelaService := NewSuelaService(db)
	cuadranteService := NewCuadranteService(db)
	formaService := NewFormaGeometricaService(db)

	cuadrante, err := cuadranteService.CreateCuadrante("Superior izquierdo")
	require.NoError(t, err)
	forma, err := formaService.CreateForma("Circulo")
	require.NoError(t, err)

	id := crearCalzadoBasico(t, service, "dubitada")
	_, err = suelaService.CreateSuela(&dtos.SuelaInput{
		IdCalzado: id,
		Detalles: []dtos.DetalleSuelaInput{
			{IdCuadrante: cuadrante.Id, IdForma: forma.Id},
		},
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteCalzado(id))

	var suelas, detalles int64
	require.NoError(t, db.Model(&models.SuelaModel{}).Count(&suelas).Error)
	require.NoError(t, db.Model(&models.DetalleSuelaModel{}).Count(&detalles).Error)
	assert.Zero(t, suelas)
	assert.Zero(t, detalles)

	_, err = service.GetCalzadoByID(id)
	var nf *apperrors.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestVincularImputadoDuplicatePair(t *testing.T) {
	db := setupTestDB(t)
	service := NewCalzadoService(db, true)
	imputadoService := NewImputadoService(db, service)

	idCalzado := crearCalzadoBasico(t, service, "dubitada")
	idImputado := crearImputadoBasico(t, imputadoService, "Juan Perez", "12345678")

	require.NoError(t, service.VincularImputado(idCalzado, idImputado))

	err := service.VincularImputado(idCalzado, idImputado)
	var dup *apperrors.DuplicateAssociationError
	require.ErrorAs(t, err, &dup)
}

func TestDesvincularImputadoNotLinked(t *testing.T) {
	db := setupTestDB(t)
	service := NewCalzadoService(db, true)
	imputadoService := NewImputadoService(db, service)

	idCalzado := crearCalzadoBasico(t, service, "dubitada")
	idImputado := crearImputadoBasico(t, imputadoService, "Juan Perez", "12345678")

	err := service.DesvincularImputado(idCalzado, idImputado)
	var nf *apperrors.AssociationNotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestDesvincularLastImputadoDeletesCalzado(t *testing.T) {
	db := setupTestDB(t)
	service := NewCalzadoService(db, true)
	imputadoService := NewImputadoService(db, service)

	idCalzado := crearCalzadoBasico(t, service, "dubitada")
	idImputado := crearImputadoBasico(t, imputadoService, "Juan Perez", "12345678")
	require.NoError(t, service.VincularImputado(idCalzado, idImputado))

	require.NoError(t, service.DesvincularImputado(idCalzado, idImputado))

	// sin imputados restantes, el calzado huerfano se borra completo
	_, err := service.GetCalzadoByID(idCalzado)
	var notFound *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestDesvincularKeepsCalzadoWhileLinked(t *testing.T) {
	db := setupTestDB(t)
	service := NewCalzadoService(db, true)
	imputadoService := NewImputadoService(db, service)

	idCalzado := crearCalzadoBasico(t, service, "dubitada")
	primero := crearImputadoBasico(t, imputadoService, "Juan Perez", "12345678")
	segundo := crearImputadoBasico(t, imputadoService, "Maria Gomez", "87654321")
	require.NoError(t, service.VincularImputado(idCalzado, primero))
	require.NoError(t, service.VincularImputado(idCalzado, segundo))

	require.NoError(t, service.DesvincularImputado(idCalzado, primero))

	_, err := service.GetCalzadoByID(idCalzado)
	require.NoError(t, err)
}

func TestDesvincularOrphanPolicyDisabled(t *testing.T) {
	db := setupTestDB(t)
	service := NewCalzadoService(db, false)
	imputadoService := NewImputadoService(db, service)

	idCalzado := crearCalzadoBasico(t, service, "dubitada")
	idImputado := crearImputadoBasico(t, imputadoService, "Juan Perez", "12345678")
	require.NoError(t, service.VincularImputado(idCalzado, idImputado))

	require.NoError(t, service.DesvincularImputado(idCalzado, idImputado))

	// con la politica apagada el calzado sobrevive sin imputados
	_, err := service.GetCalzadoByID(idCalzado)
	require.NoError(t, err)
}

func TestCreateCalzadoConImputadoNewImputado(t *testing.T) {
	db := setupTestDB(t)
	service := NewCalzadoService(db, true)

	resultado, err := service.CreateCalzadoConImputado(&dtos.CalzadoConImputadoInput{
		Imputado: dtos.ImputadoInput{
			Nombre:       "Juan Perez",
			Dni:          "12345678",
			Direccion:    "Calle Falsa 123",
			Comisaria:    "Comisaria 1ra",
			Jurisdiccion: "La Plata",
		},
		Calzado: dtos.CalzadoInput{
			Talle:        "42",
			Ancho:        10,
			Alto:         30,
			TipoRegistro: "dubitada",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Juan Perez", resultado.Imputado.Nombre)
	assert.NotZero(t, resultado.Calzado.IdCalzado)

	conCalzados, err := service.GetCalzadosPorDni("12345678")
	require.NoError(t, err)
	require.Len(t, conCalzados.Calzados, 1)
	assert.Equal(t, resultado.Calzado.IdCalzado, conCalzados.Calzados[0].IdCalzado)
}

func TestCreateCalzadoConImputadoReusesByDni(t *testing.T) {
	db := setupTestDB(t)
	service := NewCalzadoService(db, true)
	imputadoService := NewImputadoService(db, service)

	idImputado := crearImputadoBasico(t, imputadoService, "Juan Perez", "12345678")

	resultado, err := service.CreateCalzadoConImputado(&dtos.CalzadoConImputadoInput{
		Imputado: dtos.ImputadoInput{Dni: "12345678"},
		Calzado: dtos.CalzadoInput{
			Talle:        "44",
			TipoRegistro: "dubitada",
		},
	})
	require.NoError(t, err)
	// mismo dni: se reutiliza el imputado existente, sin validar el resto
	assert.Equal(t, idImputado, resultado.Imputado.Id)

	imputados, err := imputadoService.GetAllImputados()
	require.NoError(t, err)
	assert.Len(t, imputados, 1)
}

func TestCreateCalzadoConImputadoTrimsDniLookup(t *testing.T) {
	db := setupTestDB(t)
	service := NewCalzadoService(db, true)
	imputadoService := NewImputadoService(db, service)

	idImputado := crearImputadoBasico(t, imputadoService, "Juan Perez", "12345678")

	// el dni con espacios tiene que resolver al imputado ya registrado
	resultado, err := service.CreateCalzadoConImputado(&dtos.CalzadoConImputadoInput{
		Imputado: dtos.ImputadoInput{Dni: " 12345678 "},
		Calzado: dtos.CalzadoInput{
			Talle:        "44",
			TipoRegistro: "dubitada",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, idImputado, resultado.Imputado.Id)

	imputados, err := imputadoService.GetAllImputados()
	require.NoError(t, err)
	assert.Len(t, imputados, 1)
}

func TestUpdateCalzadoConImputado(t *testing.T) {
	db := setupTestDB(t)
	service := NewCalzadoService(db, true)
	imputadoService := NewImputadoService(db, service)

	idCalzado := crearCalzadoBasico(t, service, "dubitada")
	idImputado := crearImputadoBasico(t, imputadoService, "Juan Perez", "12345678")
	require.NoError(t, service.VincularImputado(idCalzado, idImputado))

	resultado, err := service.UpdateCalzadoConImputado(idCalzado, idImputado, &dtos.CalzadoConImputadoUpdateInput{
		Calzado:  map[string]interface{}{"talle": "44"},
		Imputado: map[string]interface{}{"direccion": "Avenida Siempreviva 742"},
	})
	require.NoError(t, err)
	assert.Equal(t, "44", resultado.Calzado.Talle)
	assert.Equal(t, "Avenida Siempreviva 742", resultado.Imputado.Direccion)

	// un lado solo tambien vale
	resultado, err = service.UpdateCalzadoConImputado(idCalzado, idImputado, &dtos.CalzadoConImputadoUpdateInput{
		Imputado: map[string]interface{}{"comisaria": "Comisaria 2da"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Comisaria 2da", resultado.Imputado.Comisaria)
	assert.Equal(t, "44", resultado.Calzado.Talle)
}

func TestUpdateCalzadoConImputadoNotLinked(t *testing.T) {
	db := setupTestDB(t)
	service := NewCalzadoService(db, true)
	imputadoService := NewImputadoService(db, service)

	idCalzado := crearCalzadoBasico(t, service, "dubitada")
	idImputado := crearImputadoBasico(t, imputadoService, "Juan Perez", "12345678")

	_, err := service.UpdateCalzadoConImputado(idCalzado, idImputado, &dtos.CalzadoConImputadoUpdateInput{
		Calzado: map[string]interface{}{"talle": "44"},
	})
	var nf *apperrors.AssociationNotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestUpdateCalzadoConImputadoRollsBackOnDniConflict(t *testing.T) {
	db := setupTestDB(t)
	service := NewCalzadoService(db, true)
	imputadoService := NewImputadoService(db, service)

	idCalzado := crearCalzadoBasico(t, service, "dubitada")
	idImputado := crearImputadoBasico(t, imputadoService, "Juan Perez", "12345678")
	crearImputadoBasico(t, imputadoService, "Maria Gomez", "87654321")
	require.NoError(t, service.VincularImputado(idCalzado, idImputado))

	_, err := service.UpdateCalzadoConImputado(idCalzado, idImputado, &dtos.CalzadoConImputadoUpdateInput{
		Calzado:  map[string]interface{}{"talle": "45"},
		Imputado: map[string]interface{}{"dni": "87654321"},
	})
	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)

	// el lado imputado fallo: el cambio de talle tambien se revierte
	dto, err := service.GetCalzadoByID(idCalzado)
	require.NoError(t, err)
	assert.Equal(t, "42", dto.Talle)
}

func TestUpdateCalzadoConImputadoEmptyBody(t *testing.T) {
	db := setupTestDB(t)
	service := NewCalzadoService(db, true)

	_, err := service.UpdateCalzadoConImputado(1, 1, &dtos.CalzadoConImputadoUpdateInput{})
	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestGetCalzadosPorDniUnknown(t *testing.T) {
	db := setupTestDB(t)
	service := NewCalzadoService(db, true)

	_, err := service.GetCalzadosPorDni("00000000")
	var nf *apperrors.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestGetImputadosConCalzados(t *testing.T) {
	db := setupTestDB(t)
	service := NewCalzadoService(db, true)
	imputadoService := NewImputadoService(db, service)

	idCalzado := crearCalzadoBasico(t, service, "dubitada")
	primero := crearImputadoBasico(t, imputadoService, "Juan Perez", "12345678")
	crearImputadoBasico(t, imputadoService, "Maria Gomez", "87654321")
	require.NoError(t, service.VincularImputado(idCalzado, primero))

	resultado, err := service.GetImputadosConCalzados()
	require.NoError(t, err)
	require.Len(t, resultado, 2)

	porDni := map[string]int{}
	for _, entrada := range resultado {
		porDni[entrada.Imputado.Dni] = len(entrada.Calzados)
	}
	assert.Equal(t, 1, porDni["12345678"])
	assert.Equal(t, 0, porDni["87654321"])
}
