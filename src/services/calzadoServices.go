package services

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/SIPEC/SIPEC-Backend/src/apperrors"
	"github.com/SIPEC/SIPEC-Backend/src/dtos"
	"github.com/SIPEC/SIPEC-Backend/src/models"
	excelize "github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type ImportResult struct {
	Importados int      `json:"importados"`
	Errores    []string `json:"errores"`
}

type CalzadoService struct {
	db *gorm.DB
	// eliminarHuerfanos: al desvincular el ultimo imputado de un calzado,
	// el calzado se borra completo (politica DELETE_UNLINKED_CALZADO).
	eliminarHuerfanos bool
}

func NewCalzadoService(db *gorm.DB, eliminarHuerfanos bool) *CalzadoService {
	return &CalzadoService{db: db, eliminarHuerfanos: eliminarHuerfanos}
}

// conJoins precarga las asociaciones que la vista denormalizada necesita
func (s *CalzadoService) conJoins(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Marca").
		Preload("Modelo").
		Preload("Categoria").
		Preload("Colores")
}

// ======================= LECTURAS =======================

func (s *CalzadoService) GetAllCalzados() ([]dtos.CalzadoDTO, error) {
	var calzados []models.CalzadoModel
	if err := s.conJoins(s.db).Find(&calzados).Error; err != nil {
		return nil, err
	}
	resultado := make([]dtos.CalzadoDTO, 0, len(calzados))
	for i := range calzados {
		resultado = append(resultado, dtos.NewCalzadoDTO(&calzados[i]))
	}
	return resultado, nil
}

func (s *CalzadoService) GetCalzadoByID(id int) (*dtos.CalzadoDTO, error) {
	var calzado models.CalzadoModel
	if err := s.conJoins(s.db).First(&calzado, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("calzado", id)
		}
		return nil, err
	}
	dto := dtos.NewCalzadoDTO(&calzado)
	return &dto, nil
}

// tiposParaFiltro traduce el filtro publico (dubitada | indubitada) a los
// valores reales de tipo_registro; indubitada abarca proveedor y comisaria.
func tiposParaFiltro(tipo string) ([]string, error) {
	switch tipo {
	case "dubitada":
		return []string{models.TipoDubitada}, nil
	case "indubitada":
		return []string{models.TipoIndubitadaProveedor, models.TipoIndubitadaComisaria}, nil
	}
	return nil, &apperrors.ValidationError{Mensaje: fmt.Sprintf("Tipo de registro desconocido: %q", tipo)}
}

// GetCalzadosPorTipo lista solo los calzados del tipo pedido
func (s *CalzadoService) GetCalzadosPorTipo(tipo string) ([]dtos.CalzadoDTO, error) {
	tipos, err := tiposParaFiltro(tipo)
	if err != nil {
		return nil, err
	}
	var calzados []models.CalzadoModel
	if err := s.conJoins(s.db).Where("tipo_registro IN ?", tipos).Find(&calzados).Error; err != nil {
		return nil, err
	}
	resultado := make([]dtos.CalzadoDTO, 0, len(calzados))
	for i := range calzados {
		resultado = append(resultado, dtos.NewCalzadoDTO(&calzados[i]))
	}
	return resultado, nil
}

// GetCalzadoPorTipoYID busca por id a traves del accessor de un tipo; si el
// calzado existe pero es del otro tipo devuelve InvalidRegistrationKindError.
func (s *CalzadoService) GetCalzadoPorTipoYID(tipo string, id int) (*dtos.CalzadoDTO, error) {
	tipos, err := tiposParaFiltro(tipo)
	if err != nil {
		return nil, err
	}
	var calzado models.CalzadoModel
	if err := s.conJoins(s.db).First(&calzado, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("calzado", id)
		}
		return nil, err
	}
	coincide := false
	for _, t := range tipos {
		if calzado.TipoRegistro == t {
			coincide = true
		}
	}
	if !coincide {
		return nil, &apperrors.InvalidRegistrationKindError{Id: id, Tipo: calzado.TipoRegistro, Esperado: tipo}
	}
	dto := dtos.NewCalzadoDTO(&calzado)
	return &dto, nil
}

// ======================= ALTAS =======================

// createCalzadoTx inserta el calzado y sus colores dentro de la transaccion
// del llamador. Toda referencia invalida aborta la insercion completa.
func (s *CalzadoService) createCalzadoTx(tx *gorm.DB, in *dtos.CalzadoInput) (*models.CalzadoModel, error) {
	if !models.TipoRegistroValido(in.TipoRegistro) {
		return nil, &apperrors.ValidationError{
			Mensaje: fmt.Sprintf("tipo_registro inválido: %q", in.TipoRegistro),
		}
	}
	if in.IdMarca != nil {
		var marca models.MarcaModel
		if err := tx.First(&marca, *in.IdMarca).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &apperrors.InvalidReferenceError{Entidad: "marca", Id: *in.IdMarca}
			}
			return nil, err
		}
	}
	if in.IdModelo != nil {
		var modelo models.ModeloModel
		if err := tx.First(&modelo, *in.IdModelo).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &apperrors.InvalidReferenceError{Entidad: "modelo", Id: *in.IdModelo}
			}
			return nil, err
		}
	}
	if in.IdCategoria != nil {
		var categoria models.CategoriaModel
		if err := tx.First(&categoria, *in.IdCategoria).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &apperrors.InvalidReferenceError{Entidad: "categoria", Id: *in.IdCategoria}
			}
			return nil, err
		}
	}

	calzado := models.CalzadoModel{
		Talle:        in.Talle,
		Ancho:        in.Ancho,
		Alto:         in.Alto,
		TipoRegistro: in.TipoRegistro,
		MarcaID:      in.IdMarca,
		ModeloID:     in.IdModelo,
		CategoriaID:  in.IdCategoria,
	}
	if err := tx.Create(&calzado).Error; err != nil {
		return nil, err
	}
	if err := s.agregarColoresTx(tx, &calzado, in.IdColores); err != nil {
		return nil, err
	}
	return &calzado, nil
}

// agregarColoresTx verifica y asocia cada color; se asume set vacio previo
func (s *CalzadoService) agregarColoresTx(tx *gorm.DB, calzado *models.CalzadoModel, idColores []int) error {
	for _, idColor := range idColores {
		var color models.ColorModel
		if err := tx.First(&color, idColor).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &apperrors.InvalidReferenceError{Entidad: "color", Id: idColor}
			}
			return err
		}
		if err := tx.Model(calzado).Association("Colores").Append(&color); err != nil {
			return err
		}
	}
	return nil
}

func (s *CalzadoService) CreateCalzado(in *dtos.CalzadoInput) (*dtos.CalzadoDTO, error) {
	var calzado *models.CalzadoModel
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		calzado, err = s.createCalzadoTx(tx, in)
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.GetCalzadoByID(calzado.Id)
}

// ======================= UPDATE PARCIAL =======================

// idDesdeValor convierte el valor crudo del JSON (float64) a un id entero
func idDesdeValor(v interface{}) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	}
	return 0, false
}

// UpdateCalzado aplica un update parcial: solo cambian los campos presentes
// en data; un FK presente con valor null se escribe como NULL. Si viene
// id_colores el set de colores se limpia y se reemplaza entero.
func (s *CalzadoService) UpdateCalzado(id int, data map[string]interface{}) (*dtos.CalzadoDTO, error) {
	if len(data) == 0 {
		return nil, &apperrors.ValidationError{Mensaje: "Se requiere al menos un campo para actualizar"}
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var calzado models.CalzadoModel
		if err := tx.First(&calzado, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("calzado", id)
			}
			return err
		}

		cambios := map[string]interface{}{}
		if v, ok := data["talle"]; ok {
			cambios["talle"] = v
		}
		if v, ok := data["ancho"]; ok {
			cambios["ancho"] = v
		}
		if v, ok := data["alto"]; ok {
			cambios["alto"] = v
		}
		if v, ok := data["tipo_registro"]; ok {
			tipo, _ := v.(string)
			if !models.TipoRegistroValido(tipo) {
				return &apperrors.ValidationError{Mensaje: fmt.Sprintf("tipo_registro inválido: %q", tipo)}
			}
			cambios["tipo_registro"] = tipo
		}

		fks := []struct {
			clave   string
			columna string
			entidad string
			modelo  interface{}
		}{
			{"id_marca", "marca_id", "marca", &models.MarcaModel{}},
			{"id_modelo", "modelo_id", "modelo", &models.ModeloModel{}},
			{"id_categoria", "categoria_id", "categoria", &models.CategoriaModel{}},
		}
		for _, fk := range fks {
			v, ok := data[fk.clave]
			if !ok {
				continue
			}
			if v == nil {
				cambios[fk.columna] = nil
				continue
			}
			idRef, ok := idDesdeValor(v)
			if !ok {
				return &apperrors.ValidationError{Mensaje: fmt.Sprintf("%s debe ser un id numérico", fk.clave)}
			}
			var cuenta int64
			if err := tx.Model(fk.modelo).Where("id = ?", idRef).Count(&cuenta).Error; err != nil {
				return err
			}
			if cuenta == 0 {
				return &apperrors.InvalidReferenceError{Entidad: fk.entidad, Id: idRef}
			}
			cambios[fk.columna] = idRef
		}

		if len(cambios) > 0 {
			if err := tx.Model(&calzado).Updates(cambios).Error; err != nil {
				return err
			}
		}

		if v, ok := data["id_colores"]; ok {
			crudos, ok := v.([]interface{})
			if !ok && v != nil {
				return &apperrors.ValidationError{Mensaje: "id_colores debe ser una lista de ids"}
			}
			idColores := make([]int, 0, len(crudos))
			for _, crudo := range crudos {
				idColor, ok := idDesdeValor(crudo)
				if !ok {
					return &apperrors.ValidationError{Mensaje: "id_colores debe ser una lista de ids"}
				}
				idColores = append(idColores, idColor)
			}
			// reemplazo completo: limpiar y volver a asociar
			if err := tx.Model(&calzado).Association("Colores").Clear(); err != nil {
				return err
			}
			if err := s.agregarColoresTx(tx, &calzado, idColores); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetCalzadoByID(id)
}

// ======================= BAJA =======================

// borrarCalzadoTx limpia todo lo que cuelga del calzado antes de borrar la
// fila: detalles de suela, suelas, colores y filas de calzado_imputados.
// No se confia en el cascade del motor.
func borrarCalzadoTx(tx *gorm.DB, id int) error {
	subSuelas := tx.Model(&models.SuelaModel{}).Select("id").Where("calzado_id = ?", id)
	if err := tx.Where("suela_id IN (?)", subSuelas).Delete(&models.DetalleSuelaModel{}).Error; err != nil {
		return err
	}
	if err := tx.Where("calzado_id = ?", id).Delete(&models.SuelaModel{}).Error; err != nil {
		return err
	}
	if err := tx.Exec("DELETE FROM calzado_colores WHERE calzado_id = ?", id).Error; err != nil {
		return err
	}
	if err := tx.Where("calzado_id = ?", id).Delete(&models.CalzadoImputadoModel{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.CalzadoModel{}, id).Error
}

func (s *CalzadoService) DeleteCalzado(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var calzado models.CalzadoModel
		if err := tx.First(&calzado, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("calzado", id)
			}
			return err
		}
		return borrarCalzadoTx(tx, id)
	})
}

// ======================= CALZADO + IMPUTADO =======================

// CreateCalzadoConImputado: alta compuesta. Si ya existe un imputado con ese
// dni se reutiliza; si no, se valida y se crea. Despues se crea el calzado y
// la fila de asociacion, todo en una sola transaccion.
func (s *CalzadoService) CreateCalzadoConImputado(in *dtos.CalzadoConImputadoInput) (*dtos.CalzadoConImputadoDTO, error) {
	var (
		imputado models.ImputadoModel
		calzado  *models.CalzadoModel
	)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// el dni se persiste recortado, la busqueda tiene que recortar igual
		err := tx.Where("dni = ?", strings.TrimSpace(in.Imputado.Dni)).First(&imputado).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			nuevo, err := crearImputadoTx(tx, &in.Imputado)
			if err != nil {
				return err
			}
			imputado = *nuevo
		case err != nil:
			return err
		}

		calzado, err = s.createCalzadoTx(tx, &in.Calzado)
		if err != nil {
			return err
		}
		return tx.Create(&models.CalzadoImputadoModel{
			CalzadoID:  calzado.Id,
			ImputadoID: imputado.Id,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	dto, err := s.GetCalzadoByID(calzado.Id)
	if err != nil {
		return nil, err
	}
	return &dtos.CalzadoConImputadoDTO{Imputado: imputado, Calzado: *dto}, nil
}

// cambiosCalzadoVinculado filtra el patch admitido sobre un calzado editado
// a traves de su vinculo: solo talle, ancho, alto y tipo_registro.
func cambiosCalzadoVinculado(data map[string]interface{}) (map[string]interface{}, error) {
	cambios := map[string]interface{}{}
	if v, ok := data["talle"]; ok {
		cambios["talle"] = v
	}
	if v, ok := data["ancho"]; ok {
		cambios["ancho"] = v
	}
	if v, ok := data["alto"]; ok {
		cambios["alto"] = v
	}
	if v, ok := data["tipo_registro"]; ok {
		tipo, _ := v.(string)
		if !models.TipoRegistroValido(tipo) {
			return nil, &apperrors.ValidationError{Mensaje: fmt.Sprintf("tipo_registro inválido: %q", tipo)}
		}
		cambios["tipo_registro"] = tipo
	}
	return cambios, nil
}

// UpdateCalzadoConImputado edita un par vinculado en una sola transaccion:
// el lado calzado admite el mismo patch restringido que la edicion via
// vinculo, el lado imputado el mismo patch parcial que PATCH /imputados.
// Cualquier error de un lado revierte los cambios del otro.
func (s *CalzadoService) UpdateCalzadoConImputado(calzadoId, imputadoId int, in *dtos.CalzadoConImputadoUpdateInput) (*dtos.CalzadoConImputadoDTO, error) {
	if len(in.Calzado) == 0 && len(in.Imputado) == 0 {
		return nil, &apperrors.ValidationError{Mensaje: "Se requiere al menos un campo para actualizar"}
	}
	var imputado models.ImputadoModel
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var calzado models.CalzadoModel
		if err := tx.First(&calzado, calzadoId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("calzado", calzadoId)
			}
			return err
		}
		if err := tx.First(&imputado, imputadoId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("imputado", imputadoId)
			}
			return err
		}
		var vinculo int64
		if err := tx.Model(&models.CalzadoImputadoModel{}).
			Where("calzado_id = ? AND imputado_id = ?", calzadoId, imputadoId).
			Count(&vinculo).Error; err != nil {
			return err
		}
		if vinculo == 0 {
			return &apperrors.AssociationNotFoundError{CalzadoId: calzadoId, ImputadoId: imputadoId}
		}

		if len(in.Calzado) > 0 {
			cambios, err := cambiosCalzadoVinculado(in.Calzado)
			if err != nil {
				return err
			}
			if len(cambios) > 0 {
				if err := tx.Model(&calzado).Updates(cambios).Error; err != nil {
					return err
				}
			}
		}
		if len(in.Imputado) > 0 {
			return aplicarCambiosImputadoTx(tx, &imputado, in.Imputado)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	dto, err := s.GetCalzadoByID(calzadoId)
	if err != nil {
		return nil, err
	}
	return &dtos.CalzadoConImputadoDTO{Imputado: imputado, Calzado: *dto}, nil
}

// VincularImputado crea la fila de asociacion; el par no puede repetirse.
func (s *CalzadoService) VincularImputado(calzadoId, imputadoId int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var calzado models.CalzadoModel
		if err := tx.First(&calzado, calzadoId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("calzado", calzadoId)
			}
			return err
		}
		var imputado models.ImputadoModel
		if err := tx.First(&imputado, imputadoId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("imputado", imputadoId)
			}
			return err
		}
		var existentes int64
		if err := tx.Model(&models.CalzadoImputadoModel{}).
			Where("calzado_id = ? AND imputado_id = ?", calzadoId, imputadoId).
			Count(&existentes).Error; err != nil {
			return err
		}
		if existentes > 0 {
			return &apperrors.DuplicateAssociationError{CalzadoId: calzadoId, ImputadoId: imputadoId}
		}
		return tx.Create(&models.CalzadoImputadoModel{CalzadoID: calzadoId, ImputadoID: imputadoId}).Error
	})
}

// DesvincularImputado borra la fila de asociacion. Con la politica de
// huerfanos activa, un calzado que queda sin imputados se borra completo.
func (s *CalzadoService) DesvincularImputado(calzadoId, imputadoId int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var calzado models.CalzadoModel
		if err := tx.First(&calzado, calzadoId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("calzado", calzadoId)
			}
			return err
		}
		var imputado models.ImputadoModel
		if err := tx.First(&imputado, imputadoId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("imputado", imputadoId)
			}
			return err
		}
		resultado := tx.Where("calzado_id = ? AND imputado_id = ?", calzadoId, imputadoId).
			Delete(&models.CalzadoImputadoModel{})
		if resultado.Error != nil {
			return resultado.Error
		}
		if resultado.RowsAffected == 0 {
			return &apperrors.AssociationNotFoundError{CalzadoId: calzadoId, ImputadoId: imputadoId}
		}

		if !s.eliminarHuerfanos {
			return nil
		}
		var restantes int64
		if err := tx.Model(&models.CalzadoImputadoModel{}).
			Where("calzado_id = ?", calzadoId).
			Count(&restantes).Error; err != nil {
			return err
		}
		if restantes == 0 {
			return borrarCalzadoTx(tx, calzadoId)
		}
		return nil
	})
}

// calzadosDeImputado arma la lista denormalizada de calzados vinculados
func (s *CalzadoService) calzadosDeImputado(imputadoId int) ([]dtos.CalzadoDTO, error) {
	var calzados []models.CalzadoModel
	err := s.conJoins(s.db).
		Joins("JOIN calzado_imputados ci ON ci.calzado_id = calzado_models.id").
		Where("ci.imputado_id = ?", imputadoId).
		Find(&calzados).Error
	if err != nil {
		return nil, err
	}
	resultado := make([]dtos.CalzadoDTO, 0, len(calzados))
	for i := range calzados {
		resultado = append(resultado, dtos.NewCalzadoDTO(&calzados[i]))
	}
	return resultado, nil
}

// GetCalzadosPorDni devuelve el imputado con ese dni y sus calzados
func (s *CalzadoService) GetCalzadosPorDni(dni string) (*dtos.ImputadoConCalzadosDTO, error) {
	var imputado models.ImputadoModel
	if err := s.db.Where("dni = ?", dni).First(&imputado).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Entidad: "imputado con dni", Ref: dni}
		}
		return nil, err
	}
	calzados, err := s.calzadosDeImputado(imputado.Id)
	if err != nil {
		return nil, err
	}
	return &dtos.ImputadoConCalzadosDTO{Imputado: imputado, Calzados: calzados}, nil
}

// GetImputadosConCalzados lista todos los imputados con sus calzados
func (s *CalzadoService) GetImputadosConCalzados() ([]dtos.ImputadoConCalzadosDTO, error) {
	var imputados []models.ImputadoModel
	if err := s.db.Find(&imputados).Error; err != nil {
		return nil, err
	}
	resultado := make([]dtos.ImputadoConCalzadosDTO, 0, len(imputados))
	for _, imputado := range imputados {
		calzados, err := s.calzadosDeImputado(imputado.Id)
		if err != nil {
			return nil, err
		}
		resultado = append(resultado, dtos.ImputadoConCalzadosDTO{Imputado: imputado, Calzados: calzados})
	}
	return resultado, nil
}

// ======================= IMPORTACION MASIVA =======================

// ImportCalzadosDesdeExcel carga especimenes desde una planilla. Columnas
// esperadas (primera fila como encabezado): categoria, marca, modelo, talle,
// ancho, alto, colores (separados por "/"), tipo_registro. Las filas con
// errores se informan y no frenan el resto de la importacion.
func (s *CalzadoService) ImportCalzadosDesdeExcel(r io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("archivo excel inválido: %w", err)
	}
	defer f.Close()

	hoja := f.GetSheetName(0)
	rows, err := f.GetRows(hoja)
	if err != nil {
		return nil, fmt.Errorf("no se pudo leer la hoja %s: %w", hoja, err)
	}

	resultado := &ImportResult{Importados: 0, Errores: []string{}}

	// caches por corrida para no repetir lookups de registro
	marcas := make(map[string]int)
	modelos := make(map[string]int)
	categorias := make(map[string]int)
	colores := make(map[string]int)

	celda := func(row []string, i int) string {
		if len(row) > i {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	for i, row := range rows {
		if i == 0 {
			continue // encabezado
		}
		if len(row) == 0 || celda(row, 3) == "" {
			continue // fila vacia o sin talle
		}

		categoriaNombre := celda(row, 0)
		marcaNombre := celda(row, 1)
		modeloNombre := celda(row, 2)
		talle := celda(row, 3)

		ancho, err := strconv.ParseFloat(celda(row, 4), 64)
		if err != nil {
			resultado.Errores = append(resultado.Errores, fmt.Sprintf("Fila %d: ancho inválido: %v", i+1, err))
			continue
		}
		alto, err := strconv.ParseFloat(celda(row, 5), 64)
		if err != nil {
			resultado.Errores = append(resultado.Errores, fmt.Sprintf("Fila %d: alto inválido: %v", i+1, err))
			continue
		}
		tipo := celda(row, 7)
		if !models.TipoRegistroValido(tipo) {
			resultado.Errores = append(resultado.Errores, fmt.Sprintf("Fila %d: tipo_registro inválido: %q", i+1, tipo))
			continue
		}

		in := dtos.CalzadoInput{
			Talle:        talle,
			Ancho:        ancho,
			Alto:         alto,
			TipoRegistro: tipo,
		}

		err = s.db.Transaction(func(tx *gorm.DB) error {
			if marcaNombre != "" {
				id, err := buscarOCrearRegistro(tx, &models.MarcaModel{}, marcaNombre, marcas,
					func(nombre string) interface{} { return &models.MarcaModel{Nombre: nombre} })
				if err != nil {
					return err
				}
				in.IdMarca = &id
			}
			if modeloNombre != "" {
				id, err := buscarOCrearRegistro(tx, &models.ModeloModel{}, modeloNombre, modelos,
					func(nombre string) interface{} { return &models.ModeloModel{Nombre: nombre} })
				if err != nil {
					return err
				}
				in.IdModelo = &id
			}
			if categoriaNombre != "" {
				id, err := buscarOCrearRegistro(tx, &models.CategoriaModel{}, categoriaNombre, categorias,
					func(nombre string) interface{} { return &models.CategoriaModel{Nombre: nombre} })
				if err != nil {
					return err
				}
				in.IdCategoria = &id
			}
			for _, colorNombre := range strings.Split(celda(row, 6), "/") {
				colorNombre = strings.TrimSpace(colorNombre)
				if colorNombre == "" {
					continue
				}
				id, err := buscarOCrearRegistro(tx, &models.ColorModel{}, colorNombre, colores,
					func(nombre string) interface{} { return &models.ColorModel{Nombre: nombre} })
				if err != nil {
					return err
				}
				in.IdColores = append(in.IdColores, id)
			}
			_, err := s.createCalzadoTx(tx, &in)
			return err
		})
		if err != nil {
			resultado.Errores = append(resultado.Errores, fmt.Sprintf("Fila %d: %v", i+1, err))
			continue
		}
		resultado.Importados++
	}

	if resultado.Importados == 0 && len(resultado.Errores) > 0 {
		return resultado, errors.New("no se pudo importar ningún calzado")
	}
	return resultado, nil
}

// buscarOCrearRegistro resuelve una fila de registro por nombre (comparacion
// sin mayusculas) creandola si no existe; cachea por corrida de importacion.
func buscarOCrearRegistro(tx *gorm.DB, model interface{}, nombre string, cache map[string]int, nuevo func(string) interface{}) (int, error) {
	clave := strings.ToLower(nombre)
	if id, ok := cache[clave]; ok {
		return id, nil
	}
	type fila struct {
		Id int
	}
	var f fila
	err := tx.Model(model).Select("id").Where("LOWER(nombre) = ?", clave).First(&f).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		registro := nuevo(nombre)
		if err := tx.Create(registro).Error; err != nil {
			return 0, err
		}
		var creado fila
		if err := tx.Model(model).Select("id").Where("LOWER(nombre) = ?", clave).First(&creado).Error; err != nil {
			return 0, err
		}
		cache[clave] = creado.Id
		return creado.Id, nil
	case err != nil:
		return 0, err
	}
	cache[clave] = f.Id
	return f.Id, nil
}
