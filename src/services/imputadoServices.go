package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SIPEC/SIPEC-Backend/src/apperrors"
	"github.com/SIPEC/SIPEC-Backend/src/dtos"
	"github.com/SIPEC/SIPEC-Backend/src/models"
	"gorm.io/gorm"
)

type ImputadoService struct {
	db *gorm.DB
	// calzadoService resuelve el protocolo de vincular/desvincular, que es
	// el mismo visto desde cualquiera de los dos lados
	calzadoService *CalzadoService
}

func NewImputadoService(db *gorm.DB, calzadoService *CalzadoService) *ImputadoService {
	return &ImputadoService{db: db, calzadoService: calzadoService}
}

func (s *ImputadoService) GetAllImputados() ([]models.ImputadoModel, error) {
	var imputados []models.ImputadoModel
	result := s.db.Find(&imputados)
	if result.Error != nil {
		return nil, result.Error
	}
	return imputados, nil
}

func (s *ImputadoService) GetImputadoByID(id int) (*models.ImputadoModel, error) {
	var imputado models.ImputadoModel
	if err := s.db.First(&imputado, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("imputado", id)
		}
		return nil, err
	}
	return &imputado, nil
}

// crearImputadoTx valida los cinco campos obligatorios, chequea nombre y dni
// contra duplicados e inserta; tambien lo usa el alta compuesta de calzado.
func crearImputadoTx(tx *gorm.DB, in *dtos.ImputadoInput) (*models.ImputadoModel, error) {
	var faltantes []string
	campos := []struct {
		nombre string
		valor  string
	}{
		{"nombre", in.Nombre},
		{"dni", in.Dni},
		{"direccion", in.Direccion},
		{"comisaria", in.Comisaria},
		{"jurisdiccion", in.Jurisdiccion},
	}
	for _, campo := range campos {
		if strings.TrimSpace(campo.valor) == "" {
			faltantes = append(faltantes, campo.nombre)
		}
	}
	if len(faltantes) > 0 {
		return nil, apperrors.NewCamposFaltantes(faltantes)
	}

	existente, err := nombreDuplicado(tx, &models.ImputadoModel{}, in.Nombre, 0)
	if err != nil {
		return nil, err
	}
	if existente != "" {
		return nil, &apperrors.DuplicateNameError{Entidad: "imputado", Nombre: existente}
	}
	var conMismoDni int64
	if err := tx.Model(&models.ImputadoModel{}).Where("dni = ?", strings.TrimSpace(in.Dni)).Count(&conMismoDni).Error; err != nil {
		return nil, err
	}
	if conMismoDni > 0 {
		return nil, &apperrors.ValidationError{Mensaje: fmt.Sprintf("Ya existe un imputado con el dni %q", strings.TrimSpace(in.Dni))}
	}

	imputado := models.ImputadoModel{
		Nombre:       strings.TrimSpace(in.Nombre),
		Dni:          strings.TrimSpace(in.Dni),
		Direccion:    in.Direccion,
		Comisaria:    in.Comisaria,
		Jurisdiccion: in.Jurisdiccion,
	}
	if err := tx.Create(&imputado).Error; err != nil {
		return nil, err
	}
	return &imputado, nil
}

func (s *ImputadoService) CreateImputado(in *dtos.ImputadoInput) (*models.ImputadoModel, error) {
	var imputado *models.ImputadoModel
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		imputado, err = crearImputadoTx(tx, in)
		return err
	})
	if err != nil {
		return nil, err
	}
	return imputado, nil
}

// aplicarCambiosImputadoTx aplica un update parcial sobre la fila ya
// cargada; un cambio de nombre o dni repite el chequeo de unicidad
// excluyendo la propia fila. Tambien lo usa el PATCH compuesto de calzados.
func aplicarCambiosImputadoTx(tx *gorm.DB, imputado *models.ImputadoModel, data map[string]interface{}) error {
	if v, ok := data["nombre"]; ok {
		nombre, _ := v.(string)
		nombre = strings.TrimSpace(nombre)
		if nombre == "" {
			return &apperrors.ValidationError{Mensaje: "El nombre no puede estar vacío"}
		}
		existente, err := nombreDuplicado(tx, &models.ImputadoModel{}, nombre, imputado.Id)
		if err != nil {
			return err
		}
		if existente != "" {
			return &apperrors.DuplicateNameError{Entidad: "imputado", Nombre: existente}
		}
		imputado.Nombre = nombre
	}
	if v, ok := data["dni"]; ok {
		dni, _ := v.(string)
		dni = strings.TrimSpace(dni)
		if dni == "" {
			return &apperrors.ValidationError{Mensaje: "El dni no puede estar vacío"}
		}
		var conMismoDni int64
		if err := tx.Model(&models.ImputadoModel{}).Where("dni = ? AND id <> ?", dni, imputado.Id).Count(&conMismoDni).Error; err != nil {
			return err
		}
		if conMismoDni > 0 {
			return &apperrors.ValidationError{Mensaje: fmt.Sprintf("Ya existe un imputado con el dni %q", dni)}
		}
		imputado.Dni = dni
	}
	if v, ok := data["direccion"].(string); ok {
		imputado.Direccion = v
	}
	if v, ok := data["comisaria"].(string); ok {
		imputado.Comisaria = v
	}
	if v, ok := data["jurisdiccion"].(string); ok {
		imputado.Jurisdiccion = v
	}
	return tx.Save(imputado).Error
}

func (s *ImputadoService) UpdateImputado(id int, data map[string]interface{}) (*models.ImputadoModel, error) {
	if len(data) == 0 {
		return nil, &apperrors.ValidationError{Mensaje: "Se requiere al menos un campo para actualizar"}
	}
	var imputado models.ImputadoModel
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&imputado, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("imputado", id)
			}
			return err
		}
		return aplicarCambiosImputadoTx(tx, &imputado, data)
	})
	if err != nil {
		return nil, err
	}
	return &imputado, nil
}

// DeleteImputado bloquea el borrado mientras haya calzados vinculados. La
// politica aca es bloquear, no cascadear, aunque la fila de asociacion
// cascadee a nivel de motor.
func (s *ImputadoService) DeleteImputado(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var imputado models.ImputadoModel
		if err := tx.First(&imputado, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("imputado", id)
			}
			return err
		}
		var vinculados int64
		if err := tx.Model(&models.CalzadoImputadoModel{}).Where("imputado_id = ?", id).Count(&vinculados).Error; err != nil {
			return err
		}
		if vinculados > 0 {
			return &apperrors.HasDependentsError{Entidad: "imputado", Id: id}
		}
		return tx.Delete(&imputado).Error
	})
}

// EditarCalzadoVinculado patchea talle/ancho/alto/tipo_registro de un
// calzado, solo si esta vinculado al imputado. Ningun otro campo se toca.
func (s *ImputadoService) EditarCalzadoVinculado(imputadoId, calzadoId int, data map[string]interface{}) (*dtos.CalzadoDTO, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var imputado models.ImputadoModel
		if err := tx.First(&imputado, imputadoId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("imputado", imputadoId)
			}
			return err
		}
		var calzado models.CalzadoModel
		if err := tx.First(&calzado, calzadoId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("calzado", calzadoId)
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

		cambios, err := cambiosCalzadoVinculado(data)
		if err != nil {
			return err
		}
		if len(cambios) == 0 {
			return nil
		}
		return tx.Model(&calzado).Updates(cambios).Error
	})
	if err != nil {
		return nil, err
	}
	return s.calzadoService.GetCalzadoByID(calzadoId)
}

// VincularCalzado / DesvincularCalzado: el mismo protocolo que expone el
// servicio de calzados, espejado desde el lado del imputado.
func (s *ImputadoService) VincularCalzado(imputadoId, calzadoId int) error {
	return s.calzadoService.VincularImputado(calzadoId, imputadoId)
}

func (s *ImputadoService) DesvincularCalzado(imputadoId, calzadoId int) error {
	return s.calzadoService.DesvincularImputado(calzadoId, imputadoId)
}
