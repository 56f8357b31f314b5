package services

import (
	"errors"

	"github.com/SIPEC/SIPEC-Backend/src/apperrors"
	"github.com/SIPEC/SIPEC-Backend/src/dtos"
	"github.com/SIPEC/SIPEC-Backend/src/models"
	"gorm.io/gorm"
)

type SuelaService struct {
	db *gorm.DB
}

func NewSuelaService(db *gorm.DB) *SuelaService {
	return &SuelaService{db: db}
}

// conDetalles precarga los detalles con los nombres de cuadrante y forma
func (s *SuelaService) conDetalles(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Detalles").
		Preload("Detalles.Cuadrante").
		Preload("Detalles.Forma")
}

func (s *SuelaService) GetAllSuelas() ([]dtos.SuelaDTO, error) {
	var suelas []models.SuelaModel
	if err := s.conDetalles(s.db).Find(&suelas).Error; err != nil {
		return nil, err
	}
	resultado := make([]dtos.SuelaDTO, 0, len(suelas))
	for i := range suelas {
		resultado = append(resultado, dtos.NewSuelaDTO(&suelas[i]))
	}
	return resultado, nil
}

func (s *SuelaService) GetSuelaByID(id int) (*dtos.SuelaDTO, error) {
	var suela models.SuelaModel
	if err := s.conDetalles(s.db).First(&suela, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("suela", id)
		}
		return nil, err
	}
	dto := dtos.NewSuelaDTO(&suela)
	return &dto, nil
}

// CreateSuela inserta la suela y una fila DetalleSuela por cada detalle
// recibido, en una sola transaccion. El calzado padre se valida; la
// existencia de cuadrante/forma queda en manos de la FK del motor.
func (s *SuelaService) CreateSuela(in *dtos.SuelaInput) (*dtos.SuelaDTO, error) {
	var suela models.SuelaModel
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var cuenta int64
		if err := tx.Model(&models.CalzadoModel{}).Where("id = ?", in.IdCalzado).Count(&cuenta).Error; err != nil {
			return err
		}
		if cuenta == 0 {
			return &apperrors.InvalidReferenceError{Entidad: "calzado", Id: in.IdCalzado}
		}

		suela = models.SuelaModel{
			CalzadoID:          in.IdCalzado,
			DescripcionGeneral: in.DescripcionGeneral,
		}
		if err := tx.Create(&suela).Error; err != nil {
			return err
		}
		// el padre ya tiene id generado: recien ahora van los detalles
		for _, detalle := range in.Detalles {
			nuevo := models.DetalleSuelaModel{
				SuelaID:          suela.Id,
				CuadranteID:      detalle.IdCuadrante,
				FormaID:          detalle.IdForma,
				DetalleAdicional: detalle.DetalleAdicional,
			}
			if err := tx.Create(&nuevo).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetSuelaByID(suela.Id)
}

// UpdateSuela aplica un update parcial sobre id_calzado y descripcion. Si la
// clave "detalles" esta presente, TODOS los detalles actuales se borran y se
// insertan los recibidos: el cliente siempre manda el set completo deseado.
func (s *SuelaService) UpdateSuela(id int, data map[string]interface{}) (*dtos.SuelaDTO, error) {
	if len(data) == 0 {
		return nil, &apperrors.ValidationError{Mensaje: "No se recibieron datos para la actualización"}
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var suela models.SuelaModel
		if err := tx.First(&suela, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("suela", id)
			}
			return err
		}

		if v, ok := data["id_calzado"]; ok {
			idCalzado, ok := idDesdeValor(v)
			if !ok {
				return &apperrors.ValidationError{Mensaje: "id_calzado debe ser un id numérico"}
			}
			var cuenta int64
			if err := tx.Model(&models.CalzadoModel{}).Where("id = ?", idCalzado).Count(&cuenta).Error; err != nil {
				return err
			}
			if cuenta == 0 {
				return &apperrors.InvalidReferenceError{Entidad: "calzado", Id: idCalzado}
			}
			suela.CalzadoID = idCalzado
		}
		if v, ok := data["descripcion_general"]; ok {
			if v == nil {
				suela.DescripcionGeneral = nil
			} else {
				texto, ok := v.(string)
				if !ok {
					return &apperrors.ValidationError{Mensaje: "descripcion_general debe ser texto"}
				}
				suela.DescripcionGeneral = &texto
			}
		}
		if err := tx.Save(&suela).Error; err != nil {
			return err
		}

		if v, ok := data["detalles"]; ok {
			detalles, err := detallesDesdeCrudo(v)
			if err != nil {
				return err
			}
			// reemplazo completo, nunca merge
			if err := tx.Where("suela_id = ?", id).Delete(&models.DetalleSuelaModel{}).Error; err != nil {
				return err
			}
			for _, detalle := range detalles {
				nuevo := models.DetalleSuelaModel{
					SuelaID:          id,
					CuadranteID:      detalle.IdCuadrante,
					FormaID:          detalle.IdForma,
					DetalleAdicional: detalle.DetalleAdicional,
				}
				if err := tx.Create(&nuevo).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetSuelaByID(id)
}

// DeleteSuela borra la suela y todos sus detalles
func (s *SuelaService) DeleteSuela(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var suela models.SuelaModel
		if err := tx.First(&suela, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("suela", id)
			}
			return err
		}
		if err := tx.Where("suela_id = ?", id).Delete(&models.DetalleSuelaModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&suela).Error
	})
}

// detallesDesdeCrudo parsea la lista de detalles tal como llega en el JSON
// del update parcial (lista de mapas)
func detallesDesdeCrudo(v interface{}) ([]dtos.DetalleSuelaInput, error) {
	crudos, ok := v.([]interface{})
	if !ok {
		return nil, &apperrors.ValidationError{Mensaje: "detalles debe ser una lista"}
	}
	detalles := make([]dtos.DetalleSuelaInput, 0, len(crudos))
	for _, crudo := range crudos {
		mapa, ok := crudo.(map[string]interface{})
		if !ok {
			return nil, &apperrors.ValidationError{Mensaje: "cada detalle debe ser un objeto"}
		}
		idCuadrante, ok := idDesdeValor(mapa["id_cuadrante"])
		if !ok {
			return nil, &apperrors.ValidationError{Mensaje: "cada detalle requiere id_cuadrante"}
		}
		idForma, ok := idDesdeValor(mapa["id_forma"])
		if !ok {
			return nil, &apperrors.ValidationError{Mensaje: "cada detalle requiere id_forma"}
		}
		detalle := dtos.DetalleSuelaInput{IdCuadrante: idCuadrante, IdForma: idForma}
		if texto, ok := mapa["detalle_adicional"].(string); ok {
			detalle.DetalleAdicional = &texto
		}
		detalles = append(detalles, detalle)
	}
	return detalles, nil
}
