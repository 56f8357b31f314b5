package services

import (
	"errors"
	"strings"

	"github.com/SIPEC/SIPEC-Backend/src/apperrors"
	"github.com/SIPEC/SIPEC-Backend/src/models"
	"gorm.io/gorm"
)

type CuadranteService struct {
	db *gorm.DB
}

func NewCuadranteService(db *gorm.DB) *CuadranteService {
	return &CuadranteService{db: db}
}

func (s *CuadranteService) GetAllCuadrantes() ([]models.CuadranteModel, error) {
	var cuadrantes []models.CuadranteModel
	result := s.db.Find(&cuadrantes)
	if result.Error != nil {
		return nil, result.Error
	}
	return cuadrantes, nil
}

func (s *CuadranteService) GetCuadranteByID(id int) (*models.CuadranteModel, error) {
	var cuadrante models.CuadranteModel
	if err := s.db.First(&cuadrante, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("cuadrante", id)
		}
		return nil, err
	}
	return &cuadrante, nil
}

func (s *CuadranteService) CreateCuadrante(nombre string) (*models.CuadranteModel, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, &apperrors.ValidationError{Mensaje: "El nombre del cuadrante es requerido"}
	}
	var cuadrante models.CuadranteModel
	err := s.db.Transaction(func(tx *gorm.DB) error {
		existente, err := nombreDuplicado(tx, &models.CuadranteModel{}, nombre, 0)
		if err != nil {
			return err
		}
		if existente != "" {
			return &apperrors.DuplicateNameError{Entidad: "cuadrante", Nombre: existente}
		}
		cuadrante = models.CuadranteModel{Nombre: nombre}
		return tx.Create(&cuadrante).Error
	})
	if err != nil {
		return nil, err
	}
	return &cuadrante, nil
}

func (s *CuadranteService) UpdateCuadrante(id int, nombre string) (*models.CuadranteModel, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, &apperrors.ValidationError{Mensaje: "El nombre del cuadrante es requerido"}
	}
	var cuadrante models.CuadranteModel
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&cuadrante, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("cuadrante", id)
			}
			return err
		}
		existente, err := nombreDuplicado(tx, &models.CuadranteModel{}, nombre, id)
		if err != nil {
			return err
		}
		if existente != "" {
			return &apperrors.DuplicateNameError{Entidad: "cuadrante", Nombre: existente}
		}
		cuadrante.Nombre = nombre
		return tx.Save(&cuadrante).Error
	})
	if err != nil {
		return nil, err
	}
	return &cuadrante, nil
}

// DeleteCuadrante borra un cuadrante; los detalles de suela lo bloquean.
func (s *CuadranteService) DeleteCuadrante(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var cuadrante models.CuadranteModel
		if err := tx.First(&cuadrante, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("cuadrante", id)
			}
			return err
		}
		var enUso int64
		if err := tx.Model(&models.DetalleSuelaModel{}).Where("cuadrante_id = ?", id).Count(&enUso).Error; err != nil {
			return err
		}
		if enUso > 0 {
			return &apperrors.InUseError{Entidad: "el cuadrante", Id: id, Dependiente: "detalles de suela"}
		}
		return tx.Delete(&cuadrante).Error
	})
}
