package services

import (
	"errors"
	"strings"

	"github.com/SIPEC/SIPEC-Backend/src/apperrors"
	"github.com/SIPEC/SIPEC-Backend/src/models"
	"gorm.io/gorm"
)

type ModeloService struct {
	db *gorm.DB
}

// NewModeloService creates a new instance of ModeloService
func NewModeloService(db *gorm.DB) *ModeloService {
	return &ModeloService{db: db}
}

// GetAllModelos retrieves all Modelo records from the database
func (s *ModeloService) GetAllModelos() ([]models.ModeloModel, error) {
	var modelos []models.ModeloModel
	result := s.db.Find(&modelos)
	if result.Error != nil {
		return nil, result.Error
	}
	return modelos, nil
}

// GetModeloByID retrieves a Modelo record by ID
func (s *ModeloService) GetModeloByID(id int) (*models.ModeloModel, error) {
	var modelo models.ModeloModel
	if err := s.db.First(&modelo, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("modelo", id)
		}
		return nil, err
	}
	return &modelo, nil
}

// CreateModelo creates a new Modelo record with a unique name
func (s *ModeloService) CreateModelo(nombre string) (*models.ModeloModel, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, &apperrors.ValidationError{Mensaje: "El nombre del modelo es requerido"}
	}
	var modelo models.ModeloModel
	err := s.db.Transaction(func(tx *gorm.DB) error {
		existente, err := nombreDuplicado(tx, &models.ModeloModel{}, nombre, 0)
		if err != nil {
			return err
		}
		if existente != "" {
			return &apperrors.DuplicateNameError{Entidad: "modelo", Nombre: existente}
		}
		modelo = models.ModeloModel{Nombre: nombre}
		return tx.Create(&modelo).Error
	})
	if err != nil {
		return nil, err
	}
	return &modelo, nil
}

// UpdateModelo renames an existing Modelo record
func (s *ModeloService) UpdateModelo(id int, nombre string) (*models.ModeloModel, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, &apperrors.ValidationError{Mensaje: "El nombre del modelo es requerido"}
	}
	var modelo models.ModeloModel
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&modelo, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("modelo", id)
			}
			return err
		}
		existente, err := nombreDuplicado(tx, &models.ModeloModel{}, nombre, id)
		if err != nil {
			return err
		}
		if existente != "" {
			return &apperrors.DuplicateNameError{Entidad: "modelo", Nombre: existente}
		}
		modelo.Nombre = nombre
		return tx.Save(&modelo).Error
	})
	if err != nil {
		return nil, err
	}
	return &modelo, nil
}

// DeleteModelo deletes a Modelo record, blocked while any Calzado references it
func (s *ModeloService) DeleteModelo(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var modelo models.ModeloModel
		if err := tx.First(&modelo, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("modelo", id)
			}
			return err
		}
		var enUso int64
		if err := tx.Model(&models.CalzadoModel{}).Where("modelo_id = ?", id).Count(&enUso).Error; err != nil {
			return err
		}
		if enUso > 0 {
			return &apperrors.InUseError{Entidad: "el modelo", Id: id, Dependiente: "calzados"}
		}
		return tx.Delete(&modelo).Error
	})
}
