package services

import (
	"errors"
	"strings"

	"github.com/SIPEC/SIPEC-Backend/src/apperrors"
	"github.com/SIPEC/SIPEC-Backend/src/models"
	"gorm.io/gorm"
)

type MarcaService struct {
	db *gorm.DB
}

// NewMarcaService creates a new instance of MarcaService
func NewMarcaService(db *gorm.DB) *MarcaService {
	return &MarcaService{db: db}
}

// GetAllMarcas retrieves all Marca records from the database
func (s *MarcaService) GetAllMarcas() ([]models.MarcaModel, error) {
	var marcas []models.MarcaModel
	result := s.db.Find(&marcas)
	if result.Error != nil {
		return nil, result.Error
	}
	return marcas, nil
}

// GetMarcaByID retrieves a Marca record by ID
func (s *MarcaService) GetMarcaByID(id int) (*models.MarcaModel, error) {
	var marca models.MarcaModel
	if err := s.db.First(&marca, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("marca", id)
		}
		return nil, err
	}
	return &marca, nil
}

// CreateMarca creates a new Marca record, rejecting duplicated names
// (case-insensitive, trimmed)
func (s *MarcaService) CreateMarca(nombre string) (*models.MarcaModel, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, &apperrors.ValidationError{Mensaje: "El nombre de la marca es requerido"}
	}
	var marca models.MarcaModel
	err := s.db.Transaction(func(tx *gorm.DB) error {
		existente, err := nombreDuplicado(tx, &models.MarcaModel{}, nombre, 0)
		if err != nil {
			return err
		}
		if existente != "" {
			return &apperrors.DuplicateNameError{Entidad: "marca", Nombre: existente}
		}
		marca = models.MarcaModel{Nombre: nombre}
		return tx.Create(&marca).Error
	})
	if err != nil {
		return nil, err
	}
	return &marca, nil
}

// UpdateMarca renames an existing Marca record
func (s *MarcaService) UpdateMarca(id int, nombre string) (*models.MarcaModel, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, &apperrors.ValidationError{Mensaje: "El nombre de la marca es requerido"}
	}
	var marca models.MarcaModel
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&marca, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("marca", id)
			}
			return err
		}
		existente, err := nombreDuplicado(tx, &models.MarcaModel{}, nombre, id)
		if err != nil {
			return err
		}
		if existente != "" {
			return &apperrors.DuplicateNameError{Entidad: "marca", Nombre: existente}
		}
		marca.Nombre = nombre
		return tx.Save(&marca).Error
	})
	if err != nil {
		return nil, err
	}
	return &marca, nil
}

// DeleteMarca deletes a Marca record, blocked while any Calzado references it
func (s *MarcaService) DeleteMarca(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var marca models.MarcaModel
		if err := tx.First(&marca, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("marca", id)
			}
			return err
		}
		var enUso int64
		if err := tx.Model(&models.CalzadoModel{}).Where("marca_id = ?", id).Count(&enUso).Error; err != nil {
			return err
		}
		if enUso > 0 {
			return &apperrors.InUseError{Entidad: "la marca", Id: id, Dependiente: "calzados"}
		}
		return tx.Delete(&marca).Error
	})
}
