package services

import (
	"errors"
	"strings"

	"github.com/SIPEC/SIPEC-Backend/src/apperrors"
	"github.com/SIPEC/SIPEC-Backend/src/models"
	"gorm.io/gorm"
)

type FormaGeometricaService struct {
	db *gorm.DB
}

func NewFormaGeometricaService(db *gorm.DB) *FormaGeometricaService {
	return &FormaGeometricaService{db: db}
}

func (s *FormaGeometricaService) GetAllFormas() ([]models.FormaGeometricaModel, error) {
	var formas []models.FormaGeometricaModel
	result := s.db.Find(&formas)
	if result.Error != nil {
		return nil, result.Error
	}
	return formas, nil
}

func (s *FormaGeometricaService) GetFormaByID(id int) (*models.FormaGeometricaModel, error) {
	var forma models.FormaGeometricaModel
	if err := s.db.First(&forma, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("forma geometrica", id)
		}
		return nil, err
	}
	return &forma, nil
}

func (s *FormaGeometricaService) CreateForma(nombre string) (*models.FormaGeometricaModel, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, &apperrors.ValidationError{Mensaje: "El nombre de la forma geometrica es requerido"}
	}
	var forma models.FormaGeometricaModel
	err := s.db.Transaction(func(tx *gorm.DB) error {
		existente, err := nombreDuplicado(tx, &models.FormaGeometricaModel{}, nombre, 0)
		if err != nil {
			return err
		}
		if existente != "" {
			return &apperrors.DuplicateNameError{Entidad: "forma geometrica", Nombre: existente}
		}
		forma = models.FormaGeometricaModel{Nombre: nombre}
		return tx.Create(&forma).Error
	})
	if err != nil {
		return nil, err
	}
	return &forma, nil
}

func (s *FormaGeometricaService) UpdateForma(id int, nombre string) (*models.FormaGeometricaModel, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, &apperrors.ValidationError{Mensaje: "El nombre de la forma geometrica es requerido"}
	}
	var forma models.FormaGeometricaModel
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&forma, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("forma geometrica", id)
			}
			return err
		}
		existente, err := nombreDuplicado(tx, &models.FormaGeometricaModel{}, nombre, id)
		if err != nil {
			return err
		}
		if existente != "" {
			return &apperrors.DuplicateNameError{Entidad: "forma geometrica", Nombre: existente}
		}
		forma.Nombre = nombre
		return tx.Save(&forma).Error
	})
	if err != nil {
		return nil, err
	}
	return &forma, nil
}

// DeleteForma borra una forma geometrica; los detalles de suela la bloquean.
func (s *FormaGeometricaService) DeleteForma(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var forma models.FormaGeometricaModel
		if err := tx.First(&forma, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("forma geometrica", id)
			}
			return err
		}
		var enUso int64
		if err := tx.Model(&models.DetalleSuelaModel{}).Where("forma_id = ?", id).Count(&enUso).Error; err != nil {
			return err
		}
		if enUso > 0 {
			return &apperrors.InUseError{Entidad: "la forma geometrica", Id: id, Dependiente: "detalles de suela"}
		}
		return tx.Delete(&forma).Error
	})
}
