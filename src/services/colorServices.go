package services

import (
	"errors"
	"strings"

	"github.com/SIPEC/SIPEC-Backend/src/apperrors"
	"github.com/SIPEC/SIPEC-Backend/src/models"
	"gorm.io/gorm"
)

type ColorService struct {
	db *gorm.DB
}

func NewColorService(db *gorm.DB) *ColorService {
	return &ColorService{db: db}
}

func (s *ColorService) GetAllColores() ([]models.ColorModel, error) {
	var colores []models.ColorModel
	result := s.db.Find(&colores)
	if result.Error != nil {
		return nil, result.Error
	}
	return colores, nil
}

func (s *ColorService) GetColorByID(id int) (*models.ColorModel, error) {
	var color models.ColorModel
	if err := s.db.First(&color, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("color", id)
		}
		return nil, err
	}
	return &color, nil
}

func (s *ColorService) CreateColor(nombre string) (*models.ColorModel, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, &apperrors.ValidationError{Mensaje: "El nombre del color es requerido"}
	}
	var color models.ColorModel
	err := s.db.Transaction(func(tx *gorm.DB) error {
		existente, err := nombreDuplicado(tx, &models.ColorModel{}, nombre, 0)
		if err != nil {
			return err
		}
		if existente != "" {
			return &apperrors.DuplicateNameError{Entidad: "color", Nombre: existente}
		}
		color = models.ColorModel{Nombre: nombre}
		return tx.Create(&color).Error
	})
	if err != nil {
		return nil, err
	}
	return &color, nil
}

func (s *ColorService) UpdateColor(id int, nombre string) (*models.ColorModel, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, &apperrors.ValidationError{Mensaje: "El nombre del color es requerido"}
	}
	var color models.ColorModel
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&color, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("color", id)
			}
			return err
		}
		existente, err := nombreDuplicado(tx, &models.ColorModel{}, nombre, id)
		if err != nil {
			return err
		}
		if existente != "" {
			return &apperrors.DuplicateNameError{Entidad: "color", Nombre: existente}
		}
		color.Nombre = nombre
		return tx.Save(&color).Error
	})
	if err != nil {
		return nil, err
	}
	return &color, nil
}

// DeleteColor borra un color siempre que ningun calzado lo tenga asignado.
// La dependencia vive en la tabla intermedia calzado_colores, no en una FK
// directa del calzado.
func (s *ColorService) DeleteColor(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var color models.ColorModel
		if err := tx.First(&color, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("color", id)
			}
			return err
		}
		var enUso int64
		if err := tx.Table("calzado_colores").Where("color_id = ?", id).Count(&enUso).Error; err != nil {
			return err
		}
		if enUso > 0 {
			return &apperrors.InUseError{Entidad: "el color", Id: id, Dependiente: "calzados"}
		}
		return tx.Delete(&color).Error
	})
}
