package services

import (
	"errors"
	"strings"

	"github.com/SIPEC/SIPEC-Backend/src/apperrors"
	"github.com/SIPEC/SIPEC-Backend/src/models"
	"gorm.io/gorm"
)

type CategoriaService struct {
	db *gorm.DB
}

func NewCategoriaService(db *gorm.DB) *CategoriaService {
	return &CategoriaService{db: db}
}

func (s *CategoriaService) GetAllCategorias() ([]models.CategoriaModel, error) {
	var categorias []models.CategoriaModel
	result := s.db.Find(&categorias)
	if result.Error != nil {
		return nil, result.Error
	}
	return categorias, nil
}

func (s *CategoriaService) GetCategoriaByID(id int) (*models.CategoriaModel, error) {
	var categoria models.CategoriaModel
	if err := s.db.First(&categoria, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("categoria", id)
		}
		return nil, err
	}
	return &categoria, nil
}

func (s *CategoriaService) CreateCategoria(nombre string) (*models.CategoriaModel, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, &apperrors.ValidationError{Mensaje: "El nombre de la categoria es requerido"}
	}
	var categoria models.CategoriaModel
	err := s.db.Transaction(func(tx *gorm.DB) error {
		existente, err := nombreDuplicado(tx, &models.CategoriaModel{}, nombre, 0)
		if err != nil {
			return err
		}
		if existente != "" {
			return &apperrors.DuplicateNameError{Entidad: "categoria", Nombre: existente}
		}
		categoria = models.CategoriaModel{Nombre: nombre}
		return tx.Create(&categoria).Error
	})
	if err != nil {
		return nil, err
	}
	return &categoria, nil
}

func (s *CategoriaService) UpdateCategoria(id int, nombre string) (*models.CategoriaModel, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, &apperrors.ValidationError{Mensaje: "El nombre de la categoria es requerido"}
	}
	var categoria models.CategoriaModel
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&categoria, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("categoria", id)
			}
			return err
		}
		existente, err := nombreDuplicado(tx, &models.CategoriaModel{}, nombre, id)
		if err != nil {
			return err
		}
		if existente != "" {
			return &apperrors.DuplicateNameError{Entidad: "categoria", Nombre: existente}
		}
		categoria.Nombre = nombre
		return tx.Save(&categoria).Error
	})
	if err != nil {
		return nil, err
	}
	return &categoria, nil
}

func (s *CategoriaService) DeleteCategoria(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var categoria models.CategoriaModel
		if err := tx.First(&categoria, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("categoria", id)
			}
			return err
		}
		var enUso int64
		if err := tx.Model(&models.CalzadoModel{}).Where("categoria_id = ?", id).Count(&enUso).Error; err != nil {
			return err
		}
		if enUso > 0 {
			return &apperrors.InUseError{Entidad: "la categoria", Id: id, Dependiente: "calzados"}
		}
		return tx.Delete(&categoria).Error
	})
}
