package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// nombreDuplicado busca otra fila de la misma tabla cuyo nombre coincida con
// el recibido, comparando sin mayusculas y sin espacios en los bordes.
// Devuelve el nombre tal como quedo registrado (formato original) o "" si no
// hay colision. excluirId > 0 deja afuera la propia fila en los updates.
func nombreDuplicado(db *gorm.DB, model interface{}, nombre string, excluirId int) (string, error) {
	type fila struct {
		Nombre string
	}
	var f fila
	query := db.Model(model).
		Select("nombre").
		Where("LOWER(nombre) = ?", strings.ToLower(strings.TrimSpace(nombre)))
	if excluirId > 0 {
		query = query.Where("id <> ?", excluirId)
	}
	err := query.First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return f.Nombre, nil
}
