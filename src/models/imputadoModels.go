package models

type ImputadoModel struct {
	Id           int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Nombre       string `json:"nombre" gorm:"type:varchar(50);not null"`
	Dni          string `json:"dni" gorm:"type:varchar(20);not null;uniqueIndex"`
	Direccion    string `json:"direccion" gorm:"type:varchar(100);not null"`
	Comisaria    string `json:"comisaria" gorm:"type:varchar(100);not null"`
	Jurisdiccion string `json:"jurisdiccion" gorm:"type:varchar(100);not null"`
}

// CalzadoImputadoModel es la fila de asociacion entre calzados e imputados.
// Se maneja de forma explicita (sin many2many de gorm) porque el protocolo
// de vincular/desvincular necesita chequear y borrar pares puntuales.
type CalzadoImputadoModel struct {
	CalzadoID  int `json:"calzado_id" gorm:"column:calzado_id;primaryKey"`
	ImputadoID int `json:"imputado_id" gorm:"column:imputado_id;primaryKey"`
}

func (CalzadoImputadoModel) TableName() string {
	return "calzado_imputados"
}
