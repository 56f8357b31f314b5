package models

type FormaGeometricaModel struct {
	Id     int    `json:"id_forma" gorm:"primaryKey;autoIncrement"`
	Nombre string `json:"nombre" gorm:"column:nombre;type:varchar(50);not null"`
}
