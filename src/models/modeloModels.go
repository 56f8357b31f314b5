package models

type ModeloModel struct {
	Id     int    `json:"id_modelo" gorm:"primaryKey;autoIncrement"`
	Nombre string `json:"nombre" gorm:"column:nombre;type:varchar(100);not null"`
}
