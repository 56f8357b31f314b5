package models

type ColorModel struct {
	Id     int    `json:"id_color" gorm:"primaryKey;autoIncrement"`
	Nombre string `json:"nombre" gorm:"column:nombre;type:varchar(50);not null"`
}
