package models

type MarcaModel struct {
	Id     int    `json:"id_marca" gorm:"primaryKey;autoIncrement"`
	Nombre string `json:"nombre" gorm:"column:nombre;type:varchar(50);not null"`
}
