package models

type CategoriaModel struct {
	Id     int    `json:"id_categoria" gorm:"primaryKey;autoIncrement"`
	Nombre string `json:"nombre" gorm:"column:nombre;type:varchar(50);not null"`
}
