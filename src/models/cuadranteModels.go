package models

type CuadranteModel struct {
	Id     int    `json:"id_cuadrante" gorm:"primaryKey;autoIncrement"`
	Nombre string `json:"nombre" gorm:"column:nombre;type:varchar(50);not null"`
}
