package models

type SuelaModel struct {
	Id                 int                  `json:"id_suela" gorm:"primaryKey;autoIncrement"`
	CalzadoID          int                  `json:"id_calzado" gorm:"column:calzado_id;not null"`
	DescripcionGeneral *string              `json:"descripcion_general" gorm:"column:descripcion_general;type:text"`
	Detalles           []DetalleSuelaModel  `json:"detalles,omitempty" gorm:"foreignKey:SuelaID;references:Id"`
}

type DetalleSuelaModel struct {
	Id               int                   `json:"id_detalle" gorm:"primaryKey;autoIncrement"`
	SuelaID          int                   `json:"id_suela" gorm:"column:suela_id;not null"`
	CuadranteID      int                   `json:"id_cuadrante" gorm:"column:cuadrante_id;not null"`
	Cuadrante        *CuadranteModel       `json:"cuadrante,omitempty" gorm:"foreignKey:CuadranteID;references:Id"`
	FormaID          int                   `json:"id_forma" gorm:"column:forma_id;not null"`
	Forma            *FormaGeometricaModel `json:"forma,omitempty" gorm:"foreignKey:FormaID;references:Id"`
	DetalleAdicional *string               `json:"detalle_adicional" gorm:"column:detalle_adicional;type:text"`
}
