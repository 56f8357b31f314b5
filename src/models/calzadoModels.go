package models

// Valores admitidos para CalzadoModel.TipoRegistro
const (
	TipoIndubitadaProveedor = "indubitada_proveedor"
	TipoIndubitadaComisaria = "indubitada_comisaria"
	TipoDubitada            = "dubitada"
)

// TipoRegistroValido chequea el enum de tipo_registro antes de persistir
func TipoRegistroValido(tipo string) bool {
	switch tipo {
	case TipoIndubitadaProveedor, TipoIndubitadaComisaria, TipoDubitada:
		return true
	}
	return false
}

type CalzadoModel struct {
	Id           int             `json:"id_calzado" gorm:"primaryKey;autoIncrement"`
	Talle        string          `json:"talle" gorm:"type:varchar(10);not null"`
	Ancho        float64         `json:"ancho" gorm:"type:numeric(5,2);not null"`
	Alto         float64         `json:"alto" gorm:"type:numeric(5,2);not null"`
	TipoRegistro string          `json:"tipo_registro" gorm:"column:tipo_registro;type:varchar(30);not null"`
	MarcaID      *int            `json:"id_marca" gorm:"column:marca_id"`
	Marca        *MarcaModel     `json:"marca,omitempty" gorm:"foreignKey:MarcaID;references:Id"`
	ModeloID     *int            `json:"id_modelo" gorm:"column:modelo_id"`
	Modelo       *ModeloModel    `json:"modelo,omitempty" gorm:"foreignKey:ModeloID;references:Id"`
	CategoriaID  *int            `json:"id_categoria" gorm:"column:categoria_id"`
	Categoria    *CategoriaModel `json:"categoria,omitempty" gorm:"foreignKey:CategoriaID;references:Id"`
	Colores      []ColorModel    `json:"colores,omitempty" gorm:"many2many:calzado_colores;joinForeignKey:CalzadoID;joinReferences:ColorID"`
	Suelas       []SuelaModel    `json:"suelas,omitempty" gorm:"foreignKey:CalzadoID;references:Id"`
}
