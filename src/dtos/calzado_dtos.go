package dtos

import "github.com/SIPEC/SIPEC-Backend/src/models"

// CalzadoDTO es la vista denormalizada de un calzado: los nombres de
// marca/modelo/categoria resueltos y la lista de colores como strings.
type CalzadoDTO struct {
	IdCalzado    int      `json:"id_calzado"`
	Talle        string   `json:"talle"`
	Ancho        float64  `json:"ancho"`
	Alto         float64  `json:"alto"`
	TipoRegistro string   `json:"tipo_registro"`
	IdMarca      *int     `json:"id_marca"`
	Marca        *string  `json:"marca"`
	IdModelo     *int     `json:"id_modelo"`
	Modelo       *string  `json:"modelo"`
	IdCategoria  *int     `json:"id_categoria"`
	Categoria    *string  `json:"categoria"`
	Colores      []string `json:"colores"`
}

// NewCalzadoDTO proyecta un CalzadoModel con sus asociaciones precargadas.
func NewCalzadoDTO(c *models.CalzadoModel) CalzadoDTO {
	dto := CalzadoDTO{
		IdCalzado:    c.Id,
		Talle:        c.Talle,
		Ancho:        c.Ancho,
		Alto:         c.Alto,
		TipoRegistro: c.TipoRegistro,
		IdMarca:      c.MarcaID,
		IdModelo:     c.ModeloID,
		IdCategoria:  c.CategoriaID,
		Colores:      make([]string, 0, len(c.Colores)),
	}
	if c.Marca != nil {
		dto.Marca = &c.Marca.Nombre
	}
	if c.Modelo != nil {
		dto.Modelo = &c.Modelo.Nombre
	}
	if c.Categoria != nil {
		dto.Categoria = &c.Categoria.Nombre
	}
	for _, color := range c.Colores {
		dto.Colores = append(dto.Colores, color.Nombre)
	}
	return dto
}

// CalzadoInput es el cuerpo de POST /calzados.
type CalzadoInput struct {
	Talle        string  `json:"talle"`
	Ancho        float64 `json:"ancho"`
	Alto         float64 `json:"alto"`
	TipoRegistro string  `json:"tipo_registro"`
	IdMarca      *int    `json:"id_marca"`
	IdModelo     *int    `json:"id_modelo"`
	IdCategoria  *int    `json:"id_categoria"`
	IdColores    []int   `json:"id_colores"`
}

// CalzadoConImputadoInput es el cuerpo del alta compuesta calzado+imputado.
type CalzadoConImputadoInput struct {
	Imputado ImputadoInput `json:"imputado"`
	Calzado  CalzadoInput  `json:"calzado"`
}

// CalzadoConImputadoUpdateInput es el cuerpo del PATCH compuesto sobre un
// par vinculado; los dos lados son parciales y van como mapas crudos para
// distinguir campo ausente de null explicito.
type CalzadoConImputadoUpdateInput struct {
	Calzado  map[string]interface{} `json:"calzado"`
	Imputado map[string]interface{} `json:"imputado"`
}

// CalzadoConImputadoDTO es la respuesta del alta compuesta.
type CalzadoConImputadoDTO struct {
	Imputado models.ImputadoModel `json:"imputado"`
	Calzado  CalzadoDTO           `json:"calzado"`
}

// ImputadoConCalzadosDTO agrupa un imputado con todos sus calzados resueltos.
type ImputadoConCalzadosDTO struct {
	Imputado models.ImputadoModel `json:"imputado"`
	Calzados []CalzadoDTO         `json:"calzados"`
}
