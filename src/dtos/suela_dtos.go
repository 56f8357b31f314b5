package dtos

import "github.com/SIPEC/SIPEC-Backend/src/models"

type DetalleSuelaDTO struct {
	IdDetalle        int     `json:"id_detalle"`
	IdCuadrante      int     `json:"id_cuadrante"`
	Cuadrante        *string `json:"cuadrante"`
	IdForma          int     `json:"id_forma"`
	Forma            *string `json:"forma"`
	DetalleAdicional *string `json:"detalle_adicional"`
}

// SuelaDTO es la vista de una suela con su lista de detalles resuelta
// (nombres de cuadrante y forma incluidos).
type SuelaDTO struct {
	IdSuela            int               `json:"id_suela"`
	IdCalzado          int               `json:"id_calzado"`
	DescripcionGeneral *string           `json:"descripcion_general"`
	Detalles           []DetalleSuelaDTO `json:"detalles"`
}

func NewSuelaDTO(s *models.SuelaModel) SuelaDTO {
	dto := SuelaDTO{
		IdSuela:            s.Id,
		IdCalzado:          s.CalzadoID,
		DescripcionGeneral: s.DescripcionGeneral,
		Detalles:           make([]DetalleSuelaDTO, 0, len(s.Detalles)),
	}
	for i := range s.Detalles {
		d := &s.Detalles[i]
		det := DetalleSuelaDTO{
			IdDetalle:        d.Id,
			IdCuadrante:      d.CuadranteID,
			IdForma:          d.FormaID,
			DetalleAdicional: d.DetalleAdicional,
		}
		if d.Cuadrante != nil {
			det.Cuadrante = &d.Cuadrante.Nombre
		}
		if d.Forma != nil {
			det.Forma = &d.Forma.Nombre
		}
		dto.Detalles = append(dto.Detalles, det)
	}
	return dto
}

// DetalleSuelaInput es un detalle tal como lo manda el cliente.
type DetalleSuelaInput struct {
	IdCuadrante      int     `json:"id_cuadrante"`
	IdForma          int     `json:"id_forma"`
	DetalleAdicional *string `json:"detalle_adicional"`
}

// SuelaInput es el cuerpo de POST /suelas.
type SuelaInput struct {
	IdCalzado          int                 `json:"id_calzado"`
	DescripcionGeneral *string             `json:"descripcion_general"`
	Detalles           []DetalleSuelaInput `json:"detalles"`
}
