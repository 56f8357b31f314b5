package dtos

// ImputadoInput es el cuerpo de POST /imputados (los cinco campos son
// obligatorios; la validacion vive en el servicio).
type ImputadoInput struct {
	Nombre       string `json:"nombre"`
	Dni          string `json:"dni"`
	Direccion    string `json:"direccion"`
	Comisaria    string `json:"comisaria"`
	Jurisdiccion string `json:"jurisdiccion"`
}
