package apperrors

import (
	"fmt"
	"strings"
)

// ValidationError: faltan campos obligatorios o un valor no es admisible.
type ValidationError struct {
	Mensaje string
}

func (e *ValidationError) Error() string {
	return e.Mensaje
}

// NewCamposFaltantes arma el mensaje con la lista de campos que faltan.
func NewCamposFaltantes(campos []string) *ValidationError {
	return &ValidationError{
		Mensaje: fmt.Sprintf("Los siguientes campos son obligatorios: %s", strings.Join(campos, ", ")),
	}
}

// DuplicateNameError: colision de nombre (comparacion sin mayusculas ni
// espacios). Nombre guarda el nombre ya registrado, con su formato original.
type DuplicateNameError struct {
	Entidad string
	Nombre  string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("Ya existe %s con el nombre %q", articulo(e.Entidad), e.Nombre)
}

// InvalidReferenceError: una clave foranea apunta a una fila inexistente.
type InvalidReferenceError struct {
	Entidad string
	Id      int
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("%s con id %d no existe", e.Entidad, e.Id)
}

// NotFoundError: la entidad pedida no existe. Ref es el id o, para las
// busquedas por dni, el documento.
type NotFoundError struct {
	Entidad string
	Ref     string
}

func NewNotFound(entidad string, id int) *NotFoundError {
	return &NotFoundError{Entidad: entidad, Ref: fmt.Sprintf("%d", id)}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s no encontrado", e.Entidad, e.Ref)
}

// InUseError: no se puede borrar una fila de registro porque hay filas
// dependientes que la referencian.
type InUseError struct {
	Entidad     string
	Id          int
	Dependiente string
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("No se puede eliminar %s (id %d): hay %s asociados", e.Entidad, e.Id, e.Dependiente)
}

// HasDependentsError: el imputado tiene calzados vinculados y el borrado
// esta bloqueado en la capa de servicio.
type HasDependentsError struct {
	Entidad string
	Id      int
}

func (e *HasDependentsError) Error() string {
	return fmt.Sprintf("No se puede eliminar el %s %d porque tiene calzados asociados", e.Entidad, e.Id)
}

// DuplicateAssociationError: el par calzado-imputado ya estaba vinculado.
type DuplicateAssociationError struct {
	CalzadoId  int
	ImputadoId int
}

func (e *DuplicateAssociationError) Error() string {
	return fmt.Sprintf("El calzado %d ya está vinculado al imputado %d", e.CalzadoId, e.ImputadoId)
}

// AssociationNotFoundError: se pidio desvincular (o editar a traves de) un
// par calzado-imputado que no existe.
type AssociationNotFoundError struct {
	CalzadoId  int
	ImputadoId int
}

func (e *AssociationNotFoundError) Error() string {
	return fmt.Sprintf("El calzado %d no está vinculado al imputado %d", e.CalzadoId, e.ImputadoId)
}

// InvalidRegistrationKindError: el calzado existe pero no pertenece al tipo
// de registro del accessor usado (dubitada vs indubitada).
type InvalidRegistrationKindError struct {
	Id       int
	Tipo     string
	Esperado string
}

func (e *InvalidRegistrationKindError) Error() string {
	return fmt.Sprintf("El calzado %d es de tipo %q, no corresponde a %q", e.Id, e.Tipo, e.Esperado)
}

// articulo concatena el articulo castellano usado en los mensajes del
// frontend; solo cubre las entidades del dominio.
func articulo(entidad string) string {
	switch entidad {
	case "marca", "categoria", "forma geometrica":
		return "una " + entidad
	default:
		return "un " + entidad
	}
}
