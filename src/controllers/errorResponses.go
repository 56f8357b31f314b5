package controllers

import (
	"errors"
	"net/http"

	"github.com/SIPEC/SIPEC-Backend/src/apperrors"
	"github.com/gin-gonic/gin"
)

// respondError traduce la taxonomia de errores del dominio a codigos HTTP.
// Cualquier error fuera de la taxonomia es un fallo interno.
func respondError(ctx *gin.Context, err error) {
	ctx.JSON(statusForError(err), gin.H{"error": err.Error()})
}

func statusForError(err error) int {
	var (
		notFound     *apperrors.NotFoundError
		assocMissing *apperrors.AssociationNotFoundError
		inUse        *apperrors.InUseError
		dependents   *apperrors.HasDependentsError
		validation   *apperrors.ValidationError
		dupName      *apperrors.DuplicateNameError
		badRef       *apperrors.InvalidReferenceError
		dupAssoc     *apperrors.DuplicateAssociationError
		badKind      *apperrors.InvalidRegistrationKindError
	)
	switch {
	case errors.As(err, &notFound), errors.As(err, &assocMissing):
		return http.StatusNotFound
	case errors.As(err, &inUse), errors.As(err, &dependents):
		return http.StatusConflict
	case errors.As(err, &validation), errors.As(err, &dupName),
		errors.As(err, &badRef), errors.As(err, &dupAssoc), errors.As(err, &badKind):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// NombreRequest es el cuerpo comun de las entidades de registro
type NombreRequest struct {
	Nombre string `json:"nombre"`
}
