package controllers

import (
	"net/http"

	"github.com/SIPEC/SIPEC-Backend/src/dtos"
	"github.com/SIPEC/SIPEC-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type SuelaController struct {
	service *services.SuelaService
}

func NewSuelaController(service *services.SuelaService) *SuelaController {
	return &SuelaController{service: service}
}

func (c *SuelaController) GetAllSuelas(ctx *gin.Context) {
	suelas, err := c.service.GetAllSuelas()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, suelas)
}

func (c *SuelaController) GetSuelaByID(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	suela, err := c.service.GetSuelaByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, suela)
}

// CreateSuela handles POST requests: the suela plus its detail rows as a unit
func (c *SuelaController) CreateSuela(ctx *gin.Context) {
	var in dtos.SuelaInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	suela, err := c.service.CreateSuela(&in)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": "Suela creada exitosamente", "suela": suela})
}

// UpdateSuela sirve el PUT y el PATCH: misma regla de reemplazo completo de
// detalles cuando la clave "detalles" viene en el cuerpo
func (c *SuelaController) UpdateSuela(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	var data map[string]interface{}
	if err := ctx.ShouldBindJSON(&data); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	suela, err := c.service.UpdateSuela(id, data)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Suela actualizada exitosamente", "suela": suela})
}

func (c *SuelaController) DeleteSuela(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.service.DeleteSuela(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Suela eliminada exitosamente"})
}
