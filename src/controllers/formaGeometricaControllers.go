package controllers

import (
	"net/http"
	"strconv"

	"github.com/SIPEC/SIPEC-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type FormaGeometricaController struct {
	service *services.FormaGeometricaService
}

func NewFormaGeometricaController(service *services.FormaGeometricaService) *FormaGeometricaController {
	return &FormaGeometricaController{service: service}
}

func (c *FormaGeometricaController) GetAllFormas(ctx *gin.Context) {
	filas, err := c.service.GetAllFormas()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, filas)
}

func (c *FormaGeometricaController) GetFormaByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}
	fila, err := c.service.GetFormaByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, fila)
}

func (c *FormaGeometricaController) CreateForma(ctx *gin.Context) {
	var req NombreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fila, err := c.service.CreateForma(req.Nombre)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": "Forma geométrica creada exitosamente", "forma": fila})
}

func (c *FormaGeometricaController) UpdateForma(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}
	var req NombreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fila, err := c.service.UpdateForma(id, req.Nombre)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Forma geométrica actualizada exitosamente", "forma": fila})
}

func (c *FormaGeometricaController) DeleteForma(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}
	if err := c.service.DeleteForma(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Forma geométrica eliminada exitosamente"})
}
