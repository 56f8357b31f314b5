package controllers

import (
	"net/http"
	"strconv"

	"github.com/SIPEC/SIPEC-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type ColorController struct {
	service *services.ColorService
}

func NewColorController(service *services.ColorService) *ColorController {
	return &ColorController{service: service}
}

func (c *ColorController) GetAllColores(ctx *gin.Context) {
	filas, err := c.service.GetAllColores()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, filas)
}

func (c *ColorController) GetColorByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}
	fila, err := c.service.GetColorByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, fila)
}

func (c *ColorController) CreateColor(ctx *gin.Context) {
	var req NombreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fila, err := c.service.CreateColor(req.Nombre)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": "Color creado exitosamente", "color": fila})
}

func (c *ColorController) UpdateColor(ctx *gin.Context) {
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
	fila, err := c.service.UpdateColor(id, req.Nombre)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Color actualizado exitosamente", "color": fila})
}

func (c *ColorController) DeleteColor(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}
	if err := c.service.DeleteColor(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Color eliminado exitosamente"})
}
