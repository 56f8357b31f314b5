package controllers

import (
	"net/http"
	"strconv"

	"github.com/SIPEC/SIPEC-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type CategoriaController struct {
	service *services.CategoriaService
}

func NewCategoriaController(service *services.CategoriaService) *CategoriaController {
	return &CategoriaController{service: service}
}

func (c *CategoriaController) GetAllCategorias(ctx *gin.Context) {
	filas, err := c.service.GetAllCategorias()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, filas)
}

func (c *CategoriaController) GetCategoriaByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}
	fila, err := c.service.GetCategoriaByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, fila)
}

func (c *CategoriaController) CreateCategoria(ctx *gin.Context) {
	var req NombreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fila, err := c.service.CreateCategoria(req.Nombre)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": "Categoria creada exitosamente", "categoria": fila})
}

func (c *CategoriaController) UpdateCategoria(ctx *gin.Context) {
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
	fila, err := c.service.UpdateCategoria(id, req.Nombre)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Categoria actualizada exitosamente", "categoria": fila})
}

func (c *CategoriaController) DeleteCategoria(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}
	if err := c.service.DeleteCategoria(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Categoria eliminada exitosamente"})
}
