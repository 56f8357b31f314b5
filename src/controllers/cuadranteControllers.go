package controllers

import (
	"net/http"
	"strconv"

	"github.com/SIPEC/SIPEC-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type CuadranteController struct {
	service *services.CuadranteService
}

func NewCuadranteController(service *services.CuadranteService) *CuadranteController {
	return &CuadranteController{service: service}
}

func (c *CuadranteController) GetAllCuadrantes(ctx *gin.Context) {
	filas, err := c.service.GetAllCuadrantes()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, filas)
}

func (c *CuadranteController) GetCuadranteByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}
	fila, err := c.service.GetCuadranteByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, fila)
}

func (c *CuadranteController) CreateCuadrante(ctx *gin.Context) {
	var req NombreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fila, err := c.service.CreateCuadrante(req.Nombre)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": "Cuadrante creado exitosamente", "cuadrante": fila})
}

func (c *CuadranteController) UpdateCuadrante(ctx *gin.Context) {
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
	fila, err := c.service.UpdateCuadrante(id, req.Nombre)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Cuadrante actualizado exitosamente", "cuadrante": fila})
}

func (c *CuadranteController) DeleteCuadrante(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}
	if err := c.service.DeleteCuadrante(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Cuadrante eliminado exitosamente"})
}
