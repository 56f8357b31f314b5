package controllers

import (
	"net/http"
	"strconv"

	"github.com/SIPEC/SIPEC-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type MarcaController struct {
	service *services.MarcaService
}

func NewMarcaController(service *services.MarcaService) *MarcaController {
	return &MarcaController{service: service}
}

// GetAllMarcas handles GET requests to retrieve all marca records
func (c *MarcaController) GetAllMarcas(ctx *gin.Context) {
	marcas, err := c.service.GetAllMarcas()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, marcas)
}

// GetMarcaByID handles GET requests to retrieve a marca record by ID
func (c *MarcaController) GetMarcaByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID de marca inválido"})
		return
	}
	marca, err := c.service.GetMarcaByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, marca)
}

// CreateMarca handles POST requests to create a new marca record
func (c *MarcaController) CreateMarca(ctx *gin.Context) {
	var req NombreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	marca, err := c.service.CreateMarca(req.Nombre)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": "Marca creada exitosamente", "marca": marca})
}

// UpdateMarca handles PATCH requests to rename a marca record
func (c *MarcaController) UpdateMarca(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID de marca inválido"})
		return
	}
	var req NombreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	marca, err := c.service.UpdateMarca(id, req.Nombre)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Marca actualizada exitosamente", "marca": marca})
}

// DeleteMarca handles DELETE requests; blocked while calzados reference it
func (c *MarcaController) DeleteMarca(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID de marca inválido"})
		return
	}
	if err := c.service.DeleteMarca(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Marca eliminada exitosamente"})
}
