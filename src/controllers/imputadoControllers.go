package controllers

import (
	"net/http"
	"strconv"

	"github.com/SIPEC/SIPEC-Backend/src/dtos"
	"github.com/SIPEC/SIPEC-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type ImputadoController struct {
	service *services.ImputadoService
}

func NewImputadoController(service *services.ImputadoService) *ImputadoController {
	return &ImputadoController{service: service}
}

func (c *ImputadoController) GetAllImputados(ctx *gin.Context) {
	imputados, err := c.service.GetAllImputados()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, imputados)
}

func (c *ImputadoController) GetImputadoByID(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	imputado, err := c.service.GetImputadoByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, imputado)
}

func (c *ImputadoController) CreateImputado(ctx *gin.Context) {
	var in dtos.ImputadoInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	imputado, err := c.service.CreateImputado(&in)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, imputado)
}

func (c *ImputadoController) UpdateImputado(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	var data map[string]interface{}
	if err := ctx.ShouldBindJSON(&data); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	imputado, err := c.service.UpdateImputado(id, data)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, imputado)
}

// DeleteImputado: blocked while the imputado has linked calzados
func (c *ImputadoController) DeleteImputado(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.service.DeleteImputado(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Imputado eliminado correctamente"})
}

func calzadoIdParam(ctx *gin.Context) (int, bool) {
	id, err := strconv.Atoi(ctx.Param("calzadoId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID de calzado inválido"})
		return 0, false
	}
	return id, true
}

// EditarCalzadoVinculado patches size fields of a calzado linked to this
// imputado
func (c *ImputadoController) EditarCalzadoVinculado(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	calzadoId, ok := calzadoIdParam(ctx)
	if !ok {
		return
	}
	var data map[string]interface{}
	if err := ctx.ShouldBindJSON(&data); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	calzado, err := c.service.EditarCalzadoVinculado(id, calzadoId, data)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Calzado editado correctamente", "calzado": calzado})
}

func (c *ImputadoController) VincularCalzado(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	calzadoId, ok := calzadoIdParam(ctx)
	if !ok {
		return
	}
	if err := c.service.VincularCalzado(id, calzadoId); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": "Calzado vinculado correctamente al imputado"})
}

func (c *ImputadoController) DesvincularCalzado(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	calzadoId, ok := calzadoIdParam(ctx)
	if !ok {
		return
	}
	if err := c.service.DesvincularCalzado(id, calzadoId); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Calzado desvinculado correctamente del imputado"})
}
