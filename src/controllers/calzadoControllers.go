package controllers

import (
	"net/http"
	"strconv"

	"github.com/SIPEC/SIPEC-Backend/src/dtos"
	"github.com/SIPEC/SIPEC-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type CalzadoController struct {
	service *services.CalzadoService
}

func NewCalzadoController(service *services.CalzadoService) *CalzadoController {
	return &CalzadoController{service: service}
}

func idParam(ctx *gin.Context, nombre string) (int, bool) {
	id, err := strconv.Atoi(ctx.Param(nombre))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return 0, false
	}
	return id, true
}

// GetAllCalzados handles GET requests to list every specimen (joined view)
func (c *CalzadoController) GetAllCalzados(ctx *gin.Context) {
	calzados, err := c.service.GetAllCalzados()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, calzados)
}

func (c *CalzadoController) GetCalzadoByID(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	calzado, err := c.service.GetCalzadoByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, calzado)
}

// GetDubitadas / GetIndubitadas: listados filtrados por tipo de registro
func (c *CalzadoController) GetDubitadas(ctx *gin.Context) {
	calzados, err := c.service.GetCalzadosPorTipo("dubitada")
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, calzados)
}

func (c *CalzadoController) GetIndubitadas(ctx *gin.Context) {
	calzados, err := c.service.GetCalzadosPorTipo("indubitada")
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, calzados)
}

func (c *CalzadoController) GetDubitadaByID(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	calzado, err := c.service.GetCalzadoPorTipoYID("dubitada", id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, calzado)
}

func (c *CalzadoController) GetIndubitadaByID(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	calzado, err := c.service.GetCalzadoPorTipoYID("indubitada", id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, calzado)
}

// CreateCalzado handles POST requests to register a specimen with its colors
func (c *CalzadoController) CreateCalzado(ctx *gin.Context) {
	var in dtos.CalzadoInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	calzado, err := c.service.CreateCalzado(&in)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": "Calzado creado exitosamente", "calzado": calzado})
}

// UpdateCalzado handles PATCH requests; binds to a raw map so that absent
// and explicit-null fields can be told apart
func (c *CalzadoController) UpdateCalzado(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	var data map[string]interface{}
	if err := ctx.ShouldBindJSON(&data); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	calzado, err := c.service.UpdateCalzado(id, data)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Calzado actualizado exitosamente", "calzado": calzado})
}

func (c *CalzadoController) DeleteCalzado(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.service.DeleteCalzado(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Calzado eliminado exitosamente"})
}

// CreateCalzadoConImputado handles the compound create
func (c *CalzadoController) CreateCalzadoConImputado(ctx *gin.Context) {
	var in dtos.CalzadoConImputadoInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resultado, err := c.service.CreateCalzadoConImputado(&in)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{
		"message":  "Calzado e imputado registrados exitosamente",
		"imputado": resultado.Imputado,
		"calzado":  resultado.Calzado,
	})
}

// GetCalzadosPorDni handles GET by the linked imputado's dni
func (c *CalzadoController) GetCalzadosPorDni(ctx *gin.Context) {
	resultado, err := c.service.GetCalzadosPorDni(ctx.Param("dni"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resultado)
}

// GetImputadosConCalzados lists every imputado with its linked specimens
func (c *CalzadoController) GetImputadosConCalzados(ctx *gin.Context) {
	resultado, err := c.service.GetImputadosConCalzados()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resultado)
}

// UpdateCalzadoConImputado handles the compound PATCH over a linked pair
func (c *CalzadoController) UpdateCalzadoConImputado(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	imputadoId, err := strconv.Atoi(ctx.Param("imputadoId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID de imputado inválido"})
		return
	}
	var in dtos.CalzadoConImputadoUpdateInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resultado, err := c.service.UpdateCalzadoConImputado(id, imputadoId, &in)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"message":  "Calzado e imputado actualizados exitosamente",
		"imputado": resultado.Imputado,
		"calzado":  resultado.Calzado,
	})
}

// VincularImputado / DesvincularImputado: link protocol by ids
func (c *CalzadoController) VincularImputado(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	imputadoId, err := strconv.Atoi(ctx.Param("imputadoId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID de imputado inválido"})
		return
	}
	if err := c.service.VincularImputado(id, imputadoId); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": "Calzado vinculado correctamente al imputado"})
}

func (c *CalzadoController) DesvincularImputado(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	imputadoId, err := strconv.Atoi(ctx.Param("imputadoId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID de imputado inválido"})
		return
	}
	if err := c.service.DesvincularImputado(id, imputadoId); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Calzado desvinculado correctamente del imputado"})
}

// ImportCalzados handles the multipart spreadsheet upload
func (c *CalzadoController) ImportCalzados(ctx *gin.Context) {
	archivo, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Se requiere un archivo en el campo 'file'"})
		return
	}
	f, err := archivo.Open()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	resultado, err := c.service.ImportCalzadosDesdeExcel(f)
	if err != nil {
		if resultado != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "resultado": resultado})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Importación finalizada", "resultado": resultado})
}
