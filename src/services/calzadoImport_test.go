package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	excelize "github.com/xuri/excelize/v2"
)

// planillaDePrueba arma un xlsx en memoria con el encabezado estandar y las
// filas recibidas.
func planillaDePrueba(t *testing.T, filas [][]interface{}) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	hoja := f.GetSheetName(0)
	encabezado := []interface{}{"categoria", "marca", "modelo", "talle", "ancho", "alto", "colores", "tipo_registro"}
	require.NoError(t, f.SetSheetRow(hoja, "A1", &encabezado))
	for i := range filas {
		celda, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(hoja, celda, &filas[i]))
	}
	return f
}

func TestImportCalzadosDesdeExcel(t *testing.T) {
	db := setupTestDB(t)
	service := NewCalzadoService(db, true)

	f := planillaDePrueba(t, [][]interface{}{
		{"Deportivo", "Nike", "Air Zoom", "42", "10.5", "30.2", "Negro/Blanco", "indubitada_proveedor"},
		{"Deportivo", "nike", "Superstar", "41", "9.8", "29.0", "Negro", "dubitada"},
	})
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	resultado, err := service.ImportCalzadosDesdeExcel(buf)
	require.NoError(t, err)
	assert.Equal(t, 2, resultado.Importados)
	assert.Empty(t, resultado.Errores)

	calzados, err := service.GetAllCalzados()
	require.NoError(t, err)
	require.Len(t, calzados, 2)

	// "Nike" y "nike" resuelven a la misma marca
	marcas, err := NewMarcaService(db).GetAllMarcas()
	require.NoError(t, err)
	assert.Len(t, marcas, 1)

	colores, err := NewColorService(db).GetAllColores()
	require.NoError(t, err)
	assert.Len(t, colores, 2)
}

func TestImportCalzadosReportsBadRows(t *testing.T) {
	db := setupTestDB(t)
	service := NewCalzadoService(db, true)

	f := planillaDePrueba(t, [][]interface{}{
		{"Deportivo", "Nike", "Air Zoom", "42", "10.5", "30.2", "Negro", "indubitada_proveedor"},
		{"Deportivo", "Nike", "Air Zoom", "43", "no-numerico", "30.2", "Negro", "indubitada_proveedor"},
		{"Deportivo", "Nike", "Air Zoom", "44", "10.5", "30.2", "Negro", "sospechosa"},
	})
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	resultado, err := service.ImportCalzadosDesdeExcel(buf)
	require.NoError(t, err)
	assert.Equal(t, 1, resultado.Importados)
	assert.Len(t, resultado.Errores, 2)
}

func TestImportCalzadosAllRowsFail(t *testing.T) {
	db := setupTestDB(t)
	service := NewCalzadoService(db, true)

	f := planillaDePrueba(t, [][]interface{}{
		{"Deportivo", "Nike", "Air Zoom", "42", "zzz", "30.2", "Negro", "indubitada_proveedor"},
	})
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	_, err = service.ImportCalzadosDesdeExcel(buf)
	require.Error(t, err)
}
