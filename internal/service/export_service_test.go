package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func TestExportSolicitudes_GeneraExcel(t *testing.T) {
	backend := newMockBackend()
	backend.solicitudes = solicitudesDePrueba()
	svc := NewExportService(backend, zap.NewNop())

	buf, filename, err := svc.ExportSolicitudes(context.Background(), Filtros{})
	if err != nil {
		t.Fatalf("ExportSolicitudes debería tener éxito: %v", err)
	}
	if !strings.HasPrefix(filename, "solicitudes_mantenimiento_") || !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("nombre de archivo inesperado: %s", filename)
	}

	// El contenido debe abrirse como Excel y traer las filas clasificadas
	file, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("el buffer no es un xlsx válido: %v", err)
	}
	defer file.Close()

	rows, err := file.GetRows("Solicitudes")
	if err != nil {
		t.Fatalf("error al leer la hoja: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("se esperaban 1 encabezado + 3 filas, se obtuvieron %d", len(rows))
	}
	if rows[0][0] != "ID" || rows[0][4] != "Estado" {
		t.Errorf("encabezados inesperados: %v", rows[0])
	}

	// Las celdas llevan etiquetas derivadas, no códigos crudos
	encontrado := false
	for _, row := range rows[1:] {
		if len(row) > 4 && row[4] == "Pendiente" {
			encontrado = true
		}
		if len(row) > 4 && row[4] == "PENDIENTE" {
			t.Error("el Excel no debe exponer el código crudo del estado")
		}
	}
	if !encontrado {
		t.Error("ninguna fila lleva la etiqueta Pendiente")
	}
}

func TestExportSolicitudes_RespetaFiltros(t *testing.T) {
	backend := newMockBackend()
	backend.solicitudes = solicitudesDePrueba()
	svc := NewExportService(backend, zap.NewNop())

	buf, _, err := svc.ExportSolicitudes(context.Background(), Filtros{Estado: "PENDIENTE"})
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}

	file, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("el buffer no es un xlsx válido: %v", err)
	}
	defer file.Close()

	rows, _ := file.GetRows("Solicitudes")
	if len(rows) != 3 {
		t.Errorf("se esperaban 1 encabezado + 2 pendientes, se obtuvieron %d filas", len(rows))
	}
}

func TestExportSolicitudes_SinDatos(t *testing.T) {
	backend := newMockBackend()
	svc := NewExportService(backend, zap.NewNop())

	_, _, err := svc.ExportSolicitudes(context.Background(), Filtros{})
	if !errors.Is(err, ErrExportSinSolicitudes) {
		t.Errorf("se esperaba ErrExportSinSolicitudes, se obtuvo %v", err)
	}
}
