package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/classifier"
)

// ── Errores de negocio del módulo de exportación ──

var (
	ErrExportSinSolicitudes = errors.New("no hay solicitudes para exportar")
	ErrExportGenerarFallo   = errors.New("error al generar el archivo Excel")
)

// ExportService exportación del listado de solicitudes a Excel (.xlsx).
// Devuelve el contenido en un bytes.Buffer; el handler escribe las cabeceras
// HTTP y el cuerpo.
type ExportService interface {
	ExportSolicitudes(ctx context.Context, f Filtros) (*bytes.Buffer, string, error)
}

type exportService struct {
	backend MantenimientoBackend
	logger  *zap.Logger
}

// NewExportService crea una instancia de ExportService
func NewExportService(backend MantenimientoBackend, logger *zap.Logger) ExportService {
	return &exportService{backend: backend, logger: logger}
}

func (s *exportService) ExportSolicitudes(ctx context.Context, f Filtros) (*bytes.Buffer, string, error) {
	// 1. Recuperar y filtrar igual que el listado de la consola
	items, err := s.backend.ListarTodas(ctx)
	if err != nil {
		s.logger.Error("error al listar solicitudes para exportar", zap.Error(err))
		return nil, "", err
	}
	items = aplicarFiltros(items, f)
	if len(items) == 0 {
		return nil, "", ErrExportSinSolicitudes
	}

	// 2. Generar el Excel
	file := excelize.NewFile()
	defer file.Close()

	sheet := "Solicitudes"
	idx, err := file.NewSheet(sheet)
	if err != nil {
		return nil, "", ErrExportGenerarFallo
	}
	file.SetActiveSheet(idx)
	file.DeleteSheet("Sheet1")

	headerStyle, _ := file.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#2E7D32"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	headers := []string{"ID", "Tipo", "Ubicación", "Descripción", "Estado",
		"Prioridad", "Estado Financiero", "Fecha", "Fuente", "Cuadrilla", "Fecha Programada"}
	widths := []float64{8, 20, 24, 40, 14, 12, 22, 14, 24, 18, 18}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		file.SetCellValue(sheet, col+"1", h)
		file.SetColWidth(sheet, col, col, widths[i])
		file.SetCellStyle(sheet, col+"1", col+"1", headerStyle)
	}

	// 3. Filas de datos con las etiquetas derivadas, no los códigos crudos
	for rowIdx, item := range items {
		cuadrilla := "-"
		if item.CuadrillaAsignada != nil {
			cuadrilla = *item.CuadrillaAsignada
		}
		fechaProgramada := "-"
		if item.FechaProgramada != nil {
			fechaProgramada = *item.FechaProgramada
		}

		values := []interface{}{
			item.ID,
			item.Tipo,
			item.Ubicacion,
			item.Descripcion,
			classifier.EstadoText(item.Estado),
			classifier.PrioridadText(item.Prioridad),
			classifier.FinancieroText(item.EstadoFinanciero),
			item.FechaRegistro,
			string(item.Fuente),
			cuadrilla,
			fechaProgramada,
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			file.SetCellValue(sheet, cell, v)
		}
	}

	// 4. Escribir al buffer
	buf := new(bytes.Buffer)
	if err := file.Write(buf); err != nil {
		s.logger.Error("error al escribir el Excel", zap.Error(err))
		return nil, "", ErrExportGenerarFallo
	}

	filename := fmt.Sprintf("solicitudes_mantenimiento_%s.xlsx", time.Now().Format("2006-01-02"))
	s.logger.Info("exportación generada",
		zap.Int("solicitudes", len(items)),
		zap.String("archivo", filename))
	return buf, filename, nil
}
