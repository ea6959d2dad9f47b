package dto

import "github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/model"

// ── DTO del módulo de financiamiento ──

// FinanciamientoRequest apertura del subproceso de financiamiento.
// El monto llega como texto porque el formulario de la consola lo envía así;
// la capa de servicio valida que sea numérico y positivo.
type FinanciamientoRequest struct {
	MontoEstimado  string `json:"montoEstimado"  binding:"required"`
	Email          string `json:"email"`
	FechaSolicitud string `json:"fechaSolicitud"`
}

// RegistrarExternoRequest importación de un reporte ciudadano aprobado,
// con la prioridad elegida por el personal (MEDIA si se omite)
type RegistrarExternoRequest struct {
	Prioridad model.Prioridad `json:"prioridad"`
}

// ReporteExternoResponse reporte aprobado listo para mostrarse en la consola
type ReporteExternoResponse struct {
	model.ReporteExterno
	CategoriaDestino string `json:"categoriaDestino"` // código que recibirá mantenimiento al importarlo
}
