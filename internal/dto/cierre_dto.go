package dto

import "github.com/shopspring/decimal"

type CrearCierreRequest struct {
	Desde string `json:"desde" validate:"required,datetime=2006-01-02"`
	Hasta string `json:"hasta" validate:"required,datetime=2006-01-02"`
}

type EnviarCierreRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type CierreResponse struct {
	ID           uint            `json:"id"`
	FechaInicio  string          `json:"fecha_inicio"`
	FechaFin     string          `json:"fecha_fin"`
	CreadoPor    string          `json:"creado_por"`
	TotalNomina  decimal.Decimal `json:"total_nomina"`
	TotalInsumos decimal.Decimal `json:"total_insumos"`
	TotalCosecha decimal.Decimal `json:"total_cosecha"`
	TotalGeneral decimal.Decimal `json:"total_general"`
	CreatedAt    string          `json:"created_at"`
}
