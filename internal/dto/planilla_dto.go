package dto

import "github.com/shopspring/decimal"

const (
	PlanillaJornadas = "jornadas"
	PlanillaCosecha  = "cosecha"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

// PlanillaRequest computes a payroll sheet. Abonos maps worker → deduction;
// workers left out are charged their whole positive balance.
type PlanillaRequest struct {
	Tipo   string                     `json:"-"`
	Desde  string                     `json:"desde"  validate:"required,datetime=2006-01-02"`
	Hasta  string                     `json:"hasta"  validate:"required,datetime=2006-01-02"`
	Abonos map[string]decimal.Decimal `json:"abonos"`
}

type PagarPlanillaRequest struct {
	PlanillaRequest
	// FechaPago dates the deduction entries; defaults to today.
	FechaPago string `json:"fecha_pago" validate:"omitempty,datetime=2006-01-02"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PlanillaFila struct {
	Trabajador   string          `json:"trabajador"`
	Dias         decimal.Decimal `json:"dias"`
	HorasExtra   decimal.Decimal `json:"horas_extra"`
	Cajuelas     decimal.Decimal `json:"cajuelas"`
	Bruto        decimal.Decimal `json:"bruto"`
	Deuda        decimal.Decimal `json:"deuda"`
	Abono        decimal.Decimal `json:"abono"`
	Neto         decimal.Decimal `json:"neto"`
	NetoNegativo bool            `json:"neto_negativo"`
	YaAplicado   bool            `json:"ya_aplicado,omitempty"`
}

type PlanillaResponse struct {
	Tipo          string          `json:"tipo"`
	Desde         string          `json:"desde"`
	Hasta         string          `json:"hasta"`
	PagoDia       decimal.Decimal `json:"pago_dia"`
	PagoHoraExtra decimal.Decimal `json:"pago_hora_extra"`
	Filas         []PlanillaFila  `json:"filas"`
	TotalBruto    decimal.Decimal `json:"total_bruto"`
	TotalAbonos   decimal.Decimal `json:"total_abonos"`
	TotalNeto     decimal.Decimal `json:"total_neto"`
}

type PagoPlanillaResponse struct {
	Planilla     PlanillaResponse `json:"planilla"`
	ValesCreados int              `json:"vales_creados"`
}
