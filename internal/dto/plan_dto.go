package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CrearPlanRequest lists every recognized optional field explicitly; each
// maps to exactly one column.
type CrearPlanRequest struct {
	Fecha string `json:"fecha" validate:"required,datetime=2006-01-02"`
	Lote  string `json:"lote"  validate:"required,max=80"`
	Tipo  string `json:"tipo"  validate:"required,oneof=Jornada Abono Fumigación Cal Herbicida"`

	Trabajador *string          `json:"trabajador"  validate:"omitempty,max=120"`
	Actividad  *string          `json:"actividad"   validate:"omitempty,max=80"`
	Dias       *decimal.Decimal `json:"dias"        validate:"omitempty,gt=0"`
	HorasExtra *decimal.Decimal `json:"horas_extra" validate:"omitempty,min=0"`

	Etapa          *string          `json:"etapa"           validate:"omitempty,max=60"`
	Producto       *string          `json:"producto"        validate:"omitempty,max=120"`
	Dosis          *string          `json:"dosis"           validate:"omitempty,max=120"`
	Cantidad       *decimal.Decimal `json:"cantidad"        validate:"omitempty,gt=0"`
	PrecioUnitario *decimal.Decimal `json:"precio_unitario" validate:"omitempty,min=0"`

	RecurEveryDays *int `json:"recur_every_days" validate:"omitempty,min=1,max=365"`
	RecurTimes     *int `json:"recur_times"      validate:"omitempty,min=1"`
	RecurAutorenew bool `json:"recur_autorenew"`
}

// ActualizarPlanRequest: nil fields are left untouched.
type ActualizarPlanRequest struct {
	Fecha *string `json:"fecha" validate:"omitempty,datetime=2006-01-02"`
	Lote  *string `json:"lote"  validate:"omitempty,max=80"`
	Tipo  *string `json:"tipo"  validate:"omitempty,oneof=Jornada Abono Fumigación Cal Herbicida"`

	Trabajador *string          `json:"trabajador"  validate:"omitempty,max=120"`
	Actividad  *string          `json:"actividad"   validate:"omitempty,max=80"`
	Dias       *decimal.Decimal `json:"dias"        validate:"omitempty,gt=0"`
	HorasExtra *decimal.Decimal `json:"horas_extra" validate:"omitempty,min=0"`

	Etapa          *string          `json:"etapa"           validate:"omitempty,max=60"`
	Producto       *string          `json:"producto"        validate:"omitempty,max=120"`
	Dosis          *string          `json:"dosis"           validate:"omitempty,max=120"`
	Cantidad       *decimal.Decimal `json:"cantidad"        validate:"omitempty,gt=0"`
	PrecioUnitario *decimal.Decimal `json:"precio_unitario" validate:"omitempty,min=0"`

	RecurEveryDays *int  `json:"recur_every_days" validate:"omitempty,min=1,max=365"`
	RecurTimes     *int  `json:"recur_times"      validate:"omitempty,min=1,excluded_with=RecurInfinito"`
	RecurAutorenew *bool `json:"recur_autorenew"`
	// RecurInfinito clears RecurTimes; an omitted recur_times keeps the stored count.
	RecurInfinito bool `json:"recur_infinito"`
}

type PosponerPlanRequest struct {
	Dias int `json:"dias" validate:"required,min=1,max=365"`
}

type PlanFilter struct {
	Desde  string `form:"desde"  validate:"required,datetime=2006-01-02"`
	Hasta  string `form:"hasta"  validate:"required,datetime=2006-01-02"`
	Estado string `form:"estado" validate:"omitempty,oneof=pendiente realizado"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PlanResponse struct {
	ID             uint             `json:"id"`
	Fecha          string           `json:"fecha"`
	Lote           string           `json:"lote"`
	Tipo           string           `json:"tipo"`
	Trabajador     *string          `json:"trabajador,omitempty"`
	Actividad      *string          `json:"actividad,omitempty"`
	Dias           *decimal.Decimal `json:"dias,omitempty"`
	HorasExtra     *decimal.Decimal `json:"horas_extra,omitempty"`
	Etapa          *string          `json:"etapa,omitempty"`
	Producto       *string          `json:"producto,omitempty"`
	Dosis          *string          `json:"dosis,omitempty"`
	Cantidad       *decimal.Decimal `json:"cantidad,omitempty"`
	PrecioUnitario *decimal.Decimal `json:"precio_unitario,omitempty"`
	Estado         string           `json:"estado"`
	RecurEveryDays *int             `json:"recur_every_days,omitempty"`
	RecurTimes     *int             `json:"recur_times,omitempty"`
	RecurAutorenew bool             `json:"recur_autorenew"`
	Urgencia       string           `json:"urgencia"` // vencido | hoy | futuro | realizado
}

type CompletarPlanResponse struct {
	Plan      PlanResponse  `json:"plan"`
	Siguiente *PlanResponse `json:"siguiente,omitempty"`
	// JornadaID is set when completing a labor plan recorded a Jornada.
	JornadaID *uint `json:"jornada_id,omitempty"`
}
