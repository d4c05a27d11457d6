package dto

import "github.com/shopspring/decimal"

// RangoQuery is bound from ?desde=&hasta=.
type RangoQuery struct {
	Desde string `form:"desde" validate:"required,datetime=2006-01-02"`
	Hasta string `form:"hasta" validate:"required,datetime=2006-01-02"`
}

// RangoOpcionalQuery allows lifetime totals when both bounds are omitted.
type RangoOpcionalQuery struct {
	Desde string `form:"desde" validate:"omitempty,datetime=2006-01-02"`
	Hasta string `form:"hasta" validate:"omitempty,datetime=2006-01-02"`
}

// ResumenPeriodoResponse: TotalGeneral = ManoObra + Insumos. Cosecha is paid
// straight to pickers and is reported on its own.
type ResumenPeriodoResponse struct {
	Desde         string          `json:"desde"`
	Hasta         string          `json:"hasta"`
	Cosecha       decimal.Decimal `json:"cosecha"`
	Insumos       decimal.Decimal `json:"insumos"`
	ManoObra      decimal.Decimal `json:"mano_obra"`
	TotalGeneral  decimal.Decimal `json:"total_general"`
	PagoDia       decimal.Decimal `json:"pago_dia"`
	PagoHoraExtra decimal.Decimal `json:"pago_hora_extra"`
}

type GastoLoteResponse struct {
	Lote       string          `json:"lote"`
	Insumos    decimal.Decimal `json:"insumos"`
	ManoObra   decimal.Decimal `json:"mano_obra"`
	TotalGasto decimal.Decimal `json:"total_gasto"`
	Cosecha    decimal.Decimal `json:"cosecha"`
}

type CosechaDetalle struct {
	Trabajador string          `json:"trabajador"`
	Lote       string          `json:"lote"`
	Cajuelas   decimal.Decimal `json:"cajuelas"`
	Total      decimal.Decimal `json:"total"`
}

type CosechaLote struct {
	Lote     string          `json:"lote"`
	Cajuelas decimal.Decimal `json:"cajuelas"`
	Total    decimal.Decimal `json:"total"`
}

type ReporteCosechaResponse struct {
	Desde         string           `json:"desde"`
	Hasta         string           `json:"hasta"`
	Detalle       []CosechaDetalle `json:"detalle"`
	PorLote       []CosechaLote    `json:"por_lote"`
	TotalCajuelas decimal.Decimal  `json:"total_cajuelas"`
	Total         decimal.Decimal  `json:"total"`
}
