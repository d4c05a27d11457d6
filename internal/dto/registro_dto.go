package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// JornadaRequest is used for both create and update. HorasNormales defaults
// to Dias × 8 when omitted.
type JornadaRequest struct {
	Trabajador    string           `json:"trabajador"     validate:"required,max=120"`
	Fecha         string           `json:"fecha"          validate:"required,datetime=2006-01-02"`
	Lote          string           `json:"lote"           validate:"required,max=80"`
	Actividad     string           `json:"actividad"      validate:"required,max=80"`
	Dias          decimal.Decimal  `json:"dias"           validate:"gt=0"`
	HorasNormales *decimal.Decimal `json:"horas_normales"`
	HorasExtra    decimal.Decimal  `json:"horas_extra"    validate:"min=0"`
}

type RecoleccionRequest struct {
	Fecha         string          `json:"fecha"          validate:"required,datetime=2006-01-02"`
	Trabajador    string          `json:"trabajador"     validate:"required,max=120"`
	Lote          string          `json:"lote"           validate:"required,max=80"`
	Cajuelas      decimal.Decimal `json:"cajuelas"       validate:"gt=0"`
	PrecioCajuela decimal.Decimal `json:"precio_cajuela" validate:"gt=0"`
}

// RecoleccionLoteRequest records a whole day's harvest in one transaction.
type RecoleccionLoteRequest struct {
	Items []RecoleccionRequest `json:"items" validate:"required,min=1,max=500,dive"`
}

type InsumoRequest struct {
	Fecha          string          `json:"fecha"           validate:"required,datetime=2006-01-02"`
	Lote           string          `json:"lote"            validate:"required,max=80"`
	Tipo           string          `json:"tipo"            validate:"required,max=40"`
	Etapa          string          `json:"etapa"           validate:"max=60"`
	Producto       string          `json:"producto"        validate:"required,max=120"`
	Dosis          string          `json:"dosis"           validate:"max=120"`
	Cantidad       decimal.Decimal `json:"cantidad"        validate:"gt=0"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario" validate:"gt=0"`
}

// RegistroFilter is bound from the query string of the listing endpoints.
type RegistroFilter struct {
	Desde      string `form:"desde"      validate:"omitempty,datetime=2006-01-02"`
	Hasta      string `form:"hasta"      validate:"omitempty,datetime=2006-01-02"`
	Trabajador string `form:"trabajador"`
	Lote       string `form:"lote"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type JornadaResponse struct {
	ID            uint            `json:"id"`
	Trabajador    string          `json:"trabajador"`
	Fecha         string          `json:"fecha"`
	Lote          string          `json:"lote"`
	Actividad     string          `json:"actividad"`
	Dias          decimal.Decimal `json:"dias"`
	HorasNormales decimal.Decimal `json:"horas_normales"`
	HorasExtra    decimal.Decimal `json:"horas_extra"`
}

type RecoleccionResponse struct {
	ID            uint            `json:"id"`
	Fecha         string          `json:"fecha"`
	Trabajador    string          `json:"trabajador"`
	Lote          string          `json:"lote"`
	Cajuelas      decimal.Decimal `json:"cajuelas"`
	PrecioCajuela decimal.Decimal `json:"precio_cajuela"`
	TotalPagar    decimal.Decimal `json:"total_pagar"`
}

type RecoleccionLoteResponse struct {
	Registradas int                   `json:"registradas"`
	Total       decimal.Decimal       `json:"total"`
	Items       []RecoleccionResponse `json:"items"`
}

type InsumoResponse struct {
	ID             uint            `json:"id"`
	Fecha          string          `json:"fecha"`
	Lote           string          `json:"lote"`
	Tipo           string          `json:"tipo"`
	Etapa          string          `json:"etapa,omitempty"`
	Producto       string          `json:"producto"`
	Dosis          string          `json:"dosis,omitempty"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	CostoTotal     decimal.Decimal `json:"costo_total"`
}
