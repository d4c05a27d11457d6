package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ValeRequest appends a signed entry: positive for an advance, negative for a repayment.
type ValeRequest struct {
	Fecha      string          `json:"fecha"      validate:"required,datetime=2006-01-02"`
	Trabajador string          `json:"trabajador" validate:"required,max=120"`
	Monto      decimal.Decimal `json:"monto"      validate:"required"`
	Concepto   string          `json:"concepto"   validate:"required,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ValeResponse struct {
	ID         uint            `json:"id"`
	Fecha      string          `json:"fecha"`
	Trabajador string          `json:"trabajador"`
	Monto      decimal.Decimal `json:"monto"`
	Concepto   string          `json:"concepto"`
	Referencia *string         `json:"referencia,omitempty"`
}

type ValeListResponse struct {
	Data  []ValeResponse  `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
	Saldo decimal.Decimal `json:"saldo"`
}

type SaldoResponse struct {
	Trabajador string          `json:"trabajador"`
	Saldo      decimal.Decimal `json:"saldo"`
}
