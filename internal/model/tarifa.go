package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tarifa is the per-tenant wage table, one row per owner.
type Tarifa struct {
	Owner         string          `gorm:"type:varchar(60);primaryKey"`
	PagoDia       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PagoHoraExtra decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	UpdatedAt     time.Time
}

func (Tarifa) TableName() string { return "tarifas" }
