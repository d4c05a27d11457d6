package model

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrRegistroInmutable is returned by hooks on append-only tables.
var ErrRegistroInmutable = errors.New("registro inmutable: no se permite modificarlo")

// Vale is an immutable entry in a worker's debt ledger.
// Monto > 0 is an advance (the worker owes it), Monto < 0 a repayment or a
// deduction applied at payroll close. The balance is SUM(monto), never stored.
type Vale struct {
	ID         uint            `gorm:"primaryKey"`
	Owner      string          `gorm:"type:varchar(60);not null;index;uniqueIndex:idx_vales_owner_referencia,priority:1"`
	Fecha      time.Time       `gorm:"type:date;not null"`
	Trabajador string          `gorm:"type:varchar(120);not null;index"`
	Monto      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Concepto   string          `gorm:"type:varchar(200);not null"`
	// Referencia is set by payroll close: planilla:<tipo>:<desde>:<hasta>:<trabajador>
	Referencia *string `gorm:"type:varchar(200);uniqueIndex:idx_vales_owner_referencia,priority:2"`
	CreatedAt  time.Time
}

func (Vale) TableName() string { return "vales" }

// BeforeUpdate rejects any mutation; corrections are new entries.
func (v *Vale) BeforeUpdate(_ *gorm.DB) error { return ErrRegistroInmutable }
