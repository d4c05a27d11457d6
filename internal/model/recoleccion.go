package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Recoleccion is a harvest batch picked by one worker on one lote.
// TotalPagar is stored, and always equals Cajuelas × PrecioCajuela.
type Recoleccion struct {
	ID            uint            `gorm:"primaryKey"`
	Owner         string          `gorm:"type:varchar(60);not null;index:idx_recolecciones_owner_fecha,priority:1"`
	Fecha         time.Time       `gorm:"type:date;not null;index:idx_recolecciones_owner_fecha,priority:2"`
	Trabajador    string          `gorm:"type:varchar(120);not null;index"`
	Lote          string          `gorm:"type:varchar(80);not null"`
	Cajuelas      decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	PrecioCajuela decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TotalPagar    decimal.Decimal `gorm:"type:decimal(18,5);not null"`
	CreatedAt     time.Time
}

func (Recoleccion) TableName() string { return "recolecciones" }

// BeforeSave keeps the derived amount in sync on insert and on full-row save.
func (r *Recoleccion) BeforeSave(_ *gorm.DB) error {
	r.TotalPagar = r.Cajuelas.Mul(r.PrecioCajuela)
	return nil
}
