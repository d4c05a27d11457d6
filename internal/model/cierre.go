package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Cierre is the snapshot of a period's totals taken when the period is closed.
// Rows are written once and never updated or deleted. Closing does not lock
// the period: entries dated inside it can still be added afterwards.
type Cierre struct {
	ID           uint            `gorm:"primaryKey"`
	Owner        string          `gorm:"type:varchar(60);not null;index"`
	FechaInicio  time.Time       `gorm:"type:date;not null"`
	FechaFin     time.Time       `gorm:"type:date;not null"`
	CreadoPor    string          `gorm:"type:varchar(60);not null"`
	TotalNomina  decimal.Decimal `gorm:"type:decimal(18,5);not null"`
	TotalInsumos decimal.Decimal `gorm:"type:decimal(18,5);not null"`
	TotalCosecha decimal.Decimal `gorm:"type:decimal(18,5);not null"`
	TotalGeneral decimal.Decimal `gorm:"type:decimal(18,5);not null"`
	CreatedAt    time.Time
}

func (Cierre) TableName() string { return "cierres" }

func (c *Cierre) BeforeUpdate(_ *gorm.DB) error { return ErrRegistroInmutable }
func (c *Cierre) BeforeDelete(_ *gorm.DB) error { return ErrRegistroInmutable }
