package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Insumo is a supply purchase or application charged to a lote.
// Tipo: "Abono" | "Fumigación" | "Cal" | "Herbicida" | ...
type Insumo struct {
	ID             uint            `gorm:"primaryKey"`
	Owner          string          `gorm:"type:varchar(60);not null;index:idx_insumos_owner_fecha,priority:1"`
	Fecha          time.Time       `gorm:"type:date;not null;index:idx_insumos_owner_fecha,priority:2"`
	Lote           string          `gorm:"type:varchar(80);not null"`
	Tipo           string          `gorm:"type:varchar(40);not null"`
	Etapa          string          `gorm:"type:varchar(60)"`
	Producto       string          `gorm:"type:varchar(120);not null"`
	Dosis          string          `gorm:"type:varchar(120)"`
	Cantidad       decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CostoTotal     decimal.Decimal `gorm:"type:decimal(18,5);not null"`
	CreatedAt      time.Time
}

func (Insumo) TableName() string { return "insumos" }

func (i *Insumo) BeforeSave(_ *gorm.DB) error {
	i.CostoTotal = i.Cantidad.Mul(i.PrecioUnitario)
	return nil
}
