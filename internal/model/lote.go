package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lote is a named plot of the farm, the unit of cost attribution.
// PoligonoGeoJSON is stored as received; it is never parsed server-side.
type Lote struct {
	ID              uint   `gorm:"primaryKey"`
	Owner           string `gorm:"type:varchar(60);not null;uniqueIndex:idx_lotes_owner_nombre,priority:1"`
	Nombre          string `gorm:"type:varchar(80);not null;uniqueIndex:idx_lotes_owner_nombre,priority:2"`
	Latitud         *float64
	Longitud        *float64
	AreaHectareas   *decimal.Decimal `gorm:"type:decimal(10,2)"`
	PoligonoGeoJSON *string          `gorm:"column:poligono_geojson;type:text"`
	CreatedAt       time.Time
}

func (Lote) TableName() string { return "lotes" }

// AnalisisSuelo stores a soil lab result for a lote.
type AnalisisSuelo struct {
	ID        uint             `gorm:"primaryKey"`
	Owner     string           `gorm:"type:varchar(60);not null;index"`
	Lote      string           `gorm:"type:varchar(80);not null;index"`
	Fecha     time.Time        `gorm:"type:date;not null"`
	PH        *decimal.Decimal `gorm:"column:ph;type:decimal(4,2)"`
	Nitrogeno *decimal.Decimal `gorm:"type:decimal(8,2)"`
	Fosforo   *decimal.Decimal `gorm:"type:decimal(8,2)"`
	Potasio   *decimal.Decimal `gorm:"type:decimal(8,2)"`
	Notas     string
	CreatedAt time.Time
}

func (AnalisisSuelo) TableName() string { return "analisis_suelo" }
