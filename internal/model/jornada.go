package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// HorasPorDia is the standard length of a labor day.
const HorasPorDia = 8

// Jornada is a labor entry: days (or fractions) a worker spent on a lote.
// Paid at the tenant's current Tarifa when the planilla is computed.
type Jornada struct {
	ID            uint            `gorm:"primaryKey"`
	Owner         string          `gorm:"type:varchar(60);not null;index:idx_jornadas_owner_fecha,priority:1"`
	Trabajador    string          `gorm:"type:varchar(120);not null;index"`
	Fecha         time.Time       `gorm:"type:date;not null;index:idx_jornadas_owner_fecha,priority:2"`
	Lote          string          `gorm:"type:varchar(80);not null"`
	Actividad     string          `gorm:"type:varchar(80);not null"`
	Dias          decimal.Decimal `gorm:"type:decimal(6,2);not null"`
	HorasNormales decimal.Decimal `gorm:"type:decimal(6,2);not null"`
	HorasExtra    decimal.Decimal `gorm:"type:decimal(6,2);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Jornada) TableName() string { return "jornadas" }
