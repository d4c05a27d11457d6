package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PlanPendiente = "pendiente"
	PlanRealizado = "realizado"
)

// Plan is a scheduled task on a lote.
// Estado: "pendiente" | "realizado". Deleting the row is the only way to cancel.
//
// Recurrence: when completed with RecurAutorenew and RecurEveryDays > 0, a
// pending copy is scheduled RecurEveryDays later. RecurTimes counts the
// remaining occurrences including this one; nil means it never runs out.
type Plan struct {
	ID    uint      `gorm:"primaryKey"`
	Owner string    `gorm:"type:varchar(60);not null;index:idx_planes_owner_fecha,priority:1"`
	Fecha time.Time `gorm:"type:date;not null;index:idx_planes_owner_fecha,priority:2"`
	Lote  string    `gorm:"type:varchar(80);not null"`
	Tipo  string    `gorm:"type:varchar(40);not null"` // Jornada | Abono | Fumigación | Cal | Herbicida

	// Labor plans
	Trabajador *string          `gorm:"type:varchar(120)"`
	Actividad  *string          `gorm:"type:varchar(80)"`
	Dias       *decimal.Decimal `gorm:"type:decimal(6,2)"`
	HorasExtra *decimal.Decimal `gorm:"type:decimal(6,2)"`

	// Supply plans
	Etapa          *string          `gorm:"type:varchar(60)"`
	Producto       *string          `gorm:"type:varchar(120)"`
	Dosis          *string          `gorm:"type:varchar(120)"`
	Cantidad       *decimal.Decimal `gorm:"type:decimal(12,3)"`
	PrecioUnitario *decimal.Decimal `gorm:"type:decimal(12,2)"`

	Estado         string `gorm:"type:varchar(20);not null;default:'pendiente'"`
	RecurEveryDays *int
	RecurTimes     *int
	RecurAutorenew bool `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Plan) TableName() string { return "planes" }
