package model

import "time"

const (
	TipoJornalero  = "Jornalero"
	TipoRecolector = "Recolector"
)

// Trabajador is a farm worker. Entries reference workers by NombreCompleto.
type Trabajador struct {
	ID             uint   `gorm:"primaryKey"`
	Owner          string `gorm:"type:varchar(60);not null;uniqueIndex:idx_trabajadores_owner_nombre,priority:1"`
	NombreCompleto string `gorm:"type:varchar(120);not null;uniqueIndex:idx_trabajadores_owner_nombre,priority:2"`
	Tipo           string `gorm:"type:varchar(20);not null"`
	Activo         bool   `gorm:"not null"`
	CreatedAt      time.Time
}

func (Trabajador) TableName() string { return "trabajadores" }
