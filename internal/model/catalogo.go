package model

import "time"

// CatalogoProducto and CatalogoLabor are per-tenant pick lists.
type CatalogoProducto struct {
	ID        uint   `gorm:"primaryKey"`
	Owner     string `gorm:"type:varchar(60);not null;uniqueIndex:idx_catalogo_productos_owner_nombre,priority:1"`
	Nombre    string `gorm:"type:varchar(120);not null;uniqueIndex:idx_catalogo_productos_owner_nombre,priority:2"`
	CreatedAt time.Time
}

func (CatalogoProducto) TableName() string { return "catalogo_productos" }

type CatalogoLabor struct {
	ID        uint   `gorm:"primaryKey"`
	Owner     string `gorm:"type:varchar(60);not null;uniqueIndex:idx_catalogo_labores_owner_nombre,priority:1"`
	Nombre    string `gorm:"type:varchar(80);not null;uniqueIndex:idx_catalogo_labores_owner_nombre,priority:2"`
	CreatedAt time.Time
}

func (CatalogoLabor) TableName() string { return "catalogo_labores" }
