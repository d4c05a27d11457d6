package model

import "time"

// Usuario is a login account. Its Username is the tenant ("owner") that
// scopes every record created while logged in.
type Usuario struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"type:varchar(60);uniqueIndex;not null"`
	Nombre       string `gorm:"not null"`
	Email        *string
	PasswordHash string `gorm:"not null"`
	Activo       bool   `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Usuario) TableName() string { return "usuarios" }
