package repository

import (
	"context"

	"finca/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TarifaRepository interface {
	// Find returns gorm.ErrRecordNotFound when the tenant never saved rates.
	Find(ctx context.Context, tx *gorm.DB, owner string) (*model.Tarifa, error)
	Upsert(ctx context.Context, t *model.Tarifa) error
}

type tarifaRepo struct{ db *gorm.DB }

func NewTarifaRepository(db *gorm.DB) TarifaRepository { return &tarifaRepo{db: db} }

func (r *tarifaRepo) Find(ctx context.Context, tx *gorm.DB, owner string) (*model.Tarifa, error) {
	var t model.Tarifa
	err := conn(ctx, r.db, tx).Where("owner = ?", owner).First(&t).Error
	return &t, err
}

func (r *tarifaRepo) Upsert(ctx context.Context, t *model.Tarifa) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner"}},
		DoUpdates: clause.AssignmentColumns([]string{"pago_dia", "pago_hora_extra", "updated_at"}),
	}).Create(t).Error
}
