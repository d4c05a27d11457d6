package repository

import (
	"context"

	"finca/internal/model"

	"gorm.io/gorm"
)

type LoteRepository interface {
	Create(ctx context.Context, l *model.Lote) error
	Update(ctx context.Context, l *model.Lote) error
	Delete(ctx context.Context, owner string, id uint) error
	FindByID(ctx context.Context, owner string, id uint) (*model.Lote, error)
	List(ctx context.Context, owner string) ([]model.Lote, error)
	CreateAnalisis(ctx context.Context, a *model.AnalisisSuelo) error
	ListAnalisis(ctx context.Context, owner, lote string) ([]model.AnalisisSuelo, error)
}

type loteRepo struct{ db *gorm.DB }

func NewLoteRepository(db *gorm.DB) LoteRepository { return &loteRepo{db: db} }

func (r *loteRepo) Create(ctx context.Context, l *model.Lote) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *loteRepo) Update(ctx context.Context, l *model.Lote) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *loteRepo) Delete(ctx context.Context, owner string, id uint) error {
	return deleteOwned(r.db.WithContext(ctx), &model.Lote{}, owner, id)
}

func (r *loteRepo) FindByID(ctx context.Context, owner string, id uint) (*model.Lote, error) {
	var l model.Lote
	err := r.db.WithContext(ctx).Where("owner = ? AND id = ?", owner, id).First(&l).Error
	return &l, err
}

func (r *loteRepo) List(ctx context.Context, owner string) ([]model.Lote, error) {
	var rows []model.Lote
	err := r.db.WithContext(ctx).Where("owner = ?", owner).Order("nombre ASC").Find(&rows).Error
	return rows, err
}

func (r *loteRepo) CreateAnalisis(ctx context.Context, a *model.AnalisisSuelo) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *loteRepo) ListAnalisis(ctx context.Context, owner, lote string) ([]model.AnalisisSuelo, error) {
	var rows []model.AnalisisSuelo
	err := r.db.WithContext(ctx).
		Where("owner = ? AND lote = ?", owner, lote).
		Order("fecha DESC, id DESC").
		Find(&rows).Error
	return rows, err
}
