package repository

import (
	"context"

	"finca/internal/model"

	"gorm.io/gorm"
)

type PlanRepository interface {
	DB() *gorm.DB
	Create(ctx context.Context, tx *gorm.DB, p *model.Plan) error
	Update(ctx context.Context, tx *gorm.DB, p *model.Plan) error
	Delete(ctx context.Context, owner string, id uint) error
	FindByID(ctx context.Context, tx *gorm.DB, owner string, id uint) (*model.Plan, error)
	// List returns plans in range ordered by fecha, then creation order.
	List(ctx context.Context, owner string, r Rango, estado string) ([]model.Plan, error)
}

type planRepo struct{ db *gorm.DB }

func NewPlanRepository(db *gorm.DB) PlanRepository { return &planRepo{db: db} }

func (r *planRepo) DB() *gorm.DB { return r.db }

func (r *planRepo) Create(ctx context.Context, tx *gorm.DB, p *model.Plan) error {
	return conn(ctx, r.db, tx).Create(p).Error
}

func (r *planRepo) Update(ctx context.Context, tx *gorm.DB, p *model.Plan) error {
	return conn(ctx, r.db, tx).Save(p).Error
}

func (r *planRepo) Delete(ctx context.Context, owner string, id uint) error {
	return deleteOwned(r.db.WithContext(ctx), &model.Plan{}, owner, id)
}

func (r *planRepo) FindByID(ctx context.Context, tx *gorm.DB, owner string, id uint) (*model.Plan, error) {
	var p model.Plan
	err := conn(ctx, r.db, tx).Where("owner = ? AND id = ?", owner, id).First(&p).Error
	return &p, err
}

func (r *planRepo) List(ctx context.Context, owner string, rg Rango, estado string) ([]model.Plan, error) {
	var rows []model.Plan
	q := r.db.WithContext(ctx).Where("owner = ? AND fecha BETWEEN ? AND ?", owner, rg.Desde, rg.Hasta)
	if estado != "" {
		q = q.Where("estado = ?", estado)
	}
	err := q.Order("fecha ASC, id ASC").Find(&rows).Error
	return rows, err
}
