package repository

import (
	"context"

	"finca/internal/model"

	"gorm.io/gorm"
)

type TrabajadorRepository interface {
	Create(ctx context.Context, t *model.Trabajador) error
	Update(ctx context.Context, t *model.Trabajador) error
	Delete(ctx context.Context, owner string, id uint) error
	FindByID(ctx context.Context, owner string, id uint) (*model.Trabajador, error)
	List(ctx context.Context, owner, tipo string, incluirInactivos bool) ([]model.Trabajador, error)
}

type trabajadorRepo struct{ db *gorm.DB }

func NewTrabajadorRepository(db *gorm.DB) TrabajadorRepository { return &trabajadorRepo{db: db} }

func (r *trabajadorRepo) Create(ctx context.Context, t *model.Trabajador) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *trabajadorRepo) Update(ctx context.Context, t *model.Trabajador) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *trabajadorRepo) Delete(ctx context.Context, owner string, id uint) error {
	return deleteOwned(r.db.WithContext(ctx), &model.Trabajador{}, owner, id)
}

func (r *trabajadorRepo) FindByID(ctx context.Context, owner string, id uint) (*model.Trabajador, error) {
	var t model.Trabajador
	err := r.db.WithContext(ctx).Where("owner = ? AND id = ?", owner, id).First(&t).Error
	return &t, err
}

func (r *trabajadorRepo) List(ctx context.Context, owner, tipo string, incluirInactivos bool) ([]model.Trabajador, error) {
	var rows []model.Trabajador
	q := r.db.WithContext(ctx).Where("owner = ?", owner)
	if tipo != "" {
		q = q.Where("tipo = ?", tipo)
	}
	if !incluirInactivos {
		q = q.Where("activo = ?", true)
	}
	err := q.Order("nombre_completo ASC").Find(&rows).Error
	return rows, err
}
