package repository

import (
	"context"

	"finca/internal/model"

	"gorm.io/gorm"
)

// CierreRepository has no Update or Delete: closes are write-once.
type CierreRepository interface {
	Create(ctx context.Context, c *model.Cierre) error
	FindByID(ctx context.Context, owner string, id uint) (*model.Cierre, error)
	List(ctx context.Context, owner string) ([]model.Cierre, error)
}

type cierreRepo struct{ db *gorm.DB }

func NewCierreRepository(db *gorm.DB) CierreRepository { return &cierreRepo{db: db} }

func (r *cierreRepo) Create(ctx context.Context, c *model.Cierre) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *cierreRepo) FindByID(ctx context.Context, owner string, id uint) (*model.Cierre, error) {
	var c model.Cierre
	err := r.db.WithContext(ctx).Where("owner = ? AND id = ?", owner, id).First(&c).Error
	return &c, err
}

func (r *cierreRepo) List(ctx context.Context, owner string) ([]model.Cierre, error) {
	var rows []model.Cierre
	err := r.db.WithContext(ctx).Where("owner = ?", owner).Order("id DESC").Find(&rows).Error
	return rows, err
}
