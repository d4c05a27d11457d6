package repository

import (
	"context"

	"finca/internal/model"

	"gorm.io/gorm"
)

type CatalogoRepository interface {
	ListProductos(ctx context.Context, owner string) ([]model.CatalogoProducto, error)
	CreateProducto(ctx context.Context, p *model.CatalogoProducto) error
	DeleteProducto(ctx context.Context, owner string, id uint) error
	ListLabores(ctx context.Context, owner string) ([]model.CatalogoLabor, error)
	CreateLabor(ctx context.Context, l *model.CatalogoLabor) error
	DeleteLabor(ctx context.Context, owner string, id uint) error
}

type catalogoRepo struct{ db *gorm.DB }

func NewCatalogoRepository(db *gorm.DB) CatalogoRepository { return &catalogoRepo{db: db} }

func (r *catalogoRepo) ListProductos(ctx context.Context, owner string) ([]model.CatalogoProducto, error) {
	var rows []model.CatalogoProducto
	err := r.db.WithContext(ctx).Where("owner = ?", owner).Order("nombre ASC").Find(&rows).Error
	return rows, err
}

func (r *catalogoRepo) CreateProducto(ctx context.Context, p *model.CatalogoProducto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *catalogoRepo) DeleteProducto(ctx context.Context, owner string, id uint) error {
	return deleteOwned(r.db.WithContext(ctx), &model.CatalogoProducto{}, owner, id)
}

func (r *catalogoRepo) ListLabores(ctx context.Context, owner string) ([]model.CatalogoLabor, error) {
	var rows []model.CatalogoLabor
	err := r.db.WithContext(ctx).Where("owner = ?", owner).Order("nombre ASC").Find(&rows).Error
	return rows, err
}

func (r *catalogoRepo) CreateLabor(ctx context.Context, l *model.CatalogoLabor) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *catalogoRepo) DeleteLabor(ctx context.Context, owner string, id uint) error {
	return deleteOwned(r.db.WithContext(ctx), &model.CatalogoLabor{}, owner, id)
}
