package repository

import (
	"context"
	"time"

	"finca/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InsumoRepository interface {
	Create(ctx context.Context, i *model.Insumo) error
	Delete(ctx context.Context, owner string, id uint) error
	List(ctx context.Context, owner string, f FiltroRegistros) ([]model.Insumo, error)
	Sumar(ctx context.Context, tx *gorm.DB, owner string, r Rango) (decimal.Decimal, error)
	SumarPorLote(ctx context.Context, owner string, r *Rango) ([]TotalPorLote, error)
	// AplicadoDesde reports whether an insumo of tipo was applied to lote on or after desde.
	AplicadoDesde(ctx context.Context, owner, lote, tipo string, desde time.Time) (bool, error)
}

type insumoRepo struct{ db *gorm.DB }

func NewInsumoRepository(db *gorm.DB) InsumoRepository { return &insumoRepo{db: db} }

func (r *insumoRepo) Create(ctx context.Context, i *model.Insumo) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *insumoRepo) Delete(ctx context.Context, owner string, id uint) error {
	return deleteOwned(r.db.WithContext(ctx), &model.Insumo{}, owner, id)
}

func (r *insumoRepo) List(ctx context.Context, owner string, f FiltroRegistros) ([]model.Insumo, error) {
	var rows []model.Insumo
	q := aplicarFiltro(r.db.WithContext(ctx).Where("owner = ?", owner), FiltroRegistros{Rango: f.Rango, Lote: f.Lote})
	err := q.Order("fecha DESC, id DESC").Find(&rows).Error
	return rows, err
}

func (r *insumoRepo) Sumar(ctx context.Context, tx *gorm.DB, owner string, rg Rango) (decimal.Decimal, error) {
	var row struct{ Total decimal.Decimal }
	err := conn(ctx, r.db, tx).Model(&model.Insumo{}).
		Select("COALESCE(SUM(costo_total), 0) AS total").
		Where("owner = ? AND fecha BETWEEN ? AND ?", owner, rg.Desde, rg.Hasta).
		Scan(&row).Error
	return row.Total, err
}

func (r *insumoRepo) SumarPorLote(ctx context.Context, owner string, rg *Rango) ([]TotalPorLote, error) {
	var rows []TotalPorLote
	q := enRango(r.db.WithContext(ctx).Model(&model.Insumo{}).Where("owner = ?", owner), rg)
	err := q.Select("lote, COALESCE(SUM(costo_total), 0) AS total").
		Group("lote").
		Scan(&rows).Error
	return rows, err
}

func (r *insumoRepo) AplicadoDesde(ctx context.Context, owner, lote, tipo string, desde time.Time) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Insumo{}).
		Where("owner = ? AND lote = ? AND tipo = ? AND fecha >= ?", owner, lote, tipo, desde).
		Count(&n).Error
	return n > 0, err
}
