package repository

import (
	"context"

	"finca/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RecoleccionRepository interface {
	DB() *gorm.DB
	Create(ctx context.Context, rec *model.Recoleccion) error
	// CreateBatch inserts all rows through tx; the caller owns the transaction.
	CreateBatch(ctx context.Context, tx *gorm.DB, recs []model.Recoleccion) error
	Delete(ctx context.Context, owner string, id uint) error
	List(ctx context.Context, owner string, f FiltroRegistros) ([]model.Recoleccion, error)
	Sumar(ctx context.Context, tx *gorm.DB, owner string, r Rango) (decimal.Decimal, error)
	SumarPorTrabajador(ctx context.Context, tx *gorm.DB, owner string, r Rango) ([]RecoleccionPorTrabajador, error)
	SumarPorLote(ctx context.Context, owner string, r *Rango) ([]CosechaPorLote, error)
	Detalle(ctx context.Context, owner string, r Rango) ([]RecoleccionDetalle, error)
	TotalCajuelasLote(ctx context.Context, owner, lote string) (decimal.Decimal, error)
}

type recoleccionRepo struct{ db *gorm.DB }

func NewRecoleccionRepository(db *gorm.DB) RecoleccionRepository {
	return &recoleccionRepo{db: db}
}

func (r *recoleccionRepo) DB() *gorm.DB { return r.db }

func (r *recoleccionRepo) Create(ctx context.Context, rec *model.Recoleccion) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *recoleccionRepo) CreateBatch(ctx context.Context, tx *gorm.DB, recs []model.Recoleccion) error {
	if len(recs) == 0 {
		return nil
	}
	return conn(ctx, r.db, tx).Create(&recs).Error
}

func (r *recoleccionRepo) Delete(ctx context.Context, owner string, id uint) error {
	return deleteOwned(r.db.WithContext(ctx), &model.Recoleccion{}, owner, id)
}

func (r *recoleccionRepo) List(ctx context.Context, owner string, f FiltroRegistros) ([]model.Recoleccion, error) {
	var rows []model.Recoleccion
	q := aplicarFiltro(r.db.WithContext(ctx).Where("owner = ?", owner), f)
	err := q.Order("fecha DESC, id DESC").Find(&rows).Error
	return rows, err
}

func (r *recoleccionRepo) Sumar(ctx context.Context, tx *gorm.DB, owner string, rg Rango) (decimal.Decimal, error) {
	var row struct{ Total decimal.Decimal }
	err := conn(ctx, r.db, tx).Model(&model.Recoleccion{}).
		Select("COALESCE(SUM(total_pagar), 0) AS total").
		Where("owner = ? AND fecha BETWEEN ? AND ?", owner, rg.Desde, rg.Hasta).
		Scan(&row).Error
	return row.Total, err
}

func (r *recoleccionRepo) SumarPorTrabajador(ctx context.Context, tx *gorm.DB, owner string, rg Rango) ([]RecoleccionPorTrabajador, error) {
	var rows []RecoleccionPorTrabajador
	err := conn(ctx, r.db, tx).Model(&model.Recoleccion{}).
		Select("trabajador, COALESCE(SUM(cajuelas), 0) AS cajuelas, COALESCE(SUM(total_pagar), 0) AS total").
		Where("owner = ? AND fecha BETWEEN ? AND ?", owner, rg.Desde, rg.Hasta).
		Group("trabajador").
		Order("trabajador ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *recoleccionRepo) SumarPorLote(ctx context.Context, owner string, rg *Rango) ([]CosechaPorLote, error) {
	var rows []CosechaPorLote
	q := enRango(r.db.WithContext(ctx).Model(&model.Recoleccion{}).Where("owner = ?", owner), rg)
	err := q.Select("lote, COALESCE(SUM(cajuelas), 0) AS cajuelas, COALESCE(SUM(total_pagar), 0) AS total").
		Group("lote").
		Order("lote ASC").
		Scan(&rows).Error
	return rows, err
}

// Detalle groups the harvest by worker and lote.
func (r *recoleccionRepo) Detalle(ctx context.Context, owner string, rg Rango) ([]RecoleccionDetalle, error) {
	var rows []RecoleccionDetalle
	err := r.db.WithContext(ctx).Model(&model.Recoleccion{}).
		Select("trabajador, lote, COALESCE(SUM(cajuelas), 0) AS cajuelas, COALESCE(SUM(total_pagar), 0) AS total").
		Where("owner = ? AND fecha BETWEEN ? AND ?", owner, rg.Desde, rg.Hasta).
		Group("trabajador, lote").
		Order("trabajador ASC, lote ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *recoleccionRepo) TotalCajuelasLote(ctx context.Context, owner, lote string) (decimal.Decimal, error) {
	var row struct{ Cajuelas decimal.Decimal }
	err := r.db.WithContext(ctx).Model(&model.Recoleccion{}).
		Select("COALESCE(SUM(cajuelas), 0) AS cajuelas").
		Where("owner = ? AND lote = ?", owner, lote).
		Scan(&row).Error
	return row.Cajuelas, err
}
