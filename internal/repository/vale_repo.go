package repository

import (
	"context"
	"errors"

	"finca/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ValeRepository is append-only: there is no Update. Delete exists for
// explicit user corrections and is never called by payroll close.
type ValeRepository interface {
	DB() *gorm.DB
	Create(ctx context.Context, tx *gorm.DB, v *model.Vale) error
	Delete(ctx context.Context, owner string, id uint) error
	ListByTrabajador(ctx context.Context, owner, trabajador string, page, limit int) ([]model.Vale, int64, error)
	// List returns every entry in the range, oldest first (exports).
	List(ctx context.Context, owner string, r *Rango) ([]model.Vale, error)
	Saldo(ctx context.Context, tx *gorm.DB, owner, trabajador string) (decimal.Decimal, error)
	Saldos(ctx context.Context, tx *gorm.DB, owner string) ([]SaldoTrabajador, error)
	ExisteReferencia(ctx context.Context, tx *gorm.DB, owner, referencia string) (bool, error)
}

type valeRepo struct{ db *gorm.DB }

func NewValeRepository(db *gorm.DB) ValeRepository { return &valeRepo{db: db} }

func (r *valeRepo) DB() *gorm.DB { return r.db }

func (r *valeRepo) Create(ctx context.Context, tx *gorm.DB, v *model.Vale) error {
	return conn(ctx, r.db, tx).Create(v).Error
}

func (r *valeRepo) Delete(ctx context.Context, owner string, id uint) error {
	return deleteOwned(r.db.WithContext(ctx), &model.Vale{}, owner, id)
}

// ListByTrabajador returns one worker's entries newest first, paginated.
func (r *valeRepo) ListByTrabajador(ctx context.Context, owner, trabajador string, page, limit int) ([]model.Vale, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}

	scope := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&model.Vale{}).Where("owner = ?", owner)
		if trabajador != "" {
			q = q.Where("trabajador = ?", trabajador)
		}
		return q
	}

	var total int64
	if err := scope().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.Vale
	offset := (page - 1) * limit
	if err := scope().Order("fecha DESC, id DESC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *valeRepo) List(ctx context.Context, owner string, rg *Rango) ([]model.Vale, error) {
	var rows []model.Vale
	q := enRango(r.db.WithContext(ctx).Where("owner = ?", owner), rg)
	err := q.Order("fecha ASC, id ASC").Find(&rows).Error
	return rows, err
}

func (r *valeRepo) Saldo(ctx context.Context, tx *gorm.DB, owner, trabajador string) (decimal.Decimal, error) {
	var row struct{ Saldo decimal.Decimal }
	err := conn(ctx, r.db, tx).Model(&model.Vale{}).
		Select("COALESCE(SUM(monto), 0) AS saldo").
		Where("owner = ? AND trabajador = ?", owner, trabajador).
		Scan(&row).Error
	return row.Saldo, err
}

func (r *valeRepo) Saldos(ctx context.Context, tx *gorm.DB, owner string) ([]SaldoTrabajador, error) {
	var rows []SaldoTrabajador
	err := conn(ctx, r.db, tx).Model(&model.Vale{}).
		Select("trabajador, COALESCE(SUM(monto), 0) AS saldo").
		Where("owner = ?", owner).
		Group("trabajador").
		Order("trabajador ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *valeRepo) ExisteReferencia(ctx context.Context, tx *gorm.DB, owner, referencia string) (bool, error) {
	var v model.Vale
	err := conn(ctx, r.db, tx).Select("id").Where("owner = ? AND referencia = ?", owner, referencia).First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return err == nil, err
}
