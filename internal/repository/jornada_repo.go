package repository

import (
	"context"

	"finca/internal/model"

	"gorm.io/gorm"
)

type JornadaRepository interface {
	DB() *gorm.DB
	Create(ctx context.Context, tx *gorm.DB, j *model.Jornada) error
	Update(ctx context.Context, j *model.Jornada) error
	Delete(ctx context.Context, owner string, id uint) error
	FindByID(ctx context.Context, owner string, id uint) (*model.Jornada, error)
	List(ctx context.Context, owner string, f FiltroRegistros) ([]model.Jornada, error)
	Sumar(ctx context.Context, tx *gorm.DB, owner string, r Rango) (TotalesJornada, error)
	SumarPorTrabajador(ctx context.Context, tx *gorm.DB, owner string, r Rango) ([]JornadaPorTrabajador, error)
	SumarPorLote(ctx context.Context, owner string, r *Rango) ([]JornadaPorLote, error)
}

type jornadaRepo struct{ db *gorm.DB }

func NewJornadaRepository(db *gorm.DB) JornadaRepository { return &jornadaRepo{db: db} }

func (r *jornadaRepo) DB() *gorm.DB { return r.db }

func (r *jornadaRepo) Create(ctx context.Context, tx *gorm.DB, j *model.Jornada) error {
	return conn(ctx, r.db, tx).Create(j).Error
}

func (r *jornadaRepo) Update(ctx context.Context, j *model.Jornada) error {
	return r.db.WithContext(ctx).Save(j).Error
}

func (r *jornadaRepo) Delete(ctx context.Context, owner string, id uint) error {
	return deleteOwned(r.db.WithContext(ctx), &model.Jornada{}, owner, id)
}

func (r *jornadaRepo) FindByID(ctx context.Context, owner string, id uint) (*model.Jornada, error) {
	var j model.Jornada
	err := r.db.WithContext(ctx).Where("owner = ? AND id = ?", owner, id).First(&j).Error
	return &j, err
}

func (r *jornadaRepo) List(ctx context.Context, owner string, f FiltroRegistros) ([]model.Jornada, error) {
	var rows []model.Jornada
	q := aplicarFiltro(r.db.WithContext(ctx).Where("owner = ?", owner), f)
	err := q.Order("fecha DESC, id DESC").Find(&rows).Error
	return rows, err
}

func (r *jornadaRepo) Sumar(ctx context.Context, tx *gorm.DB, owner string, rg Rango) (TotalesJornada, error) {
	var t TotalesJornada
	err := conn(ctx, r.db, tx).Model(&model.Jornada{}).
		Select("COALESCE(SUM(dias), 0) AS dias, COALESCE(SUM(horas_extra), 0) AS horas_extra").
		Where("owner = ? AND fecha BETWEEN ? AND ?", owner, rg.Desde, rg.Hasta).
		Scan(&t).Error
	return t, err
}

func (r *jornadaRepo) SumarPorTrabajador(ctx context.Context, tx *gorm.DB, owner string, rg Rango) ([]JornadaPorTrabajador, error) {
	var rows []JornadaPorTrabajador
	err := conn(ctx, r.db, tx).Model(&model.Jornada{}).
		Select("trabajador, COALESCE(SUM(dias), 0) AS dias, COALESCE(SUM(horas_extra), 0) AS horas_extra").
		Where("owner = ? AND fecha BETWEEN ? AND ?", owner, rg.Desde, rg.Hasta).
		Group("trabajador").
		Order("trabajador ASC").
		Scan(&rows).Error
	return rows, err
}

// SumarPorLote groups labor by lote; a nil range covers the whole history.
func (r *jornadaRepo) SumarPorLote(ctx context.Context, owner string, rg *Rango) ([]JornadaPorLote, error) {
	var rows []JornadaPorLote
	q := enRango(r.db.WithContext(ctx).Model(&model.Jornada{}).Where("owner = ?", owner), rg)
	err := q.Select("lote, COALESCE(SUM(dias), 0) AS dias, COALESCE(SUM(horas_extra), 0) AS horas_extra").
		Group("lote").
		Scan(&rows).Error
	return rows, err
}
