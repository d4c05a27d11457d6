package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Rango is an inclusive calendar-date range. A Desde after Hasta matches nothing.
type Rango struct {
	Desde time.Time
	Hasta time.Time
}

// FiltroRegistros narrows entry listings. Zero values mean "no filter".
type FiltroRegistros struct {
	Rango      *Rango
	Trabajador string
	Lote       string
}

// conn returns tx when the caller is inside a transaction, or db otherwise.
func conn(ctx context.Context, db, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

// deleteOwned deletes one row of the tenant, mapping "no rows" to ErrRecordNotFound.
func deleteOwned(db *gorm.DB, value interface{}, owner string, id uint) error {
	res := db.Where("owner = ? AND id = ?", owner, id).Delete(value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func enRango(q *gorm.DB, r *Rango) *gorm.DB {
	if r == nil {
		return q
	}
	return q.Where("fecha BETWEEN ? AND ?", r.Desde, r.Hasta)
}

func aplicarFiltro(q *gorm.DB, f FiltroRegistros) *gorm.DB {
	q = enRango(q, f.Rango)
	if f.Trabajador != "" {
		q = q.Where("trabajador = ?", f.Trabajador)
	}
	if f.Lote != "" {
		q = q.Where("lote = ?", f.Lote)
	}
	return q
}

// ── Aggregate rows ───────────────────────────────────────────────────────────

type TotalesJornada struct {
	Dias       decimal.Decimal
	HorasExtra decimal.Decimal
}

type JornadaPorTrabajador struct {
	Trabajador string
	Dias       decimal.Decimal
	HorasExtra decimal.Decimal
}

type JornadaPorLote struct {
	Lote       string
	Dias       decimal.Decimal
	HorasExtra decimal.Decimal
}

type RecoleccionPorTrabajador struct {
	Trabajador string
	Cajuelas   decimal.Decimal
	Total      decimal.Decimal
}

type RecoleccionDetalle struct {
	Trabajador string
	Lote       string
	Cajuelas   decimal.Decimal
	Total      decimal.Decimal
}

type TotalPorLote struct {
	Lote  string
	Total decimal.Decimal
}

type CosechaPorLote struct {
	Lote     string
	Cajuelas decimal.Decimal
	Total    decimal.Decimal
}

type SaldoTrabajador struct {
	Trabajador string
	Saldo      decimal.Decimal
}
