package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"finca/internal/model"
	"finca/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	// ErrNoEncontrado matches every not-found error returned by the services.
	ErrNoEncontrado = errors.New("registro no encontrado")
	// ErrValidacion matches every *ValidacionError.
	ErrValidacion = errors.New("validación")
)

type noEncontradoError struct{ msg string }

func (e *noEncontradoError) Error() string        { return e.msg }
func (e *noEncontradoError) Is(target error) bool { return target == ErrNoEncontrado }

// ValidacionError is a business-rule rejection. Nothing was written when one
// is returned, and Msg is safe to show to the user.
type ValidacionError struct{ Msg string }

func (e *ValidacionError) Error() string        { return e.Msg }
func (e *ValidacionError) Is(target error) bool { return target == ErrValidacion }

func invalido(format string, args ...any) error {
	return &ValidacionError{Msg: fmt.Sprintf(format, args...)}
}

// noEncontrado maps gorm.ErrRecordNotFound to a not-found error with msg;
// any other error is returned as is.
func noEncontrado(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &noEncontradoError{msg: msg}
	}
	return err
}

// duplicado maps a unique-constraint violation to a validation error.
func duplicado(err error, msg string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return invalido("%s", msg)
	}
	return err
}

// dosDecimales reports whether d fits a money column (two decimal places).
func dosDecimales(d decimal.Decimal) bool { return d.Equal(d.Round(2)) }

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── Fechas ────────────────────────────────────────────────────────────────────

func parseFecha(campo, s string) (time.Time, error) {
	t, err := model.ParseFecha(s)
	if err != nil {
		return time.Time{}, invalido("%s inválida: use el formato AAAA-MM-DD", campo)
	}
	return t, nil
}

// parseRango accepts desde > hasta: such a range simply matches no rows.
func parseRango(desde, hasta string) (repository.Rango, error) {
	d, err := parseFecha("fecha desde", desde)
	if err != nil {
		return repository.Rango{}, err
	}
	h, err := parseFecha("fecha hasta", hasta)
	if err != nil {
		return repository.Rango{}, err
	}
	return repository.Rango{Desde: d, Hasta: h}, nil
}

// parseRangoOpcional returns nil when both bounds are empty (whole history).
func parseRangoOpcional(desde, hasta string) (*repository.Rango, error) {
	if desde == "" && hasta == "" {
		return nil, nil
	}
	if desde == "" || hasta == "" {
		return nil, invalido("indique ambas fechas (desde y hasta) o ninguna")
	}
	rg, err := parseRango(desde, hasta)
	if err != nil {
		return nil, err
	}
	return &rg, nil
}

func fmtFecha(t time.Time) string { return t.Format(model.FormatoFecha) }

// ── Tarifa ────────────────────────────────────────────────────────────────────

// tarifaVigente returns the tenant's current rates, or zeros when none were
// configured. Rates apply to every aggregation, past periods included.
func tarifaVigente(ctx context.Context, repo repository.TarifaRepository, tx *gorm.DB, owner string) (pagoDia, pagoExtra decimal.Decimal, err error) {
	t, err := repo.Find(ctx, tx, owner)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("tarifa: %w", err)
	}
	return t.PagoDia, t.PagoHoraExtra, nil
}
