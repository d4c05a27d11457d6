package service

import (
	"context"
	"fmt"

	"finca/internal/dto"
	"finca/internal/model"
	"finca/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RecoleccionService interface {
	Crear(ctx context.Context, owner string, req dto.RecoleccionRequest) (*dto.RecoleccionResponse, error)
	// CrearLote records every item or none of them.
	CrearLote(ctx context.Context, owner string, req dto.RecoleccionLoteRequest) (*dto.RecoleccionLoteResponse, error)
	Listar(ctx context.Context, owner string, f dto.RegistroFilter) ([]dto.RecoleccionResponse, error)
	Eliminar(ctx context.Context, owner string, id uint) error
}

type recoleccionService struct {
	repo repository.RecoleccionRepository
}

func NewRecoleccionService(repo repository.RecoleccionRepository) RecoleccionService {
	return &recoleccionService{repo: repo}
}

func (s *recoleccionService) Crear(ctx context.Context, owner string, req dto.RecoleccionRequest) (*dto.RecoleccionResponse, error) {
	rec, err := nuevaRecoleccion(owner, req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	resp := mapRecoleccion(rec)
	return &resp, nil
}

// ── CrearLote ─────────────────────────────────────────────────────────────────
// Every item is validated before the transaction opens; an insert failure
// rolls back the whole batch.

func (s *recoleccionService) CrearLote(ctx context.Context, owner string, req dto.RecoleccionLoteRequest) (*dto.RecoleccionLoteResponse, error) {
	if len(req.Items) == 0 {
		return nil, invalido("el lote de recolecciones está vacío")
	}
	recs := make([]model.Recoleccion, 0, len(req.Items))
	for i, item := range req.Items {
		rec, err := nuevaRecoleccion(owner, item)
		if err != nil {
			return nil, invalido("fila %d: %s", i+1, err.Error())
		}
		recs = append(recs, *rec)
	}

	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.CreateBatch(ctx, tx, recs)
	})
	if err != nil {
		return nil, fmt.Errorf("registrar recolecciones: %w", err)
	}

	resp := &dto.RecoleccionLoteResponse{
		Registradas: len(recs),
		Total:       decimal.Zero,
		Items:       make([]dto.RecoleccionResponse, len(recs)),
	}
	for i := range recs {
		resp.Items[i] = mapRecoleccion(&recs[i])
		resp.Total = resp.Total.Add(recs[i].TotalPagar)
	}
	return resp, nil
}

func (s *recoleccionService) Listar(ctx context.Context, owner string, f dto.RegistroFilter) ([]dto.RecoleccionResponse, error) {
	filtro, err := filtroRegistros(f)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.List(ctx, owner, filtro)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.RecoleccionResponse, len(rows))
	for i := range rows {
		resp[i] = mapRecoleccion(&rows[i])
	}
	return resp, nil
}

func (s *recoleccionService) Eliminar(ctx context.Context, owner string, id uint) error {
	return noEncontrado(s.repo.Delete(ctx, owner, id), "recolección no encontrada")
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func nuevaRecoleccion(owner string, req dto.RecoleccionRequest) (*model.Recoleccion, error) {
	fecha, err := parseFecha("fecha", req.Fecha)
	if err != nil {
		return nil, err
	}
	if !req.Cajuelas.IsPositive() {
		return nil, invalido("la cantidad de cajuelas debe ser mayor a cero")
	}
	if !req.PrecioCajuela.IsPositive() {
		return nil, invalido("el precio por cajuela debe ser mayor a cero")
	}
	rec := &model.Recoleccion{
		Owner:         owner,
		Fecha:         fecha,
		Trabajador:    req.Trabajador,
		Lote:          req.Lote,
		Cajuelas:      req.Cajuelas,
		PrecioCajuela: req.PrecioCajuela,
	}
	rec.TotalPagar = rec.Cajuelas.Mul(rec.PrecioCajuela)
	return rec, nil
}

func mapRecoleccion(r *model.Recoleccion) dto.RecoleccionResponse {
	return dto.RecoleccionResponse{
		ID:            r.ID,
		Fecha:         fmtFecha(r.Fecha),
		Trabajador:    r.Trabajador,
		Lote:          r.Lote,
		Cajuelas:      r.Cajuelas,
		PrecioCajuela: r.PrecioCajuela,
		TotalPagar:    r.TotalPagar,
	}
}
