package service

import (
	"context"
	"fmt"
	"sort"

	"finca/internal/dto"
	"finca/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReporteService computes the period rollups. All amounts are exact sums of
// the stored rows; labor is priced at the tenant's current tarifa.
type ReporteService interface {
	ResumenPeriodo(ctx context.Context, owner string, q dto.RangoQuery) (*dto.ResumenPeriodoResponse, error)
	GastosPorLote(ctx context.Context, owner string, q dto.RangoOpcionalQuery) ([]dto.GastoLoteResponse, error)
	ReporteCosecha(ctx context.Context, owner string, q dto.RangoQuery) (*dto.ReporteCosechaResponse, error)
}

type reporteService struct {
	jornadas      repository.JornadaRepository
	recolecciones repository.RecoleccionRepository
	insumos       repository.InsumoRepository
	tarifas       repository.TarifaRepository
}

func NewReporteService(
	jornadas repository.JornadaRepository,
	recolecciones repository.RecoleccionRepository,
	insumos repository.InsumoRepository,
	tarifas repository.TarifaRepository,
) ReporteService {
	return &reporteService{
		jornadas:      jornadas,
		recolecciones: recolecciones,
		insumos:       insumos,
		tarifas:       tarifas,
	}
}

// ── ResumenPeriodo ────────────────────────────────────────────────────────────
// The three sums and the tarifa are read in one transaction so the totals
// describe a single snapshot of the store.

func (s *reporteService) ResumenPeriodo(ctx context.Context, owner string, q dto.RangoQuery) (*dto.ResumenPeriodoResponse, error) {
	rg, err := parseRango(q.Desde, q.Hasta)
	if err != nil {
		return nil, err
	}

	resp := &dto.ResumenPeriodoResponse{Desde: fmtFecha(rg.Desde), Hasta: fmtFecha(rg.Hasta)}
	err = runTx(ctx, s.jornadas.DB(), func(tx *gorm.DB) error {
		pagoDia, pagoExtra, err := tarifaVigente(ctx, s.tarifas, tx, owner)
		if err != nil {
			return err
		}
		tj, err := s.jornadas.Sumar(ctx, tx, owner, rg)
		if err != nil {
			return fmt.Errorf("sumar jornadas: %w", err)
		}
		insumos, err := s.insumos.Sumar(ctx, tx, owner, rg)
		if err != nil {
			return fmt.Errorf("sumar insumos: %w", err)
		}
		cosecha, err := s.recolecciones.Sumar(ctx, tx, owner, rg)
		if err != nil {
			return fmt.Errorf("sumar recolecciones: %w", err)
		}

		resp.PagoDia = pagoDia
		resp.PagoHoraExtra = pagoExtra
		resp.ManoObra = costoManoObra(tj.Dias, tj.HorasExtra, pagoDia, pagoExtra)
		resp.Insumos = insumos
		resp.Cosecha = cosecha
		resp.TotalGeneral = resp.ManoObra.Add(insumos)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ── GastosPorLote ─────────────────────────────────────────────────────────────

func (s *reporteService) GastosPorLote(ctx context.Context, owner string, q dto.RangoOpcionalQuery) ([]dto.GastoLoteResponse, error) {
	rg, err := parseRangoOpcional(q.Desde, q.Hasta)
	if err != nil {
		return nil, err
	}
	pagoDia, pagoExtra, err := tarifaVigente(ctx, s.tarifas, nil, owner)
	if err != nil {
		return nil, err
	}

	manoObra, err := s.jornadas.SumarPorLote(ctx, owner, rg)
	if err != nil {
		return nil, fmt.Errorf("jornadas por lote: %w", err)
	}
	insumos, err := s.insumos.SumarPorLote(ctx, owner, rg)
	if err != nil {
		return nil, fmt.Errorf("insumos por lote: %w", err)
	}
	cosecha, err := s.recolecciones.SumarPorLote(ctx, owner, rg)
	if err != nil {
		return nil, fmt.Errorf("cosecha por lote: %w", err)
	}

	porLote := make(map[string]*dto.GastoLoteResponse)
	fila := func(lote string) *dto.GastoLoteResponse {
		if g, ok := porLote[lote]; ok {
			return g
		}
		g := &dto.GastoLoteResponse{Lote: lote}
		porLote[lote] = g
		return g
	}
	for _, j := range manoObra {
		g := fila(j.Lote)
		g.ManoObra = g.ManoObra.Add(costoManoObra(j.Dias, j.HorasExtra, pagoDia, pagoExtra))
	}
	for _, i := range insumos {
		g := fila(i.Lote)
		g.Insumos = g.Insumos.Add(i.Total)
	}
	for _, c := range cosecha {
		g := fila(c.Lote)
		g.Cosecha = g.Cosecha.Add(c.Total)
	}

	resp := make([]dto.GastoLoteResponse, 0, len(porLote))
	for _, g := range porLote {
		g.TotalGasto = g.ManoObra.Add(g.Insumos)
		resp = append(resp, *g)
	}
	sort.Slice(resp, func(i, j int) bool {
		if c := resp[i].TotalGasto.Cmp(resp[j].TotalGasto); c != 0 {
			return c > 0
		}
		return resp[i].Lote < resp[j].Lote
	})
	return resp, nil
}

// ── ReporteCosecha ────────────────────────────────────────────────────────────

func (s *reporteService) ReporteCosecha(ctx context.Context, owner string, q dto.RangoQuery) (*dto.ReporteCosechaResponse, error) {
	rg, err := parseRango(q.Desde, q.Hasta)
	if err != nil {
		return nil, err
	}
	detalle, err := s.recolecciones.Detalle(ctx, owner, rg)
	if err != nil {
		return nil, fmt.Errorf("detalle de cosecha: %w", err)
	}
	porLote, err := s.recolecciones.SumarPorLote(ctx, owner, &rg)
	if err != nil {
		return nil, fmt.Errorf("cosecha por lote: %w", err)
	}

	resp := &dto.ReporteCosechaResponse{
		Desde:         fmtFecha(rg.Desde),
		Hasta:         fmtFecha(rg.Hasta),
		Detalle:       make([]dto.CosechaDetalle, len(detalle)),
		PorLote:       make([]dto.CosechaLote, len(porLote)),
		TotalCajuelas: decimal.Zero,
		Total:         decimal.Zero,
	}
	for i, d := range detalle {
		resp.Detalle[i] = dto.CosechaDetalle{Trabajador: d.Trabajador, Lote: d.Lote, Cajuelas: d.Cajuelas, Total: d.Total}
	}
	for i, l := range porLote {
		resp.PorLote[i] = dto.CosechaLote{Lote: l.Lote, Cajuelas: l.Cajuelas, Total: l.Total}
		resp.TotalCajuelas = resp.TotalCajuelas.Add(l.Cajuelas)
		resp.Total = resp.Total.Add(l.Total)
	}
	return resp, nil
}

func costoManoObra(dias, horasExtra, pagoDia, pagoExtra decimal.Decimal) decimal.Decimal {
	return dias.Mul(pagoDia).Add(horasExtra.Mul(pagoExtra))
}
