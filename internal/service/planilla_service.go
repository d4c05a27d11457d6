package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"finca/internal/dto"
	"finca/internal/model"
	"finca/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PlanillaService builds the per-worker payroll sheets and applies the vale
// deductions when a sheet is paid.
type PlanillaService interface {
	Calcular(ctx context.Context, owner string, req dto.PlanillaRequest) (*dto.PlanillaResponse, error)
	// Pagar recomputes the sheet and records the deductions in one
	// transaction. Running it twice for the same period deducts once.
	Pagar(ctx context.Context, owner string, req dto.PagarPlanillaRequest, hoy time.Time) (*dto.PagoPlanillaResponse, error)
}

type planillaService struct {
	jornadas      repository.JornadaRepository
	recolecciones repository.RecoleccionRepository
	vales         repository.ValeRepository
	tarifas       repository.TarifaRepository
}

func NewPlanillaService(
	jornadas repository.JornadaRepository,
	recolecciones repository.RecoleccionRepository,
	vales repository.ValeRepository,
	tarifas repository.TarifaRepository,
) PlanillaService {
	return &planillaService{
		jornadas:      jornadas,
		recolecciones: recolecciones,
		vales:         vales,
		tarifas:       tarifas,
	}
}

func (s *planillaService) Calcular(ctx context.Context, owner string, req dto.PlanillaRequest) (*dto.PlanillaResponse, error) {
	rg, err := validarPlanilla(req)
	if err != nil {
		return nil, err
	}
	var resp *dto.PlanillaResponse
	err = runTx(ctx, s.vales.DB(), func(tx *gorm.DB) error {
		resp, err = s.calcular(ctx, tx, owner, req.Tipo, rg, req.Abonos)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ── Pagar ─────────────────────────────────────────────────────────────────────
// Each deduction carries the referencia planilla:<tipo>:<desde>:<hasta>:<trabajador>.
// A worker whose referencia already exists is reported as ya_aplicado and is
// not charged again. A negative net on any row still to be charged rejects
// the whole close.

func (s *planillaService) Pagar(ctx context.Context, owner string, req dto.PagarPlanillaRequest, hoy time.Time) (*dto.PagoPlanillaResponse, error) {
	rg, err := validarPlanilla(req.PlanillaRequest)
	if err != nil {
		return nil, err
	}
	fechaPago := model.SoloFecha(hoy)
	if req.FechaPago != "" {
		if fechaPago, err = parseFecha("fecha de pago", req.FechaPago); err != nil {
			return nil, err
		}
	}

	resp := &dto.PagoPlanillaResponse{}
	err = runTx(ctx, s.vales.DB(), func(tx *gorm.DB) error {
		planilla, err := s.calcular(ctx, tx, owner, req.Tipo, rg, req.Abonos)
		if err != nil {
			return err
		}

		pendientes := make([]int, 0, len(planilla.Filas))
		for i := range planilla.Filas {
			f := &planilla.Filas[i]
			if !f.Abono.IsPositive() {
				continue
			}
			existe, err := s.vales.ExisteReferencia(ctx, tx, owner, referenciaPlanilla(req.Tipo, rg, f.Trabajador))
			if err != nil {
				return fmt.Errorf("verificar rebajo: %w", err)
			}
			if existe {
				f.YaAplicado = true
				continue
			}
			if f.NetoNegativo {
				return invalido("el neto de %s es negativo (%s): reduzca el abono", f.Trabajador, f.Neto.StringFixed(2))
			}
			pendientes = append(pendientes, i)
		}

		concepto := fmt.Sprintf("Rebajo planilla %s %s", req.Tipo, fmtFecha(rg.Desde))
		for _, i := range pendientes {
			f := planilla.Filas[i]
			ref := referenciaPlanilla(req.Tipo, rg, f.Trabajador)
			vale := &model.Vale{
				Owner:      owner,
				Fecha:      fechaPago,
				Trabajador: f.Trabajador,
				Monto:      f.Abono.Neg(),
				Concepto:   concepto,
				Referencia: &ref,
			}
			if err := s.vales.Create(ctx, tx, vale); err != nil {
				// A concurrent pay of the same sheet won the unique referencia.
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return invalido("el rebajo de %s para esta planilla ya fue aplicado", f.Trabajador)
				}
				return fmt.Errorf("registrar rebajo de %s: %w", f.Trabajador, err)
			}
		}

		resp.Planilla = *planilla
		resp.ValesCreados = len(pendientes)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("owner", owner).
		Str("tipo", req.Tipo).
		Str("desde", resp.Planilla.Desde).
		Str("hasta", resp.Planilla.Hasta).
		Int("vales_creados", resp.ValesCreados).
		Msg("planilla pagada")
	return resp, nil
}

// ── Cálculo ───────────────────────────────────────────────────────────────────

func (s *planillaService) calcular(ctx context.Context, tx *gorm.DB, owner, tipo string, rg repository.Rango, abonos map[string]decimal.Decimal) (*dto.PlanillaResponse, error) {
	pagoDia, pagoExtra, err := tarifaVigente(ctx, s.tarifas, tx, owner)
	if err != nil {
		return nil, err
	}

	var filas []dto.PlanillaFila
	switch tipo {
	case dto.PlanillaJornadas:
		rows, err := s.jornadas.SumarPorTrabajador(ctx, tx, owner, rg)
		if err != nil {
			return nil, fmt.Errorf("jornadas por trabajador: %w", err)
		}
		for _, r := range rows {
			filas = append(filas, dto.PlanillaFila{
				Trabajador: r.Trabajador,
				Dias:       r.Dias,
				HorasExtra: r.HorasExtra,
				Cajuelas:   decimal.Zero,
				Bruto:      costoManoObra(r.Dias, r.HorasExtra, pagoDia, pagoExtra),
			})
		}
	case dto.PlanillaCosecha:
		rows, err := s.recolecciones.SumarPorTrabajador(ctx, tx, owner, rg)
		if err != nil {
			return nil, fmt.Errorf("cosecha por trabajador: %w", err)
		}
		for _, r := range rows {
			filas = append(filas, dto.PlanillaFila{
				Trabajador: r.Trabajador,
				Dias:       decimal.Zero,
				HorasExtra: decimal.Zero,
				Cajuelas:   r.Cajuelas,
				Bruto:      r.Total,
			})
		}
	}

	saldos, err := s.vales.Saldos(ctx, tx, owner)
	if err != nil {
		return nil, fmt.Errorf("saldos de vales: %w", err)
	}
	deudas := make(map[string]decimal.Decimal, len(saldos))
	for _, sd := range saldos {
		deudas[sd.Trabajador] = sd.Saldo
	}

	enPlanilla := make(map[string]bool, len(filas))
	for _, f := range filas {
		enPlanilla[f.Trabajador] = true
	}
	for trabajador := range abonos {
		if !enPlanilla[trabajador] {
			return nil, invalido("%s no tiene registros en el período de la planilla", trabajador)
		}
	}

	resp := &dto.PlanillaResponse{
		Tipo:          tipo,
		Desde:         fmtFecha(rg.Desde),
		Hasta:         fmtFecha(rg.Hasta),
		PagoDia:       pagoDia,
		PagoHoraExtra: pagoExtra,
		Filas:         make([]dto.PlanillaFila, 0, len(filas)),
		TotalBruto:    decimal.Zero,
		TotalAbonos:   decimal.Zero,
		TotalNeto:     decimal.Zero,
	}
	for _, f := range filas {
		f.Deuda = deudas[f.Trabajador]
		maximo := decimal.Max(f.Deuda, decimal.Zero)
		f.Abono = maximo
		if pedido, ok := abonos[f.Trabajador]; ok {
			if !dosDecimales(pedido) {
				return nil, invalido("el abono de %s admite como máximo 2 decimales", f.Trabajador)
			}
			if pedido.IsNegative() {
				return nil, invalido("el abono de %s no puede ser negativo", f.Trabajador)
			}
			if pedido.GreaterThan(maximo) {
				return nil, invalido("el abono de %s (%s) supera su deuda (%s)",
					f.Trabajador, pedido.StringFixed(2), maximo.StringFixed(2))
			}
			f.Abono = pedido
		}
		f.Neto = f.Bruto.Sub(f.Abono)
		f.NetoNegativo = f.Neto.IsNegative()

		resp.Filas = append(resp.Filas, f)
		resp.TotalBruto = resp.TotalBruto.Add(f.Bruto)
		resp.TotalAbonos = resp.TotalAbonos.Add(f.Abono)
		resp.TotalNeto = resp.TotalNeto.Add(f.Neto)
	}
	return resp, nil
}

func validarPlanilla(req dto.PlanillaRequest) (repository.Rango, error) {
	if req.Tipo != dto.PlanillaJornadas && req.Tipo != dto.PlanillaCosecha {
		return repository.Rango{}, invalido("tipo de planilla inválido: use %q o %q", dto.PlanillaJornadas, dto.PlanillaCosecha)
	}
	return parseRango(req.Desde, req.Hasta)
}

func referenciaPlanilla(tipo string, rg repository.Rango, trabajador string) string {
	return fmt.Sprintf("planilla:%s:%s:%s:%s", tipo, fmtFecha(rg.Desde), fmtFecha(rg.Hasta), trabajador)
}
