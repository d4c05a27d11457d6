package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"finca/internal/dto"
	"finca/internal/model"
	"finca/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	PlanTipoJornada = "Jornada"

	UrgenciaVencido   = "vencido"
	UrgenciaHoy       = "hoy"
	UrgenciaFuturo    = "futuro"
	UrgenciaRealizado = "realizado"
)

var tiposPlan = map[string]bool{
	PlanTipoJornada: true,
	"Abono":         true,
	"Fumigación":    true,
	"Cal":           true,
	"Herbicida":     true,
}

// PlanService drives the plan state machine pendiente → realizado.
// hoy is the caller's calendar date; it only affects the urgencia label and
// never the stored data.
type PlanService interface {
	Crear(ctx context.Context, owner string, req dto.CrearPlanRequest, hoy time.Time) (*dto.PlanResponse, error)
	Listar(ctx context.Context, owner string, f dto.PlanFilter, hoy time.Time) ([]dto.PlanResponse, error)
	Actualizar(ctx context.Context, owner string, id uint, req dto.ActualizarPlanRequest, hoy time.Time) (*dto.PlanResponse, error)
	Posponer(ctx context.Context, owner string, id uint, dias int, hoy time.Time) (*dto.PlanResponse, error)
	Completar(ctx context.Context, owner string, id uint, hoy time.Time) (*dto.CompletarPlanResponse, error)
	Eliminar(ctx context.Context, owner string, id uint) error
}

type planService struct {
	planes   repository.PlanRepository
	jornadas repository.JornadaRepository
}

func NewPlanService(planes repository.PlanRepository, jornadas repository.JornadaRepository) PlanService {
	return &planService{planes: planes, jornadas: jornadas}
}

func (s *planService) Crear(ctx context.Context, owner string, req dto.CrearPlanRequest, hoy time.Time) (*dto.PlanResponse, error) {
	fecha, err := parseFecha("fecha", req.Fecha)
	if err != nil {
		return nil, err
	}
	p := &model.Plan{
		Owner:          owner,
		Fecha:          fecha,
		Lote:           req.Lote,
		Tipo:           req.Tipo,
		Trabajador:     opcional(req.Trabajador),
		Actividad:      opcional(req.Actividad),
		Dias:           req.Dias,
		HorasExtra:     req.HorasExtra,
		Etapa:          opcional(req.Etapa),
		Producto:       opcional(req.Producto),
		Dosis:          opcional(req.Dosis),
		Cantidad:       req.Cantidad,
		PrecioUnitario: req.PrecioUnitario,
		Estado:         model.PlanPendiente,
		RecurEveryDays: req.RecurEveryDays,
		RecurTimes:     req.RecurTimes,
		RecurAutorenew: req.RecurAutorenew,
	}
	if err := validarPlan(p); err != nil {
		return nil, err
	}
	if err := s.planes.Create(ctx, nil, p); err != nil {
		return nil, fmt.Errorf("crear plan: %w", err)
	}
	resp := mapPlan(p, hoy)
	return &resp, nil
}

func (s *planService) Listar(ctx context.Context, owner string, f dto.PlanFilter, hoy time.Time) ([]dto.PlanResponse, error) {
	rg, err := parseRango(f.Desde, f.Hasta)
	if err != nil {
		return nil, err
	}
	if f.Estado != "" && f.Estado != model.PlanPendiente && f.Estado != model.PlanRealizado {
		return nil, invalido("estado inválido: %s", f.Estado)
	}
	rows, err := s.planes.List(ctx, owner, rg, f.Estado)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PlanResponse, len(rows))
	for i := range rows {
		resp[i] = mapPlan(&rows[i], hoy)
	}
	return resp, nil
}

func (s *planService) Actualizar(ctx context.Context, owner string, id uint, req dto.ActualizarPlanRequest, hoy time.Time) (*dto.PlanResponse, error) {
	p, err := s.pendiente(ctx, nil, owner, id)
	if err != nil {
		return nil, err
	}

	if req.Fecha != nil {
		if p.Fecha, err = parseFecha("fecha", *req.Fecha); err != nil {
			return nil, err
		}
	}
	if req.Lote != nil {
		p.Lote = *req.Lote
	}
	if req.Tipo != nil {
		p.Tipo = *req.Tipo
	}
	if req.Trabajador != nil {
		p.Trabajador = opcional(req.Trabajador)
	}
	if req.Actividad != nil {
		p.Actividad = opcional(req.Actividad)
	}
	if req.Dias != nil {
		p.Dias = req.Dias
	}
	if req.HorasExtra != nil {
		p.HorasExtra = req.HorasExtra
	}
	if req.Etapa != nil {
		p.Etapa = opcional(req.Etapa)
	}
	if req.Producto != nil {
		p.Producto = opcional(req.Producto)
	}
	if req.Dosis != nil {
		p.Dosis = opcional(req.Dosis)
	}
	if req.Cantidad != nil {
		p.Cantidad = req.Cantidad
	}
	if req.PrecioUnitario != nil {
		p.PrecioUnitario = req.PrecioUnitario
	}
	if req.RecurEveryDays != nil {
		p.RecurEveryDays = req.RecurEveryDays
	}
	if req.RecurTimes != nil && req.RecurInfinito {
		return nil, invalido("indique recur_times o recur_infinito, no ambos")
	}
	if req.RecurTimes != nil {
		p.RecurTimes = req.RecurTimes
	}
	if req.RecurInfinito {
		p.RecurTimes = nil
	}
	if req.RecurAutorenew != nil {
		p.RecurAutorenew = *req.RecurAutorenew
	}

	if err := validarPlan(p); err != nil {
		return nil, err
	}
	if err := s.planes.Update(ctx, nil, p); err != nil {
		return nil, fmt.Errorf("actualizar plan: %w", err)
	}
	resp := mapPlan(p, hoy)
	return &resp, nil
}

// Posponer moves a pending plan n days forward. Nothing but the date changes.
func (s *planService) Posponer(ctx context.Context, owner string, id uint, dias int, hoy time.Time) (*dto.PlanResponse, error) {
	if dias <= 0 {
		return nil, invalido("los días a posponer deben ser mayores a cero")
	}
	p, err := s.pendiente(ctx, nil, owner, id)
	if err != nil {
		return nil, err
	}
	p.Fecha = p.Fecha.AddDate(0, 0, dias)
	if err := s.planes.Update(ctx, nil, p); err != nil {
		return nil, fmt.Errorf("posponer plan: %w", err)
	}
	resp := mapPlan(p, hoy)
	return &resp, nil
}

// ── Completar ─────────────────────────────────────────────────────────────────
// In one transaction:
//  1. the plan becomes realizado (the row is kept as history);
//  2. a recurring plan with occurrences left schedules its next pending copy;
//  3. a labor plan with a worker records the Jornada it stood for.

func (s *planService) Completar(ctx context.Context, owner string, id uint, hoy time.Time) (*dto.CompletarPlanResponse, error) {
	var (
		plan      *model.Plan
		siguiente *model.Plan
		jornada   *model.Jornada
	)
	err := runTx(ctx, s.planes.DB(), func(tx *gorm.DB) error {
		p, err := s.pendiente(ctx, tx, owner, id)
		if err != nil {
			return err
		}
		p.Estado = model.PlanRealizado
		if err := s.planes.Update(ctx, tx, p); err != nil {
			return fmt.Errorf("completar plan: %w", err)
		}
		plan = p

		if next := proximaOcurrencia(p); next != nil {
			if err := s.planes.Create(ctx, tx, next); err != nil {
				return fmt.Errorf("renovar plan: %w", err)
			}
			siguiente = next
		}

		if j := jornadaDePlan(p); j != nil {
			if err := s.jornadas.Create(ctx, tx, j); err != nil {
				return fmt.Errorf("registrar jornada del plan: %w", err)
			}
			jornada = j
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := &dto.CompletarPlanResponse{Plan: mapPlan(plan, hoy)}
	if siguiente != nil {
		sig := mapPlan(siguiente, hoy)
		resp.Siguiente = &sig
	}
	if jornada != nil {
		resp.JornadaID = &jornada.ID
	}

	log.Info().
		Str("owner", owner).
		Uint("plan_id", plan.ID).
		Bool("renovado", siguiente != nil).
		Msg("plan completado")
	return resp, nil
}

func (s *planService) Eliminar(ctx context.Context, owner string, id uint) error {
	return noEncontrado(s.planes.Delete(ctx, owner, id), "plan no encontrado")
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func (s *planService) pendiente(ctx context.Context, tx *gorm.DB, owner string, id uint) (*model.Plan, error) {
	p, err := s.planes.FindByID(ctx, tx, owner, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, noEncontrado(err, "plan no encontrado")
		}
		return nil, err
	}
	if p.Estado != model.PlanPendiente {
		return nil, invalido("el plan ya fue realizado")
	}
	return p, nil
}

// proximaOcurrencia returns the pending copy a completed plan schedules, or
// nil when it does not renew. RecurTimes counts the occurrence just completed,
// so the copy gets one less and a value of 1 ends the chain.
func proximaOcurrencia(p *model.Plan) *model.Plan {
	if !p.RecurAutorenew || p.RecurEveryDays == nil || *p.RecurEveryDays <= 0 {
		return nil
	}
	if p.RecurTimes != nil && *p.RecurTimes <= 1 {
		return nil
	}
	next := *p
	next.ID = 0
	next.Fecha = p.Fecha.AddDate(0, 0, *p.RecurEveryDays)
	next.Estado = model.PlanPendiente
	next.CreatedAt = time.Time{}
	next.UpdatedAt = time.Time{}
	if p.RecurTimes != nil {
		restantes := *p.RecurTimes - 1
		next.RecurTimes = &restantes
	}
	return &next
}

func jornadaDePlan(p *model.Plan) *model.Jornada {
	if p.Tipo != PlanTipoJornada || p.Trabajador == nil {
		return nil
	}
	dias := decimal.NewFromInt(1)
	if p.Dias != nil {
		dias = *p.Dias
	}
	extra := decimal.Zero
	if p.HorasExtra != nil {
		extra = *p.HorasExtra
	}
	actividad := "Plan"
	if p.Actividad != nil {
		actividad = *p.Actividad
	}
	return &model.Jornada{
		Owner:         p.Owner,
		Trabajador:    *p.Trabajador,
		Fecha:         p.Fecha,
		Lote:          p.Lote,
		Actividad:     actividad,
		Dias:          dias,
		HorasNormales: dias.Mul(decimal.NewFromInt(model.HorasPorDia)),
		HorasExtra:    extra,
	}
}

func validarPlan(p *model.Plan) error {
	if !tiposPlan[p.Tipo] {
		return invalido("tipo de plan inválido: %s", p.Tipo)
	}
	if strings.TrimSpace(p.Lote) == "" {
		return invalido("seleccione un lote")
	}
	if p.Tipo == PlanTipoJornada && p.Trabajador == nil {
		return invalido("un plan de jornada requiere un trabajador")
	}
	if p.Tipo != PlanTipoJornada && p.Producto == nil {
		return invalido("un plan de %s requiere un producto", p.Tipo)
	}
	if p.Dias != nil && !p.Dias.IsPositive() {
		return invalido("los días deben ser mayores a cero")
	}
	if p.Cantidad != nil && !p.Cantidad.IsPositive() {
		return invalido("la cantidad debe ser mayor a cero")
	}
	if p.RecurAutorenew && (p.RecurEveryDays == nil || *p.RecurEveryDays <= 0) {
		return invalido("la renovación automática requiere un intervalo en días")
	}
	if p.RecurTimes != nil && *p.RecurTimes < 1 {
		return invalido("las repeticiones deben ser al menos una")
	}
	return nil
}

func urgencia(p *model.Plan, hoy time.Time) string {
	if p.Estado == model.PlanRealizado {
		return UrgenciaRealizado
	}
	d := model.SoloFecha(hoy)
	switch {
	case p.Fecha.Before(d):
		return UrgenciaVencido
	case p.Fecha.Equal(d):
		return UrgenciaHoy
	default:
		return UrgenciaFuturo
	}
}

// opcional treats a blank string as absent.
func opcional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func mapPlan(p *model.Plan, hoy time.Time) dto.PlanResponse {
	return dto.PlanResponse{
		ID:             p.ID,
		Fecha:          fmtFecha(p.Fecha),
		Lote:           p.Lote,
		Tipo:           p.Tipo,
		Trabajador:     p.Trabajador,
		Actividad:      p.Actividad,
		Dias:           p.Dias,
		HorasExtra:     p.HorasExtra,
		Etapa:          p.Etapa,
		Producto:       p.Producto,
		Dosis:          p.Dosis,
		Cantidad:       p.Cantidad,
		PrecioUnitario: p.PrecioUnitario,
		Estado:         p.Estado,
		RecurEveryDays: p.RecurEveryDays,
		RecurTimes:     p.RecurTimes,
		RecurAutorenew: p.RecurAutorenew,
		Urgencia:       urgencia(p, hoy),
	}
}
