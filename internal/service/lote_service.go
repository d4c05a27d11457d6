package service

import (
	"context"
	"fmt"
	"time"

	"finca/internal/dto"
	"finca/internal/model"
	"finca/internal/repository"

	"github.com/shopspring/decimal"
)

const (
	EstadoFertilizado    = "fertilizado"
	EstadoBajaProduccion = "baja_produccion"
	EstadoEstable        = "estable"

	// diasFertilizado is how long after an Abono application a lote counts
	// as recently fertilized.
	diasFertilizado = 30
	// cajuelasBajaProduccion is the lifetime harvest below which a lote is
	// flagged as low producing.
	cajuelasBajaProduccion = 50
)

type LoteService interface {
	Crear(ctx context.Context, owner string, req dto.LoteRequest) (*dto.LoteResponse, error)
	Listar(ctx context.Context, owner string) ([]dto.LoteResponse, error)
	Actualizar(ctx context.Context, owner string, id uint, req dto.LoteRequest) (*dto.LoteResponse, error)
	Eliminar(ctx context.Context, owner string, id uint) error
	Estado(ctx context.Context, owner string, id uint, hoy time.Time) (*dto.EstadoLoteResponse, error)
	Clima(ctx context.Context, owner string, id uint) (*dto.ClimaResponse, error)
	RegistrarAnalisis(ctx context.Context, owner string, id uint, req dto.AnalisisSueloRequest) (*dto.AnalisisSueloResponse, error)
	ListarAnalisis(ctx context.Context, owner string, id uint) ([]dto.AnalisisSueloResponse, error)
}

type loteService struct {
	repo          repository.LoteRepository
	insumos       repository.InsumoRepository
	recolecciones repository.RecoleccionRepository
	clima         ClimaService
}

func NewLoteService(
	repo repository.LoteRepository,
	insumos repository.InsumoRepository,
	recolecciones repository.RecoleccionRepository,
	clima ClimaService,
) LoteService {
	return &loteService{repo: repo, insumos: insumos, recolecciones: recolecciones, clima: clima}
}

func (s *loteService) Crear(ctx context.Context, owner string, req dto.LoteRequest) (*dto.LoteResponse, error) {
	l := &model.Lote{Owner: owner}
	aplicarLote(l, req)
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, duplicado(err, "ya existe un lote con ese nombre")
	}
	resp := mapLote(l)
	return &resp, nil
}

func (s *loteService) Listar(ctx context.Context, owner string) ([]dto.LoteResponse, error) {
	rows, err := s.repo.List(ctx, owner)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.LoteResponse, len(rows))
	for i := range rows {
		resp[i] = mapLote(&rows[i])
	}
	return resp, nil
}

func (s *loteService) Actualizar(ctx context.Context, owner string, id uint, req dto.LoteRequest) (*dto.LoteResponse, error) {
	l, err := s.buscar(ctx, owner, id)
	if err != nil {
		return nil, err
	}
	aplicarLote(l, req)
	if err := s.repo.Update(ctx, l); err != nil {
		return nil, duplicado(err, "ya existe un lote con ese nombre")
	}
	resp := mapLote(l)
	return &resp, nil
}

func (s *loteService) Eliminar(ctx context.Context, owner string, id uint) error {
	return noEncontrado(s.repo.Delete(ctx, owner, id), "lote no encontrado")
}

// ── Estado ────────────────────────────────────────────────────────────────────
// A recent Abono wins over low production.

func (s *loteService) Estado(ctx context.Context, owner string, id uint, hoy time.Time) (*dto.EstadoLoteResponse, error) {
	l, err := s.buscar(ctx, owner, id)
	if err != nil {
		return nil, err
	}
	desde := model.SoloFecha(hoy).AddDate(0, 0, -diasFertilizado)
	fertilizado, err := s.insumos.AplicadoDesde(ctx, owner, l.Nombre, "Abono", desde)
	if err != nil {
		return nil, fmt.Errorf("estado de lote: %w", err)
	}
	cajuelas, err := s.recolecciones.TotalCajuelasLote(ctx, owner, l.Nombre)
	if err != nil {
		return nil, fmt.Errorf("estado de lote: %w", err)
	}

	resp := &dto.EstadoLoteResponse{Lote: l.Nombre, TotalCajuelas: cajuelas}
	switch {
	case fertilizado:
		resp.Codigo = EstadoFertilizado
		resp.Descripcion = "Recién fertilizado"
	case cajuelas.LessThan(decimal.NewFromInt(cajuelasBajaProduccion)):
		resp.Codigo = EstadoBajaProduccion
		resp.Descripcion = "Baja producción"
	default:
		resp.Codigo = EstadoEstable
		resp.Descripcion = "Estable"
	}
	return resp, nil
}

func (s *loteService) Clima(ctx context.Context, owner string, id uint) (*dto.ClimaResponse, error) {
	l, err := s.buscar(ctx, owner, id)
	if err != nil {
		return nil, err
	}
	if l.Latitud == nil || l.Longitud == nil || s.clima == nil {
		return &dto.ClimaResponse{Disponible: false}, nil
	}
	resp := s.clima.Consultar(ctx, *l.Latitud, *l.Longitud)
	return &resp, nil
}

// ── Análisis de suelo ─────────────────────────────────────────────────────────

func (s *loteService) RegistrarAnalisis(ctx context.Context, owner string, id uint, req dto.AnalisisSueloRequest) (*dto.AnalisisSueloResponse, error) {
	l, err := s.buscar(ctx, owner, id)
	if err != nil {
		return nil, err
	}
	fecha, err := parseFecha("fecha", req.Fecha)
	if err != nil {
		return nil, err
	}
	a := &model.AnalisisSuelo{
		Owner:     owner,
		Lote:      l.Nombre,
		Fecha:     fecha,
		PH:        req.PH,
		Nitrogeno: req.Nitrogeno,
		Fosforo:   req.Fosforo,
		Potasio:   req.Potasio,
		Notas:     req.Notas,
	}
	if err := s.repo.CreateAnalisis(ctx, a); err != nil {
		return nil, fmt.Errorf("registrar análisis: %w", err)
	}
	resp := mapAnalisis(a)
	return &resp, nil
}

func (s *loteService) ListarAnalisis(ctx context.Context, owner string, id uint) ([]dto.AnalisisSueloResponse, error) {
	l, err := s.buscar(ctx, owner, id)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.ListAnalisis(ctx, owner, l.Nombre)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.AnalisisSueloResponse, len(rows))
	for i := range rows {
		resp[i] = mapAnalisis(&rows[i])
	}
	return resp, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func (s *loteService) buscar(ctx context.Context, owner string, id uint) (*model.Lote, error) {
	l, err := s.repo.FindByID(ctx, owner, id)
	if err != nil {
		return nil, noEncontrado(err, "lote no encontrado")
	}
	return l, nil
}

func aplicarLote(l *model.Lote, req dto.LoteRequest) {
	l.Nombre = req.Nombre
	l.Latitud = req.Latitud
	l.Longitud = req.Longitud
	l.AreaHectareas = req.AreaHectareas
	l.PoligonoGeoJSON = req.PoligonoGeoJSON
}

func mapLote(l *model.Lote) dto.LoteResponse {
	return dto.LoteResponse{
		ID:              l.ID,
		Nombre:          l.Nombre,
		Latitud:         l.Latitud,
		Longitud:        l.Longitud,
		AreaHectareas:   l.AreaHectareas,
		PoligonoGeoJSON: l.PoligonoGeoJSON,
	}
}

func mapAnalisis(a *model.AnalisisSuelo) dto.AnalisisSueloResponse {
	return dto.AnalisisSueloResponse{
		ID:        a.ID,
		Lote:      a.Lote,
		Fecha:     fmtFecha(a.Fecha),
		PH:        a.PH,
		Nitrogeno: a.Nitrogeno,
		Fosforo:   a.Fosforo,
		Potasio:   a.Potasio,
		Notas:     a.Notas,
	}
}
