package service

import (
	"context"

	"finca/internal/dto"
	"finca/internal/model"
	"finca/internal/repository"

	"github.com/shopspring/decimal"
)

type JornadaService interface {
	Crear(ctx context.Context, owner string, req dto.JornadaRequest) (*dto.JornadaResponse, error)
	Listar(ctx context.Context, owner string, f dto.RegistroFilter) ([]dto.JornadaResponse, error)
	Actualizar(ctx context.Context, owner string, id uint, req dto.JornadaRequest) (*dto.JornadaResponse, error)
	Eliminar(ctx context.Context, owner string, id uint) error
}

type jornadaService struct {
	repo repository.JornadaRepository
}

func NewJornadaService(repo repository.JornadaRepository) JornadaService {
	return &jornadaService{repo: repo}
}

func (s *jornadaService) Crear(ctx context.Context, owner string, req dto.JornadaRequest) (*dto.JornadaResponse, error) {
	j := &model.Jornada{Owner: owner}
	if err := aplicarJornada(j, req); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, nil, j); err != nil {
		return nil, err
	}
	resp := mapJornada(j)
	return &resp, nil
}

func (s *jornadaService) Listar(ctx context.Context, owner string, f dto.RegistroFilter) ([]dto.JornadaResponse, error) {
	filtro, err := filtroRegistros(f)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.List(ctx, owner, filtro)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.JornadaResponse, len(rows))
	for i := range rows {
		resp[i] = mapJornada(&rows[i])
	}
	return resp, nil
}

func (s *jornadaService) Actualizar(ctx context.Context, owner string, id uint, req dto.JornadaRequest) (*dto.JornadaResponse, error) {
	j, err := s.repo.FindByID(ctx, owner, id)
	if err != nil {
		return nil, noEncontrado(err, "jornada no encontrada")
	}
	if err := aplicarJornada(j, req); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, j); err != nil {
		return nil, err
	}
	resp := mapJornada(j)
	return &resp, nil
}

func (s *jornadaService) Eliminar(ctx context.Context, owner string, id uint) error {
	return noEncontrado(s.repo.Delete(ctx, owner, id), "jornada no encontrada")
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func aplicarJornada(j *model.Jornada, req dto.JornadaRequest) error {
	fecha, err := parseFecha("fecha", req.Fecha)
	if err != nil {
		return err
	}
	if !req.Dias.IsPositive() {
		return invalido("los días trabajados deben ser mayores a cero")
	}
	if req.HorasExtra.IsNegative() {
		return invalido("las horas extra no pueden ser negativas")
	}
	horas := req.Dias.Mul(decimal.NewFromInt(model.HorasPorDia))
	if req.HorasNormales != nil {
		if req.HorasNormales.IsNegative() {
			return invalido("las horas normales no pueden ser negativas")
		}
		horas = *req.HorasNormales
	}

	j.Trabajador = req.Trabajador
	j.Fecha = fecha
	j.Lote = req.Lote
	j.Actividad = req.Actividad
	j.Dias = req.Dias
	j.HorasNormales = horas
	j.HorasExtra = req.HorasExtra
	return nil
}

func filtroRegistros(f dto.RegistroFilter) (repository.FiltroRegistros, error) {
	rg, err := parseRangoOpcional(f.Desde, f.Hasta)
	if err != nil {
		return repository.FiltroRegistros{}, err
	}
	return repository.FiltroRegistros{Rango: rg, Trabajador: f.Trabajador, Lote: f.Lote}, nil
}

func mapJornada(j *model.Jornada) dto.JornadaResponse {
	return dto.JornadaResponse{
		ID:            j.ID,
		Trabajador:    j.Trabajador,
		Fecha:         fmtFecha(j.Fecha),
		Lote:          j.Lote,
		Actividad:     j.Actividad,
		Dias:          j.Dias,
		HorasNormales: j.HorasNormales,
		HorasExtra:    j.HorasExtra,
	}
}
