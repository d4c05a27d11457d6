package service

import (
	"context"

	"finca/internal/dto"
	"finca/internal/model"
	"finca/internal/repository"
)

type TrabajadorService interface {
	Crear(ctx context.Context, owner string, req dto.TrabajadorRequest) (*dto.TrabajadorResponse, error)
	Listar(ctx context.Context, owner, tipo string, incluirInactivos bool) ([]dto.TrabajadorResponse, error)
	Actualizar(ctx context.Context, owner string, id uint, req dto.TrabajadorRequest) (*dto.TrabajadorResponse, error)
	Eliminar(ctx context.Context, owner string, id uint) error
}

type trabajadorService struct {
	repo repository.TrabajadorRepository
}

func NewTrabajadorService(repo repository.TrabajadorRepository) TrabajadorService {
	return &trabajadorService{repo: repo}
}

func (s *trabajadorService) Crear(ctx context.Context, owner string, req dto.TrabajadorRequest) (*dto.TrabajadorResponse, error) {
	t := &model.Trabajador{
		Owner:          owner,
		NombreCompleto: req.NombreCompleto,
		Tipo:           req.Tipo,
		Activo:         req.Activo == nil || *req.Activo,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, duplicado(err, "ya existe un trabajador con ese nombre")
	}
	resp := mapTrabajador(t)
	return &resp, nil
}

func (s *trabajadorService) Listar(ctx context.Context, owner, tipo string, incluirInactivos bool) ([]dto.TrabajadorResponse, error) {
	if tipo != "" && tipo != model.TipoJornalero && tipo != model.TipoRecolector {
		return nil, invalido("tipo de trabajador inválido: %s", tipo)
	}
	rows, err := s.repo.List(ctx, owner, tipo, incluirInactivos)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.TrabajadorResponse, len(rows))
	for i := range rows {
		resp[i] = mapTrabajador(&rows[i])
	}
	return resp, nil
}

func (s *trabajadorService) Actualizar(ctx context.Context, owner string, id uint, req dto.TrabajadorRequest) (*dto.TrabajadorResponse, error) {
	t, err := s.repo.FindByID(ctx, owner, id)
	if err != nil {
		return nil, noEncontrado(err, "trabajador no encontrado")
	}
	t.NombreCompleto = req.NombreCompleto
	t.Tipo = req.Tipo
	if req.Activo != nil {
		t.Activo = *req.Activo
	}
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, duplicado(err, "ya existe un trabajador con ese nombre")
	}
	resp := mapTrabajador(t)
	return &resp, nil
}

func (s *trabajadorService) Eliminar(ctx context.Context, owner string, id uint) error {
	return noEncontrado(s.repo.Delete(ctx, owner, id), "trabajador no encontrado")
}

func mapTrabajador(t *model.Trabajador) dto.TrabajadorResponse {
	return dto.TrabajadorResponse{
		ID:             t.ID,
		NombreCompleto: t.NombreCompleto,
		Tipo:           t.Tipo,
		Activo:         t.Activo,
	}
}
