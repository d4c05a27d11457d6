package service

import (
	"context"

	"finca/internal/dto"
	"finca/internal/model"
	"finca/internal/repository"
)

type InsumoService interface {
	Crear(ctx context.Context, owner string, req dto.InsumoRequest) (*dto.InsumoResponse, error)
	Listar(ctx context.Context, owner string, f dto.RegistroFilter) ([]dto.InsumoResponse, error)
	Eliminar(ctx context.Context, owner string, id uint) error
}

type insumoService struct {
	repo repository.InsumoRepository
}

func NewInsumoService(repo repository.InsumoRepository) InsumoService {
	return &insumoService{repo: repo}
}

func (s *insumoService) Crear(ctx context.Context, owner string, req dto.InsumoRequest) (*dto.InsumoResponse, error) {
	fecha, err := parseFecha("fecha", req.Fecha)
	if err != nil {
		return nil, err
	}
	if !req.Cantidad.IsPositive() {
		return nil, invalido("la cantidad debe ser mayor a cero")
	}
	if !req.PrecioUnitario.IsPositive() {
		return nil, invalido("el precio unitario debe ser mayor a cero")
	}

	ins := &model.Insumo{
		Owner:          owner,
		Fecha:          fecha,
		Lote:           req.Lote,
		Tipo:           req.Tipo,
		Etapa:          req.Etapa,
		Producto:       req.Producto,
		Dosis:          req.Dosis,
		Cantidad:       req.Cantidad,
		PrecioUnitario: req.PrecioUnitario,
	}
	if err := s.repo.Create(ctx, ins); err != nil {
		return nil, err
	}
	resp := mapInsumo(ins)
	return &resp, nil
}

func (s *insumoService) Listar(ctx context.Context, owner string, f dto.RegistroFilter) ([]dto.InsumoResponse, error) {
	filtro, err := filtroRegistros(f)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.List(ctx, owner, filtro)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.InsumoResponse, len(rows))
	for i := range rows {
		resp[i] = mapInsumo(&rows[i])
	}
	return resp, nil
}

func (s *insumoService) Eliminar(ctx context.Context, owner string, id uint) error {
	return noEncontrado(s.repo.Delete(ctx, owner, id), "insumo no encontrado")
}

func mapInsumo(i *model.Insumo) dto.InsumoResponse {
	return dto.InsumoResponse{
		ID:             i.ID,
		Fecha:          fmtFecha(i.Fecha),
		Lote:           i.Lote,
		Tipo:           i.Tipo,
		Etapa:          i.Etapa,
		Producto:       i.Producto,
		Dosis:          i.Dosis,
		Cantidad:       i.Cantidad,
		PrecioUnitario: i.PrecioUnitario,
		CostoTotal:     i.CostoTotal,
	}
}
