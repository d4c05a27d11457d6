package service

import (
	"context"
	"fmt"

	"finca/internal/dto"
	"finca/internal/infra"
	"finca/internal/repository"

	"github.com/xuri/excelize/v2"
)

// ExportService builds the Excel backup of the entry tables.
type ExportService interface {
	Respaldo(ctx context.Context, owner string, q dto.RangoOpcionalQuery) (*excelize.File, error)
}

type exportService struct {
	jornadas      repository.JornadaRepository
	recolecciones repository.RecoleccionRepository
	insumos       repository.InsumoRepository
	vales         repository.ValeRepository
}

func NewExportService(
	jornadas repository.JornadaRepository,
	recolecciones repository.RecoleccionRepository,
	insumos repository.InsumoRepository,
	vales repository.ValeRepository,
) ExportService {
	return &exportService{jornadas: jornadas, recolecciones: recolecciones, insumos: insumos, vales: vales}
}

func (s *exportService) Respaldo(ctx context.Context, owner string, q dto.RangoOpcionalQuery) (*excelize.File, error) {
	rg, err := parseRangoOpcional(q.Desde, q.Hasta)
	if err != nil {
		return nil, err
	}
	filtro := repository.FiltroRegistros{Rango: rg}

	var data infra.RespaldoData
	if data.Jornadas, err = s.jornadas.List(ctx, owner, filtro); err != nil {
		return nil, fmt.Errorf("respaldo jornadas: %w", err)
	}
	if data.Recolecciones, err = s.recolecciones.List(ctx, owner, filtro); err != nil {
		return nil, fmt.Errorf("respaldo recolecciones: %w", err)
	}
	if data.Insumos, err = s.insumos.List(ctx, owner, filtro); err != nil {
		return nil, fmt.Errorf("respaldo insumos: %w", err)
	}
	if data.Vales, err = s.vales.List(ctx, owner, rg); err != nil {
		return nil, fmt.Errorf("respaldo vales: %w", err)
	}
	return infra.BuildRespaldo(data)
}
