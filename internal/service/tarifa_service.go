package service

import (
	"context"
	"errors"
	"fmt"

	"finca/internal/dto"
	"finca/internal/model"
	"finca/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TarifaService interface {
	// Obtener returns zero rates with Configurada=false when none were saved.
	Obtener(ctx context.Context, owner string) (*dto.TarifaResponse, error)
	Guardar(ctx context.Context, owner string, req dto.TarifaRequest) (*dto.TarifaResponse, error)
}

type tarifaService struct {
	repo repository.TarifaRepository
}

func NewTarifaService(repo repository.TarifaRepository) TarifaService {
	return &tarifaService{repo: repo}
}

func (s *tarifaService) Obtener(ctx context.Context, owner string) (*dto.TarifaResponse, error) {
	t, err := s.repo.Find(ctx, nil, owner)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &dto.TarifaResponse{PagoDia: decimal.Zero, PagoHoraExtra: decimal.Zero}, nil
	}
	if err != nil {
		return nil, err
	}
	return &dto.TarifaResponse{PagoDia: t.PagoDia, PagoHoraExtra: t.PagoHoraExtra, Configurada: true}, nil
}

func (s *tarifaService) Guardar(ctx context.Context, owner string, req dto.TarifaRequest) (*dto.TarifaResponse, error) {
	if req.PagoDia.IsNegative() || req.PagoHoraExtra.IsNegative() {
		return nil, invalido("las tarifas no pueden ser negativas")
	}
	t := &model.Tarifa{Owner: owner, PagoDia: req.PagoDia, PagoHoraExtra: req.PagoHoraExtra}
	if err := s.repo.Upsert(ctx, t); err != nil {
		return nil, fmt.Errorf("guardar tarifa: %w", err)
	}
	return &dto.TarifaResponse{PagoDia: t.PagoDia, PagoHoraExtra: t.PagoHoraExtra, Configurada: true}, nil
}
