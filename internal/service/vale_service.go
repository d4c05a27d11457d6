package service

import (
	"context"
	"fmt"

	"finca/internal/dto"
	"finca/internal/model"
	"finca/internal/repository"

	"github.com/shopspring/decimal"
)

// ValeService exposes the debt ledger. Entries are only ever appended or,
// on explicit user request, deleted.
type ValeService interface {
	Registrar(ctx context.Context, owner string, req dto.ValeRequest) (*dto.ValeResponse, error)
	Saldo(ctx context.Context, owner, trabajador string) (decimal.Decimal, error)
	Saldos(ctx context.Context, owner string) ([]dto.SaldoResponse, error)
	Historial(ctx context.Context, owner, trabajador string, page, limit int) (*dto.ValeListResponse, error)
	Eliminar(ctx context.Context, owner string, id uint) error
}

type valeService struct {
	repo repository.ValeRepository
}

func NewValeService(repo repository.ValeRepository) ValeService {
	return &valeService{repo: repo}
}

func (s *valeService) Registrar(ctx context.Context, owner string, req dto.ValeRequest) (*dto.ValeResponse, error) {
	fecha, err := parseFecha("fecha", req.Fecha)
	if err != nil {
		return nil, err
	}
	if req.Monto.IsZero() {
		return nil, invalido("el monto del vale no puede ser cero")
	}
	if !dosDecimales(req.Monto) {
		return nil, invalido("el monto del vale admite como máximo 2 decimales")
	}
	v := &model.Vale{
		Owner:      owner,
		Fecha:      fecha,
		Trabajador: req.Trabajador,
		Monto:      req.Monto,
		Concepto:   req.Concepto,
	}
	if err := s.repo.Create(ctx, nil, v); err != nil {
		return nil, fmt.Errorf("registrar vale: %w", err)
	}
	resp := mapVale(v)
	return &resp, nil
}

func (s *valeService) Saldo(ctx context.Context, owner, trabajador string) (decimal.Decimal, error) {
	return s.repo.Saldo(ctx, nil, owner, trabajador)
}

func (s *valeService) Saldos(ctx context.Context, owner string) ([]dto.SaldoResponse, error) {
	rows, err := s.repo.Saldos(ctx, nil, owner)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.SaldoResponse, len(rows))
	for i, r := range rows {
		resp[i] = dto.SaldoResponse{Trabajador: r.Trabajador, Saldo: r.Saldo}
	}
	return resp, nil
}

// Historial lists entries newest first. Saldo is the worker's whole balance,
// not the sum of the returned page; it is zero when no worker is given.
func (s *valeService) Historial(ctx context.Context, owner, trabajador string, page, limit int) (*dto.ValeListResponse, error) {
	rows, total, err := s.repo.ListByTrabajador(ctx, owner, trabajador, page, limit)
	if err != nil {
		return nil, err
	}
	saldo := decimal.Zero
	if trabajador != "" {
		if saldo, err = s.repo.Saldo(ctx, nil, owner, trabajador); err != nil {
			return nil, err
		}
	}

	resp := &dto.ValeListResponse{
		Data:  make([]dto.ValeResponse, len(rows)),
		Total: total,
		Page:  page,
		Limit: limit,
		Saldo: saldo,
	}
	for i := range rows {
		resp.Data[i] = mapVale(&rows[i])
	}
	return resp, nil
}

func (s *valeService) Eliminar(ctx context.Context, owner string, id uint) error {
	return noEncontrado(s.repo.Delete(ctx, owner, id), "vale no encontrado")
}

func mapVale(v *model.Vale) dto.ValeResponse {
	return dto.ValeResponse{
		ID:         v.ID,
		Fecha:      fmtFecha(v.Fecha),
		Trabajador: v.Trabajador,
		Monto:      v.Monto,
		Concepto:   v.Concepto,
		Referencia: v.Referencia,
	}
}
