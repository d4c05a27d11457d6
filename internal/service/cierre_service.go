package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"finca/internal/dto"
	"finca/internal/infra"
	"finca/internal/model"
	"finca/internal/repository"
	"finca/internal/worker"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// CierreQueue is satisfied by *worker.Dispatcher.
type CierreQueue interface {
	EnqueueReporteCierre(ctx context.Context, payload worker.ReporteCierrePayload) error
}

// CierreService records period closes. A cierre stores the totals it is given
// and is never recomputed, updated or deleted afterwards.
type CierreService interface {
	Registrar(ctx context.Context, owner, creador string, resumen dto.ResumenPeriodoResponse) (*dto.CierreResponse, error)
	Listar(ctx context.Context, owner string) ([]dto.CierreResponse, error)
	Obtener(ctx context.Context, owner string, id uint) (*dto.CierreResponse, error)
	GenerarPDF(ctx context.Context, owner string, id uint) (string, error)
	// Enviar queues the cierre report for e-mail delivery.
	Enviar(ctx context.Context, owner string, id uint, email string) error
}

type cierreService struct {
	repo        repository.CierreRepository
	queue       CierreQueue
	pdfDir      string
	nombreFinca string
}

// NewCierreService accepts a nil queue; Enviar then fails with a validation error.
func NewCierreService(repo repository.CierreRepository, queue CierreQueue, pdfDir, nombreFinca string) CierreService {
	return &cierreService{repo: repo, queue: queue, pdfDir: pdfDir, nombreFinca: nombreFinca}
}

func (s *cierreService) Registrar(ctx context.Context, owner, creador string, resumen dto.ResumenPeriodoResponse) (*dto.CierreResponse, error) {
	rg, err := parseRango(resumen.Desde, resumen.Hasta)
	if err != nil {
		return nil, err
	}
	if rg.Desde.After(rg.Hasta) {
		return nil, invalido("la fecha de inicio del cierre es posterior a la fecha final")
	}

	c := &model.Cierre{
		Owner:        owner,
		FechaInicio:  rg.Desde,
		FechaFin:     rg.Hasta,
		CreadoPor:    creador,
		TotalNomina:  resumen.ManoObra,
		TotalInsumos: resumen.Insumos,
		TotalCosecha: resumen.Cosecha,
		TotalGeneral: resumen.TotalGeneral,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("registrar cierre: %w", err)
	}

	log.Info().
		Str("owner", owner).
		Uint("cierre_id", c.ID).
		Str("desde", resumen.Desde).
		Str("hasta", resumen.Hasta).
		Str("total_general", c.TotalGeneral.StringFixed(2)).
		Msg("cierre registrado")

	resp := mapCierre(c)
	return &resp, nil
}

func (s *cierreService) Listar(ctx context.Context, owner string) ([]dto.CierreResponse, error) {
	rows, err := s.repo.List(ctx, owner)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CierreResponse, len(rows))
	for i := range rows {
		resp[i] = mapCierre(&rows[i])
	}
	return resp, nil
}

func (s *cierreService) Obtener(ctx context.Context, owner string, id uint) (*dto.CierreResponse, error) {
	c, err := s.buscar(ctx, owner, id)
	if err != nil {
		return nil, err
	}
	resp := mapCierre(c)
	return &resp, nil
}

func (s *cierreService) GenerarPDF(ctx context.Context, owner string, id uint) (string, error) {
	c, err := s.buscar(ctx, owner, id)
	if err != nil {
		return "", err
	}
	return infra.GenerateCierrePDF(c, s.nombreFinca, s.pdfDir)
}

func (s *cierreService) Enviar(ctx context.Context, owner string, id uint, email string) error {
	if _, err := s.buscar(ctx, owner, id); err != nil {
		return err
	}
	if s.queue == nil {
		return invalido("el envío de reportes no está disponible")
	}
	payload := worker.ReporteCierrePayload{Owner: owner, CierreID: id, Email: email}
	if err := s.queue.EnqueueReporteCierre(ctx, payload); err != nil {
		return fmt.Errorf("encolar reporte de cierre: %w", err)
	}
	return nil
}

func (s *cierreService) buscar(ctx context.Context, owner string, id uint) (*model.Cierre, error) {
	c, err := s.repo.FindByID(ctx, owner, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, noEncontrado(err, "cierre no encontrado")
	}
	return c, err
}

func mapCierre(c *model.Cierre) dto.CierreResponse {
	return dto.CierreResponse{
		ID:           c.ID,
		FechaInicio:  fmtFecha(c.FechaInicio),
		FechaFin:     fmtFecha(c.FechaFin),
		CreadoPor:    c.CreadoPor,
		TotalNomina:  c.TotalNomina,
		TotalInsumos: c.TotalInsumos,
		TotalCosecha: c.TotalCosecha,
		TotalGeneral: c.TotalGeneral,
		CreatedAt:    c.CreatedAt.UTC().Format(time.RFC3339),
	}
}
