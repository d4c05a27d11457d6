package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"finca/internal/infra"
	"finca/internal/model"
	"finca/internal/repository"

	"github.com/rs/zerolog/log"
)

// ReporteCierrePayload asks for the PDF of a cierre to be mailed to Email.
type ReporteCierrePayload struct {
	Owner    string `json:"owner"`
	CierreID uint   `json:"cierre_id"`
	Email    string `json:"email"`
}

// EmailQueue is satisfied by *Dispatcher.
type EmailQueue interface {
	EnqueueEmail(ctx context.Context, payload EmailPayload) error
}

// ReporteWorker renders the cierre PDF and hands it to the e-mail queue.
type ReporteWorker struct {
	cierres     repository.CierreRepository
	emails      EmailQueue
	pdfDir      string
	nombreFinca string
}

func NewReporteWorker(cierres repository.CierreRepository, emails EmailQueue, pdfDir, nombreFinca string) *ReporteWorker {
	return &ReporteWorker{cierres: cierres, emails: emails, pdfDir: pdfDir, nombreFinca: nombreFinca}
}

func (w *ReporteWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var p ReporteCierrePayload
	if err := json.Unmarshal(raw, &p); err != nil {
		log.Error().Err(err).Msg("reporte_worker: invalid payload")
		return nil
	}

	c, err := w.cierres.FindByID(ctx, p.Owner, p.CierreID)
	if err != nil {
		return fmt.Errorf("reporte_worker: cierre %d: %w", p.CierreID, err)
	}
	path, err := infra.GenerateCierrePDF(c, w.nombreFinca, w.pdfDir)
	if err != nil {
		return fmt.Errorf("reporte_worker: pdf: %w", err)
	}

	email := EmailPayload{
		To:      p.Email,
		Subject: fmt.Sprintf("%s: cierre %s al %s", w.nombreFinca, c.FechaInicio.Format(model.FormatoFecha), c.FechaFin.Format(model.FormatoFecha)),
		Body:    fmt.Sprintf("Adjunto el reporte de cierre del período. Total general: %s.", c.TotalGeneral.StringFixed(2)),
		PDFPath: path,
	}
	if err := w.emails.EnqueueEmail(ctx, email); err != nil {
		return fmt.Errorf("reporte_worker: enqueue email: %w", err)
	}
	log.Info().Str("owner", p.Owner).Uint("cierre_id", p.CierreID).Str("pdf", path).Msg("reporte_worker: pdf ready")
	return nil
}
