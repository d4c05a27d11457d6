package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
)

type EmailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	PDFPath string `json:"pdf_path"`
}

// Mailer is satisfied by *infra.Mailer.
type Mailer interface {
	SendReporte(to, subject, body, pdfPath string) error
}

// EmailWorker sends queued e-mails.
type EmailWorker struct {
	mailer Mailer
}

func NewEmailWorker(mailer Mailer) *EmailWorker {
	return &EmailWorker{mailer: mailer}
}

func (w *EmailWorker) Process(_ context.Context, raw json.RawMessage) error {
	var p EmailPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		// A malformed payload never succeeds; drop it instead of retrying.
		log.Error().Err(err).Msg("email_worker: invalid payload")
		return nil
	}
	if p.To == "" {
		log.Warn().Msg("email_worker: empty recipient, skipping")
		return nil
	}
	if err := w.mailer.SendReporte(p.To, p.Subject, p.Body, p.PDFPath); err != nil {
		return fmt.Errorf("email_worker: send to %s: %w", p.To, err)
	}
	log.Info().Str("to", p.To).Str("subject", p.Subject).Msg("email_worker: sent")
	return nil
}
