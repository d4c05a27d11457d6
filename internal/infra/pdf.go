package infra

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"finca/internal/dto"
	"finca/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"
)

// GenerateCierrePDF writes the one-page summary of a cierre to
// dir/cierre_<id>.pdf and returns the file path.
func GenerateCierrePDF(c *model.Cierre, nombreFinca, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("pdf: create dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("cierre_%d.pdf", c.ID))

	pdf, tr := nuevoDocumento("P")
	encabezado(pdf, tr, nombreFinca, "Reporte de cierre de período")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Período: %s al %s",
		c.FechaInicio.Format(model.FormatoFecha), c.FechaFin.Format(model.FormatoFecha))), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, tr("Registrado por: "+c.CreadoPor), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, tr("Fecha de cierre: "+c.CreatedAt.Format("02/01/2006 15:04")), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	filas := []struct {
		concepto string
		monto    string
	}{
		{"Mano de obra (nómina)", c.TotalNomina.StringFixed(2)},
		{"Insumos", c.TotalInsumos.StringFixed(2)},
		{"Cosecha (pagada a recolectores)", c.TotalCosecha.StringFixed(2)},
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(120, 8, "Concepto", "1", 0, "L", true, 0, "")
	pdf.CellFormat(60, 8, "Monto", "1", 1, "R", true, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, f := range filas {
		pdf.CellFormat(120, 8, tr(f.concepto), "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 8, f.monto, "1", 1, "R", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(120, 9, "Total general (mano de obra + insumos)", "1", 0, "L", false, 0, "")
	pdf.CellFormat(60, 9, c.TotalGeneral.StringFixed(2), "1", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return path, nil
}

// GeneratePlanillaPDF writes a payroll sheet in landscape. File names carry
// a random suffix because the same sheet may be printed many times.
func GeneratePlanillaPDF(p *dto.PlanillaResponse, nombreFinca, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("pdf: create dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("planilla_%s_%s_%s_%s.pdf", p.Tipo, p.Desde, p.Hasta, uuid.NewString()[:8]))

	pdf, tr := nuevoDocumento("L")
	encabezado(pdf, tr, nombreFinca, fmt.Sprintf("Planilla de %s del %s al %s", p.Tipo, p.Desde, p.Hasta))

	cantidad := "Días / H. extra"
	if p.Tipo == dto.PlanillaCosecha {
		cantidad = "Cajuelas"
	}
	anchos := []float64{80, 40, 35, 35, 35, 40}
	titulos := []string{"Trabajador", cantidad, "Bruto", "Deuda", "Abono", "Neto"}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, t := range titulos {
		pdf.CellFormat(anchos[i], 8, tr(t), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, f := range p.Filas {
		cant := f.Dias.String() + " / " + f.HorasExtra.String()
		if p.Tipo == dto.PlanillaCosecha {
			cant = f.Cajuelas.String()
		}
		pdf.CellFormat(anchos[0], 7, tr(f.Trabajador), "1", 0, "L", false, 0, "")
		pdf.CellFormat(anchos[1], 7, cant, "1", 0, "C", false, 0, "")
		pdf.CellFormat(anchos[2], 7, f.Bruto.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(anchos[3], 7, f.Deuda.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(anchos[4], 7, f.Abono.StringFixed(2), "1", 0, "R", false, 0, "")
		if f.NetoNegativo {
			pdf.SetTextColor(200, 0, 0)
		}
		pdf.CellFormat(anchos[5], 7, f.Neto.StringFixed(2), "1", 1, "R", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(anchos[0]+anchos[1], 8, "Totales", "1", 0, "L", false, 0, "")
	pdf.CellFormat(anchos[2], 8, p.TotalBruto.StringFixed(2), "1", 0, "R", false, 0, "")
	pdf.CellFormat(anchos[3], 8, "", "1", 0, "R", false, 0, "")
	pdf.CellFormat(anchos[4], 8, p.TotalAbonos.StringFixed(2), "1", 0, "R", false, 0, "")
	pdf.CellFormat(anchos[5], 8, p.TotalNeto.StringFixed(2), "1", 1, "R", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("Tarifa: día %s, hora extra %s",
		p.PagoDia.StringFixed(2), p.PagoHoraExtra.StringFixed(2))), "", 1, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return path, nil
}

// nuevoDocumento returns an A4 document and a translator from UTF-8 to the
// code page of the core fonts, needed for accented text.
func nuevoDocumento(orientacion string) (*fpdf.Fpdf, func(string) string) {
	pdf := fpdf.New(orientacion, "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	return pdf, pdf.UnicodeTranslatorFromDescriptor("")
}

func encabezado(pdf *fpdf.Fpdf, tr func(string) string, finca, titulo string) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 9, tr(finca), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, tr(titulo), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(0, 5, "Generado "+time.Now().Format("02/01/2006 15:04"), "", 1, "L", false, 0, "")
	pageW, _ := pdf.GetPageSize()
	pdf.Line(15, pdf.GetY()+1, pageW-15, pdf.GetY()+1)
	pdf.Ln(5)
}
