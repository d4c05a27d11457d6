package infra

import (
	"fmt"

	"finca/internal/model"

	"github.com/xuri/excelize/v2"
)

// RespaldoData is the content of an Excel backup.
type RespaldoData struct {
	Jornadas      []model.Jornada
	Recolecciones []model.Recoleccion
	Insumos       []model.Insumo
	Vales         []model.Vale
}

// BuildRespaldo writes one sheet per entry table. The caller owns the file
// and must Close it.
func BuildRespaldo(d RespaldoData) (*excelize.File, error) {
	f := excelize.NewFile()
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("excel: style: %w", err)
	}

	hojas := []struct {
		nombre string
		header []interface{}
		filas  [][]interface{}
	}{
		{"Jornadas", []interface{}{"ID", "Fecha", "Trabajador", "Lote", "Actividad", "Días", "Horas normales", "Horas extra"}, filasJornadas(d.Jornadas)},
		{"Cosecha", []interface{}{"ID", "Fecha", "Trabajador", "Lote", "Cajuelas", "Precio cajuela", "Total"}, filasRecolecciones(d.Recolecciones)},
		{"Insumos", []interface{}{"ID", "Fecha", "Lote", "Tipo", "Etapa", "Producto", "Dosis", "Cantidad", "Precio unitario", "Costo total"}, filasInsumos(d.Insumos)},
		{"Vales", []interface{}{"ID", "Fecha", "Trabajador", "Monto", "Concepto"}, filasVales(d.Vales)},
	}

	for i, h := range hojas {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", h.nombre); err != nil {
				f.Close()
				return nil, fmt.Errorf("excel: rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(h.nombre); err != nil {
			f.Close()
			return nil, fmt.Errorf("excel: new sheet %s: %w", h.nombre, err)
		}

		if err := f.SetSheetRow(h.nombre, "A1", &h.header); err != nil {
			f.Close()
			return nil, fmt.Errorf("excel: header %s: %w", h.nombre, err)
		}
		if err := f.SetRowStyle(h.nombre, 1, 1, bold); err != nil {
			f.Close()
			return nil, fmt.Errorf("excel: header style %s: %w", h.nombre, err)
		}
		for n, fila := range h.filas {
			cell, _ := excelize.CoordinatesToCellName(1, n+2)
			fila := fila
			if err := f.SetSheetRow(h.nombre, cell, &fila); err != nil {
				f.Close()
				return nil, fmt.Errorf("excel: row %s/%d: %w", h.nombre, n+2, err)
			}
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

func filasJornadas(rows []model.Jornada) [][]interface{} {
	out := make([][]interface{}, len(rows))
	for i, j := range rows {
		out[i] = []interface{}{
			j.ID, j.Fecha.Format(model.FormatoFecha), j.Trabajador, j.Lote, j.Actividad,
			j.Dias.InexactFloat64(), j.HorasNormales.InexactFloat64(), j.HorasExtra.InexactFloat64(),
		}
	}
	return out
}

func filasRecolecciones(rows []model.Recoleccion) [][]interface{} {
	out := make([][]interface{}, len(rows))
	for i, r := range rows {
		out[i] = []interface{}{
			r.ID, r.Fecha.Format(model.FormatoFecha), r.Trabajador, r.Lote,
			r.Cajuelas.InexactFloat64(), r.PrecioCajuela.InexactFloat64(), r.TotalPagar.InexactFloat64(),
		}
	}
	return out
}

func filasInsumos(rows []model.Insumo) [][]interface{} {
	out := make([][]interface{}, len(rows))
	for i, in := range rows {
		out[i] = []interface{}{
			in.ID, in.Fecha.Format(model.FormatoFecha), in.Lote, in.Tipo, in.Etapa, in.Producto, in.Dosis,
			in.Cantidad.InexactFloat64(), in.PrecioUnitario.InexactFloat64(), in.CostoTotal.InexactFloat64(),
		}
	}
	return out
}

func filasVales(rows []model.Vale) [][]interface{} {
	out := make([][]interface{}, len(rows))
	for i, v := range rows {
		out[i] = []interface{}{
			v.ID, v.Fecha.Format(model.FormatoFecha), v.Trabajador, v.Monto.InexactFloat64(), v.Concepto,
		}
	}
	return out
}
