package service_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"finca/internal/dto"
	"finca/internal/model"
	"finca/internal/service"
	"finca/internal/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type colaFalsa struct {
	encolados []worker.ReporteCierrePayload
	err       error
}

func (q *colaFalsa) EnqueueReporteCierre(_ context.Context, p worker.ReporteCierrePayload) error {
	if q.err != nil {
		return q.err
	}
	q.encolados = append(q.encolados, p)
	return nil
}

func cerrarMarzo(t *testing.T, r repos, svc service.CierreService) *dto.CierreResponse {
	t.Helper()
	ctx := context.Background()
	resumen, err := nuevoReporte(r).ResumenPeriodo(ctx, owner, dto.RangoQuery{Desde: "2024-03-01", Hasta: "2024-03-31"})
	require.NoError(t, err)
	c, err := svc.Registrar(ctx, owner, "admin", *resumen)
	require.NoError(t, err)
	return c
}

func TestCierre_NoCambiaConRegistrosPosteriores(t *testing.T) {
	r := nuevosRepos(nuevaDB(t))
	guardarTarifa(t, r, owner, "10000", "1000")
	jornada(t, r, owner, "Ana", "2024-03-04", "Lote 1", "2", "1")
	insumo(t, r, owner, "2024-03-05", "Lote 1", "Cal", "4", "2500")
	recoleccion(t, r, owner, "Luis", "2024-03-06", "Lote 1", "10", "1500")

	svc := service.NewCierreService(r.cierres, nil, t.TempDir(), "Finca Norte")
	c := cerrarMarzo(t, r, svc)
	requireDec(t, "21000", c.TotalNomina)
	requireDec(t, "10000", c.TotalInsumos)
	requireDec(t, "15000", c.TotalCosecha)
	requireDec(t, "31000", c.TotalGeneral)
	assert.Equal(t, "admin", c.CreadoPor)

	// Closing is advisory: the period still accepts entries and a new
	// tarifa, but the stored snapshot does not move.
	jornada(t, r, owner, "Ana", "2024-03-20", "Lote 2", "3", "0")
	insumo(t, r, owner, "2024-03-21", "Lote 2", "Abono", "1", "90000")
	guardarTarifa(t, r, owner, "20000", "3000")

	guardado, err := svc.Obtener(context.Background(), owner, c.ID)
	require.NoError(t, err)
	requireDec(t, "21000", guardado.TotalNomina)
	requireDec(t, "10000", guardado.TotalInsumos)
	requireDec(t, "31000", guardado.TotalGeneral)

	resumen, err := nuevoReporte(r).ResumenPeriodo(context.Background(), owner, dto.RangoQuery{Desde: "2024-03-01", Hasta: "2024-03-31"})
	require.NoError(t, err)
	assert.False(t, resumen.TotalGeneral.Equal(guardado.TotalGeneral))
}

func TestCierre_FilaInmutable(t *testing.T) {
	db := nuevaDB(t)
	r := nuevosRepos(db)
	svc := service.NewCierreService(r.cierres, nil, t.TempDir(), "Finca Norte")
	c := cerrarMarzo(t, r, svc)

	row := model.Cierre{ID: c.ID}
	err := db.Model(&row).Update("total_general", 1).Error
	assert.ErrorIs(t, err, model.ErrRegistroInmutable)
	err = db.Delete(&row).Error
	assert.ErrorIs(t, err, model.ErrRegistroInmutable)
}

func TestCierre_RangoInvertidoRechazado(t *testing.T) {
	r := nuevosRepos(nuevaDB(t))
	svc := service.NewCierreService(r.cierres, nil, t.TempDir(), "Finca Norte")
	_, err := svc.Registrar(context.Background(), owner, "admin", dto.ResumenPeriodoResponse{Desde: "2024-04-01", Hasta: "2024-03-01"})
	assert.ErrorIs(t, err, service.ErrValidacion)
}

func TestCierre_ListarMasRecientePrimeroYPorOwner(t *testing.T) {
	r := nuevosRepos(nuevaDB(t))
	svc := service.NewCierreService(r.cierres, nil, t.TempDir(), "Finca Norte")
	primero := cerrarMarzo(t, r, svc)
	segundo := cerrarMarzo(t, r, svc)

	lista, err := svc.Listar(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, lista, 2)
	assert.Equal(t, segundo.ID, lista[0].ID)
	assert.Equal(t, primero.ID, lista[1].ID)

	_, err = svc.Obtener(context.Background(), vecino, primero.ID)
	assert.ErrorIs(t, err, service.ErrNoEncontrado)
}

func TestCierre_GenerarPDF(t *testing.T) {
	r := nuevosRepos(nuevaDB(t))
	dir := t.TempDir()
	svc := service.NewCierreService(r.cierres, nil, dir, "Finca Norte")
	c := cerrarMarzo(t, r, svc)

	path, err := svc.GenerarPDF(context.Background(), owner, c.ID)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestCierre_Enviar(t *testing.T) {
	r := nuevosRepos(nuevaDB(t))
	cola := &colaFalsa{}
	svc := service.NewCierreService(r.cierres, cola, t.TempDir(), "Finca Norte")
	c := cerrarMarzo(t, r, svc)

	require.NoError(t, svc.Enviar(context.Background(), owner, c.ID, "contabilidad@example.com"))
	require.Len(t, cola.encolados, 1)
	assert.Equal(t, worker.ReporteCierrePayload{Owner: owner, CierreID: c.ID, Email: "contabilidad@example.com"}, cola.encolados[0])

	cola.err = errors.New("redis down")
	assert.Error(t, svc.Enviar(context.Background(), owner, c.ID, "contabilidad@example.com"))

	sinCola := service.NewCierreService(r.cierres, nil, t.TempDir(), "Finca Norte")
	assert.ErrorIs(t, sinCola.Enviar(context.Background(), owner, c.ID, "x@example.com"), service.ErrValidacion)
}
