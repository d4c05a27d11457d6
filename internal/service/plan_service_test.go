package service_test

import (
	"context"
	"testing"
	"time"

	"finca/internal/dto"
	"finca/internal/model"
	"finca/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hoyPlan = time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

func nuevoPlanSvc(r repos) service.PlanService {
	return service.NewPlanService(r.planes, r.jornadas)
}

func ptr[T any](v T) *T { return &v }

func planAbono(fecha string, cada, veces *int, autorenew bool) dto.CrearPlanRequest {
	return dto.CrearPlanRequest{
		Fecha: fecha, Lote: "Lote 1", Tipo: "Abono",
		Producto: ptr("18-5-15"), Cantidad: ptr(dec("2")), PrecioUnitario: ptr(dec("25000")),
		RecurEveryDays: cada, RecurTimes: veces, RecurAutorenew: autorenew,
	}
}

func TestCompletarPlan_CadenaDeRecurrencia(t *testing.T) {
	r := nuevosRepos(nuevaDB(t))
	svc := nuevoPlanSvc(r)
	ctx := context.Background()

	p, err := svc.Crear(ctx, owner, planAbono("2024-06-03", ptr(7), ptr(3), true), hoyPlan)
	require.NoError(t, err)

	res, err := svc.Completar(ctx, owner, p.ID, hoyPlan)
	require.NoError(t, err)
	assert.Equal(t, model.PlanRealizado, res.Plan.Estado)
	require.NotNil(t, res.Siguiente)
	assert.Equal(t, "2024-06-10", res.Siguiente.Fecha)
	assert.Equal(t, 2, *res.Siguiente.RecurTimes)
	assert.Equal(t, model.PlanPendiente, res.Siguiente.Estado)
	assert.Equal(t, "18-5-15", *res.Siguiente.Producto)

	res, err = svc.Completar(ctx, owner, res.Siguiente.ID, hoyPlan)
	require.NoError(t, err)
	require.NotNil(t, res.Siguiente)
	assert.Equal(t, "2024-06-17", res.Siguiente.Fecha)
	assert.Equal(t, 1, *res.Siguiente.RecurTimes)

	res, err = svc.Completar(ctx, owner, res.Siguiente.ID, hoyPlan)
	require.NoError(t, err)
	assert.Nil(t, res.Siguiente, "occurrences exhausted")

	todos, err := svc.Listar(ctx, owner, dto.PlanFilter{Desde: "2024-01-01", Hasta: "2024-12-31"}, hoyPlan)
	require.NoError(t, err)
	require.Len(t, todos, 3)
	for _, pl := range todos {
		assert.Equal(t, model.PlanRealizado, pl.Estado)
		assert.Equal(t, service.UrgenciaRealizado, pl.Urgencia)
	}
}

func TestCompletarPlan_SinRecurrenciaInfinita(t *testing.T) {
	r := nuevosRepos(nuevaDB(t))
	svc := nuevoPlanSvc(r)
	ctx := context.Background()

	p, err := svc.Crear(ctx, owner, planAbono("2024-06-03", ptr(30), nil, true), hoyPlan)
	require.NoError(t, err)
	res, err := svc.Completar(ctx, owner, p.ID, hoyPlan)
	require.NoError(t, err)
	require.NotNil(t, res.Siguiente)
	assert.Nil(t, res.Siguiente.RecurTimes)
	assert.Equal(t, "2024-07-03", res.Siguiente.Fecha)
}

func TestCompletarPlan_SinAutorenewNoCreaFilas(t *testing.T) {
	r := nuevosRepos(nuevaDB(t))
	svc := nuevoPlanSvc(r)
	ctx := context.Background()

	p, err := svc.Crear(ctx, owner, planAbono("2024-06-03", ptr(7), ptr(3), false), hoyPlan)
	require.NoError(t, err)
	res, err := svc.Completar(ctx, owner, p.ID, hoyPlan)
	require.NoError(t, err)
	assert.Nil(t, res.Siguiente)

	todos, err := svc.Listar(ctx, owner, dto.PlanFilter{Desde: "2024-01-01", Hasta: "2024-12-31"}, hoyPlan)
	require.NoError(t, err)
	assert.Len(t, todos, 1)
}

func TestCompletarPlan_DosVecesRechazado(t *testing.T) {
	r := nuevosRepos(nuevaDB(t))
	svc := nuevoPlanSvc(r)
	ctx := context.Background()

	p, err := svc.Crear(ctx, owner, planAbono("2024-06-03", nil, nil, false), hoyPlan)
	require.NoError(t, err)
	_, err = svc.Completar(ctx, owner, p.ID, hoyPlan)
	require.NoError(t, err)
	_, err = svc.Completar(ctx, owner, p.ID, hoyPlan)
	assert.ErrorIs(t, err, service.ErrValidacion)

	_, err = svc.Posponer(ctx, owner, p.ID, 3, hoyPlan)
	assert.ErrorIs(t, err, service.ErrValidacion)
}

func TestCompletarPlanJornada_RegistraLaJornada(t *testing.T) {
	r := nuevosRepos(nuevaDB(t))
	svc := nuevoPlanSvc(r)
	ctx := context.Background()

	p, err := svc.Crear(ctx, owner, dto.CrearPlanRequest{
		Fecha: "2024-06-12", Lote: "Lote 2", Tipo: "Jornada",
		Trabajador: ptr("Ana"), Actividad: ptr("Deshija"), Dias: ptr(dec("1.5")),
	}, hoyPlan)
	require.NoError(t, err)

	res, err := svc.Completar(ctx, owner, p.ID, hoyPlan)
	require.NoError(t, err)
	require.NotNil(t, res.JornadaID)

	jornadas, err := service.NewJornadaService(r.jornadas).Listar(ctx, owner, dto.RegistroFilter{Trabajador: "Ana"})
	require.NoError(t, err)
	require.Len(t, jornadas, 1)
	assert.Equal(t, "2024-06-12", jornadas[0].Fecha)
	assert.Equal(t, "Deshija", jornadas[0].Actividad)
	requireDec(t, "1.5", jornadas[0].Dias)
	requireDec(t, "12", jornadas[0].HorasNormales)
}

func TestPosponerPlan_SoloCambiaLaFecha(t *testing.T) {
	r := nuevosRepos(nuevaDB(t))
	svc := nuevoPlanSvc(r)
	ctx := context.Background()

	p, err := svc.Crear(ctx, owner, planAbono("2024-06-03", ptr(7), ptr(3), true), hoyPlan)
	require.NoError(t, err)

	pos, err := svc.Posponer(ctx, owner, p.ID, 5, hoyPlan)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-08", pos.Fecha)

	antes := *p
	assert.Equal(t, antes.Estado, pos.Estado)
	assert.Equal(t, *antes.RecurEveryDays, *pos.RecurEveryDays)
	assert.Equal(t, *antes.RecurTimes, *pos.RecurTimes)
	assert.Equal(t, antes.RecurAutorenew, pos.RecurAutorenew)
	assert.Equal(t, *antes.Producto, *pos.Producto)
	assert.True(t, antes.Cantidad.Equal(*pos.Cantidad))

	_, err = svc.Posponer(ctx, owner, p.ID, 0, hoyPlan)
	assert.ErrorIs(t, err, service.ErrValidacion)
}

func TestUrgencia(t *testing.T) {
	r := nuevosRepos(nuevaDB(t))
	svc := nuevoPlanSvc(r)
	ctx := context.Background()

	for _, f := range []string{"2024-06-09", "2024-06-10", "2024-06-11"} {
		_, err := svc.Crear(ctx, owner, planAbono(f, nil, nil, false), hoyPlan)
		require.NoError(t, err)
	}
	planes, err := svc.Listar(ctx, owner, dto.PlanFilter{Desde: "2024-06-01", Hasta: "2024-06-30", Estado: model.PlanPendiente}, hoyPlan)
	require.NoError(t, err)
	require.Len(t, planes, 3)
	assert.Equal(t, service.UrgenciaVencido, planes[0].Urgencia)
	assert.Equal(t, service.UrgenciaHoy, planes[1].Urgencia)
	assert.Equal(t, service.UrgenciaFuturo, planes[2].Urgencia)
}

func TestCrearPlan_Validaciones(t *testing.T) {
	r := nuevosRepos(nuevaDB(t))
	svc := nuevoPlanSvc(r)
	ctx := context.Background()

	_, err := svc.Crear(ctx, owner, dto.CrearPlanRequest{Fecha: "2024-06-12", Lote: "Lote 2", Tipo: "Jornada"}, hoyPlan)
	assert.ErrorIs(t, err, service.ErrValidacion, "jornada sin trabajador")

	_, err = svc.Crear(ctx, owner, planAbono("2024-06-12", nil, nil, true), hoyPlan)
	assert.ErrorIs(t, err, service.ErrValidacion, "autorenew sin intervalo")
}

func TestPlanes_AisladosPorOwner(t *testing.T) {
	r := nuevosRepos(nuevaDB(t))
	svc := nuevoPlanSvc(r)
	ctx := context.Background()

	p, err := svc.Crear(ctx, vecino, planAbono("2024-06-03", nil, nil, false), hoyPlan)
	require.NoError(t, err)

	_, err = svc.Completar(ctx, owner, p.ID, hoyPlan)
	assert.ErrorIs(t, err, service.ErrNoEncontrado)
	assert.ErrorIs(t, svc.Eliminar(ctx, owner, p.ID), service.ErrNoEncontrado)

	propios, err := svc.Listar(ctx, owner, dto.PlanFilter{Desde: "2024-01-01", Hasta: "2024-12-31"}, hoyPlan)
	require.NoError(t, err)
	assert.Empty(t, propios)
}

func TestActualizarPlan_RecurInfinitoBorraLasRepeticiones(t *testing.T) {
	r := nuevosRepos(nuevaDB(t))
	svc := nuevoPlanSvc(r)
	ctx := context.Background()

	p, err := svc.Crear(ctx, owner, planAbono("2024-06-03", ptr(30), ptr(3), true), hoyPlan)
	require.NoError(t, err)
	require.NotNil(t, p.RecurTimes)

	// Omitting recur_times keeps the stored count.
	p, err = svc.Actualizar(ctx, owner, p.ID, dto.ActualizarPlanRequest{Lote: ptr("Lote 2")}, hoyPlan)
	require.NoError(t, err)
	require.NotNil(t, p.RecurTimes)
	assert.Equal(t, 3, *p.RecurTimes)

	_, err = svc.Actualizar(ctx, owner, p.ID, dto.ActualizarPlanRequest{RecurTimes: ptr(2), RecurInfinito: true}, hoyPlan)
	assert.ErrorIs(t, err, service.ErrValidacion)

	p, err = svc.Actualizar(ctx, owner, p.ID, dto.ActualizarPlanRequest{RecurInfinito: true}, hoyPlan)
	require.NoError(t, err)
	assert.Nil(t, p.RecurTimes)

	res, err := svc.Completar(ctx, owner, p.ID, hoyPlan)
	require.NoError(t, err)
	require.NotNil(t, res.Siguiente)
	assert.Nil(t, res.Siguiente.RecurTimes)
}
