package service_test

import (
	"context"
	"fmt"
	"testing"

	"finca/internal/dto"
	"finca/internal/infra"
	"finca/internal/repository"
	"finca/internal/service"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	owner  = "finca_norte"
	vecino = "finca_sur"
)

// nuevaDB opens a private in-memory store with the full schema.
// One connection keeps every statement on the same in-memory database.
func nuevaDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), infra.GormConfig())
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, infra.RunMigrations(db))
	return db
}

// repos bundles the repositories a test usually needs.
type repos struct {
	jornadas      repository.JornadaRepository
	recolecciones repository.RecoleccionRepository
	insumos       repository.InsumoRepository
	vales         repository.ValeRepository
	tarifas       repository.TarifaRepository
	planes        repository.PlanRepository
	cierres       repository.CierreRepository
}

func nuevosRepos(db *gorm.DB) repos {
	return repos{
		jornadas:      repository.NewJornadaRepository(db),
		recolecciones: repository.NewRecoleccionRepository(db),
		insumos:       repository.NewInsumoRepository(db),
		vales:         repository.NewValeRepository(db),
		tarifas:       repository.NewTarifaRepository(db),
		planes:        repository.NewPlanRepository(db),
		cierres:       repository.NewCierreRepository(db),
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// requireDec compares by value: the store may hand back 300 for "300.00".
func requireDec(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	require.Truef(t, dec(want).Equal(got), "want %s, got %s %v", want, got, msgAndArgs)
}

func guardarTarifa(t *testing.T, r repos, o, pagoDia, pagoExtra string) {
	t.Helper()
	_, err := service.NewTarifaService(r.tarifas).Guardar(context.Background(), o, dto.TarifaRequest{
		PagoDia: dec(pagoDia), PagoHoraExtra: dec(pagoExtra),
	})
	require.NoError(t, err)
}

func jornada(t *testing.T, r repos, o, trabajador, fecha, lote, dias, extra string) {
	t.Helper()
	_, err := service.NewJornadaService(r.jornadas).Crear(context.Background(), o, dto.JornadaRequest{
		Trabajador: trabajador, Fecha: fecha, Lote: lote, Actividad: "Chapia",
		Dias: dec(dias), HorasExtra: dec(extra),
	})
	require.NoError(t, err)
}

func recoleccion(t *testing.T, r repos, o, trabajador, fecha, lote, cajuelas, precio string) *dto.RecoleccionResponse {
	t.Helper()
	resp, err := service.NewRecoleccionService(r.recolecciones).Crear(context.Background(), o, dto.RecoleccionRequest{
		Fecha: fecha, Trabajador: trabajador, Lote: lote, Cajuelas: dec(cajuelas), PrecioCajuela: dec(precio),
	})
	require.NoError(t, err)
	return resp
}

func insumo(t *testing.T, r repos, o, fecha, lote, tipo, cantidad, precio string) *dto.InsumoResponse {
	t.Helper()
	resp, err := service.NewInsumoService(r.insumos).Crear(context.Background(), o, dto.InsumoRequest{
		Fecha: fecha, Lote: lote, Tipo: tipo, Producto: "18-5-15",
		Cantidad: dec(cantidad), PrecioUnitario: dec(precio),
	})
	require.NoError(t, err)
	return resp
}

func vale(t *testing.T, r repos, o, trabajador, fecha, monto string) {
	t.Helper()
	_, err := service.NewValeService(r.vales).Registrar(context.Background(), o, dto.ValeRequest{
		Fecha: fecha, Trabajador: trabajador, Monto: dec(monto), Concepto: "Adelanto",
	})
	require.NoError(t, err)
}
