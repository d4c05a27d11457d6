package service_test

import (
	"context"
	"testing"
	"time"

	"finca/internal/dto"
	"finca/internal/model"
	"finca/internal/repository"
	"finca/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var diaDePago = time.Date(2024, 3, 16, 14, 30, 0, 0, time.UTC)

func nuevaPlanilla(r repos) service.PlanillaService {
	return service.NewPlanillaService(r.jornadas, r.recolecciones, r.vales, r.tarifas)
}

func quincena(tipo string, abonos map[string]decimal.Decimal) dto.PlanillaRequest {
	return dto.PlanillaRequest{Tipo: tipo, Desde: "2024-03-01", Hasta: "2024-03-15", Abonos: abonos}
}

func fila(t *testing.T, p *dto.PlanillaResponse, trabajador string) dto.PlanillaFila {
	t.Helper()
	for _, f := range p.Filas {
		if f.Trabajador == trabajador {
			return f
		}
	}
	t.Fatalf("%s no está en la planilla", trabajador)
	return dto.PlanillaFila{}
}

func TestPlanillaJornadas_BrutoDeudaYNeto(t *testing.T) {
	r := nuevosRepos(nuevaDB(t))
	guardarTarifa(t, r, owner, "15000", "2500")
	jornada(t, r, owner, "Ana", "2024-03-04", "Lote 1", "1", "2")
	jornada(t, r, owner, "Ana", "2024-03-05", "Lote 2", "1", "0")
	jornada(t, r, owner, "Luis", "2024-03-05", "Lote 2", "0.5", "0")
	vale(t, r, owner, "Ana", "2024-02-20", "10000")
	vale(t, r, owner, "Luis", "2024-02-20", "-300") // saldo a favor

	p, err := nuevaPlanilla(r).Calcular(context.Background(), owner, quincena(dto.PlanillaJornadas, nil))
	require.NoError(t, err)
	require.Len(t, p.Filas, 2)

	ana := fila(t, p, "Ana")
	requireDec(t, "2", ana.Dias)
	requireDec(t, "35000", ana.Bruto)
	requireDec(t, "10000", ana.Deuda)
	requireDec(t, "10000", ana.Abono) // por defecto se rebaja toda la deuda
	requireDec(t, "25000", ana.Neto)

	luis := fila(t, p, "Luis")
	requireDec(t, "-300", luis.Deuda)
	assert.True(t, luis.Abono.IsZero(), "un saldo a favor no genera rebajo")
	requireDec(t, "7500", luis.Neto)

	requireDec(t, "42500", p.TotalBruto)
	requireDec(t, "10000", p.TotalAbonos)
	requireDec(t, "32500", p.TotalNeto)
}

func TestPlanillaCosecha_BrutoEsElTotalRecolectado(t *testing.T) {
	r := nuevosRepos(nuevaDB(t))
	recoleccion(t, r, owner, "Ana", "2024-03-02", "Lote 1", "10", "1500")
	recoleccion(t, r, owner, "Ana", "2024-03-03", "Lote 2", "4.5", "1500")

	p, err := nuevaPlanilla(r).Calcular(context.Background(), owner, quincena(dto.PlanillaCosecha, nil))
	require.NoError(t, err)
	ana := fila(t, p, "Ana")
	requireDec(t, "14.5", ana.Cajuelas)
	requireDec(t, "21750", ana.Bruto)
}

func TestPlanilla_AbonoMayorQueLaDeudaRechazado(t *testing.T) {
	r := nuevosRepos(nuevaDB(t))
	guardarTarifa(t, r, owner, "15000", "0")
	jornada(t, r, owner, "Ana", "2024-03-04", "Lote 1", "1", "0")
	vale(t, r, owner, "Ana", "2024-02-20", "500")

	_, err := nuevaPlanilla(r).Calcular(context.Background(), owner,
		quincena(dto.PlanillaJornadas, map[string]decimal.Decimal{"Ana": dec("501")}))
	assert.ErrorIs(t, err, service.ErrValidacion)

	_, err = nuevaPlanilla(r).Calcular(context.Background(), owner,
		quincena(dto.PlanillaJornadas, map[string]decimal.Decimal{"Ana": dec("-1")}))
	assert.ErrorIs(t, err, service.ErrValidacion)

	_, err = nuevaPlanilla(r).Calcular(context.Background(), owner,
		quincena(dto.PlanillaJornadas, map[string]decimal.Decimal{"Pedro": dec("1")}))
	assert.ErrorIs(t, err, service.ErrValidacion)
}

func TestPlanilla_TipoInvalido(t *testing.T) {
	r := nuevosRepos(nuevaDB(t))
	_, err := nuevaPlanilla(r).Calcular(context.Background(), owner, quincena("quincenal", nil))
	assert.ErrorIs(t, err, service.ErrValidacion)
}

func TestPagarPlanilla_RegistraRebajoNegativo(t *testing.T) {
	r := nuevosRepos(nuevaDB(t))
	guardarTarifa(t, r, owner, "15000", "0")
	jornada(t, r, owner, "Ana", "2024-03-04", "Lote 1", "2", "0")
	vale(t, r, owner, "Ana", "2024-02-20", "1000")
	vale(t, r, owner, "Ana", "2024-02-25", "-400")
	vale(t, r, owner, "Ana", "2024-02-28", "200")

	resp, err := nuevaPlanilla(r).Pagar(context.Background(), owner, dto.PagarPlanillaRequest{
		PlanillaRequest: quincena(dto.PlanillaJornadas, map[string]decimal.Decimal{"Ana": dec("300")}),
	}, diaDePago)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.ValesCreados)
	requireDec(t, "29700", fila(t, &resp.Planilla, "Ana").Neto)

	vales := service.NewValeService(r.vales)
	saldo, err := vales.Saldo(context.Background(), owner, "Ana")
	require.NoError(t, err)
	requireDec(t, "500", saldo)

	hist, err := vales.Historial(context.Background(), owner, "Ana", 1, 1)
	require.NoError(t, err)
	rebajo := hist.Data[0]
	requireDec(t, "-300", rebajo.Monto)
	assert.Equal(t, "2024-03-16", rebajo.Fecha)
	assert.Equal(t, "Rebajo planilla jornadas 2024-03-01", rebajo.Concepto)
	require.NotNil(t, rebajo.Referencia)
	assert.Equal(t, "planilla:jornadas:2024-03-01:2024-03-15:Ana", *rebajo.Referencia)
}

func TestPagarPlanilla_RepetirNoRebajaDosVeces(t *testing.T) {
	r := nuevosRepos(nuevaDB(t))
	guardarTarifa(t, r, owner, "15000", "0")
	jornada(t, r, owner, "Ana", "2024-03-04", "Lote 1", "1", "0")
	vale(t, r, owner, "Ana", "2024-02-20", "1000")

	svc := nuevaPlanilla(r)
	req := dto.PagarPlanillaRequest{
		PlanillaRequest: quincena(dto.PlanillaJornadas, map[string]decimal.Decimal{"Ana": dec("400")}),
	}
	primero, err := svc.Pagar(context.Background(), owner, req, diaDePago)
	require.NoError(t, err)
	assert.Equal(t, 1, primero.ValesCreados)

	segundo, err := svc.Pagar(context.Background(), owner, req, diaDePago)
	require.NoError(t, err)
	assert.Equal(t, 0, segundo.ValesCreados)
	assert.True(t, fila(t, &segundo.Planilla, "Ana").YaAplicado)

	saldo, err := service.NewValeService(r.vales).Saldo(context.Background(), owner, "Ana")
	require.NoError(t, err)
	requireDec(t, "600", saldo)
}

func TestPagarPlanilla_NetoNegativoRechazaTodo(t *testing.T) {
	r := nuevosRepos(nuevaDB(t))
	guardarTarifa(t, r, owner, "1000", "0")
	jornada(t, r, owner, "Ana", "2024-03-04", "Lote 1", "1", "0")
	jornada(t, r, owner, "Luis", "2024-03-04", "Lote 1", "1", "0")
	vale(t, r, owner, "Ana", "2024-02-20", "200")
	vale(t, r, owner, "Luis", "2024-02-20", "5000")

	svc := nuevaPlanilla(r)
	calc, err := svc.Calcular(context.Background(), owner, quincena(dto.PlanillaJornadas, nil))
	require.NoError(t, err)
	assert.True(t, fila(t, calc, "Luis").NetoNegativo)

	_, err = svc.Pagar(context.Background(), owner, dto.PagarPlanillaRequest{
		PlanillaRequest: quincena(dto.PlanillaJornadas, nil),
	}, diaDePago)
	assert.ErrorIs(t, err, service.ErrValidacion)

	// Nothing was written, not even Ana's valid deduction.
	saldo, err := service.NewValeService(r.vales).Saldo(context.Background(), owner, "Ana")
	require.NoError(t, err)
	requireDec(t, "200", saldo)
}

func TestPlanilla_AbonoConMasDeDosDecimalesRechazado(t *testing.T) {
	r := nuevosRepos(nuevaDB(t))
	guardarTarifa(t, r, owner, "15000", "0")
	jornada(t, r, owner, "Ana", "2024-03-04", "Lote 1", "1", "0")
	vale(t, r, owner, "Ana", "2024-02-20", "1000")

	_, err := nuevaPlanilla(r).Calcular(context.Background(), owner,
		quincena(dto.PlanillaJornadas, map[string]decimal.Decimal{"Ana": dec("333.335")}))
	assert.ErrorIs(t, err, service.ErrValidacion)

	_, err = nuevaPlanilla(r).Pagar(context.Background(), owner, dto.PagarPlanillaRequest{
		PlanillaRequest: quincena(dto.PlanillaJornadas, map[string]decimal.Decimal{"Ana": dec("333.335")}),
	}, diaDePago)
	assert.ErrorIs(t, err, service.ErrValidacion)

	saldo, err := service.NewValeService(r.vales).Saldo(context.Background(), owner, "Ana")
	require.NoError(t, err)
	requireDec(t, "1000", saldo)
}

func TestPlanilla_RangoInvertidoSinFilas(t *testing.T) {
	r := nuevosRepos(nuevaDB(t))
	guardarTarifa(t, r, owner, "15000", "0")
	jornada(t, r, owner, "Ana", "2024-03-10", "Lote 1", "1", "0")
	recoleccion(t, r, owner, "Ana", "2024-03-10", "Lote 1", "10", "1500")

	for _, tipo := range []string{dto.PlanillaJornadas, dto.PlanillaCosecha} {
		p, err := nuevaPlanilla(r).Calcular(context.Background(), owner, dto.PlanillaRequest{Tipo: tipo, Desde: "2024-03-31", Hasta: "2024-03-01"})
		require.NoError(t, err, tipo)
		assert.Empty(t, p.Filas, tipo)
		assert.True(t, p.TotalBruto.IsZero(), tipo)
	}
}

// carreraVales behaves as if another Pagar inserted the same deduction
// between the referencia lookup and the insert.
type carreraVales struct{ repository.ValeRepository }

func (carreraVales) ExisteReferencia(context.Context, *gorm.DB, string, string) (bool, error) {
	return false, nil
}

func (carreraVales) Create(context.Context, *gorm.DB, *model.Vale) error {
	return gorm.ErrDuplicatedKey
}

func TestPagarPlanilla_PagoConcurrenteEsErrorDeValidacion(t *testing.T) {
	r := nuevosRepos(nuevaDB(t))
	guardarTarifa(t, r, owner, "15000", "0")
	jornada(t, r, owner, "Ana", "2024-03-04", "Lote 1", "1", "0")
	vale(t, r, owner, "Ana", "2024-02-20", "1000")

	svc := service.NewPlanillaService(r.jornadas, r.recolecciones, carreraVales{r.vales}, r.tarifas)
	_, err := svc.Pagar(context.Background(), owner, dto.PagarPlanillaRequest{
		PlanillaRequest: quincena(dto.PlanillaJornadas, nil),
	}, diaDePago)
	assert.ErrorIs(t, err, service.ErrValidacion)
	assert.Contains(t, err.Error(), "ya fue aplicado")
}
