package service_test

import (
	"context"
	"testing"

	"finca/internal/dto"
	"finca/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaldo_EsLaSumaDeLosMovimientos(t *testing.T) {
	r := nuevosRepos(nuevaDB(t))
	svc := service.NewValeService(r.vales)
	ctx := context.Background()

	vale(t, r, owner, "Ana", "2024-02-01", "1000")
	vale(t, r, owner, "Ana", "2024-02-05", "-400")
	vale(t, r, owner, "Ana", "2024-02-09", "200")

	saldo, err := svc.Saldo(ctx, owner, "Ana")
	require.NoError(t, err)
	requireDec(t, "800", saldo)

	hist, err := svc.Historial(ctx, owner, "Ana", 1, 50)
	require.NoError(t, err)
	assert.EqualValues(t, 3, hist.Total)
	requireDec(t, "800", hist.Saldo)
	// Newest first.
	assert.Equal(t, "2024-02-09", hist.Data[0].Fecha)
}

func TestSaldo_TrabajadorSinMovimientosEsCero(t *testing.T) {
	r := nuevosRepos(nuevaDB(t))
	saldo, err := service.NewValeService(r.vales).Saldo(context.Background(), owner, "Nadie")
	require.NoError(t, err)
	assert.True(t, saldo.IsZero())
}

func TestRegistrarVale_MontoCeroRechazado(t *testing.T) {
	r := nuevosRepos(nuevaDB(t))
	_, err := service.NewValeService(r.vales).Registrar(context.Background(), owner, dto.ValeRequest{
		Fecha: "2024-02-01", Trabajador: "Ana", Monto: dec("0"), Concepto: "Nada",
	})
	assert.ErrorIs(t, err, service.ErrValidacion)
}

func TestSaldos_AisladosPorOwner(t *testing.T) {
	r := nuevosRepos(nuevaDB(t))
	vale(t, r, owner, "Ana", "2024-02-01", "500")
	vale(t, r, owner, "Luis", "2024-02-01", "250")
	vale(t, r, vecino, "Ana", "2024-02-01", "9999")

	saldos, err := service.NewValeService(r.vales).Saldos(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, saldos, 2)
	assert.Equal(t, "Ana", saldos[0].Trabajador)
	requireDec(t, "500", saldos[0].Saldo)
	requireDec(t, "250", saldos[1].Saldo)
}

func TestEliminarVale_DeOtroOwnerNoEncontrado(t *testing.T) {
	r := nuevosRepos(nuevaDB(t))
	svc := service.NewValeService(r.vales)
	ctx := context.Background()
	v, err := svc.Registrar(ctx, vecino, dto.ValeRequest{Fecha: "2024-02-01", Trabajador: "Ana", Monto: dec("100"), Concepto: "Adelanto"})
	require.NoError(t, err)

	err = svc.Eliminar(ctx, owner, v.ID)
	assert.ErrorIs(t, err, service.ErrNoEncontrado)

	saldo, err := svc.Saldo(ctx, vecino, "Ana")
	require.NoError(t, err)
	requireDec(t, "100", saldo)
}

func TestRegistrarVale_MasDeDosDecimalesRechazado(t *testing.T) {
	r := nuevosRepos(nuevaDB(t))
	svc := service.NewValeService(r.vales)

	_, err := svc.Registrar(context.Background(), owner, dto.ValeRequest{
		Fecha: "2024-02-01", Trabajador: "Ana", Monto: dec("333.335"), Concepto: "Adelanto",
	})
	assert.ErrorIs(t, err, service.ErrValidacion)

	// Trailing zeros are still two decimals.
	_, err = svc.Registrar(context.Background(), owner, dto.ValeRequest{
		Fecha: "2024-02-01", Trabajador: "Ana", Monto: dec("333.300"), Concepto: "Adelanto",
	})
	require.NoError(t, err)
	saldo, err := svc.Saldo(context.Background(), owner, "Ana")
	require.NoError(t, err)
	requireDec(t, "333.3", saldo)
}
