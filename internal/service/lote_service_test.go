package service_test

import (
	"context"
	"testing"
	"time"

	"finca/internal/dto"
	"finca/internal/repository"
	"finca/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var hoyLote = time.Date(2024, 6, 30, 10, 0, 0, 0, time.UTC)

func nuevoLote(t *testing.T, db *gorm.DB, r repos, clima service.ClimaService, req dto.LoteRequest) (service.LoteService, uint) {
	t.Helper()
	svc := service.NewLoteService(repository.NewLoteRepository(db), r.insumos, r.recolecciones, clima)
	l, err := svc.Crear(context.Background(), owner, req)
	require.NoError(t, err)
	return svc, l.ID
}

func TestEstadoLote_AbonoVigenteTreintaDias(t *testing.T) {
	cases := []struct {
		name  string
		fecha string
		want  string
	}{
		{"hace 30 días", "2024-05-31", service.EstadoFertilizado},
		{"hace 31 días", "2024-05-30", service.EstadoBajaProduccion},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db := nuevaDB(t)
			r := nuevosRepos(db)
			svc, id := nuevoLote(t, db, r, nil, dto.LoteRequest{Nombre: "Lote 1"})
			insumo(t, r, owner, tc.fecha, "Lote 1", "Abono", "2", "25000")

			e, err := svc.Estado(context.Background(), owner, id, hoyLote)
			require.NoError(t, err)
			assert.Equal(t, tc.want, e.Codigo)
		})
	}
}

func TestEstadoLote_AbonoGanaABajaProduccion(t *testing.T) {
	db := nuevaDB(t)
	r := nuevosRepos(db)
	svc, id := nuevoLote(t, db, r, nil, dto.LoteRequest{Nombre: "Lote 1"})
	recoleccion(t, r, owner, "Ana", "2024-06-01", "Lote 1", "10", "1500")
	insumo(t, r, owner, "2024-06-20", "Lote 1", "Abono", "2", "25000")

	e, err := svc.Estado(context.Background(), owner, id, hoyLote)
	require.NoError(t, err)
	assert.Equal(t, service.EstadoFertilizado, e.Codigo)
	assert.Equal(t, "Recién fertilizado", e.Descripcion)
	requireDec(t, "10", e.TotalCajuelas)
}

func TestEstadoLote_UmbralDeCincuentaCajuelas(t *testing.T) {
	cases := []struct {
		cajuelas string
		want     string
	}{
		{"49.5", service.EstadoBajaProduccion},
		{"50", service.EstadoEstable},
	}
	for _, tc := range cases {
		t.Run(tc.cajuelas, func(t *testing.T) {
			db := nuevaDB(t)
			r := nuevosRepos(db)
			svc, id := nuevoLote(t, db, r, nil, dto.LoteRequest{Nombre: "Lote 1"})
			recoleccion(t, r, owner, "Ana", "2024-01-10", "Lote 1", tc.cajuelas, "1500")
			// Other lotes and herbicide applications do not count.
			recoleccion(t, r, owner, "Ana", "2024-01-10", "Lote 2", "500", "1500")
			insumo(t, r, owner, "2024-06-20", "Lote 1", "Herbicida", "1", "8000")

			e, err := svc.Estado(context.Background(), owner, id, hoyLote)
			require.NoError(t, err)
			assert.Equal(t, tc.want, e.Codigo)
			requireDec(t, tc.cajuelas, e.TotalCajuelas)
		})
	}
}

func TestEstadoLote_DeOtroOwnerNoEncontrado(t *testing.T) {
	db := nuevaDB(t)
	r := nuevosRepos(db)
	svc, id := nuevoLote(t, db, r, nil, dto.LoteRequest{Nombre: "Lote 1"})

	_, err := svc.Estado(context.Background(), vecino, id, hoyLote)
	assert.ErrorIs(t, err, service.ErrNoEncontrado)
}

func TestClimaLote_SinCoordenadasNoConsulta(t *testing.T) {
	db := nuevaDB(t)
	r := nuevosRepos(db)
	fuente := &climaFuenteStub{}
	svc, id := nuevoLote(t, db, r, service.NewClimaService(fuente, nil, time.Minute), dto.LoteRequest{Nombre: "Lote 1"})

	c, err := svc.Clima(context.Background(), owner, id)
	require.NoError(t, err)
	assert.False(t, c.Disponible)
	assert.Zero(t, fuente.llamadas)
}

func TestClimaLote_ConCoordenadas(t *testing.T) {
	db := nuevaDB(t)
	r := nuevosRepos(db)
	fuente := &climaFuenteStub{}
	svc, id := nuevoLote(t, db, r, service.NewClimaService(fuente, nil, time.Minute),
		dto.LoteRequest{Nombre: "Lote 1", Latitud: ptr(9.93), Longitud: ptr(-84.08)})

	c, err := svc.Clima(context.Background(), owner, id)
	require.NoError(t, err)
	assert.True(t, c.Disponible)
	assert.Equal(t, 1, fuente.llamadas)
}
