package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"finca/internal/infra"
	"finca/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type climaFuenteStub struct {
	err      error
	llamadas int
}

func (s *climaFuenteStub) Actual(_ context.Context, _, _ float64) (*infra.Clima, error) {
	s.llamadas++
	if s.err != nil {
		return nil, s.err
	}
	return &infra.Clima{Temperatura: 22.5, Humedad: 80, Precipitacion: 1.2, Viento: 6, Observado: "2024-06-30T10:00"}, nil
}

func TestClima_ErrorDelProveedorNoDisponible(t *testing.T) {
	fuente := &climaFuenteStub{err: errors.New("timeout")}
	c := service.NewClimaService(fuente, nil, time.Minute).Consultar(context.Background(), 9.93, -84.08)

	assert.False(t, c.Disponible)
	assert.Nil(t, c.Temperatura)
	assert.Equal(t, 1, fuente.llamadas)
}

func TestClima_SinFuenteNoDisponible(t *testing.T) {
	c := service.NewClimaService(nil, nil, time.Minute).Consultar(context.Background(), 9.93, -84.08)
	assert.False(t, c.Disponible)
}

func TestClima_SinRedisConsultaCadaVez(t *testing.T) {
	fuente := &climaFuenteStub{}
	svc := service.NewClimaService(fuente, nil, time.Minute)

	for i := 0; i < 2; i++ {
		c := svc.Consultar(context.Background(), 9.93, -84.08)
		require.True(t, c.Disponible)
		require.NotNil(t, c.Temperatura)
		assert.Equal(t, 22.5, *c.Temperatura)
		assert.Equal(t, "2024-06-30T10:00", c.Observado)
	}
	assert.Equal(t, 2, fuente.llamadas)
}
