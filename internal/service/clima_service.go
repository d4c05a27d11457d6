package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"finca/internal/dto"
	"finca/internal/infra"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// ClimaFuente is satisfied by *infra.ClimaClient.
type ClimaFuente interface {
	Actual(ctx context.Context, lat, lon float64) (*infra.Clima, error)
}

// ClimaService never fails: any provider or cache problem is logged and
// reported as Disponible=false.
type ClimaService interface {
	Consultar(ctx context.Context, lat, lon float64) dto.ClimaResponse
}

type climaService struct {
	fuente ClimaFuente
	rdb    *redis.Client
	ttl    time.Duration
}

// NewClimaService caches readings in Redis for ttl; a nil rdb disables the cache.
func NewClimaService(fuente ClimaFuente, rdb *redis.Client, ttl time.Duration) ClimaService {
	return &climaService{fuente: fuente, rdb: rdb, ttl: ttl}
}

func (s *climaService) Consultar(ctx context.Context, lat, lon float64) dto.ClimaResponse {
	key := fmt.Sprintf("clima:%.2f:%.2f", lat, lon)

	if c, ok := s.leerCache(ctx, key); ok {
		return mapClima(c)
	}
	if s.fuente == nil {
		return dto.ClimaResponse{Disponible: false}
	}

	c, err := s.fuente.Actual(ctx, lat, lon)
	if err != nil {
		log.Warn().Err(err).Float64("lat", lat).Float64("lon", lon).Msg("clima no disponible")
		return dto.ClimaResponse{Disponible: false}
	}
	s.guardarCache(ctx, key, c)
	return mapClima(c)
}

func (s *climaService) leerCache(ctx context.Context, key string) (*infra.Clima, bool) {
	if s.rdb == nil {
		return nil, false
	}
	data, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Str("key", key).Msg("clima: lectura de cache fallida")
		}
		return nil, false
	}
	var c infra.Clima
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, false
	}
	return &c, true
}

func (s *climaService) guardarCache(ctx context.Context, key string, c *infra.Clima) {
	if s.rdb == nil || s.ttl <= 0 {
		return
	}
	data, err := json.Marshal(c)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, data, s.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("clima: escritura de cache fallida")
	}
}

func mapClima(c *infra.Clima) dto.ClimaResponse {
	return dto.ClimaResponse{
		Disponible:    true,
		Temperatura:   &c.Temperatura,
		Humedad:       &c.Humedad,
		Precipitacion: &c.Precipitacion,
		Viento:        &c.Viento,
		Observado:     c.Observado,
	}
}
