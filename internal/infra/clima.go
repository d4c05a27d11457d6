package infra

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Clima is the current weather at a coordinate.
type Clima struct {
	Temperatura   float64 `json:"temperatura"`
	Humedad       float64 `json:"humedad"`
	Precipitacion float64 `json:"precipitacion"`
	Viento        float64 `json:"viento"`
	Observado     string  `json:"observado"`
}

// openMeteoResponse is the subset of the open-meteo forecast response we read.
type openMeteoResponse struct {
	Current struct {
		Time          string  `json:"time"`
		Temperature   float64 `json:"temperature_2m"`
		Humidity      float64 `json:"relative_humidity_2m"`
		Precipitation float64 `json:"precipitation"`
		WindSpeed     float64 `json:"wind_speed_10m"`
	} `json:"current"`
}

// ErrClimaNoDisponible is returned while the circuit breaker is open.
var ErrClimaNoDisponible = errors.New("clima: proveedor no disponible")

// ClimaClient queries an open-meteo compatible forecast endpoint. Every call
// is bounded by the client timeout and guarded by a circuit breaker so a
// failing provider is not hammered on every plot page.
type ClimaClient struct {
	baseURL    string
	httpClient *http.Client
	cb         *CircuitBreaker
}

func NewClimaClient(baseURL string, timeout time.Duration, cb *CircuitBreaker) *ClimaClient {
	if cb == nil {
		cb = NewCircuitBreaker(DefaultCBConfig())
	}
	return &ClimaClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		cb:         cb,
	}
}

// Actual returns the current weather at (lat, lon).
func (c *ClimaClient) Actual(ctx context.Context, lat, lon float64) (*Clima, error) {
	var result *Clima
	err := c.cb.Execute(func() error {
		var err error
		result, err = c.consultar(ctx, lat, lon)
		return err
	})
	if errors.Is(err, ErrCircuitOpen) {
		return nil, ErrClimaNoDisponible
	}
	return result, err
}

func (c *ClimaClient) consultar(ctx context.Context, lat, lon float64) (*Clima, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', 4, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', 4, 64))
	q.Set("current", "temperature_2m,relative_humidity_2m,precipitation,wind_speed_10m")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("clima: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("clima: provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("clima: provider returned %d", resp.StatusCode)
	}

	var body openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("clima: decode response: %w", err)
	}
	return &Clima{
		Temperatura:   body.Current.Temperature,
		Humedad:       body.Current.Humidity,
		Precipitacion: body.Current.Precipitation,
		Viento:        body.Current.WindSpeed,
		Observado:     body.Current.Time,
	}, nil
}
