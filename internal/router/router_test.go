package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"finca/internal/config"
	"finca/internal/dto"
	"finca/internal/infra"
	"finca/internal/repository"
	"finca/internal/router"
	"finca/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type servidor struct {
	t      *testing.T
	engine *gin.Engine
	token  string
}

func nuevoServidor(t *testing.T) *servidor {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), infra.GormConfig())
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, infra.RunMigrations(db))

	cfg := &config.Config{
		Env:                 "test",
		JWTSecret:           "test_jwt_secret_32_chars_minimum!",
		JWTExpirationHours:  1,
		JWTRefreshHours:     2,
		WeatherAPIURL:       "http://127.0.0.1:1",
		WeatherCacheMinutes: 30,
		ExportStoragePath:   t.TempDir(),
		NombreFinca:         "Finca Norte",
	}
	auth := service.NewAuthService(repository.NewUsuarioRepository(db), cfg)
	_, err = auth.CrearUsuario(context.Background(), "finca_norte", "Finca Norte", "password123", nil)
	require.NoError(t, err)

	return &servidor{t: t, engine: router.New(cfg, db, nil, infra.NewCircuitBreaker(infra.DefaultCBConfig()))}
}

func (s *servidor) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(s.t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *servidor) login() {
	s.t.Helper()
	w := s.do(http.MethodPost, "/v1/auth/login", dto.LoginRequest{Username: "finca_norte", Password: "password123"})
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())
	var resp dto.LoginResponse
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &resp))
	s.token = resp.AccessToken
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	s := nuevoServidor(t)
	w := s.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode[map[string]interface{}](t, w)
	assert.Equal(t, "connected", body["db"])
	assert.Equal(t, "disabled", body["redis"])
	assert.Equal(t, "closed", body["clima"])
}

func TestAuth_RutasProtegidas(t *testing.T) {
	s := nuevoServidor(t)
	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/v1/vales/saldos", nil).Code)

	w := s.do(http.MethodPost, "/v1/auth/login", dto.LoginRequest{Username: "finca_norte", Password: "incorrecta"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	s.login()
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/v1/vales/saldos", nil).Code)
}

func TestVales_CodigosDeError(t *testing.T) {
	s := nuevoServidor(t)
	s.login()

	w := s.do(http.MethodPost, "/v1/vales", dto.ValeRequest{Fecha: "2024-03-01", Trabajador: "Ana", Monto: decimal.NewFromInt(1000), Concepto: "Adelanto"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/v1/vales", `{"fecha":`).Code)

	w = s.do(http.MethodPost, "/v1/vales", map[string]interface{}{"fecha": "01/03/2024", "trabajador": "Ana", "monto": 10})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	verr := decode[map[string]interface{}](t, w)
	fields, _ := verr["fields"].(map[string]interface{})
	assert.Contains(t, fields, "fecha")
	assert.Contains(t, fields, "concepto")

	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/v1/vales/saldo", nil).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodDelete, "/v1/vales/abc", nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodDelete, "/v1/vales/999", nil).Code)

	w = s.do(http.MethodGet, "/v1/vales/saldo?trabajador=Ana", nil)
	require.Equal(t, http.StatusOK, w.Code)
	saldo := decode[dto.SaldoResponse](t, w)
	assert.True(t, saldo.Saldo.Equal(decimal.NewFromInt(1000)), saldo.Saldo.String())
}

func TestPlanilla_FlujoCompleto(t *testing.T) {
	s := nuevoServidor(t)
	s.login()

	require.Equal(t, http.StatusOK, s.do(http.MethodPut, "/v1/tarifa",
		dto.TarifaRequest{PagoDia: decimal.NewFromInt(15000), PagoHoraExtra: decimal.NewFromInt(2500)}).Code)

	w := s.do(http.MethodPost, "/v1/jornadas", dto.JornadaRequest{
		Trabajador: "Ana", Fecha: "2024-03-04", Lote: "Lote 1", Actividad: "Chapia",
		Dias: decimal.NewFromInt(2), HorasExtra: decimal.NewFromInt(2),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodPost, "/v1/vales", dto.ValeRequest{Fecha: "2024-02-20", Trabajador: "Ana", Monto: decimal.NewFromInt(5000), Concepto: "Adelanto"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	periodo := map[string]string{"desde": "2024-03-01", "hasta": "2024-03-15"}
	w = s.do(http.MethodPost, "/v1/planillas/jornadas/calcular", periodo)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	planilla := decode[dto.PlanillaResponse](t, w)
	require.Len(t, planilla.Filas, 1)
	assert.True(t, planilla.Filas[0].Bruto.Equal(decimal.NewFromInt(35000)))
	assert.True(t, planilla.Filas[0].Neto.Equal(decimal.NewFromInt(30000)))

	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/v1/planillas/quincenal/calcular", periodo).Code)

	w = s.do(http.MethodPost, "/v1/planillas/jornadas/pagar", periodo)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodGet, "/v1/vales/saldo?trabajador=Ana", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[dto.SaldoResponse](t, w).Saldo.IsZero())

	w = s.do(http.MethodGet, "/v1/reportes/resumen?desde=2024-03-01&hasta=2024-03-31", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resumen := decode[dto.ResumenPeriodoResponse](t, w)
	assert.True(t, resumen.ManoObra.Equal(decimal.NewFromInt(35000)), resumen.ManoObra.String())
}

func TestCierres_CrearYConsultar(t *testing.T) {
	s := nuevoServidor(t)
	s.login()

	w := s.do(http.MethodPost, "/v1/cierres", dto.CrearCierreRequest{Desde: "2024-03-01", Hasta: "2024-03-31"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	c := decode[dto.CierreResponse](t, w)
	assert.Equal(t, "finca_norte", c.CreadoPor)

	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, fmt.Sprintf("/v1/cierres/%d", c.ID), nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/v1/cierres/999", nil).Code)

	// Without Redis there is no queue to deliver the report.
	w = s.do(http.MethodPost, fmt.Sprintf("/v1/cierres/%d/enviar", c.ID), map[string]string{"email": "conta@example.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
