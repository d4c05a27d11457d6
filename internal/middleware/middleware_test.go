package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secreto = "test_jwt_secret_32_chars_minimum!"

func init() { gin.SetMode(gin.TestMode) }

func firmar(t *testing.T, claims JWTClaims) string {
	t.Helper()
	if claims.ExpiresAt == nil {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(time.Hour))
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secreto))
	require.NoError(t, err)
	return s
}

func protegido() *gin.Engine {
	r := gin.New()
	r.GET("/privado", JWTAuth(secreto), func(c *gin.Context) {
		c.String(http.StatusOK, Owner(c))
	})
	return r
}

func pedir(r http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/privado", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth(t *testing.T) {
	r := protegido()

	w := pedir(r, firmar(t, JWTClaims{Username: "ana", Owner: "finca_norte", Typ: "access"}))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "finca_norte", w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, pedir(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, pedir(r, "basura").Code)
	assert.Equal(t, http.StatusUnauthorized,
		pedir(r, firmar(t, JWTClaims{Username: "ana", Owner: "finca_norte", Typ: "refresh"})).Code,
		"refresh token on a protected route")
	assert.Equal(t, http.StatusUnauthorized,
		pedir(r, firmar(t, JWTClaims{Username: "ana", Typ: "access"})).Code,
		"token without owner")

	vencido := JWTClaims{Username: "ana", Owner: "finca_norte", Typ: "access"}
	vencido.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	assert.Equal(t, http.StatusUnauthorized, pedir(r, firmar(t, vencido)).Code)
}

func TestLimitador_VentanaFija(t *testing.T) {
	l := nuevoLimitador(2, time.Minute)
	t0 := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

	ok, _ := l.permitir("10.0.0.1", t0)
	assert.True(t, ok)
	ok, _ = l.permitir("10.0.0.1", t0.Add(time.Second))
	assert.True(t, ok)
	ok, fin := l.permitir("10.0.0.1", t0.Add(2*time.Second))
	assert.False(t, ok)
	assert.Equal(t, t0.Add(time.Minute), fin)

	ok, _ = l.permitir("10.0.0.2", t0.Add(2*time.Second))
	assert.True(t, ok, "other IPs have their own window")

	ok, _ = l.permitir("10.0.0.1", t0.Add(61*time.Second))
	assert.True(t, ok, "new window")
}

func TestLimitador_PurgaVentanasVencidas(t *testing.T) {
	l := nuevoLimitador(5, time.Minute)
	t0 := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	l.permitir("10.0.0.1", t0)
	l.permitir("10.0.0.2", t0)

	l.permitir("10.0.0.3", t0.Add(purgeEvery+time.Second))
	assert.Len(t, l.ips, 1)
}

func TestRateLimiter_Responde429(t *testing.T) {
	r := gin.New()
	r.GET("/x", RateLimiter(1, time.Minute), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		return w
	}
	assert.Equal(t, http.StatusOK, req().Code)
	w := req()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}
