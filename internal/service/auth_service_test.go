package service_test

import (
	"context"
	"testing"
	"time"

	"finca/internal/config"
	"finca/internal/dto"
	"finca/internal/model"
	"finca/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── In-memory Repository Stub ─────────────────────────────────────────────────

type stubUsuarioRepo struct {
	users  map[string]*model.Usuario
	nextID uint
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{users: make(map[string]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if _, ok := r.users[u.Username]; ok {
		return gorm.ErrDuplicatedKey
	}
	r.nextID++
	u.ID = r.nextID
	r.users[u.Username] = u
	return nil
}

func (r *stubUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	u, ok := r.users[username]
	if !ok || !u.Activo {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

const testSecret = "test_jwt_secret_32_chars_minimum!"

func newTestCfg() *config.Config {
	return &config.Config{JWTSecret: testSecret, JWTExpirationHours: 8, JWTRefreshHours: 24}
}

func claimsDe(t *testing.T, tok string) jwt.MapClaims {
	t.Helper()
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tok, claims, func(*jwt.Token) (interface{}, error) { return []byte(testSecret), nil })
	require.NoError(t, err)
	return claims
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestLogin_TokenLlevaElOwner(t *testing.T) {
	svc := service.NewAuthService(newStubUsuarioRepo(), newTestCfg())
	ctx := context.Background()
	_, err := svc.CrearUsuario(ctx, owner, "Finca Norte", "password123", nil)
	require.NoError(t, err)

	resp, err := svc.Login(ctx, dto.LoginRequest{Username: owner, Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 8*3600, resp.ExpiresIn)

	claims := claimsDe(t, resp.AccessToken)
	assert.Equal(t, owner, claims["owner"])
	assert.Equal(t, "access", claims["typ"])
	assert.Equal(t, "refresh", claimsDe(t, resp.RefreshToken)["typ"])
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	svc := service.NewAuthService(newStubUsuarioRepo(), newTestCfg())
	ctx := context.Background()
	_, err := svc.CrearUsuario(ctx, owner, "Finca Norte", "password123", nil)
	require.NoError(t, err)

	_, err = svc.Login(ctx, dto.LoginRequest{Username: owner, Password: "otraclave"})
	assert.ErrorIs(t, err, service.ErrCredenciales)
	_, err = svc.Login(ctx, dto.LoginRequest{Username: "noexiste", Password: "password123"})
	assert.ErrorIs(t, err, service.ErrCredenciales)
}

func TestRefresh(t *testing.T) {
	svc := service.NewAuthService(newStubUsuarioRepo(), newTestCfg())
	ctx := context.Background()
	_, err := svc.CrearUsuario(ctx, owner, "Finca Norte", "password123", nil)
	require.NoError(t, err)
	login, err := svc.Login(ctx, dto.LoginRequest{Username: owner, Password: "password123"})
	require.NoError(t, err)

	resp, err := svc.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, owner, resp.User.Username)

	// An access token is not a refresh token.
	_, err = svc.Refresh(ctx, login.AccessToken)
	assert.ErrorIs(t, err, service.ErrCredenciales)

	_, err = svc.Refresh(ctx, "this.is.garbage")
	assert.ErrorIs(t, err, service.ErrCredenciales)

	expirado := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": owner, "typ": "refresh", "exp": time.Now().Add(-time.Second).Unix(),
	})
	s, err := expirado.SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = svc.Refresh(ctx, s)
	assert.ErrorIs(t, err, service.ErrCredenciales)
}

func TestCrearUsuario_Validaciones(t *testing.T) {
	svc := service.NewAuthService(newStubUsuarioRepo(), newTestCfg())
	ctx := context.Background()

	_, err := svc.CrearUsuario(ctx, owner, "Finca Norte", "corta", nil)
	assert.ErrorIs(t, err, service.ErrValidacion)

	_, err = svc.CrearUsuario(ctx, owner, "Finca Norte", "password123", nil)
	require.NoError(t, err)
	_, err = svc.CrearUsuario(ctx, owner, "Otra", "password123", nil)
	assert.ErrorIs(t, err, service.ErrValidacion, "duplicate username")
}
