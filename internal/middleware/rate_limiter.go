package middleware

import (
	"net/http"
	"sync"
	"time"

	"finca/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ── Rate limiting ─────────────────────────────────────────────────────────────
// Fixed window per client IP. Expired windows are swept lazily, at most once
// per purgeEvery, while handling a request.

const purgeEvery = 5 * time.Minute

type ventana struct {
	count int
	fin   time.Time
}

type limitador struct {
	mu       sync.Mutex
	limite   int
	duracion time.Duration
	ips      map[string]*ventana
	purgado  time.Time
}

func nuevoLimitador(limite int, duracion time.Duration) *limitador {
	return &limitador{limite: limite, duracion: duracion, ips: make(map[string]*ventana)}
}

// permitir counts one hit for ip. It returns false and the end of the
// current window when the limit is exceeded.
func (l *limitador) permitir(ip string, now time.Time) (bool, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.purgado) >= purgeEvery {
		l.purgar(now)
	}

	v, ok := l.ips[ip]
	if !ok || now.After(v.fin) {
		v = &ventana{fin: now.Add(l.duracion)}
		l.ips[ip] = v
	}
	v.count++
	return v.count <= l.limite, v.fin
}

func (l *limitador) purgar(now time.Time) {
	n := 0
	for ip, v := range l.ips {
		if now.After(v.fin) {
			delete(l.ips, ip)
			n++
		}
	}
	l.purgado = now
	if n > 0 {
		log.Debug().Int("purged", n).Int("remaining", len(l.ips)).Msg("rate limiter purged")
	}
}

func (l *limitador) middleware(msg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, fin := l.permitir(c.ClientIP(), time.Now())
		if !ok {
			c.Header("Retry-After", fin.UTC().Format(http.TimeFormat))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(msg))
			return
		}
		c.Next()
	}
}

// LoginRateLimiter allows 20 login attempts per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return nuevoLimitador(20, time.Minute).middleware("Demasiados intentos de ingreso. Intente en un minuto.")
}

// RateLimiter limits every client IP to limit requests per window.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return nuevoLimitador(limit, window).middleware("Demasiadas solicitudes. Intente nuevamente en un momento.")
}
