package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// FixedWindowLimiter cuenta intentos por clave en ventanas fijas. El contador
// vive en Redis, así que el límite se comparte entre réplicas de la API.
type FixedWindowLimiter struct {
	client goredis.Cmdable
	prefix string
	limit  int
	window time.Duration
}

// NewFixedWindowLimiter permite limit intentos por clave cada window.
func NewFixedWindowLimiter(client goredis.Cmdable, prefix string, limit int, window time.Duration) *FixedWindowLimiter {
	return &FixedWindowLimiter{client: client, prefix: prefix, limit: limit, window: window}
}

// incrWindow incrementa el contador y le asigna la ventana si aún no tiene TTL,
// en un solo paso atómico. Una clave sin TTL nunca queda bloqueada para siempre.
var incrWindow = goredis.NewScript(`
local n = redis.call('INCR', KEYS[1])
if redis.call('PTTL', KEYS[1]) < 0 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return n
`)

// Allow registra un intento para key. Devuelve si está permitido y cuántos
// intentos quedan en la ventana actual.
func (l *FixedWindowLimiter) Allow(ctx context.Context, key string) (bool, int, error) {
	count, err := incrWindow.Run(ctx, l.client, []string{l.prefix + key}, l.window.Milliseconds()).Int64()
	if err != nil {
		return false, 0, fmt.Errorf("rate limit incr: %w", err)
	}
	remaining := l.limit - int(count)
	if remaining < 0 {
		return false, 0, nil
	}
	return true, remaining, nil
}

// Window duración de la ventana.
func (l *FixedWindowLimiter) Window() time.Duration {
	return l.window
}
